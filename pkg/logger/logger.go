package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Logger es la interfaz para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// SimpleLogger es una implementación simple de Logger
type SimpleLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	warnLogger  *log.Logger
}

// NewLogger crea una nueva instancia de Logger
func NewLogger() Logger {
	return &SimpleLogger{
		infoLogger:  log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
		debugLogger: log.New(os.Stdout, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile),
		warnLogger:  log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// Info registra un mensaje informativo
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.infoLogger.Print(msg + formatKeyValues(keysAndValues))
}

// Error registra un mensaje de error
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.errorLogger.Print(msg + formatKeyValues(keysAndValues))
}

// Debug registra un mensaje de depuración
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.debugLogger.Print(msg + formatKeyValues(keysAndValues))
}

// Warn registra un mensaje de advertencia
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.warnLogger.Print(msg + formatKeyValues(keysAndValues))
}

// formatKeyValues presenta los pares variádicos como " clave=valor".
// Una clave sin valor se marca con "?".
func formatKeyValues(keysAndValues []interface{}) string {
	if len(keysAndValues) == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		b.WriteString(fmt.Sprintf(" %v=", keysAndValues[i]))
		if i+1 < len(keysAndValues) {
			b.WriteString(fmt.Sprintf("%v", keysAndValues[i+1]))
		} else {
			b.WriteString("?")
		}
	}
	return b.String()
}
