package chatbot

import (
	"context"
	"errors"
)

// noopLogger descarta todo; evita ruido en la salida de las pruebas
type noopLogger struct{}

func (noopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Warn(msg string, keysAndValues ...interface{})  {}

// failingGateway simula un backend caído: toda operación falla
type failingGateway struct{}

var errGatewayDown = errors.New("backend no disponible")

func (failingGateway) Get(ctx context.Context, path string, dest interface{}) (bool, error) {
	return false, errGatewayDown
}

func (failingGateway) Set(ctx context.Context, path string, value interface{}) error {
	return errGatewayDown
}

func (failingGateway) Push(ctx context.Context, path string, value interface{}) (string, error) {
	return "", errGatewayDown
}

func (failingGateway) Update(ctx context.Context, values map[string]interface{}) error {
	return errGatewayDown
}

func (failingGateway) Remove(ctx context.Context, path string) error {
	return errGatewayDown
}
