package chatbot

import (
	"strings"
)

// confidenceThreshold es la confianza mínima para seleccionar una intención
const confidenceThreshold = 0.3

// DetectIntent puntúa el mensaje contra cada intención habilitada y
// retorna la de mayor puntaje cuando supera el umbral de confianza, o nil
// cuando ninguna lo supera. Es una función pura de sus entradas.
//
// Cada palabra clave contenida en el mensaje suma 1 punto, y 2 cuando el
// mensaje comienza con ella. El puntaje se normaliza por la cantidad de
// palabras clave y se acota a [0, 1]. En caso de empate gana la primera
// intención del arreglo que alcanzó el máximo.
func DetectIntent(message string, intents []Intent) *Intent {
	normalized := strings.ToLower(strings.TrimSpace(message))

	var best *Intent
	var bestScore float64

	for i := range intents {
		intent := &intents[i]
		if !intent.Enabled {
			continue
		}

		score := scoreIntent(normalized, intent)
		if score > bestScore {
			best = intent
			bestScore = score
		}
	}

	if bestScore <= confidenceThreshold {
		return nil
	}
	return best
}

// scoreIntent calcula la confianza de una intención para un mensaje ya
// normalizado. Una intención sin palabras clave no puede coincidir.
func scoreIntent(message string, intent *Intent) float64 {
	if len(intent.Keywords) == 0 {
		return 0
	}

	var accumulated float64
	for _, keyword := range intent.Keywords {
		kw := strings.ToLower(keyword)
		if kw == "" || !strings.Contains(message, kw) {
			continue
		}
		if strings.HasPrefix(message, kw) {
			accumulated += 2
		} else {
			accumulated++
		}
	}

	score := accumulated / float64(len(intent.Keywords))
	if score > 1 {
		score = 1
	}
	return score
}
