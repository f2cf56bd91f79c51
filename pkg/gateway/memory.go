package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Memory es una implementación volátil de Gateway que mantiene los
// documentos como un árbol JSON en memoria. Es segura para acceso
// concurrente y está pensada para pruebas y entornos locales.
type Memory struct {
	mu   sync.RWMutex
	root map[string]interface{}
}

// NewMemory construye un gateway en memoria vacío
func NewMemory() *Memory {
	return &Memory{root: make(map[string]interface{})}
}

// Get decodifica en dest el nodo almacenado en path
func (m *Memory) Get(ctx context.Context, path string, dest interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	node, ok := m.lookup(path)
	if !ok {
		return false, nil
	}

	raw, err := json.Marshal(node)
	if err != nil {
		return false, fmt.Errorf("error al serializar el documento %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("error al decodificar el documento %s: %w", path, err)
	}
	return true, nil
}

// Set escribe value en path reemplazando el subárbol existente
func (m *Memory) Set(ctx context.Context, path string, value interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	node, err := toJSONValue(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setLocked(path, node)
}

// Push agrega value bajo path con una clave generada
func (m *Memory) Push(ctx context.Context, path string, value interface{}) (string, error) {
	id := uuid.New().String()
	if err := m.Set(ctx, path+"/"+id, value); err != nil {
		return "", err
	}
	return id, nil
}

// Update aplica varias escrituras en una sola sección crítica
func (m *Memory) Update(ctx context.Context, values map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for path, value := range values {
		node, err := toJSONValue(value)
		if err != nil {
			return err
		}
		if err := m.setLocked(path, node); err != nil {
			return err
		}
	}
	return nil
}

// Remove elimina el nodo en path y todo su subárbol
func (m *Memory) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	segments := splitPath(path)
	if len(segments) == 0 {
		return fmt.Errorf("ruta vacía")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	parent := m.root
	for _, seg := range segments[:len(segments)-1] {
		child, ok := parent[seg].(map[string]interface{})
		if !ok {
			return nil
		}
		parent = child
	}
	delete(parent, segments[len(segments)-1])
	return nil
}

// lookup navega el árbol; el llamador debe sostener el lock
func (m *Memory) lookup(path string) (interface{}, bool) {
	var node interface{} = m.root
	for _, seg := range splitPath(path) {
		branch, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		node, ok = branch[seg]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

func (m *Memory) setLocked(path string, node interface{}) error {
	segments := splitPath(path)
	if len(segments) == 0 {
		return fmt.Errorf("ruta vacía")
	}

	parent := m.root
	for _, seg := range segments[:len(segments)-1] {
		child, ok := parent[seg].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			parent[seg] = child
		}
		parent = child
	}
	parent[segments[len(segments)-1]] = node
	return nil
}

// toJSONValue normaliza cualquier valor a su forma JSON genérica para que
// las lecturas posteriores decodifiquen igual que desde el backend real
func toJSONValue(value interface{}) (interface{}, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("error al serializar el valor: %w", err)
	}
	var node interface{}
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("error al normalizar el valor: %w", err)
	}
	return node, nil
}

func splitPath(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return segments
}
