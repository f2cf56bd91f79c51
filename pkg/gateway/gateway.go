package gateway

import (
	"context"
)

// Gateway define el contrato mínimo contra el almacén de documentos
// clave-valor. Las rutas son jerárquicas separadas por "/", al estilo de
// una base de datos de documentos en tiempo real.
type Gateway interface {
	// Get decodifica en dest el documento almacenado en path. Retorna
	// false cuando la ruta no existe; en ese caso dest no se modifica.
	Get(ctx context.Context, path string, dest interface{}) (bool, error)

	// Set escribe value en path, reemplazando todo el subárbol
	Set(ctx context.Context, path string, value interface{}) error

	// Push agrega value bajo path con una clave generada y la retorna
	Push(ctx context.Context, path string, value interface{}) (string, error)

	// Update aplica varias escrituras ruta→valor en una sola operación
	Update(ctx context.Context, values map[string]interface{}) error

	// Remove elimina el documento en path y su subárbol
	Remove(ctx context.Context, path string) error
}
