package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres implementa el Data Gateway sobre una tabla de documentos jsonb.
// Cada ruta es una fila; un subárbol se reconstruye con un LIKE sobre el
// prefijo de ruta.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgresPool crea el pool de conexiones a partir del entorno.
// DATABASE_URL tiene prioridad sobre las variables individuales.
func NewPostgresPool(ctx context.Context) (*pgxpool.Pool, error) {
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		connString = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "comedor_pos"),
			getEnv("DB_SSL_MODE", "disable"),
		)
	}

	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("error al analizar la configuración del pool: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1
	config.MaxConnLifetime = 1 * time.Hour
	config.MaxConnIdleTime = 30 * time.Minute
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error al crear el pool de conexiones: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error al verificar la conexión con la base de datos: %w", err)
	}

	return pool, nil
}

// NewPostgres crea un gateway sobre un pool existente
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Get lee la fila exacta de la ruta; si no existe intenta reconstruir el
// subárbol con las filas descendientes, y como último recurso desciende
// dentro del documento de la fila ancestro más cercana. Las tres vías
// cubren las mismas rutas que resuelven los otros backends.
func (p *Postgres) Get(ctx context.Context, path string, dest interface{}) (bool, error) {
	path = normalizePath(path)
	if path == "" {
		return false, errors.New("ruta vacía")
	}

	var raw []byte
	err := p.pool.QueryRow(ctx, "SELECT value FROM documents WHERE path = $1", path).Scan(&raw)
	if err == nil {
		if err := json.Unmarshal(raw, dest); err != nil {
			return false, fmt.Errorf("error al decodificar el documento %s: %w", path, err)
		}
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error al consultar el documento %s: %w", path, err)
	}

	found, err := p.getSubtree(ctx, path, dest)
	if err != nil || found {
		return found, err
	}
	return p.getFromAncestor(ctx, path, dest)
}

// getFromAncestor busca la fila ancestro más cercana a la ruta y navega
// dentro de su documento con los segmentos restantes. Un Set sobre un
// ancestro borra las filas descendientes, así que el ancestro más largo
// es el dueño del subárbol completo.
func (p *Postgres) getFromAncestor(ctx context.Context, path string, dest interface{}) (bool, error) {
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i > 0; i-- {
		ancestor := strings.Join(segments[:i], "/")

		var raw []byte
		err := p.pool.QueryRow(ctx, "SELECT value FROM documents WHERE path = $1", ancestor).Scan(&raw)
		if errors.Is(err, pgx.ErrNoRows) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("error al consultar el documento %s: %w", ancestor, err)
		}

		var doc interface{}
		if err := json.Unmarshal(raw, &doc); err != nil {
			return false, fmt.Errorf("error al decodificar el documento %s: %w", ancestor, err)
		}

		node, ok := descend(doc, segments[i:])
		if !ok {
			return false, nil
		}

		encoded, err := json.Marshal(node)
		if err != nil {
			return false, fmt.Errorf("error al serializar el nodo %s: %w", path, err)
		}
		if err := json.Unmarshal(encoded, dest); err != nil {
			return false, fmt.Errorf("error al decodificar el nodo %s: %w", path, err)
		}
		return true, nil
	}
	return false, nil
}

// descend navega un documento JSON genérico siguiendo los segmentos dados
func descend(node interface{}, segments []string) (interface{}, bool) {
	for _, seg := range segments {
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

// getSubtree arma un objeto anidado con todas las filas bajo el prefijo
func (p *Postgres) getSubtree(ctx context.Context, path string, dest interface{}) (bool, error) {
	rows, err := p.pool.Query(ctx,
		"SELECT path, value FROM documents WHERE path LIKE $1", path+"/%")
	if err != nil {
		return false, fmt.Errorf("error al consultar el subárbol %s: %w", path, err)
	}
	defer rows.Close()

	tree := make(map[string]interface{})
	found := false
	for rows.Next() {
		var rowPath string
		var raw []byte
		if err := rows.Scan(&rowPath, &raw); err != nil {
			return false, fmt.Errorf("error al leer el subárbol %s: %w", path, err)
		}

		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			return false, fmt.Errorf("error al decodificar %s: %w", rowPath, err)
		}

		insertAt(tree, strings.Split(strings.TrimPrefix(rowPath, path+"/"), "/"), value)
		found = true
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("error al recorrer el subárbol %s: %w", path, err)
	}
	if !found {
		return false, nil
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		return false, fmt.Errorf("error al serializar el subárbol %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("error al decodificar el subárbol %s: %w", path, err)
	}
	return true, nil
}

// insertAt cuelga value en el árbol siguiendo los segmentos de la ruta
func insertAt(tree map[string]interface{}, segments []string, value interface{}) {
	for i, seg := range segments {
		if i == len(segments)-1 {
			tree[seg] = value
			return
		}
		child, ok := tree[seg].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			tree[seg] = child
		}
		tree = child
	}
}

// Set reemplaza la ruta y todo su subárbol por el valor dado
func (p *Postgres) Set(ctx context.Context, path string, value interface{}) error {
	path = normalizePath(path)
	if path == "" {
		return errors.New("ruta vacía")
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error al serializar el valor para %s: %w", path, err)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := setInTx(ctx, tx, path, raw); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func setInTx(ctx context.Context, tx pgx.Tx, path string, raw []byte) error {
	// Un Set reemplaza el subárbol completo, igual que en el backend de
	// documentos original
	if _, err := tx.Exec(ctx,
		"DELETE FROM documents WHERE path = $1 OR path LIKE $2", path, path+"/%"); err != nil {
		return fmt.Errorf("error al limpiar el subárbol %s: %w", path, err)
	}
	if _, err := tx.Exec(ctx,
		"INSERT INTO documents (path, value, updated_at) VALUES ($1, $2, now())", path, raw); err != nil {
		return fmt.Errorf("error al escribir el documento %s: %w", path, err)
	}
	return nil
}

// Push agrega value bajo path con una clave generada
func (p *Postgres) Push(ctx context.Context, path string, value interface{}) (string, error) {
	id := uuid.New().String()
	if err := p.Set(ctx, normalizePath(path)+"/"+id, value); err != nil {
		return "", err
	}
	return id, nil
}

// Update aplica varias escrituras en una sola transacción
func (p *Postgres) Update(ctx context.Context, values map[string]interface{}) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error al iniciar la transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	for path, value := range values {
		path = normalizePath(path)
		if path == "" {
			return errors.New("ruta vacía")
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("error al serializar el valor para %s: %w", path, err)
		}
		if err := setInTx(ctx, tx, path, raw); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// Remove elimina la ruta y todo su subárbol
func (p *Postgres) Remove(ctx context.Context, path string) error {
	path = normalizePath(path)
	if path == "" {
		return errors.New("ruta vacía")
	}

	if _, err := p.pool.Exec(ctx,
		"DELETE FROM documents WHERE path = $1 OR path LIKE $2", path, path+"/%"); err != nil {
		return fmt.Errorf("error al eliminar el documento %s: %w", path, err)
	}
	return nil
}

func normalizePath(path string) string {
	return strings.Trim(path, "/")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
