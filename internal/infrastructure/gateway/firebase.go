package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// FirebaseConfig contiene la configuración del backend de Firebase
// Realtime Database
type FirebaseConfig struct {
	DatabaseURL string
	AuthToken   string
	Timeout     time.Duration
}

// NewFirebaseConfigFromEnv crea la configuración a partir del entorno
func NewFirebaseConfigFromEnv() (*FirebaseConfig, error) {
	databaseURL := os.Getenv("FIREBASE_DATABASE_URL")
	if databaseURL == "" {
		return nil, errors.New("FIREBASE_DATABASE_URL no está configurada")
	}
	return &FirebaseConfig{
		DatabaseURL: strings.TrimRight(databaseURL, "/"),
		AuthToken:   os.Getenv("FIREBASE_AUTH_TOKEN"),
		Timeout:     10 * time.Second,
	}, nil
}

// Firebase implementa el Data Gateway contra la API REST de Firebase
// Realtime Database
type Firebase struct {
	config *FirebaseConfig
	client *http.Client
}

// NewFirebase crea un gateway contra Firebase con la configuración dada
func NewFirebase(config *FirebaseConfig) *Firebase {
	return &Firebase{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Get lee el nodo en path; un cuerpo "null" significa que no existe
func (f *Firebase) Get(ctx context.Context, path string, dest interface{}) (bool, error) {
	body, err := f.request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}
	if isNull(body) {
		return false, nil
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return false, fmt.Errorf("error al decodificar el documento %s: %w", path, err)
	}
	return true, nil
}

// Set escribe value en path reemplazando el subárbol existente
func (f *Firebase) Set(ctx context.Context, path string, value interface{}) error {
	_, err := f.request(ctx, http.MethodPut, path, value)
	return err
}

// Push agrega value bajo path; Firebase genera y retorna la clave
func (f *Firebase) Push(ctx context.Context, path string, value interface{}) (string, error) {
	body, err := f.request(ctx, http.MethodPost, path, value)
	if err != nil {
		return "", err
	}

	var result struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("error al decodificar la clave generada: %w", err)
	}
	return result.Name, nil
}

// Update aplica varias escrituras como un PATCH multi-ruta sobre la raíz
func (f *Firebase) Update(ctx context.Context, values map[string]interface{}) error {
	_, err := f.request(ctx, http.MethodPatch, "", values)
	return err
}

// Remove elimina el nodo en path y todo su subárbol
func (f *Firebase) Remove(ctx context.Context, path string) error {
	_, err := f.request(ctx, http.MethodDelete, path, nil)
	return err
}

func (f *Firebase) request(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("error al serializar el valor para %s: %w", path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, f.endpoint(path), body)
	if err != nil {
		return nil, fmt.Errorf("error al crear la solicitud para %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error al llamar a Firebase en %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error al leer la respuesta de %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("firebase respondió %d para %s: %s", resp.StatusCode, path, raw)
	}
	return raw, nil
}

// endpoint arma la URL REST: <base>/<ruta>.json más el token de auth
func (f *Firebase) endpoint(path string) string {
	endpoint := f.config.DatabaseURL + "/" + strings.Trim(path, "/") + ".json"
	if f.config.AuthToken != "" {
		endpoint += "?auth=" + url.QueryEscape(f.config.AuthToken)
	}
	return endpoint
}

func isNull(body []byte) bool {
	return len(bytes.TrimSpace(body)) == 0 || string(bytes.TrimSpace(body)) == "null"
}
