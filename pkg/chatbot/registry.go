package chatbot

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/orozcodev/comedor-pos/pkg/gateway"
	"github.com/orozcodev/comedor-pos/pkg/logger"
)

// IntentRegistry carga y persiste las intenciones como un mapa plano
// indexado por id bajo PathIntents. El motor nunca las muta; la edición
// es responsabilidad del panel de administración.
type IntentRegistry struct {
	gateway gateway.Gateway
	logger  logger.Logger
}

// NewIntentRegistry crea un registro sobre el gateway dado
func NewIntentRegistry(gw gateway.Gateway, log logger.Logger) *IntentRegistry {
	return &IntentRegistry{gateway: gw, logger: log}
}

// LoadIntents lee el mapa de intenciones. Cuando la colección no existe
// retorna una lista vacía sin sembrar nada: la siembra de las intenciones
// por defecto es una decisión explícita del código de arranque.
func (r *IntentRegistry) LoadIntents(ctx context.Context) ([]Intent, error) {
	var stored map[string]Intent
	found, err := r.gateway.Get(ctx, PathIntents, &stored)
	if err != nil {
		return nil, fmt.Errorf("error al cargar las intenciones: %w", err)
	}
	if !found || len(stored) == 0 {
		return []Intent{}, nil
	}

	intents := make([]Intent, 0, len(stored))
	for id, intent := range stored {
		if intent.ID == "" {
			intent.ID = id
		}
		intents = append(intents, intent)
	}

	// El orden del arreglo decide el desempate del matcher; se ordena por
	// id para que sea estable entre cargas
	sort.Slice(intents, func(i, j int) bool {
		return intents[i].ID < intents[j].ID
	})

	return intents, nil
}

// SaveIntents sobrescribe el mapa completo de intenciones. Última
// escritura gana; no hay fusión ni control de concurrencia optimista.
func (r *IntentRegistry) SaveIntents(ctx context.Context, intents []Intent) error {
	values := make(map[string]Intent, len(intents))
	for _, intent := range intents {
		if intent.ID == "" {
			intent.ID = uuid.New().String()
		}
		values[intent.ID] = intent
	}

	if err := r.gateway.Set(ctx, PathIntents, values); err != nil {
		return fmt.Errorf("error al guardar las intenciones: %w", err)
	}

	r.logger.Info("Intenciones guardadas", "count", len(values))
	return nil
}

// SeedDefaultIntents escribe el conjunto de intenciones por defecto y lo
// retorna. Pensado para el arranque cuando LoadIntents viene vacío.
func (r *IntentRegistry) SeedDefaultIntents(ctx context.Context) ([]Intent, error) {
	defaults := DefaultIntents()
	if err := r.SaveIntents(ctx, defaults); err != nil {
		return nil, err
	}
	r.logger.Info("Intenciones por defecto sembradas", "count", len(defaults))
	return defaults, nil
}

// DefaultIntents retorna el conjunto incorporado de intenciones que cubre
// las consultas básicas del negocio. El orden por id importa: es el orden
// de desempate del matcher.
func DefaultIntents() []Intent {
	now := time.Now().UTC().Format(time.RFC3339)
	intents := []Intent{
		{
			ID:               "intent_01",
			Name:             "search_client",
			Description:      "Buscar clientes por nombre o código",
			Keywords:         []string{"buscar cliente", "cliente"},
			Action:           "search_client",
			ResponseTemplate: "Encontré {{count}} cliente(s):\n\n{{results}}",
			Enabled:          true,
			Examples:         []string{"buscar cliente juan", "cliente maria"},
		},
		{
			ID:               "intent_02",
			Name:             "get_debtors",
			Description:      "Listar clientes con deuda pendiente",
			Keywords:         []string{"deudores", "deudas", "morosos"},
			Action:           "get_debtors",
			ResponseTemplate: "📋 Clientes con deuda pendiente ({{count}}):\n\n{{results}}",
			Enabled:          true,
			Examples:         []string{"mostrar deudores", "quiénes tienen deudas"},
		},
		{
			ID:               "intent_03",
			Name:             "get_client_debt",
			Description:      "Consultar la deuda de un cliente específico",
			Keywords:         []string{"cuánto debe", "cuanto debe", "debe", "deuda de"},
			Action:           "get_client_debt",
			ResponseTemplate: "El cliente {{clientName}} ({{clientId}}) debe ${{totalDebt}} en {{pendingInvoices}} factura(s) pendiente(s).",
			Enabled:          true,
			Examples:         []string{"cuánto debe cliente123"},
		},
		{
			ID:               "intent_04",
			Name:             "get_sales_today",
			Description:      "Resumen de las ventas del día",
			Keywords:         []string{"ventas hoy", "ventas de hoy", "hoy"},
			Action:           "get_sales_today",
			ResponseTemplate: "📈 Hoy se registraron {{count}} venta(s) por un total de ${{total}}.\n\n{{results}}",
			Enabled:          true,
			Examples:         []string{"ventas de hoy", "cuántas ventas hubo hoy"},
		},
		{
			ID:               "intent_05",
			Name:             "get_sales",
			Description:      "Listar las ventas registradas",
			Keywords:         []string{"ventas", "mostrar ventas"},
			Action:           "get_sales",
			ResponseTemplate: "Ventas registradas ({{count}}):\n\n{{results}}",
			Enabled:          true,
			Examples:         []string{"mostrar ventas"},
		},
		{
			ID:               "intent_06",
			Name:             "get_products",
			Description:      "Listar los productos del menú",
			Keywords:         []string{"productos", "menú", "menu", "inventario"},
			Action:           "get_products",
			ResponseTemplate: "🍽️ Productos del menú ({{count}}):\n\n{{results}}",
			Enabled:          true,
			Examples:         []string{"mostrar productos", "ver el menú"},
		},
		{
			ID:               "intent_07",
			Name:             "search_product",
			Description:      "Buscar productos por nombre",
			Keywords:         []string{"buscar producto", "precio de", "cuánto cuesta", "cuanto cuesta"},
			Action:           "search_product",
			ResponseTemplate: "Encontré {{count}} producto(s):\n\n{{results}}",
			Enabled:          true,
			Examples:         []string{"buscar producto almuerzo", "precio de la soda"},
		},
		{
			ID:               "intent_08",
			Name:             "get_top_debtors",
			Description:      "Los cinco clientes con mayor deuda",
			Keywords:         []string{"top deudores", "mayores deudores", "principales deudores"},
			Action:           "get_top_debtors",
			ResponseTemplate: "🔝 Principales deudores:\n\n{{results}}",
			Enabled:          true,
			Examples:         []string{"top deudores"},
		},
	}

	for i := range intents {
		intents[i].CreatedAt = now
		intents[i].UpdatedAt = now
	}
	return intents
}
