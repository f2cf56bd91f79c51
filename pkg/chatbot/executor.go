package chatbot

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/orozcodev/comedor-pos/pkg/domain"
	"github.com/orozcodev/comedor-pos/pkg/gateway"
	"github.com/orozcodev/comedor-pos/pkg/logger"
)

// Rutas de las colecciones que consulta el motor
const (
	PathIntents  = "chatbot_intents"
	PathClients  = "clients"
	PathAccounts = "accounts_receivable"
	PathSales    = "sales"
	PathProducts = "products"
)

// ErrUnknownAction es el mensaje para una acción no registrada; indica una
// intención mal configurada, no una falla del motor
const ErrUnknownAction = "Acción no reconocida"

// topDebtorsLimit acota el resultado de get_top_debtors
const topDebtorsLimit = 5

// salesTodayLimit acota las ventas incluidas en el resumen del día
const salesTodayLimit = 5

type actionHandler func(ctx context.Context, message string) ActionResult

// ActionExecutor despacha los nombres de acción de las intenciones hacia
// consultas de solo lectura contra el Data Gateway. Ninguna falla escapa
// como error de Go: todas se degradan a un ActionResult con Err.
type ActionExecutor struct {
	gateway  gateway.Gateway
	logger   logger.Logger
	handlers map[string]actionHandler
	now      func() time.Time
}

// NewActionExecutor crea el ejecutor con su tabla fija de acciones
func NewActionExecutor(gw gateway.Gateway, log logger.Logger) *ActionExecutor {
	e := &ActionExecutor{
		gateway: gw,
		logger:  log,
		now:     time.Now,
	}
	e.handlers = map[string]actionHandler{
		"search_client":   e.searchClient,
		"get_debtors":     e.getDebtors,
		"get_sales":       e.getSales,
		"get_products":    e.getProducts,
		"get_client_debt": e.getClientDebt,
		"get_sales_today": e.getSalesToday,
		"get_top_debtors": e.getTopDebtors,
		"search_product":  e.searchProduct,
	}
	return e
}

// Execute ejecuta la acción indicada sobre el mensaje del usuario
func (e *ActionExecutor) Execute(ctx context.Context, action, message string) ActionResult {
	handler, ok := e.handlers[action]
	if !ok {
		e.logger.Warn("Acción no registrada en el ejecutor", "action", action)
		return ActionResult{Err: ErrUnknownAction}
	}
	return handler(ctx, message)
}

// Palabras vacías comunes del español que se descartan al extraer el
// término de búsqueda de un mensaje
var commonStopWords = []string{
	"el", "la", "los", "las", "un", "una", "unos", "unas",
	"de", "del", "al", "a", "en", "por", "para", "con",
	"que", "qué", "es", "y", "o", "u", "me", "mi", "su", "se",
}

var searchClientStopWords = []string{
	"buscar", "busca", "busco", "encontrar", "encuentra", "cliente",
	"clientes", "dame", "muestra", "mostrar", "ver", "informacion", "información",
}

var clientDebtStopWords = []string{
	"cuánto", "cuanto", "debe", "deuda", "deudas", "cliente",
	"saldo", "tiene", "cuenta", "pendiente",
}

var searchProductStopWords = []string{
	"buscar", "busca", "busco", "producto", "productos", "precio",
	"cuánto", "cuanto", "cuesta", "vale", "mostrar", "ver", "dame",
}

// extractSearchTerm elimina las palabras de la acción y los artículos
// comunes del mensaje, colapsando los espacios. Un resultado vacío
// significa que no se pudo derivar un término de búsqueda.
func extractSearchTerm(message string, actionStopWords []string) string {
	stop := make(map[string]struct{}, len(commonStopWords)+len(actionStopWords))
	for _, w := range commonStopWords {
		stop[w] = struct{}{}
	}
	for _, w := range actionStopWords {
		stop[w] = struct{}{}
	}

	var kept []string
	for _, token := range strings.Fields(strings.ToLower(strings.TrimSpace(message))) {
		if _, skip := stop[token]; skip {
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

func (e *ActionExecutor) searchClient(ctx context.Context, message string) ActionResult {
	term := extractSearchTerm(message, searchClientStopWords)
	if term == "" {
		return ActionResult{Err: "No pude identificar a qué cliente te refieres. Intenta con el nombre o el código, por ejemplo: buscar cliente juan"}
	}

	var clients map[string]domain.Client
	if _, err := e.gateway.Get(ctx, PathClients, &clients); err != nil {
		e.logger.Error("Error al consultar los clientes", "error", err, "term", term)
		return ActionResult{Err: "No pude consultar los clientes en este momento."}
	}

	matches := make([]domain.Client, 0)
	for id, client := range clients {
		if client.ID == "" {
			client.ID = id
		}
		if strings.Contains(strings.ToLower(client.ID), term) ||
			strings.Contains(strings.ToLower(client.Name), term) {
			matches = append(matches, client)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Name != matches[j].Name {
			return matches[i].Name < matches[j].Name
		}
		return matches[i].ID < matches[j].ID
	})

	return ActionResult{Data: &QueryResult{Kind: KindClients, Clients: matches}}
}

func (e *ActionExecutor) getDebtors(ctx context.Context, message string) ActionResult {
	var ledgers map[string]domain.ClientLedger
	if _, err := e.gateway.Get(ctx, PathAccounts, &ledgers); err != nil {
		e.logger.Error("Error al consultar cuentas por cobrar", "error", err)
		return ActionResult{Err: "No pude consultar las cuentas por cobrar en este momento."}
	}

	debtors := make([]domain.Debtor, 0)
	for clientID, ledger := range ledgers {
		name, total, pending, _ := summarizeLedger(clientID, ledger)
		if total > 0 {
			debtors = append(debtors, domain.Debtor{
				ClientID:        clientID,
				ClientName:      name,
				TotalDebt:       total,
				PendingInvoices: pending,
			})
		}
	}
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].TotalDebt != debtors[j].TotalDebt {
			return debtors[i].TotalDebt > debtors[j].TotalDebt
		}
		return debtors[i].ClientID < debtors[j].ClientID
	})

	return ActionResult{Data: &QueryResult{Kind: KindDebtors, Debtors: debtors}}
}

func (e *ActionExecutor) getTopDebtors(ctx context.Context, message string) ActionResult {
	result := e.getDebtors(ctx, message)
	if result.Err != "" {
		return result
	}
	if len(result.Data.Debtors) > topDebtorsLimit {
		result.Data.Debtors = result.Data.Debtors[:topDebtorsLimit]
	}
	return result
}

func (e *ActionExecutor) getClientDebt(ctx context.Context, message string) ActionResult {
	term := extractSearchTerm(message, clientDebtStopWords)
	if term == "" {
		return ActionResult{Err: "Indícame el código del cliente, por ejemplo: cuánto debe cliente123"}
	}
	clientID := strings.Fields(term)[0]

	var ledger domain.ClientLedger
	found, err := e.gateway.Get(ctx, PathAccounts+"/"+clientID, &ledger)
	if err != nil {
		e.logger.Error("Error al consultar la deuda del cliente", "error", err, "client_id", clientID)
		return ActionResult{Err: "No pude consultar la deuda de ese cliente en este momento."}
	}

	// Un cliente sin registro en el libro es una deuda en cero, no un error
	debt := &domain.ClientDebt{
		ClientID:        clientID,
		ClientName:      clientID,
		PendingInvoices: []domain.LedgerEntry{},
	}
	if found {
		name, total, _, pending := summarizeLedger(clientID, ledger)
		debt.ClientName = name
		debt.TotalDebt = total
		debt.PendingInvoices = pending
	}

	return ActionResult{Data: &QueryResult{Kind: KindClientDebt, ClientDebt: debt}}
}

// summarizeLedger suma los cargos pendientes de un cliente. El nombre cae
// al propio id del cliente cuando ningún cargo trae nombre visible. Los
// cargos se recorren en orden de clave para un resultado estable.
func summarizeLedger(clientID string, ledger domain.ClientLedger) (name string, total float64, count int, pending []domain.LedgerEntry) {
	name = clientID
	pending = []domain.LedgerEntry{}

	keys := make([]string, 0, len(ledger.Entries))
	for key := range ledger.Entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		entry := ledger.Entries[key]
		if entry.ClientName != "" && name == clientID {
			name = entry.ClientName
		}
		if entry.Status != domain.EntryStatusPending {
			continue
		}
		if entry.ID == "" {
			entry.ID = key
		}
		total += entry.Amount
		count++
		pending = append(pending, entry)
	}
	return name, total, count, pending
}

func (e *ActionExecutor) getSales(ctx context.Context, message string) ActionResult {
	sales, err := e.loadSales(ctx)
	if err != nil {
		e.logger.Error("Error al consultar las ventas", "error", err)
		return ActionResult{Err: "No pude consultar las ventas en este momento."}
	}
	return ActionResult{Data: &QueryResult{Kind: KindSales, Sales: sales}}
}

func (e *ActionExecutor) getSalesToday(ctx context.Context, message string) ActionResult {
	sales, err := e.loadSales(ctx)
	if err != nil {
		e.logger.Error("Error al consultar las ventas de hoy", "error", err)
		return ActionResult{Err: "No pude consultar las ventas de hoy en este momento."}
	}

	today := e.now().Format("2006-01-02")
	summary := &domain.SalesSummary{Sales: []domain.Sale{}}
	for _, sale := range sales {
		if !strings.HasPrefix(sale.Date, today) {
			continue
		}
		summary.Count++
		summary.Total += sale.Total
		if len(summary.Sales) < salesTodayLimit {
			summary.Sales = append(summary.Sales, sale)
		}
	}

	return ActionResult{Data: &QueryResult{Kind: KindSalesSummary, SalesSummary: summary}}
}

func (e *ActionExecutor) loadSales(ctx context.Context) ([]domain.Sale, error) {
	var stored map[string]domain.Sale
	if _, err := e.gateway.Get(ctx, PathSales, &stored); err != nil {
		return nil, err
	}

	sales := make([]domain.Sale, 0, len(stored))
	for id, sale := range stored {
		if sale.ID == "" {
			sale.ID = id
		}
		sales = append(sales, sale)
	}
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Date != sales[j].Date {
			return sales[i].Date > sales[j].Date
		}
		return sales[i].ID < sales[j].ID
	})
	return sales, nil
}

func (e *ActionExecutor) getProducts(ctx context.Context, message string) ActionResult {
	var stored map[string]domain.Product
	if _, err := e.gateway.Get(ctx, PathProducts, &stored); err != nil {
		e.logger.Error("Error al consultar los productos", "error", err)
		return ActionResult{Err: "No pude consultar los productos en este momento."}
	}

	products := make([]domain.Product, 0, len(stored))
	for id, product := range stored {
		if product.ID == "" {
			product.ID = id
		}
		products = append(products, product)
	}
	sortProducts(products)

	return ActionResult{Data: &QueryResult{Kind: KindProducts, Products: products}}
}

func (e *ActionExecutor) searchProduct(ctx context.Context, message string) ActionResult {
	term := extractSearchTerm(message, searchProductStopWords)
	if term == "" {
		return ActionResult{Err: "No pude identificar qué producto buscas. Intenta con el nombre, por ejemplo: buscar producto almuerzo"}
	}

	var stored map[string]domain.Product
	if _, err := e.gateway.Get(ctx, PathProducts, &stored); err != nil {
		e.logger.Error("Error al buscar productos", "error", err, "term", term)
		return ActionResult{Err: "No pude buscar productos en este momento."}
	}

	matches := make([]domain.Product, 0)
	for id, product := range stored {
		if product.ID == "" {
			product.ID = id
		}
		if strings.Contains(strings.ToLower(product.ID), term) ||
			strings.Contains(strings.ToLower(product.Name), term) {
			matches = append(matches, product)
		}
	}
	sortProducts(matches)

	return ActionResult{Data: &QueryResult{Kind: KindProducts, Products: matches}}
}

func sortProducts(products []domain.Product) {
	sort.Slice(products, func(i, j int) bool {
		if products[i].Name != products[j].Name {
			return products[i].Name < products[j].Name
		}
		return products[i].ID < products[j].ID
	})
}
