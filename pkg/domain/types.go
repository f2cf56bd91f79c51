package domain

// Client representa un cliente del restaurante
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Product representa un producto del catálogo
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

// Sale representa una venta registrada
type Sale struct {
	ID          string  `json:"id"`
	Correlative string  `json:"correlative,omitempty"`
	Total       float64 `json:"total"`
	Date        string  `json:"date,omitempty"`
}

// LedgerEntry representa un cargo en la cuenta por cobrar de un cliente.
// Status es "pending" o "paid".
type LedgerEntry struct {
	ID          string  `json:"id,omitempty"`
	ClientName  string  `json:"clientName,omitempty"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	Date        string  `json:"date,omitempty"`
	Description string  `json:"description,omitempty"`
}

// EntryStatusPending marca un cargo aún no pagado
const EntryStatusPending = "pending"

// ClientLedger agrupa los cargos de un cliente en cuentas por cobrar,
// indexados por id de cargo
type ClientLedger struct {
	Entries map[string]LedgerEntry `json:"entries,omitempty"`
}

// Debtor es el agregado de deuda de un cliente
type Debtor struct {
	ClientID        string  `json:"clientId"`
	ClientName      string  `json:"clientName"`
	TotalDebt       float64 `json:"totalDebt"`
	PendingInvoices int     `json:"pendingInvoices"`
}

// ClientDebt es el detalle de deuda de un cliente específico.
// Una deuda en cero con lista vacía es una respuesta válida, no un error.
type ClientDebt struct {
	ClientID        string        `json:"clientId"`
	ClientName      string        `json:"clientName"`
	TotalDebt       float64       `json:"totalDebt"`
	PendingInvoices []LedgerEntry `json:"pendingInvoices"`
}

// SalesSummary resume las ventas de un día
type SalesSummary struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
	Sales []Sale  `json:"sales"`
}
