package chatbot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orozcodev/comedor-pos/pkg/domain"
)

func TestGenerateResponseErrorHasPrecedence(t *testing.T) {
	result := ActionResult{
		Data: &QueryResult{Kind: KindClients, Clients: []domain.Client{{Name: "Juan"}}},
		Err:  "No pude consultar los clientes en este momento.",
	}

	got := GenerateResponse("Encontré {{count}} cliente(s):\n\n{{results}}", result, "buscar cliente juan")
	require.Equal(t, "❌ No pude consultar los clientes en este momento.", got)
}

func TestGenerateResponseNilDataReturnsTemplate(t *testing.T) {
	got := GenerateResponse("Hola {{nombre}}", ActionResult{}, "hola")
	require.Equal(t, "Hola {{nombre}}", got)
}

func TestGenerateResponseEmptyList(t *testing.T) {
	result := ActionResult{Data: &QueryResult{Kind: KindClients, Clients: []domain.Client{}}}

	got := GenerateResponse("Encontré {{count}} cliente(s):\n\n{{results}}", result, "buscar cliente zz")
	require.Equal(t, "Encontré 0 cliente(s):\n\nNo se encontraron resultados.", got)
	require.NotContains(t, got, "{{")
}

func TestGenerateResponseClientList(t *testing.T) {
	result := ActionResult{Data: &QueryResult{Kind: KindClients, Clients: []domain.Client{
		{ID: "cliente456", Name: "Juan Pérez", Phone: "5551-0002"},
	}}}

	got := GenerateResponse("Encontré {{count}} cliente(s):\n\n{{results}}", result, "buscar cliente juan")
	require.Contains(t, got, "Encontré 1 cliente(s):")
	require.Contains(t, got, "1. Juan Pérez")
	require.Contains(t, got, "Código: cliente456")
	require.Contains(t, got, "Teléfono: 5551-0002")
}

func TestGenerateResponseDebtorList(t *testing.T) {
	result := ActionResult{Data: &QueryResult{Kind: KindDebtors, Debtors: []domain.Debtor{
		{ClientID: "cliente456", ClientName: "Juan Pérez", TotalDebt: 120, PendingInvoices: 1},
		{ClientID: "cliente123", ClientName: "María López", TotalDebt: 80, PendingInvoices: 2},
	}}}

	got := GenerateResponse("📋 Clientes con deuda pendiente ({{count}}):\n\n{{results}}", result, "mostrar deudores")
	require.Contains(t, got, "(2):")
	require.Contains(t, got, "1. Juan Pérez")
	require.Contains(t, got, "Deuda: $120.00")
	require.Contains(t, got, "2. María López")
	require.Contains(t, got, "Facturas pendientes: 2")
}

func TestGenerateResponseClientDebt(t *testing.T) {
	result := ActionResult{Data: &QueryResult{Kind: KindClientDebt, ClientDebt: &domain.ClientDebt{
		ClientID:   "cliente123",
		ClientName: "María López",
		TotalDebt:  80,
		PendingInvoices: []domain.LedgerEntry{
			{Amount: 50, Status: domain.EntryStatusPending},
			{Amount: 30, Status: domain.EntryStatusPending},
		},
	}}}

	template := "El cliente {{clientName}} ({{clientId}}) debe ${{totalDebt}} en {{pendingInvoices}} factura(s) pendiente(s)."
	got := GenerateResponse(template, result, "cuánto debe cliente123")
	require.Equal(t, "El cliente María López (cliente123) debe $80.00 en 2 factura(s) pendiente(s).", got)
}

func TestGenerateResponseZeroDebt(t *testing.T) {
	result := ActionResult{Data: &QueryResult{Kind: KindClientDebt, ClientDebt: &domain.ClientDebt{
		ClientID:        "cliente999",
		ClientName:      "cliente999",
		PendingInvoices: []domain.LedgerEntry{},
	}}}

	template := "El cliente {{clientName}} ({{clientId}}) debe ${{totalDebt}} en {{pendingInvoices}} factura(s) pendiente(s)."
	got := GenerateResponse(template, result, "cuánto debe cliente999")
	require.Equal(t, "El cliente cliente999 (cliente999) debe $0.00 en 0 factura(s) pendiente(s).", got)
}

func TestGenerateResponseSalesSummary(t *testing.T) {
	result := ActionResult{Data: &QueryResult{Kind: KindSalesSummary, SalesSummary: &domain.SalesSummary{
		Count: 2,
		Total: 55.25,
		Sales: []domain.Sale{
			{ID: "s2", Correlative: "V-002", Total: 20, Date: "2026-08-30"},
			{ID: "s3", Correlative: "V-003", Total: 35.25, Date: "2026-08-30"},
		},
	}}}

	template := "📈 Hoy se registraron {{count}} venta(s) por un total de ${{total}}.\n\n{{results}}"
	got := GenerateResponse(template, result, "ventas de hoy")
	require.Contains(t, got, "Hoy se registraron 2 venta(s) por un total de $55.25.")
	require.Contains(t, got, "1. Venta V-002")
	require.Contains(t, got, "Fecha: 30/08/2026")
}

func TestGenerateResponseSalesSummaryEmpty(t *testing.T) {
	result := ActionResult{Data: &QueryResult{Kind: KindSalesSummary, SalesSummary: &domain.SalesSummary{
		Sales: []domain.Sale{},
	}}}

	template := "📈 Hoy se registraron {{count}} venta(s) por un total de ${{total}}.\n\n{{results}}"
	got := GenerateResponse(template, result, "ventas de hoy")
	require.Contains(t, got, "0 venta(s) por un total de $0.00")
	require.Contains(t, got, NoResultsMessage)
}

func TestGenerateResponseSaleWithoutCorrelativeUsesID(t *testing.T) {
	result := ActionResult{Data: &QueryResult{Kind: KindSales, Sales: []domain.Sale{
		{ID: "s9", Total: 12, Date: "fecha-mala"},
	}}}

	got := GenerateResponse("{{results}}", result, "mostrar ventas")
	require.Contains(t, got, "1. Venta s9")
	require.Contains(t, got, "Fecha: N/A")
}

func TestRenderSubstitutionsLeavesUnknownPlaceholders(t *testing.T) {
	got := renderSubstitutions("{{count}} y {{otro}}", map[string]string{"count": "3"})
	require.Equal(t, "3 y {{otro}}", got)
}

func TestRenderSubstitutionsSinglePass(t *testing.T) {
	// Un valor que contiene un marcador no se vuelve a sustituir
	got := renderSubstitutions("{{results}}", map[string]string{
		"results": "{{count}}",
		"count":   "99",
	})
	require.Equal(t, "{{count}}", got)
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "30/08/2026", formatDate("2026-08-30"))
	require.Equal(t, "30/08/2026", formatDate("2026-08-30T14:05:00Z"))
	require.Equal(t, "N/A", formatDate("hoy"))
	require.Equal(t, "N/A", formatDate(""))
}
