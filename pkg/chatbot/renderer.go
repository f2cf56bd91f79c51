package chatbot

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/orozcodev/comedor-pos/pkg/domain"
)

// NoResultsMessage es la frase fija para listas vacías
const NoResultsMessage = "No se encontraron resultados."

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// GenerateResponse rellena la plantilla de una intención con el resultado
// de su acción. Un error del ejecutor tiene precedencia absoluta sobre la
// plantilla; sin datos, la plantilla se retorna tal cual.
func GenerateResponse(template string, result ActionResult, originalMessage string) string {
	if result.Err != "" {
		return "❌ " + result.Err
	}
	if result.Data == nil {
		return template
	}

	switch result.Data.Kind {
	case KindDebtors, KindClients, KindProducts, KindSales, KindGeneric:
		return renderList(template, result.Data)
	case KindClientDebt:
		return renderSubstitutions(template, debtSubstitutions(result.Data.ClientDebt))
	case KindSalesSummary:
		return renderSubstitutions(template, summarySubstitutions(result.Data.SalesSummary))
	default:
		return template
	}
}

func renderList(template string, data *QueryResult) string {
	count := listLen(data)
	if count == 0 {
		return renderSubstitutions(template, map[string]string{
			"results": NoResultsMessage,
			"count":   "0",
		})
	}
	return renderSubstitutions(template, map[string]string{
		"results": formatResults(data),
		"count":   strconv.Itoa(count),
	})
}

func listLen(data *QueryResult) int {
	switch data.Kind {
	case KindDebtors:
		return len(data.Debtors)
	case KindClients:
		return len(data.Clients)
	case KindProducts:
		return len(data.Products)
	case KindSales:
		return len(data.Sales)
	default:
		return len(data.Generic)
	}
}

// renderSubstitutions resuelve todos los marcadores {{clave}} en una sola
// pasada. Los marcadores sin valor se dejan intactos deliberadamente.
func renderSubstitutions(template string, values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := values[key]; ok {
			return value
		}
		return match
	})
}

func debtSubstitutions(debt *domain.ClientDebt) map[string]string {
	return map[string]string{
		"clientId":        debt.ClientID,
		"clientName":      debt.ClientName,
		"totalDebt":       fmt.Sprintf("%.2f", debt.TotalDebt),
		"pendingInvoices": strconv.Itoa(len(debt.PendingInvoices)),
	}
}

func summarySubstitutions(summary *domain.SalesSummary) map[string]string {
	results := NoResultsMessage
	if len(summary.Sales) > 0 {
		results = formatSales(summary.Sales)
	}
	return map[string]string{
		"count":   strconv.Itoa(summary.Count),
		"total":   fmt.Sprintf("%.2f", summary.Total),
		"results": results,
	}
}

// formatResults arma el bloque numerado de una lista no vacía según su
// etiqueta. Nunca falla: las formas desconocidas caen al volcado genérico.
func formatResults(data *QueryResult) string {
	switch data.Kind {
	case KindDebtors:
		return formatDebtors(data.Debtors)
	case KindClients:
		return formatClients(data.Clients)
	case KindProducts:
		return formatProducts(data.Products)
	case KindSales:
		return formatSales(data.Sales)
	default:
		return formatGeneric(data.Generic)
	}
}

func formatDebtors(debtors []domain.Debtor) string {
	var b strings.Builder
	for i, d := range debtors {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, d.ClientName))
		b.WriteString(fmt.Sprintf("   Código: %s\n", d.ClientID))
		b.WriteString(fmt.Sprintf("   Deuda: $%.2f\n", d.TotalDebt))
		b.WriteString(fmt.Sprintf("   Facturas pendientes: %d\n\n", d.PendingInvoices))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatClients(clients []domain.Client) string {
	var b strings.Builder
	for i, c := range clients {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, c.Name))
		b.WriteString(fmt.Sprintf("   Código: %s\n", c.ID))
		if c.Phone != "" {
			b.WriteString(fmt.Sprintf("   Teléfono: %s\n", c.Phone))
		}
		if c.Email != "" {
			b.WriteString(fmt.Sprintf("   Email: %s\n", c.Email))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatProducts(products []domain.Product) string {
	var b strings.Builder
	for i, p := range products {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, p.Name))
		b.WriteString(fmt.Sprintf("   Precio: $%.2f\n", p.Price))
		b.WriteString(fmt.Sprintf("   Stock: %d\n", p.Stock))
		b.WriteString(fmt.Sprintf("   Categoría: %s\n\n", p.Category))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatSales(sales []domain.Sale) string {
	var b strings.Builder
	for i, s := range sales {
		label := s.Correlative
		if label == "" {
			label = s.ID
		}
		b.WriteString(fmt.Sprintf("%d. Venta %s\n", i+1, label))
		b.WriteString(fmt.Sprintf("   Total: $%.2f\n", s.Total))
		b.WriteString(fmt.Sprintf("   Fecha: %s\n\n", formatDate(s.Date)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatGeneric(items []interface{}) string {
	var b strings.Builder
	for i, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			b.WriteString(fmt.Sprintf("%d. %v\n", i+1, item))
			continue
		}
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, raw))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatDate presenta una fecha ISO como dd/mm/aaaa, o "N/A" cuando el
// valor no es interpretable
func formatDate(date string) string {
	if len(date) < 10 {
		return "N/A"
	}
	parsed, err := time.Parse("2006-01-02", date[:10])
	if err != nil {
		return "N/A"
	}
	return parsed.Format("02/01/2006")
}
