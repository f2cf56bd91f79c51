package chatbot

import (
	"github.com/orozcodev/comedor-pos/pkg/domain"
)

// Intent representa una regla del asistente: palabras clave que disparan
// una acción y la plantilla con la que se responde
type Intent struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Keywords         []string `json:"keywords"`
	Action           string   `json:"action"`
	ResponseTemplate string   `json:"response_template"`
	Enabled          bool     `json:"enabled"`
	Examples         []string `json:"examples,omitempty"`
	CreatedAt        string   `json:"created_at,omitempty"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}

// Tipos de respuesta del asistente
const (
	ResponseTypeData    = "data"
	ResponseTypeError   = "error"
	ResponseTypeNormal  = "normal"
	ResponseTypeWelcome = "welcome"
)

// ChatResponse es el único valor que produce el motor por mensaje.
// Se construye nuevo en cada llamada; el llamador es su dueño.
type ChatResponse struct {
	Message string      `json:"message"`
	Type    string      `json:"type"`
	Data    interface{} `json:"data,omitempty"`
	Intent  string      `json:"intent,omitempty"`
}

// ResultKind etiqueta la forma del resultado de una consulta. El ejecutor
// etiqueta y el renderizador hace switch exhaustivo sobre la etiqueta, en
// lugar de inspeccionar la forma de los elementos.
type ResultKind string

const (
	KindDebtors      ResultKind = "debtors"
	KindClients      ResultKind = "clients"
	KindProducts     ResultKind = "products"
	KindSales        ResultKind = "sales"
	KindClientDebt   ResultKind = "client_debt"
	KindSalesSummary ResultKind = "sales_summary"
	KindGeneric      ResultKind = "generic"
)

// QueryResult es la variante etiquetada que produce cada acción
type QueryResult struct {
	Kind         ResultKind
	Debtors      []domain.Debtor
	Clients      []domain.Client
	Products     []domain.Product
	Sales        []domain.Sale
	ClientDebt   *domain.ClientDebt
	SalesSummary *domain.SalesSummary
	Generic      []interface{}
}

// Payload retorna el dato crudo que viaja en ChatResponse.Data
func (r *QueryResult) Payload() interface{} {
	switch r.Kind {
	case KindDebtors:
		return r.Debtors
	case KindClients:
		return r.Clients
	case KindProducts:
		return r.Products
	case KindSales:
		return r.Sales
	case KindClientDebt:
		return r.ClientDebt
	case KindSalesSummary:
		return r.SalesSummary
	default:
		return r.Generic
	}
}

// ActionResult es el resultado de ejecutar una acción: datos o un mensaje
// de error para el usuario, nunca ambos
type ActionResult struct {
	Data *QueryResult
	Err  string
}
