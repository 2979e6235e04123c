package dto

import (
	"time"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/shopspring/decimal"
)

// InvoiceLineRequest is one invoice row as typed by the user. Quantity and GST default
// to 1 and 18 when left empty.
type InvoiceLineRequest struct {
	Name       string             `json:"name" binding:"required"`
	Quantity   utils.NumericField `json:"quantity" swaggertype:"string" example:"2"`
	Rate       utils.NumericField `json:"rate" swaggertype:"string" example:"100"`
	GSTPercent utils.NumericField `json:"gstPercent" binding:"omitempty,gst_percent" swaggertype:"string" example:"18"`
}

// InvoiceLinesRequest asks for the computed lines and totals without saving anything.
type InvoiceLinesRequest struct {
	Items []InvoiceLineRequest `json:"items" binding:"required,min=1,dive"`
}

// CreateInvoiceRequest defines the data needed to issue an invoice.
type CreateInvoiceRequest struct {
	CustomerName    string               `json:"customerName" binding:"required"`
	CustomerAddress string               `json:"customerAddress"`
	CustomerGST     string               `json:"customerGST" binding:"omitempty,len=15,alphanum"`
	Date            string               `json:"date" binding:"omitempty,datetime=2006-01-02" example:"2024-04-01"`
	Items           []InvoiceLineRequest `json:"items" binding:"required,min=1,dive"`
}

// InvoiceLineResponse is a computed invoice row.
type InvoiceLineResponse struct {
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Rate       decimal.Decimal `json:"rate"`
	GSTPercent decimal.Decimal `json:"gstPercent"`
	Amount     string          `json:"amount"`
}

// InvoiceTotalsResponse holds display-rounded invoice totals.
type InvoiceTotalsResponse struct {
	Subtotal string `json:"subtotal"`
	TotalGST string `json:"totalGST"`
	Total    string `json:"total"`
}

// InvoiceComputationResponse is the result of a preview.
type InvoiceComputationResponse struct {
	Items  []InvoiceLineResponse `json:"items"`
	Totals InvoiceTotalsResponse `json:"totals"`
}

// InvoiceResponse defines the data returned for a stored invoice.
type InvoiceResponse struct {
	InvoiceID       string                `json:"invoiceID"`
	InvoiceNumber   string                `json:"invoiceNumber"`
	CustomerName    string                `json:"customerName"`
	CustomerAddress string                `json:"customerAddress"`
	CustomerGST     string                `json:"customerGST"`
	Date            string                `json:"date"`
	Items           []InvoiceLineResponse `json:"items"`
	Totals          InvoiceTotalsResponse `json:"totals"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
}

// ListInvoicesParams defines the query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// ToInvoiceLineResponses converts computed lines.
func ToInvoiceLineResponses(items []domain.InvoiceLineItem) []InvoiceLineResponse {
	out := make([]InvoiceLineResponse, len(items))
	for i, item := range items {
		out[i] = InvoiceLineResponse{
			Name:       item.Name,
			Quantity:   item.Quantity,
			Rate:       item.Rate,
			GSTPercent: item.GSTPercent,
			Amount:     utils.FormatAmount(item.Amount),
		}
	}
	return out
}

// ToInvoiceTotalsResponse rounds totals for display.
func ToInvoiceTotalsResponse(t domain.InvoiceTotals) InvoiceTotalsResponse {
	return InvoiceTotalsResponse{
		Subtotal: utils.FormatAmount(t.Subtotal),
		TotalGST: utils.FormatAmount(t.TotalGST),
		Total:    utils.FormatAmount(t.Total),
	}
}

// ToInvoiceComputationResponse converts a preview.
func ToInvoiceComputationResponse(items []domain.InvoiceLineItem, totals domain.InvoiceTotals) InvoiceComputationResponse {
	return InvoiceComputationResponse{
		Items:  ToInvoiceLineResponses(items),
		Totals: ToInvoiceTotalsResponse(totals),
	}
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:       inv.InvoiceID,
		InvoiceNumber:   inv.InvoiceNumber,
		CustomerName:    inv.CustomerName,
		CustomerAddress: inv.CustomerAddress,
		CustomerGST:     inv.CustomerGST,
		Date:            inv.Date.Format(DateLayout),
		Items:           ToInvoiceLineResponses(inv.Items),
		Totals:          ToInvoiceTotalsResponse(inv.InvoiceTotals),
		CreatedAt:       inv.CreatedAt,
		CreatedBy:       inv.CreatedBy,
	}
}

// ToInvoiceResponses converts a list of invoices.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out
}
