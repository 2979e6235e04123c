package dto

import (
	"time"

	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used across the API.
const DateLayout = "2006-01-02"

// PostingRequest is one line of a journal entry as submitted by a client.
// Amounts are kept raw so the configured numeric policy decides how bad input is handled.
type PostingRequest struct {
	Account string             `json:"account" binding:"required"`
	Debit   utils.NumericField `json:"debit" swaggertype:"string" example:"5000"`
	Credit  utils.NumericField `json:"credit" swaggertype:"string" example:"0"`
}

// CreateJournalRequest defines the data needed to record a journal entry.
type CreateJournalRequest struct {
	Date      string           `json:"date" binding:"required,datetime=2006-01-02" example:"2024-04-01"`
	Narration string           `json:"narration"`
	Postings  []PostingRequest `json:"postings" binding:"required,min=1,dive"`
}

// ClassifyRequest carries a narration to turn into suggested postings.
type ClassifyRequest struct {
	Narration string `json:"narration" binding:"required"`
}

// ClassifyResponse is the classifier's suggestion. Matched is false when no rule applied,
// in which case the client keeps its manual postings.
type ClassifyResponse struct {
	Matched  bool              `json:"matched"`
	Rule     string            `json:"rule,omitempty"`
	Amount   decimal.Decimal   `json:"amount"`
	Postings []PostingResponse `json:"postings"`
}

// PostingResponse defines the data returned for a posting line.
type PostingResponse struct {
	Account string          `json:"account"`
	Debit   decimal.Decimal `json:"debit"`
	Credit  decimal.Decimal `json:"credit"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID   string            `json:"journalID"`
	Ref         string            `json:"ref"`
	Date        string            `json:"date"`
	Narration   string            `json:"narration"`
	Postings    []PostingResponse `json:"postings"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	CreatedAt   time.Time         `json:"createdAt"`
	CreatedBy   string            `json:"createdBy"`
}

// ListJournalsParams defines the query parameters for listing journals.
type ListJournalsParams struct {
	Limit     int     `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListJournalsResponse is a page of journal entries.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ImportJournalsResponse reports the outcome of a legacy import.
type ImportJournalsResponse struct {
	Imported int      `json:"imported"`
	Warnings []string `json:"warnings,omitempty"`
}

// ToPostingResponses converts domain postings to their DTO form.
func ToPostingResponses(postings []domain.Posting) []PostingResponse {
	responses := make([]PostingResponse, len(postings))
	for i, p := range postings {
		responses[i] = PostingResponse{Account: p.Account, Debit: p.Debit, Credit: p.Credit}
	}
	return responses
}

// ToJournalResponse converts a domain.JournalEntry to JournalResponse DTO.
func ToJournalResponse(e *domain.JournalEntry) JournalResponse {
	return JournalResponse{
		JournalID:   e.ID,
		Ref:         e.ShortRef(),
		Date:        e.Date.Format(DateLayout),
		Narration:   e.Narration,
		Postings:    ToPostingResponses(e.Postings),
		TotalDebit:  e.TotalDebit(),
		TotalCredit: e.TotalCredit(),
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

// ToListJournalsResponse converts a page of entries.
func ToListJournalsResponse(entries []domain.JournalEntry, nextToken *string) ListJournalsResponse {
	resp := ListJournalsResponse{
		Journals:  make([]JournalResponse, len(entries)),
		NextToken: nextToken,
	}
	for i := range entries {
		resp.Journals[i] = ToJournalResponse(&entries[i])
	}
	return resp
}
