// Package importer reads journal entries exported by the earlier browser-based
// edition of the books. Numeric fields there may be numbers, numeric strings or
// empty strings.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/SscSPs/firm_books/internal/utils/accounting"
	"github.com/google/uuid"
)

type legacyPosting struct {
	Account string             `json:"account"`
	Debit   utils.NumericField `json:"debit"`
	Credit  utils.NumericField `json:"credit"`
}

type legacyEntry struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Narration string          `json:"narration"`
	Entries   []legacyPosting `json:"entries"`
	CreatedAt string          `json:"createdAt"`
}

// legacyExport is the wrapped form: {"transactions": [...]} or {"journalEntries": [...]}.
type legacyExport struct {
	Transactions   []legacyEntry `json:"transactions"`
	JournalEntries []legacyEntry `json:"journalEntries"`
}

// EntryError reports which exported entry could not be imported.
type EntryError struct {
	Index int
	ID    string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d (id %q): %v", e.Index, e.ID, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Result holds the decoded entries plus any numeric fields that were coerced to zero.
type Result struct {
	Entries  []domain.JournalEntry
	Warnings []string
}

// Importer converts legacy exports into journal entries.
type Importer struct {
	policy    utils.NumericPolicy
	createdBy string
	now       func() time.Time
}

// Option configures an Importer.
type Option func(*Importer)

// WithCreatedBy stamps imported entries with userID.
func WithCreatedBy(userID string) Option {
	return func(i *Importer) {
		i.createdBy = userID
	}
}

// WithClock overrides the time used when an entry has no creation timestamp.
func WithClock(now func() time.Time) Option {
	return func(i *Importer) {
		i.now = now
	}
}

// New returns an Importer applying policy to malformed numbers.
func New(policy utils.NumericPolicy, opts ...Option) *Importer {
	i := &Importer{policy: policy, now: time.Now}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Decode reads a whole export. A bare array and the wrapped object form are both accepted.
// The first invalid or unbalanced entry aborts the import.
func (i *Importer) Decode(r io.Reader) (*Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: export is empty", apperrors.ErrValidation)
	}

	var legacy []legacyEntry
	if raw[0] == '[' {
		err = json.Unmarshal(raw, &legacy)
	} else {
		var wrapped legacyExport
		err = json.Unmarshal(raw, &wrapped)
		legacy = wrapped.Transactions
		if len(legacy) == 0 {
			legacy = wrapped.JournalEntries
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: export is not valid JSON: %v", apperrors.ErrValidation, err)
	}

	parser := utils.NewNumericParser(i.policy)
	result := &Result{Entries: make([]domain.JournalEntry, 0, len(legacy))}
	for idx, le := range legacy {
		entry, err := i.convert(parser, idx, le)
		if err != nil {
			return nil, &EntryError{Index: idx, ID: le.ID, Err: err}
		}
		result.Entries = append(result.Entries, entry)
	}
	for _, w := range parser.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}
	return result, nil
}

func (i *Importer) convert(parser *utils.NumericParser, idx int, le legacyEntry) (domain.JournalEntry, error) {
	date, err := parseDate(le.Date)
	if err != nil {
		return domain.JournalEntry{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, le.Date)
	}

	postings := make([]domain.Posting, 0, len(le.Entries))
	for j, lp := range le.Entries {
		debit, err := parser.Parse(fmt.Sprintf("entries[%d].entries[%d].debit", idx, j), string(lp.Debit))
		if err != nil {
			return domain.JournalEntry{}, err
		}
		credit, err := parser.Parse(fmt.Sprintf("entries[%d].entries[%d].credit", idx, j), string(lp.Credit))
		if err != nil {
			return domain.JournalEntry{}, err
		}
		postings = append(postings, domain.Posting{
			Account: strings.TrimSpace(lp.Account),
			Debit:   debit,
			Credit:  credit,
		})
	}
	if err := accounting.ValidateEntryBalance(postings); err != nil {
		return domain.JournalEntry{}, err
	}

	createdAt, err := time.Parse(time.RFC3339Nano, le.CreatedAt)
	if err != nil {
		createdAt = i.now().UTC()
	}
	id := le.ID
	if id == "" {
		v7, err := uuid.NewV7()
		if err != nil {
			return domain.JournalEntry{}, fmt.Errorf("failed to generate journal id: %w", err)
		}
		id = v7.String()
	}

	return domain.JournalEntry{
		ID:        id,
		Date:      date,
		Narration: le.Narration,
		Postings:  postings,
		CreatedAt: createdAt.UTC(),
		CreatedBy: i.createdBy,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
