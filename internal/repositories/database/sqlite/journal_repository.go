package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	"github.com/SscSPs/firm_books/internal/models"
	"github.com/SscSPs/firm_books/internal/utils/mapping"
	"github.com/SscSPs/firm_books/internal/utils/pagination"
)

const (
	selectJournalColumns = `SELECT journal_id, entry_date, narration, created_at, created_by FROM journal_entries`
	periodFilter         = `(?1 IS NULL OR entry_date >= ?1) AND (?2 IS NULL OR entry_date <= ?2)`
)

// JournalRepository stores journal entries in journal_entries and journal_postings.
type JournalRepository struct {
	BaseRepository
}

var _ portsrepo.JournalRepositoryFacade = (*JournalRepository)(nil)

// SaveJournal saves an entry and its postings in one transaction.
func (r *JournalRepository) SaveJournal(ctx context.Context, entry domain.JournalEntry) error {
	return r.SaveJournals(ctx, []domain.JournalEntry{entry})
}

// SaveJournals saves several entries in one transaction; a failure stores none of them.
func (r *JournalRepository) SaveJournals(ctx context.Context, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.WithTx(ctx, func(tx *sql.Tx) error {
		insertEntry, err := tx.PrepareContext(ctx, `
			INSERT INTO journal_entries (journal_id, entry_date, narration, created_at, created_by)
			VALUES (?, ?, ?, ?, ?);
		`)
		if err != nil {
			return apperrors.NewAppError(500, "failed to prepare journal insert", err)
		}
		defer insertEntry.Close()

		insertPosting, err := tx.PrepareContext(ctx, `
			INSERT INTO journal_postings (journal_id, line_no, account_name, debit, credit)
			VALUES (?, ?, ?, ?, ?);
		`)
		if err != nil {
			return apperrors.NewAppError(500, "failed to prepare posting insert", err)
		}
		defer insertPosting.Close()

		for _, entry := range entries {
			header, postings := mapping.ToModelJournalEntry(entry)
			if _, err := insertEntry.ExecContext(ctx,
				header.JournalID,
				formatDate(header.EntryDate),
				header.Narration,
				formatTime(header.CreatedAt),
				header.CreatedBy,
			); err != nil {
				if isUniqueViolation(err) {
					return apperrors.NewAppError(409, "journal "+header.JournalID+" already exists", apperrors.ErrDuplicate)
				}
				return apperrors.NewAppError(500, "failed to insert journal "+header.JournalID, err)
			}
			for _, p := range postings {
				if _, err := insertPosting.ExecContext(ctx, p.JournalID, p.LineNo, p.AccountName, p.Debit.String(), p.Credit.String()); err != nil {
					return apperrors.NewAppError(500, "failed to insert posting for journal "+header.JournalID, err)
				}
			}
		}
		return nil
	})
}

// FindJournalByID retrieves an entry and its postings.
func (r *JournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	headers, err := r.queryHeaders(ctx, selectJournalColumns+` WHERE journal_id = ?;`, journalID)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return nil, apperrors.ErrNotFound
	}
	postings, err := r.queryPostings(ctx, `
		SELECT journal_id, line_no, account_name, debit, credit
		FROM journal_postings WHERE journal_id = ? ORDER BY line_no;
	`, journalID)
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainJournalEntry(headers[0], postings[journalID])
	return &entry, nil
}

// ListJournals retrieves a page of entries, newest first, using keyset pagination.
func (r *JournalRepository) ListJournals(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	query := selectJournalColumns
	args := []any{}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
		}
		query += ` WHERE (entry_date, created_at, journal_id) < (?, ?, ?)`
		args = append(args, formatDate(cursor.Date), formatTime(cursor.CreatedAt), cursor.ID)
	}
	query += ` ORDER BY entry_date DESC, created_at DESC, journal_id DESC LIMIT ?;`
	args = append(args, limit+1)

	headers, err := r.queryHeaders(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(headers) > limit {
		headers = headers[:limit]
		last := headers[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt, last.JournalID)
		nextTokenVal = &token
	}
	if len(headers) == 0 {
		return []domain.JournalEntry{}, nil, nil
	}

	ids := make([]any, len(headers))
	for i, h := range headers {
		ids[i] = h.JournalID
	}
	postings, err := r.queryPostings(ctx, `
		SELECT journal_id, line_no, account_name, debit, credit
		FROM journal_postings
		WHERE journal_id IN (`+placeholders(len(ids))+`)
		ORDER BY journal_id, line_no;
	`, ids...)
	if err != nil {
		return nil, nil, err
	}
	return mapping.ToDomainJournalEntries(headers, postings), nextTokenVal, nil
}

// ListEntries returns every entry dated within the period, oldest first.
func (r *JournalRepository) ListEntries(ctx context.Context, period domain.Period) ([]domain.JournalEntry, error) {
	from, to := nullableDate(period.From), nullableDate(period.To)
	headers, err := r.queryHeaders(ctx, selectJournalColumns+` WHERE `+periodFilter+`
		ORDER BY entry_date, created_at, journal_id;`, from, to)
	if err != nil {
		return nil, err
	}
	postings, err := r.queryPostings(ctx, `
		SELECT p.journal_id, p.line_no, p.account_name, p.debit, p.credit
		FROM journal_postings p
		JOIN journal_entries USING (journal_id)
		WHERE `+periodFilter+`
		ORDER BY p.journal_id, p.line_no;
	`, from, to)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainJournalEntries(headers, postings), nil
}

func (r *JournalRepository) queryHeaders(ctx context.Context, query string, args ...any) ([]models.JournalEntry, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	headers := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		var entryDate, createdAt string
		if err := rows.Scan(&m.JournalID, &entryDate, &m.Narration, &createdAt, &m.CreatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		if m.EntryDate, err = parseDate(entryDate); err != nil {
			return nil, apperrors.NewAppError(500, "invalid entry_date on journal "+m.JournalID, err)
		}
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, apperrors.NewAppError(500, "invalid created_at on journal "+m.JournalID, err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	return headers, nil
}

func (r *JournalRepository) queryPostings(ctx context.Context, query string, args ...any) (map[string][]models.Posting, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal postings", err)
	}
	defer rows.Close()

	postings := []models.Posting{}
	for rows.Next() {
		var p models.Posting
		if err := rows.Scan(&p.JournalID, &p.LineNo, &p.AccountName, &p.Debit, &p.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal posting row", err)
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal posting rows", err)
	}
	return mapping.GroupPostings(postings), nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}
