package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	"github.com/SscSPs/firm_books/internal/models"
	"github.com/SscSPs/firm_books/internal/utils/mapping"
	"github.com/SscSPs/firm_books/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	insertJournalQuery = `
		INSERT INTO journal_entries (journal_id, entry_date, narration, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5);
	`
	insertPostingQuery = `
		INSERT INTO journal_postings (journal_id, line_no, account_name, debit, credit)
		VALUES ($1, $2, $3, $4, $5);
	`
	selectJournalColumns = `SELECT journal_id, entry_date, narration, created_at, created_by FROM journal_entries`
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and their postings.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournal saves an entry header and its postings within a DB transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, entry domain.JournalEntry) error {
	return r.SaveJournals(ctx, []domain.JournalEntry{entry})
}

// SaveJournals saves several entries in one DB transaction; a failure stores none of them.
func (r *PgxJournalRepository) SaveJournals(ctx context.Context, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, entry := range entries {
			header, postings := mapping.ToModelJournalEntry(entry)
			batch.Queue(insertJournalQuery,
				header.JournalID,
				header.EntryDate,
				header.Narration,
				header.CreatedAt,
				header.CreatedBy,
			)
			for _, p := range postings {
				batch.Queue(insertPostingQuery, p.JournalID, p.LineNo, p.AccountName, p.Debit, p.Credit)
			}
		}

		// Close reports the first failing statement of the batch
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return insertError("journal entries", err)
		}
		return nil
	})
}

// FindJournalByID retrieves an entry and its postings.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	var header models.JournalEntry
	err := r.Pool.QueryRow(ctx, selectJournalColumns+` WHERE journal_id = $1;`, journalID).Scan(
		&header.JournalID,
		&header.EntryDate,
		&header.Narration,
		&header.CreatedAt,
		&header.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}

	postings, err := r.findPostings(ctx, []string{journalID})
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainJournalEntry(header, postings[journalID])
	return &entry, nil
}

// ListJournals retrieves a page of entries, newest first, using keyset pagination on
// (entry_date, created_at, journal_id).
func (r *PgxJournalRepository) ListJournals(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row tells us whether another page exists
	fetchLimit := limit + 1

	query := selectJournalColumns
	args := []any{}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", errors.Join(apperrors.ErrValidation, err))
		}
		query += ` WHERE (entry_date, created_at, journal_id) < ($1, $2, $3)`
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
	}
	query += ` ORDER BY entry_date DESC, created_at DESC, journal_id DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

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

	entries, err := r.attachPostings(ctx, headers)
	if err != nil {
		return nil, nil, err
	}
	return entries, nextTokenVal, nil
}

// ListEntries returns every entry dated within the period, oldest first.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, period domain.Period) ([]domain.JournalEntry, error) {
	query := selectJournalColumns + `
		WHERE ($1::date IS NULL OR entry_date >= $1::date)
		  AND ($2::date IS NULL OR entry_date <= $2::date)
		ORDER BY entry_date, created_at, journal_id;
	`
	headers, err := r.queryHeaders(ctx, query, period.From, period.To)
	if err != nil {
		return nil, err
	}
	return r.attachPostings(ctx, headers)
}

func (r *PgxJournalRepository) queryHeaders(ctx context.Context, query string, args ...any) ([]models.JournalEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal entries", err)
	}
	defer rows.Close()

	headers := []models.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(&m.JournalID, &m.EntryDate, &m.Narration, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry row", err)
		}
		headers = append(headers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal entry rows", err)
	}
	return headers, nil
}

func (r *PgxJournalRepository) attachPostings(ctx context.Context, headers []models.JournalEntry) ([]domain.JournalEntry, error) {
	if len(headers) == 0 {
		return []domain.JournalEntry{}, nil
	}
	ids := make([]string, len(headers))
	for i, h := range headers {
		ids[i] = h.JournalID
	}
	postings, err := r.findPostings(ctx, ids)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainJournalEntries(headers, postings), nil
}

func (r *PgxJournalRepository) findPostings(ctx context.Context, journalIDs []string) (map[string][]models.Posting, error) {
	query := `
		SELECT journal_id, line_no, account_name, debit, credit
		FROM journal_postings
		WHERE journal_id = ANY($1)
		ORDER BY journal_id, line_no;
	`
	rows, err := r.Pool.Query(ctx, query, journalIDs)
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
