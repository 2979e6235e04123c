package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/classifier"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/importer"
	"github.com/SscSPs/firm_books/internal/utils"
	"github.com/SscSPs/firm_books/internal/utils/accounting"
)

const defaultJournalPageSize = 20

// journalService records journal entries and suggests postings for narrations.
type journalService struct {
	BaseService
	journalRepo   portsrepo.JournalRepositoryFacade
	classifier    *classifier.Classifier
	numericPolicy utils.NumericPolicy
	now           func() time.Time
}

// JournalServiceOption is a functional option for configuring the journal service
type JournalServiceOption func(*journalService)

// WithClassifier replaces the default keyword classifier.
func WithClassifier(c *classifier.Classifier) JournalServiceOption {
	return func(s *journalService) {
		s.classifier = c
	}
}

// WithNumericPolicy sets how malformed amounts are handled.
func WithNumericPolicy(policy utils.NumericPolicy) JournalServiceOption {
	return func(s *journalService) {
		s.numericPolicy = policy
	}
}

// WithJournalClock overrides the clock used for creation timestamps.
func WithJournalClock(now func() time.Time) JournalServiceOption {
	return func(s *journalService) {
		s.now = now
	}
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, options ...JournalServiceOption) portssvc.JournalSvcFacade {
	svc := &journalService{
		journalRepo:   journalRepo,
		classifier:    classifier.New(nil),
		numericPolicy: utils.NumericPolicyZero,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournal validates the postings and stores a new entry.
func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.JournalEntry, error) {
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
	}

	parser := utils.NewNumericParser(s.numericPolicy)
	postings := make([]domain.Posting, len(req.Postings))
	for i, p := range req.Postings {
		debit, err := parser.Parse(fmt.Sprintf("postings[%d].debit", i), string(p.Debit))
		if err != nil {
			return nil, err
		}
		credit, err := parser.Parse(fmt.Sprintf("postings[%d].credit", i), string(p.Credit))
		if err != nil {
			return nil, err
		}
		postings[i] = domain.Posting{Account: strings.TrimSpace(p.Account), Debit: debit, Credit: credit}
	}
	s.LogCoerced(ctx, "Malformed amount treated as zero", parser)

	if err := accounting.ValidateEntryBalance(postings); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate journal ID")
		return nil, fmt.Errorf("%w: failed to generate journal ID", apperrors.ErrInternal)
	}

	entry := domain.JournalEntry{
		ID:        id.String(),
		Date:      date,
		Narration: req.Narration,
		Postings:  postings,
		CreatedAt: s.now().UTC(),
		CreatedBy: creatorUserID,
	}

	if err := s.journalRepo.SaveJournal(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal", slog.String("journal_id", entry.ID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	s.LogInfo(ctx, "Journal created", slog.String("journal_id", entry.ID), slog.Int("posting_count", len(postings)))
	return &entry, nil
}

// GetJournalByID retrieves a journal entry with its postings.
func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal by ID", slog.String("journal_id", journalID))
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}
	return entry, nil
}

// ListJournals retrieves a page of journals, newest first.
func (s *journalService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultJournalPageSize
	}

	entries, nextToken, err := s.journalRepo.ListJournals(ctx, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals from repository")
		return nil, fmt.Errorf("failed to retrieve journals: %w", err)
	}

	resp := dto.ToListJournalsResponse(entries, nextToken)
	s.LogDebug(ctx, "Journals listed successfully", slog.Int("count", len(entries)))
	return &resp, nil
}

// ClassifyNarration suggests postings for a narration without storing anything.
func (s *journalService) ClassifyNarration(ctx context.Context, narration string) *dto.ClassifyResponse {
	result := s.classifier.Explain(narration)
	s.LogDebug(ctx, "Narration classified", slog.String("rule", result.Rule), slog.String("amount", result.Amount.String()))
	return &dto.ClassifyResponse{
		Matched:  result.Matched(),
		Rule:     result.Rule,
		Amount:   result.Amount,
		Postings: dto.ToPostingResponses(result.Postings),
	}
}

// ImportJournals decodes a legacy export and stores every entry in one unit of work.
func (s *journalService) ImportJournals(ctx context.Context, r io.Reader, creatorUserID string) (*dto.ImportJournalsResponse, error) {
	result, err := importer.New(s.numericPolicy, importer.WithCreatedBy(creatorUserID), importer.WithClock(s.now)).Decode(r)
	if err != nil {
		s.LogError(ctx, err, "Failed to decode journal export")
		return nil, err
	}
	s.LogWarnings(ctx, "Malformed amount in export treated as zero", result.Warnings)

	if len(result.Entries) > 0 {
		if err := s.journalRepo.SaveJournals(ctx, result.Entries); err != nil {
			s.LogError(ctx, err, "Failed to save imported journals", slog.Int("count", len(result.Entries)))
			return nil, fmt.Errorf("failed to save imported journals: %w", err)
		}
	}

	s.LogInfo(ctx, "Journals imported", slog.Int("count", len(result.Entries)), slog.Int("warnings", len(result.Warnings)))
	return &dto.ImportJournalsResponse{Imported: len(result.Entries), Warnings: result.Warnings}, nil
}
