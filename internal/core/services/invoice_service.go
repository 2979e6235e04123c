package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	"github.com/SscSPs/firm_books/internal/core/invoice"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/utils"
)

const defaultInvoicePageSize = 20

type invoiceService struct {
	BaseService
	invoiceRepo   portsrepo.InvoiceRepositoryFacade
	numberer      *invoice.Numberer
	numericPolicy utils.NumericPolicy
	now           func() time.Time
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceNumericPolicy sets how malformed quantities and rates are handled.
func WithInvoiceNumericPolicy(policy utils.NumericPolicy) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.numericPolicy = policy
	}
}

// WithInvoiceClock overrides the clock used for creation timestamps and default dates.
func WithInvoiceClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.now = now
	}
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, numberer *invoice.Numberer, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo:   invoiceRepo,
		numberer:      numberer,
		numericPolicy: utils.NumericPolicyZero,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// toLines parses the raw lines, applying the defaults for an empty quantity or GST rate,
// and returns them with their amounts computed.
func (s *invoiceService) toLines(ctx context.Context, reqs []dto.InvoiceLineRequest) ([]domain.InvoiceLineItem, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: invoice must have at least one item", apperrors.ErrValidation)
	}

	parser := utils.NewNumericParser(s.numericPolicy)
	items := make([]domain.InvoiceLineItem, len(reqs))
	for i, r := range reqs {
		item := domain.NewInvoiceLineItem(strings.TrimSpace(r.Name))
		if strings.TrimSpace(string(r.Quantity)) != "" {
			qty, err := parser.Parse(fmt.Sprintf("items[%d].quantity", i), string(r.Quantity))
			if err != nil {
				return nil, err
			}
			item.Quantity = qty
		}
		rate, err := parser.Parse(fmt.Sprintf("items[%d].rate", i), string(r.Rate))
		if err != nil {
			return nil, err
		}
		item.Rate = rate
		if strings.TrimSpace(string(r.GSTPercent)) != "" {
			gst, err := parser.Parse(fmt.Sprintf("items[%d].gstPercent", i), string(r.GSTPercent))
			if err != nil {
				return nil, err
			}
			item.GSTPercent = gst
		}
		items[i] = item
	}
	s.LogCoerced(ctx, "Malformed invoice number treated as zero", parser)

	if err := invoice.ValidateLines(items); err != nil {
		return nil, err
	}
	return invoice.Recompute(items), nil
}

// PreviewInvoice computes line amounts and totals without saving.
func (s *invoiceService) PreviewInvoice(ctx context.Context, req dto.InvoiceLinesRequest) (*dto.InvoiceComputationResponse, error) {
	items, err := s.toLines(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	resp := dto.ToInvoiceComputationResponse(items, invoice.Totals(items))
	return &resp, nil
}

// CreateInvoice numbers, computes and stores an invoice.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	items, err := s.toLines(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.Date != "" {
		date, err = time.Parse(dto.DateLayout, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", apperrors.ErrValidation)
		}
	}

	inv := domain.Invoice{
		InvoiceID:       s.numberer.NextID(),
		InvoiceNumber:   s.numberer.NextNumber(),
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerAddress: req.CustomerAddress,
		CustomerGST:     strings.ToUpper(strings.TrimSpace(req.CustomerGST)),
		Date:            date,
		Items:           items,
		InvoiceTotals:   invoice.Totals(items),
		CreatedAt:       now,
		CreatedBy:       creatorUserID,
	}
	if inv.CustomerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", apperrors.ErrValidation)
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, inv); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("invoice_id", inv.InvoiceID))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", inv.InvoiceID),
		slog.String("invoice_number", inv.InvoiceNumber),
		slog.String("total", inv.Total.StringFixed(utils.DisplayPrecision)))
	return &inv, nil
}

// GetInvoiceByID retrieves a stored invoice.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice by ID", slog.String("invoice_id", invoiceID))
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	return inv, nil
}

// ListInvoices retrieves invoices newest first.
func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultInvoicePageSize
	}
	invoices, err := s.invoiceRepo.ListInvoices(ctx, limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	return invoices, nil
}
