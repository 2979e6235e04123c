// Package repotest holds the behaviour every storage driver must share, as a testify suite
// that driver packages run against their own RepositoryProvider.
package repotest

import (
	"context"
	"time"

	"github.com/SscSPs/firm_books/internal/apperrors"
	"github.com/SscSPs/firm_books/internal/core/domain"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RepositorySuite exercises a RepositoryProvider. NewProvider is called before each test
// and must return empty repositories.
type RepositorySuite struct {
	suite.Suite
	NewProvider func() portsrepo.RepositoryProvider

	repos portsrepo.RepositoryProvider
	ctx   context.Context
}

func (s *RepositorySuite) SetupTest() {
	s.repos = s.NewProvider()
	s.ctx = context.Background()
}

func day(d int) time.Time {
	return time.Date(2024, 4, d, 0, 0, 0, 0, time.UTC)
}

func at(d, h int) time.Time {
	return time.Date(2024, 4, d, h, 0, 0, 0, time.UTC)
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func journal(id string, date time.Time, createdAt time.Time, value string) domain.JournalEntry {
	return domain.JournalEntry{
		ID:        id,
		Date:      date,
		Narration: "entry " + id,
		Postings: []domain.Posting{
			domain.DebitPosting("Cash/Bank A/c", amount(value)),
			domain.CreditPosting("Sales A/c", amount(value)),
		},
		CreatedAt: createdAt,
		CreatedBy: "tester",
	}
}

func (s *RepositorySuite) TestJournal_SaveAndFind() {
	entry := journal("j1", day(3), at(3, 9), "1500.75")
	s.Require().NoError(s.repos.JournalRepo.SaveJournal(s.ctx, entry))

	got, err := s.repos.JournalRepo.FindJournalByID(s.ctx, "j1")
	s.Require().NoError(err)
	s.Equal("j1", got.ID)
	s.True(got.Date.Equal(entry.Date))
	s.True(got.CreatedAt.Equal(entry.CreatedAt))
	s.Equal("entry j1", got.Narration)
	s.Equal("tester", got.CreatedBy)
	s.Require().Len(got.Postings, 2)
	s.Equal("Cash/Bank A/c", got.Postings[0].Account)
	s.True(amount("1500.75").Equal(got.Postings[0].Debit))
	s.True(got.Postings[0].Credit.IsZero())
	s.Equal("Sales A/c", got.Postings[1].Account)
	s.True(amount("1500.75").Equal(got.Postings[1].Credit))
}

func (s *RepositorySuite) TestJournal_FindMissing() {
	_, err := s.repos.JournalRepo.FindJournalByID(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestJournal_SaveJournalsIsAllOrNothing() {
	s.Require().NoError(s.repos.JournalRepo.SaveJournal(s.ctx, journal("dup", day(1), at(1, 9), "10")))

	err := s.repos.JournalRepo.SaveJournals(s.ctx, []domain.JournalEntry{
		journal("fresh", day(2), at(2, 9), "20"),
		journal("dup", day(2), at(2, 10), "30"),
	})
	s.Error(err)

	_, err = s.repos.JournalRepo.FindJournalByID(s.ctx, "fresh")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *RepositorySuite) TestJournal_ListEntriesByPeriod() {
	s.Require().NoError(s.repos.JournalRepo.SaveJournals(s.ctx, []domain.JournalEntry{
		journal("late", day(20), at(20, 9), "3"),
		journal("early", day(1), at(1, 9), "1"),
		journal("mid-b", day(10), at(10, 11), "2"),
		journal("mid-a", day(10), at(10, 8), "2"),
	}))

	all, err := s.repos.JournalRepo.ListEntries(s.ctx, domain.Period{})
	s.Require().NoError(err)
	s.Equal([]string{"early", "mid-a", "mid-b", "late"}, ids(all))

	from, to := day(5), day(10)
	windowed, err := s.repos.JournalRepo.ListEntries(s.ctx, domain.Period{From: &from, To: &to})
	s.Require().NoError(err)
	s.Equal([]string{"mid-a", "mid-b"}, ids(windowed))
	s.Len(windowed[0].Postings, 2)
}

func (s *RepositorySuite) TestJournal_ListJournalsPages() {
	var entries []domain.JournalEntry
	for i := 1; i <= 5; i++ {
		entries = append(entries, journal(string(rune('a'+i-1)), day(i), at(i, 9), "1"))
	}
	// same date and creation time as "e", ordered by ID
	entries = append(entries, journal("f", day(5), at(5, 9), "1"))
	s.Require().NoError(s.repos.JournalRepo.SaveJournals(s.ctx, entries))

	page1, token, err := s.repos.JournalRepo.ListJournals(s.ctx, 4, nil)
	s.Require().NoError(err)
	s.Equal([]string{"f", "e", "d", "c"}, ids(page1))
	s.Require().NotNil(token)

	page2, token2, err := s.repos.JournalRepo.ListJournals(s.ctx, 4, token)
	s.Require().NoError(err)
	s.Equal([]string{"b", "a"}, ids(page2))
	s.Nil(token2)
	s.Len(page2[0].Postings, 2)
}

func (s *RepositorySuite) TestJournal_ListJournalsBadToken() {
	bad := "%%%"
	_, _, err := s.repos.JournalRepo.ListJournals(s.ctx, 10, &bad)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *RepositorySuite) TestInvoice_SaveFindListSum() {
	inv := func(id string, d time.Time, created time.Time, subtotal, gst string) domain.Invoice {
		return domain.Invoice{
			InvoiceID:     id,
			InvoiceNumber: "INV-" + id,
			CustomerName:  "Ravi Stores",
			Date:          d,
			Items: []domain.InvoiceLineItem{{
				Name: "Rice", Quantity: amount("2"), Rate: amount(subtotal).Div(amount("2")),
				GSTPercent: amount("18"), Amount: amount(subtotal).Add(amount(gst)),
			}},
			InvoiceTotals: domain.InvoiceTotals{
				Subtotal: amount(subtotal), TotalGST: amount(gst), Total: amount(subtotal).Add(amount(gst)),
			},
			CreatedAt: created,
			CreatedBy: "tester",
		}
	}
	s.Require().NoError(s.repos.InvoiceRepo.SaveInvoice(s.ctx, inv("1", day(1), at(1, 9), "100", "18")))
	s.Require().NoError(s.repos.InvoiceRepo.SaveInvoice(s.ctx, inv("2", day(5), at(5, 9), "200", "36")))
	s.Require().NoError(s.repos.InvoiceRepo.SaveInvoice(s.ctx, inv("3", day(9), at(9, 9), "50.50", "9.09")))

	got, err := s.repos.InvoiceRepo.FindInvoiceByID(s.ctx, "2")
	s.Require().NoError(err)
	s.Equal("INV-2", got.InvoiceNumber)
	s.True(got.Date.Equal(day(5)))
	s.Require().Len(got.Items, 1)
	s.Equal("Rice", got.Items[0].Name)
	s.True(amount("236").Equal(got.Items[0].Amount))
	s.True(amount("236").Equal(got.Total))

	_, err = s.repos.InvoiceRepo.FindInvoiceByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)

	list, err := s.repos.InvoiceRepo.ListInvoices(s.ctx, 2, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("3", list[0].InvoiceID)
	s.Equal("2", list[1].InvoiceID)

	rest, err := s.repos.InvoiceRepo.ListInvoices(s.ctx, 2, 2)
	s.Require().NoError(err)
	s.Require().Len(rest, 1)
	s.Equal("1", rest[0].InvoiceID)

	from := day(2)
	totals, count, err := s.repos.InvoiceRepo.SumInvoiceTotals(s.ctx, domain.Period{From: &from})
	s.Require().NoError(err)
	s.Equal(2, count)
	s.True(amount("250.50").Equal(totals.Subtotal))
	s.True(amount("45.09").Equal(totals.TotalGST))
	s.True(amount("295.59").Equal(totals.Total))
}

func (s *RepositorySuite) TestFirm_SaveAndReplace() {
	_, err := s.repos.FirmRepo.GetFirmProfile(s.ctx)
	s.ErrorIs(err, apperrors.ErrNotFound)

	first := domain.FirmProfile{
		FirmName: "Sharma Traders", GSTNumber: "27ABCDE1234F1Z5", City: "Pune",
		AuditFields: domain.AuditFields{CreatedAt: at(1, 9), CreatedBy: "a", LastUpdatedAt: at(1, 9), LastUpdatedBy: "a"},
	}
	s.Require().NoError(s.repos.FirmRepo.SaveFirmProfile(s.ctx, first))

	second := first
	second.FirmName = "Sharma & Sons"
	second.LastUpdatedAt = at(2, 9)
	second.LastUpdatedBy = "b"
	s.Require().NoError(s.repos.FirmRepo.SaveFirmProfile(s.ctx, second))

	got, err := s.repos.FirmRepo.GetFirmProfile(s.ctx)
	s.Require().NoError(err)
	s.Equal("Sharma & Sons", got.FirmName)
	s.Equal("Pune", got.City)
	s.Equal("a", got.CreatedBy)
	s.True(got.CreatedAt.Equal(at(1, 9)))
	s.Equal("b", got.LastUpdatedBy)
}

func (s *RepositorySuite) TestInventory_CRUD() {
	item := domain.InventoryItem{
		ItemID: "i1", Name: "Rice 25kg", Supplier: "Agro Mills", PurchaseCost: amount("1200.50"),
		SalesPrice: amount("1400"), HSNCode: "1006", GSTPercent: amount("5"), Quantity: 10,
		AuditFields: domain.AuditFields{CreatedAt: at(1, 9), CreatedBy: "a", LastUpdatedAt: at(1, 9), LastUpdatedBy: "a"},
	}
	s.Require().NoError(s.repos.InventoryRepo.SaveItem(s.ctx, item))
	other := item
	other.ItemID, other.Name, other.CreatedAt = "i2", "Dal", at(2, 9)
	s.Require().NoError(s.repos.InventoryRepo.SaveItem(s.ctx, other))

	item.Quantity = 4
	item.LastUpdatedBy = "b"
	s.Require().NoError(s.repos.InventoryRepo.SaveItem(s.ctx, item))

	got, err := s.repos.InventoryRepo.FindItemByID(s.ctx, "i1")
	s.Require().NoError(err)
	s.Equal(int64(4), got.Quantity)
	s.True(amount("1200.50").Equal(got.PurchaseCost))
	s.Equal("b", got.LastUpdatedBy)

	items, err := s.repos.InventoryRepo.ListItems(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal("i2", items[0].ItemID)

	s.Require().NoError(s.repos.InventoryRepo.DeleteItem(s.ctx, "i1"))
	s.ErrorIs(s.repos.InventoryRepo.DeleteItem(s.ctx, "i1"), apperrors.ErrNotFound)
	_, err = s.repos.InventoryRepo.FindItemByID(s.ctx, "i1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func ids(entries []domain.JournalEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
