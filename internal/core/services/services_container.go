package services

import (
	"fmt"

	"github.com/SscSPs/firm_books/internal/core/classifier"
	"github.com/SscSPs/firm_books/internal/core/invoice"
	portsrepo "github.com/SscSPs/firm_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/platform/config"
	"github.com/SscSPs/firm_books/internal/utils"
)

// NewClassifier builds the narration classifier described by cfg: the rules file when
// one is configured, otherwise the built-in table, optionally with Hinglish keywords.
func NewClassifier(cfg *config.Config) (*classifier.Classifier, error) {
	rules := classifier.DefaultRules()
	if cfg.ClassifierRulesFile != "" {
		loaded, err := classifier.LoadRulesFile(cfg.ClassifierRulesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load classifier rules: %w", err)
		}
		rules = loaded
	}
	if cfg.ClassifierHinglish {
		rules = classifier.WithHinglish(rules)
	}
	return classifier.New(rules), nil
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	policy, err := utils.ParseNumericPolicy(cfg.NumericPolicy)
	if err != nil {
		return nil, err
	}

	cls, err := NewClassifier(cfg)
	if err != nil {
		return nil, err
	}

	numberer, err := invoice.NewNumberer(cfg.SnowflakeNode)
	if err != nil {
		return nil, err
	}

	container := &portssvc.ServiceContainer{}
	container.Journal = NewJournalService(repos.JournalRepo,
		WithClassifier(cls),
		WithNumericPolicy(policy),
	)
	container.Reporting = NewReportingService(repos.JournalRepo, repos.FirmRepo,
		WithInvoiceReader(repos.InvoiceRepo),
		WithInventoryReader(repos.InventoryRepo),
	)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, numberer, WithInvoiceNumericPolicy(policy))
	container.Firm = NewFirmService(repos.FirmRepo)
	container.Inventory = NewInventoryService(repos.InventoryRepo, WithInventoryNumericPolicy(policy))

	return container, nil
}
