package repositories

// RepositoryProvider bundles one storage driver's repositories (postgres, sqlite or memory).
type RepositoryProvider struct {
	JournalRepo   JournalRepositoryFacade
	InvoiceRepo   InvoiceRepositoryFacade
	FirmRepo      FirmRepositoryFacade
	InventoryRepo InventoryRepositoryFacade
}
