package services

// ServiceContainer is what the HTTP handlers and booksctl are wired against.
type ServiceContainer struct {
	Journal   JournalSvcFacade
	Reporting ReportingService
	Invoice   InvoiceSvcFacade
	Firm      FirmSvcFacade
	Inventory InventorySvcFacade
}
