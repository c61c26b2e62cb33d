package repositories

// RepositoryProvider bundles every repository the service layer needs,
// so wiring code can pass a single value around.
type RepositoryProvider struct {
	Company CompanyRepository
	Invoice InvoiceRepository
}
