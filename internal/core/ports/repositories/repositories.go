package repositories

// RepositoryProvider bundles all repository facades so wiring code can pass a
// single value around.
type RepositoryProvider struct {
	Operation    OperationRepositoryFacade
	Stock        StockRepositoryFacade
	Movement     MovementReader
	Config       ConfigRepositoryFacade
	Subscription SubscriptionRepositoryFacade
	RateChange   RateChangeReader
	User         UserRepositoryFacade
	Reporting    ReportingRepository
}
