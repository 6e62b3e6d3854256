package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers are wired against.
type ServiceContainer struct {
	Dashboard    DashboardSvcFacade
	Stock        StockSvcFacade
	Operation    OperationSvcFacade
	Movement     MovementSvcFacade
	Config       ConfigSvcFacade
	Subscription SubscriptionSvcFacade
	RateChange   RateChangeSvcFacade
	Stats        StatsSvcFacade
	User         UserSvcFacade
}
