package dto

// DashboardQuery selects the KPI scope of a dashboard load. "mine" restricts
// the KPI slice to operations assigned to the caller; anything else ("" or
// "all") loads the desk-wide figures.
type DashboardQuery struct {
	Scope string `form:"scope,default=all" binding:"omitempty,oneof=all mine"`
}

// ListQuery is the shared limit parameter of the history endpoints.
type ListQuery struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=200"`
}

// OperationsQuery filters the operations list.
type OperationsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING COMPLETED CANCELLED ESCALATED"`
	Limit  int    `form:"limit" binding:"omitempty,gte=1,lte=200"`
}

// ExportQuery selects the serialization format of an export download.
type ExportQuery struct {
	Format string `form:"format,default=csv" binding:"omitempty,oneof=csv json"`
}
