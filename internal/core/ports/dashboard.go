package ports

import "context"

// DashboardStats are the admin-console tallies. Users is nil when the caller
// is not allowed to see account counts.
type DashboardStats struct {
	Products int64  `json:"products"`
	Promos   int64  `json:"promos"`
	Orders   int64  `json:"orders"`
	Users    *int64 `json:"users,omitempty"`
}

// DashboardService aggregates counts for the admin dashboard.
type DashboardService interface {
	Stats(ctx context.Context, includeUsers bool) (*DashboardStats, error)
}
