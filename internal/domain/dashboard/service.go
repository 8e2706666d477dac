package dashboard

import "context"

type DashboardService interface {
	CompanyStats(ctx context.Context) (CompanyStatsResponse, error)
}
