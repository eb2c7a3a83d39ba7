// Package dashboard exposes the backend's dashboard endpoints as typed calls.
package dashboard

import (
	"context"

	"github.com/proyectoslancha/pattymoda/internal/apiclient"
	"github.com/proyectoslancha/pattymoda/pkg/api"
)

// Resource paths, relative to the client's base URL.
const (
	// PathStats serves the product, customer, sales and user counters.
	PathStats = "/dashboard/stats"
	// PathRecentActivity serves the activity feed.
	PathRecentActivity = "/dashboard/recent-activity"
)

// Service issues dashboard requests through a shared Requester.
type Service struct {
	requester apiclient.Requester
}

// NewService creates a dashboard service on top of r.
func NewService(r apiclient.Requester) *Service {
	return &Service{requester: r}
}

// Stats fetches the product, customer, sales and user counters.
func (s *Service) Stats(ctx context.Context) (*api.Response[api.DashboardStats], error) {
	return apiclient.Fetch[api.DashboardStats](ctx, s.requester, PathStats)
}

// RecentActivity fetches the activity feed in the order the backend sent it.
func (s *Service) RecentActivity(ctx context.Context) (*api.Response[api.RecentActivity], error) {
	return apiclient.Fetch[api.RecentActivity](ctx, s.requester, PathRecentActivity)
}
