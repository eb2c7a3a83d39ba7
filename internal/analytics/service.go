// Package analytics exposes the backend's analytics endpoints as typed calls.
package analytics

import (
	"context"
	"fmt"

	"github.com/proyectoslancha/pattymoda/internal/apiclient"
	"github.com/proyectoslancha/pattymoda/pkg/api"
)

// Resource paths, relative to the client's base URL.
const (
	// PathKPIs serves the headline indicator cards.
	PathKPIs = "/analytics/kpi"
	// PathCustomerSegments serves the segmentation by purchase volume.
	PathCustomerSegments = "/analytics/customer-segments"
	// PathSalesTrends serves daily sales; the window goes in the days query parameter.
	PathSalesTrends = "/analytics/sales-trends"

	// DefaultTrendDays is the window SalesTrends asks for when none is given.
	DefaultTrendDays = 30
)

// Service issues analytics requests through a shared Requester.
type Service struct {
	requester apiclient.Requester
}

// NewService creates an analytics service on top of r.
func NewService(r apiclient.Requester) *Service {
	return &Service{requester: r}
}

// KPIs fetches the headline indicator cards.
func (s *Service) KPIs(ctx context.Context) (*api.Response[api.KPIs], error) {
	return apiclient.Fetch[api.KPIs](ctx, s.requester, PathKPIs)
}

// CustomerSegments fetches the customer segmentation by purchase volume.
func (s *Service) CustomerSegments(ctx context.Context) (*api.Response[api.CustomerSegments], error) {
	return apiclient.Fetch[api.CustomerSegments](ctx, s.requester, PathCustomerSegments)
}

// TrendOption tweaks a SalesTrends request.
type TrendOption func(*trendParams)

type trendParams struct {
	days int
}

// WithDays sets the number of days covered by SalesTrends.
// The value is not validated; the backend rejects what it does not accept.
func WithDays(days int) TrendOption {
	return func(p *trendParams) {
		p.days = days
	}
}

// SalesTrends fetches per-day sales, orders and customers for the last
// DefaultTrendDays days unless WithDays says otherwise.
func (s *Service) SalesTrends(ctx context.Context, opts ...TrendOption) (*api.Response[api.SalesTrends], error) {
	params := trendParams{days: DefaultTrendDays}
	for _, opt := range opts {
		opt(&params)
	}
	return apiclient.Fetch[api.SalesTrends](ctx, s.requester, SalesTrendsPath(params.days))
}

// SalesTrendsPath builds the resource path for a sales trend window.
func SalesTrendsPath(days int) string {
	return fmt.Sprintf("%s?days=%d", PathSalesTrends, days)
}
