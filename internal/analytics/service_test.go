package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proyectoslancha/pattymoda/internal/apiclient"
	"github.com/proyectoslancha/pattymoda/pkg/api"
	"github.com/proyectoslancha/pattymoda/pkg/logger"
)

// fakeRequester answers from canned JSON bodies keyed by path.
type fakeRequester struct {
	mu     sync.Mutex
	bodies map[string]string
	err    error
	paths  []string
}

func (f *fakeRequester) Get(_ context.Context, path string, out any) error {
	f.mu.Lock()
	f.paths = append(f.paths, path)
	f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	body, ok := f.bodies[path]
	if !ok {
		return errors.New("unexpected path " + path)
	}
	return json.Unmarshal([]byte(body), out)
}

func TestService_KPIs(t *testing.T) {
	fake := &fakeRequester{bodies: map[string]string{
		"/analytics/kpi": `{"data":{"kpiData":[{"title":"Ingresos Totales","value":"S/ 1500.00","change":"+15.3%","trend":"up","color":"green","emoji":"💰"}]},"message":"KPIs obtenidos exitosamente","status":200}`,
	}}
	svc := NewService(fake)

	resp, err := svc.KPIs(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, []string{"/analytics/kpi"}, fake.paths)
	assert.True(t, resp.OK())
	require.Len(t, resp.Data.KPIData, 1)
	assert.Equal(t, "Ingresos Totales", resp.Data.KPIData[0].Title)
	assert.Equal(t, "up", resp.Data.KPIData[0].Trend)
}

func TestService_CustomerSegments(t *testing.T) {
	fake := &fakeRequester{bodies: map[string]string{
		"/analytics/customer-segments": `{"data":{"customerSegments":[{"segment":"VIP (>S/2000)","count":3,"percentage":25,"revenue":9000.5,"emoji":"👑"}]},"status":200}`,
	}}
	svc := NewService(fake)

	resp, err := svc.CustomerSegments(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Data.CustomerSegments, 1)
	seg := resp.Data.CustomerSegments[0]
	assert.Equal(t, 3, seg.Count)
	assert.Equal(t, 25, seg.Percentage)
	assert.Equal(t, 9000.5, seg.Revenue)
}

func TestService_SalesTrendsPath(t *testing.T) {
	tests := []struct {
		name     string
		opts     []TrendOption
		wantPath string
	}{
		{name: "default window", opts: nil, wantPath: "/analytics/sales-trends?days=30"},
		{name: "explicit window", opts: []TrendOption{WithDays(7)}, wantPath: "/analytics/sales-trends?days=7"},
		{name: "zero is forwarded", opts: []TrendOption{WithDays(0)}, wantPath: "/analytics/sales-trends?days=0"},
		{name: "negative is forwarded", opts: []TrendOption{WithDays(-5)}, wantPath: "/analytics/sales-trends?days=-5"},
		{name: "last option wins", opts: []TrendOption{WithDays(7), WithDays(90)}, wantPath: "/analytics/sales-trends?days=90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRequester{bodies: map[string]string{
				tt.wantPath: `{"data":{"salesData":[]},"status":200}`,
			}}
			svc := NewService(fake)

			_, err := svc.SalesTrends(context.Background(), tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.wantPath}, fake.paths)
		})
	}
}

func TestService_PathsAreStable(t *testing.T) {
	fake := &fakeRequester{bodies: map[string]string{
		PathKPIs:             `{"data":{"kpiData":[]},"status":200}`,
		PathCustomerSegments: `{"data":{"customerSegments":[]},"status":200}`,
	}}
	svc := NewService(fake)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.KPIs(ctx)
		require.NoError(t, err)
		_, err = svc.CustomerSegments(ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{
		PathKPIs, PathCustomerSegments,
		PathKPIs, PathCustomerSegments,
		PathKPIs, PathCustomerSegments,
	}, fake.paths)
}

func TestService_ErrorsPassThrough(t *testing.T) {
	sentinel := errors.New("backend unreachable")
	fake := &fakeRequester{err: sentinel}
	svc := NewService(fake)
	ctx := context.Background()

	_, err := svc.KPIs(ctx)
	assert.Same(t, sentinel, err)

	_, err = svc.CustomerSegments(ctx)
	assert.Same(t, sentinel, err)

	resp, err := svc.SalesTrends(ctx, WithDays(7))
	assert.Same(t, sentinel, err)
	assert.Nil(t, resp)
}

func TestService_EnvelopePassThrough(t *testing.T) {
	// A 2xx transport answer can still carry a non-2xx status in the body;
	// the envelope is handed back untouched.
	fake := &fakeRequester{bodies: map[string]string{
		PathKPIs: `{"data":null,"message":"Sin datos","status":204,"timestamp":"2026-10-15T08:00:00"}`,
	}}
	svc := NewService(fake)

	resp, err := svc.KPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &api.Response[api.KPIs]{
		Message:   "Sin datos",
		Status:    204,
		Timestamp: "2026-10-15T08:00:00",
	}, resp)
}

func TestService_ConcurrentCallsAreIndependent(t *testing.T) {
	fake := &fakeRequester{bodies: map[string]string{
		PathKPIs:             `{"data":{"kpiData":[{"title":"Stock Bajo","value":"2"}]},"status":200}`,
		SalesTrendsPath(7):   `{"data":{"salesData":[{"date":"2026-10-14","sales":120.5,"orders":4,"customers":3}]},"status":200}`,
		PathCustomerSegments: `{"data":{"customerSegments":[{"segment":"Nuevos (<S/500)","count":9}]},"status":200}`,
	}}
	svc := NewService(fake)
	ctx := context.Background()

	const rounds = 50
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			resp, err := svc.KPIs(ctx)
			if assert.NoError(t, err) {
				assert.Equal(t, "Stock Bajo", resp.Data.KPIData[0].Title)
			}
		}()
		go func() {
			defer wg.Done()
			resp, err := svc.SalesTrends(ctx, WithDays(7))
			if assert.NoError(t, err) {
				assert.Equal(t, int64(4), resp.Data.SalesData[0].Orders)
			}
		}()
		go func() {
			defer wg.Done()
			resp, err := svc.CustomerSegments(ctx)
			if assert.NoError(t, err) {
				assert.Equal(t, 9, resp.Data.CustomerSegments[0].Count)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, fake.paths, rounds*3)
}

func TestService_AgainstHTTPBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/analytics/sales-trends" || r.URL.RawQuery != "days=7" {
			t.Errorf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		w.Write([]byte(`{"data":{"salesData":[{"date":"2026-10-09","sales":0,"orders":0,"customers":0}]},"message":"Tendencias obtenidas exitosamente","status":200,"timestamp":"2026-10-15T09:30:00"}`))
	}))
	defer server.Close()

	client, err := apiclient.NewClient(apiclient.Config{BaseURL: server.URL + "/api"}, logger.NewNop())
	require.NoError(t, err)

	resp, err := NewService(client).SalesTrends(context.Background(), WithDays(7))
	require.NoError(t, err)
	assert.Equal(t, "Tendencias obtenidas exitosamente", resp.Message)
	require.Len(t, resp.Data.SalesData, 1)
	assert.Equal(t, "2026-10-09", resp.Data.SalesData[0].Date)
}
