package dashboard

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
	apperrors "github.com/proyectoslancha/pattymoda/pkg/errors"
	"github.com/proyectoslancha/pattymoda/pkg/logger"
)

type recordingRequester struct {
	mu     sync.Mutex
	bodies map[string]string
	err    error
	paths  []string
}

func (r *recordingRequester) Get(_ context.Context, path string, out any) error {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	return json.Unmarshal([]byte(r.bodies[path]), out)
}

const statsBody = `{"data":{"totalProducts":120,"activeProducts":100,"lowStockProducts":4,"totalCustomers":80,"activeCustomers":75,"monthlyRevenue":15230.75,"monthlySales":210,"dailyRevenue":830.5,"dailySales":12,"totalUsers":6},"message":"Estadísticas obtenidas exitosamente","status":200,"timestamp":"2026-10-15T10:00:00"}`

const activityBody = `{"data":{"activities":[{"type":"stock","message":"4 productos con stock bajo","time":"Ahora","priority":"high"},{"type":"sale","message":"12 ventas en las últimas 24 horas","time":"24h","priority":"medium"},{"type":"customer","message":"3 nuevos clientes esta semana","time":"7d","priority":"low"}],"lastUpdate":"2026-10-15T10:00:00"},"status":200}`

func TestService_Stats(t *testing.T) {
	fake := &recordingRequester{bodies: map[string]string{PathStats: statsBody}}
	svc := NewService(fake)

	resp, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"/dashboard/stats"}, fake.paths)
	assert.Equal(t, int64(120), resp.Data.TotalProducts)
	assert.Equal(t, int64(4), resp.Data.LowStockProducts)
	assert.Equal(t, 15230.75, resp.Data.MonthlyRevenue)
	assert.Equal(t, int64(12), resp.Data.DailySales)
	assert.Equal(t, int64(6), resp.Data.TotalUsers)
	assert.Equal(t, "Estadísticas obtenidas exitosamente", resp.Message)
}

func TestService_RecentActivity_KeepsServerOrder(t *testing.T) {
	fake := &recordingRequester{bodies: map[string]string{PathRecentActivity: activityBody}}
	svc := NewService(fake)

	resp, err := svc.RecentActivity(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"/dashboard/recent-activity"}, fake.paths)
	require.Len(t, resp.Data.Activities, 3)

	var types []string
	for _, a := range resp.Data.Activities {
		types = append(types, a.Type)
	}
	assert.Equal(t, []string{"stock", "sale", "customer"}, types)
	assert.Equal(t, "high", resp.Data.Activities[0].Priority)
	assert.Equal(t, "2026-10-15T10:00:00", resp.Data.LastUpdate)
}

func TestService_ErrorsPassThrough(t *testing.T) {
	cause := apperrors.NewAPIError(apperrors.ErrCodeServerError, "backend failed", true, nil)
	svc := NewService(&recordingRequester{err: cause})

	stats, err := svc.Stats(context.Background())
	assert.Nil(t, stats)
	assert.Same(t, cause, err)

	activity, err := svc.RecentActivity(context.Background())
	assert.Nil(t, activity)
	assert.Same(t, cause, err)
}

func TestService_ConcurrentCallsAreIndependent(t *testing.T) {
	fake := &recordingRequester{bodies: map[string]string{
		PathStats:          statsBody,
		PathRecentActivity: activityBody,
	}}
	svc := NewService(fake)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			resp, err := svc.Stats(ctx)
			if assert.NoError(t, err) {
				assert.Equal(t, int64(120), resp.Data.TotalProducts)
			}
		}()
		go func() {
			defer wg.Done()
			resp, err := svc.RecentActivity(ctx)
			if assert.NoError(t, err) {
				assert.Len(t, resp.Data.Activities, 3)
			}
		}()
	}
	wg.Wait()
}

func TestService_AgainstHTTPBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/dashboard/stats":
			w.Write([]byte(statsBody))
		case "/api/dashboard/recent-activity":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"data":null,"message":"Error al obtener actividad reciente: timeout","status":500}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, err := apiclient.NewClient(apiclient.Config{BaseURL: server.URL + "/api"}, logger.NewNop())
	require.NoError(t, err)
	svc := NewService(client)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(80), stats.Data.TotalCustomers)

	_, err = svc.RecentActivity(context.Background())
	var statusErr *apiclient.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "Error al obtener actividad reciente: timeout", statusErr.BackendMessage)
}
