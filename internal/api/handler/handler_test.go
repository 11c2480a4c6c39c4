package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cafe-report-api/infrastructure/repository/memory"
	"github.com/vfg2006/cafe-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cafe-report-api/internal/api/handler/router"
	"github.com/vfg2006/cafe-report-api/internal/domain"
	"github.com/vfg2006/cafe-report-api/internal/usecases/dashboard"
	"github.com/vfg2006/cafe-report-api/internal/usecases/syncing"
	"github.com/vfg2006/cafe-report-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

// steppingClock avança um minuto a cada chamada
func steppingClock() func() time.Time {
	var mu sync.Mutex
	current := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Minute)
		return current
	}
}

func newTestShell(store *memory.Store, initial domain.ReportFilter) *dashboard.Shell {
	return dashboard.NewShell(
		syncing.NewCafeHook(store.Cafes()),
		syncing.NewAdsReportHook(store.AdsReports()),
		syncing.NewContentReportHook(store.ContentReports()),
		initial,
	)
}

func newTestRouter(shell *dashboard.Shell) http.Handler {
	return router.New(
		router.WithRoutes(Healthcheck(nil)...),
		router.WithRoutes(Dashboard(shell)...),
		router.WithRoutes(Cafes(shell.Cafes())...),
		router.WithRoutes(AdsReports(shell.AdsReports())...),
		router.WithRoutes(ContentReports(shell.ContentReports())...),
	)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func seedCafe(t *testing.T, store *memory.Store, name string) *domain.Cafe {
	t.Helper()

	cafe, err := store.Cafes().Insert(context.Background(), &domain.CafeInput{
		Name:   name,
		Status: domain.CafeStatusActive,
	})
	require.NoError(t, err)
	return cafe
}

func seedAdsReport(t *testing.T, store *memory.Store, cafeID string, month int, platform string, impressions, clicks int64) *domain.AdsReport {
	t.Helper()

	report, err := store.AdsReports().Insert(context.Background(), &domain.AdsReportInput{
		CafeID:      cafeID,
		Month:       month,
		Year:        2024,
		Platform:    platform,
		Impressions: impressions,
		Clicks:      clicks,
		Budget:      500000,
	})
	require.NoError(t, err)
	return report
}

func TestCafeEndpoints(t *testing.T) {
	shell := newTestShell(memory.NewStore(memory.WithClock(steppingClock())), domain.NewReportFilter("", 6, 2024))
	h := newTestRouter(shell)

	rec := do(t, h, http.MethodPost, "/v1/cafes", `{"name":"Kopi Senja","status":"active","email":"halo@kopisenja.id"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[domain.Cafe](t, rec)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Kopi Senja", created.Name)

	rec = do(t, h, http.MethodPost, "/v1/cafes", `{"name":"Warung Kopi","status":"active"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/cafes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	snapshot := decode[syncing.Snapshot[domain.Cafe]](t, rec)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, created.ID, snapshot.Items[0].ID)
	assert.Nil(t, snapshot.Error)

	rec = do(t, h, http.MethodPut, "/v1/cafes/"+created.ID, `{"status":"inactive"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[domain.Cafe](t, rec)
	assert.Equal(t, domain.CafeStatusInactive, updated.Status)
	assert.Equal(t, "Kopi Senja", updated.Name)

	rec = do(t, h, http.MethodGet, "/v1/cafes/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.CafeSummary{Total: 2, Active: 1, Inactive: 1}, decode[domain.CafeSummary](t, rec))

	rec = do(t, h, http.MethodDelete, "/v1/cafes/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/v1/cafes/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrSyncNotFound, decode[apiErrors.APIError](t, rec).Code)

	rec = do(t, h, http.MethodGet, "/v1/cafes", "")
	assert.Len(t, decode[syncing.Snapshot[domain.Cafe]](t, rec).Items, 1)
}

func TestCreateRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "campo desconhecido",
			body:           `{"name":"Kopi","status":"active","owner":"x"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "json malformado",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "nome ausente",
			body:           `{"status":"active"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:           "status fora do enum",
			body:           `{"name":"Kopi","status":"closed"}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell := newTestShell(memory.NewStore(), domain.ReportFilter{})
			h := newTestRouter(shell)

			rec := do(t, h, http.MethodPost, "/v1/cafes", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCode, decode[apiErrors.APIError](t, rec).Code)
			assert.Empty(t, shell.Cafes().Snapshot().Items)
		})
	}
}

func TestFilterEndpoints(t *testing.T) {
	store := memory.NewStore(memory.WithClock(steppingClock()))
	cafe := seedCafe(t, store, "Kopi Senja")
	seedAdsReport(t, store, cafe.ID, 6, domain.PlatformMetaAds, 10000, 200)
	july := seedAdsReport(t, store, cafe.ID, 7, domain.PlatformGoogleAds, 5000, 100)

	shell := newTestShell(store, domain.NewReportFilter("", 6, 2024))
	require.NoError(t, shell.Start(context.Background()))
	h := newTestRouter(shell)

	rec := do(t, h, http.MethodGet, "/v1/filter", "")
	require.Equal(t, http.StatusOK, rec.Code)
	current := decode[filterResponse](t, rec)
	assert.Equal(t, domain.NewReportFilter(cafe.ID, 6, 2024), current.Filter)
	assert.Equal(t, "Juni 2024", current.Title)

	rec = do(t, h, http.MethodPut, "/v1/filter", `{"cafe_id":"`+cafe.ID+`","month":7,"year":2024}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Juli 2024", decode[filterResponse](t, rec).Title)

	rec = do(t, h, http.MethodGet, "/v1/ads-reports", "")
	require.Equal(t, http.StatusOK, rec.Code)
	snapshot := decode[syncing.Snapshot[domain.AdsReport]](t, rec)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, july.ID, snapshot.Items[0].ID)
	require.NotNil(t, snapshot.Filter)
	assert.Equal(t, 7, snapshot.Filter.Month)

	rec = do(t, h, http.MethodPut, "/v1/filter", `{"cafe_id":"`+cafe.ID+`","month":13,"year":2024}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decode[apiErrors.APIError](t, rec).Code)
	assert.Equal(t, 7, shell.Filter().Month)
}

func TestAdsReportEndpoints(t *testing.T) {
	store := memory.NewStore(memory.WithClock(steppingClock()))
	cafe := seedCafe(t, store, "Kopi Senja")
	seedAdsReport(t, store, cafe.ID, 6, domain.PlatformGoogleAds, 5000, 100)

	shell := newTestShell(store, domain.NewReportFilter(cafe.ID, 6, 2024))
	require.NoError(t, shell.Start(context.Background()))
	h := newTestRouter(shell)

	body := `{"cafe_id":"` + cafe.ID + `","month":6,"year":2024,"platform":"Meta Ads","impressions":20000,"clicks":400,"budget":1500000}`
	rec := do(t, h, http.MethodPost, "/v1/ads-reports", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[domain.AdsReport](t, rec)

	rec = do(t, h, http.MethodGet, "/v1/ads-reports", "")
	snapshot := decode[syncing.Snapshot[domain.AdsReport]](t, rec)
	require.Len(t, snapshot.Items, 2)
	assert.Equal(t, created.ID, snapshot.Items[0].ID)

	rec = do(t, h, http.MethodGet, "/v1/ads-reports/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[domain.AdsSummary](t, rec)
	assert.Equal(t, int64(25000), summary.Totals.Impressions)
	assert.Equal(t, int64(500), summary.Totals.Clicks)
	assert.Equal(t, int64(2000000), summary.Totals.Budget)
	assert.InDelta(t, 2.0, summary.Totals.CTR, 0.0001)
	require.Len(t, summary.Platforms, 2)
	assert.Equal(t, domain.PlatformMetaAds, summary.Platforms[0].Platform)

	rec = do(t, h, http.MethodPut, "/v1/ads-reports/"+created.ID, `{"conversions":12}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(12), decode[domain.AdsReport](t, rec).Conversions)

	rec = do(t, h, http.MethodPut, "/v1/ads-reports/missing", `{"conversions":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/v1/ads-reports/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodPost, "/v1/ads-reports/refetch", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[syncing.Snapshot[domain.AdsReport]](t, rec).Items, 1)
}

func TestContentReportEndpoints(t *testing.T) {
	store := memory.NewStore(memory.WithClock(steppingClock()))
	cafe := seedCafe(t, store, "Kopi Senja")

	shell := newTestShell(store, domain.NewReportFilter(cafe.ID, 6, 2024))
	require.NoError(t, shell.Start(context.Background()))
	h := newTestRouter(shell)

	posts := []string{
		`{"cafe_id":"` + cafe.ID + `","month":6,"year":2024,"post_date":"2024-06-03","platform":"Instagram","status":"Published","media_type":"image"}`,
		`{"cafe_id":"` + cafe.ID + `","month":6,"year":2024,"post_date":"2024-06-20","platform":"TikTok","status":"Draft","media_type":"video"}`,
		`{"cafe_id":"` + cafe.ID + `","month":6,"year":2024,"post_date":"2024-06-11","platform":"Instagram","status":"Published","media_type":"carousel","media_url":"https://cdn.example.com/p.jpg"}`,
	}
	for _, body := range posts {
		rec := do(t, h, http.MethodPost, "/v1/content-reports", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := do(t, h, http.MethodGet, "/v1/content-reports", "")
	snapshot := decode[syncing.Snapshot[domain.ContentReport]](t, rec)
	require.Len(t, snapshot.Items, 3)
	dates := make([]string, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		dates = append(dates, item.PostDate.String())
	}
	assert.Equal(t, []string{"2024-06-20", "2024-06-11", "2024-06-03"}, dates)

	rec = do(t, h, http.MethodGet, "/v1/content-reports/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[domain.ContentSummary](t, rec)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, []domain.CategoryCount{{Name: "Instagram", Count: 2}, {Name: "TikTok", Count: 1}}, summary.Platforms)

	rec = do(t, h, http.MethodPost, "/v1/content-reports", `{"cafe_id":"`+cafe.ID+`","month":6,"year":2024,"post_date":"03/06/2024","platform":"Instagram","status":"Published","media_type":"image"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOverviewEndpoint(t *testing.T) {
	store := memory.NewStore(memory.WithClock(steppingClock()))
	cafe := seedCafe(t, store, "Kopi Senja")
	seedAdsReport(t, store, cafe.ID, 6, domain.PlatformMetaAds, 20000, 400)

	shell := newTestShell(store, domain.NewReportFilter("", 6, 2024))
	require.NoError(t, shell.Start(context.Background()))
	h := newTestRouter(shell)

	rec := do(t, h, http.MethodGet, "/v1/overview", "")
	require.Equal(t, http.StatusOK, rec.Code)

	overview := decode[domain.DashboardOverview](t, rec)
	assert.Equal(t, "Kopi Senja", overview.CafeName)
	assert.Equal(t, int64(20000), overview.TotalImpressions)
	assert.InDelta(t, 2.0, overview.CTR, 0.0001)
	assert.True(t, overview.AdsStatus.HasData)
	assert.False(t, overview.ContentStatus.HasData)
}

func TestRefetchFailureReturnsBadGateway(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAdsReportRepository(ctrl)
	repo.EXPECT().
		Select(gomock.Any(), gomock.Any(), domain.AdsReportOrder).
		Return(nil, errors.New("connection refused"))

	hook := syncing.NewAdsReportHook(repo)
	h := router.New(router.WithRoutes(AdsReports(hook)...))

	rec := do(t, h, http.MethodPost, "/v1/ads-reports/refetch", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decode[apiErrors.APIError](t, rec)
	assert.Equal(t, apiErrors.ErrSyncOperation, body.Code)
	assert.Equal(t, "connection refused", body.Message)

	snapshot := hook.Snapshot()
	require.NotNil(t, snapshot.Error)
	assert.Equal(t, "connection refused", *snapshot.Error)
	assert.False(t, snapshot.Loading)
}

func TestCreateFailureLeavesCacheUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCafeRepository(ctrl)
	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("duplicate key value violates unique constraint"))

	hook := syncing.NewCafeHook(repo)
	h := router.New(router.WithRoutes(Cafes(hook)...))

	rec := do(t, h, http.MethodPost, "/v1/cafes", `{"name":"Kopi","status":"active"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "duplicate key value violates unique constraint", decode[apiErrors.APIError](t, rec).Message)
	assert.Empty(t, hook.Snapshot().Items)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name           string
		db             Pinger
		expectedStatus int
		expectedBody   string
	}{
		{name: "sem banco", db: nil, expectedStatus: http.StatusOK, expectedBody: "ok"},
		{name: "banco ok", db: stubPinger{}, expectedStatus: http.StatusOK, expectedBody: "ok"},
		{name: "banco fora", db: stubPinger{err: errors.New("dial tcp: refused")}, expectedStatus: http.StatusServiceUnavailable, expectedBody: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := router.New(router.WithRoutes(Healthcheck(tt.db)...))

			rec := do(t, h, http.MethodGet, "/healthcheck", "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedBody, decode[healthResponse](t, rec).Status)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	h := router.New(router.WithRoutes(Healthcheck(nil)...))

	rec := do(t, h, http.MethodGet, "/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decode[apiErrors.APIError](t, rec).Code)

	rec = do(t, h, http.MethodPost, "/healthcheck", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, apiErrors.ErrMethodNotAllowed, decode[apiErrors.APIError](t, rec).Code)
}
