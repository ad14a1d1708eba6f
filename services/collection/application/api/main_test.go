package api_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/boxjoy/pkg/config"
	"github.com/ghuser/boxjoy/pkg/kvstore"
	"github.com/ghuser/boxjoy/pkg/logger"
	"github.com/ghuser/boxjoy/services/collection/application/api"
	"github.com/ghuser/boxjoy/services/collection/application/handlers"
	appsvcs "github.com/ghuser/boxjoy/services/collection/application/services"
	collectiondomain "github.com/ghuser/boxjoy/services/collection/domain"
	"github.com/ghuser/boxjoy/services/collection/domain/models"
	"github.com/ghuser/boxjoy/services/collection/infrastructure/persistence/kv"
)

type fakeClassifier struct {
	err error
}

func (f fakeClassifier) Identify(context.Context, []byte, string) (models.Identification, error) {
	if f.err != nil {
		return models.Identification{}, f.err
	}
	return models.Identification{
		Name: "霸王龍", Series: "DIMOO 侏羅紀", Rarity: models.RaritySecret,
		Description: "穿著恐龍裝", Confidence: 0.9,
	}, nil
}

func newTestServer(t *testing.T, classifier appsvcs.Classifier) *httptest.Server {
	t.Helper()
	cfg := &config.Config{Environment: config.EnvTesting, LogLevel: "error"}
	log := logger.NewWithWriter(cfg, io.Discard)

	repo := kv.NewCollectionRepository(kvstore.NewMemoryStore(), "boxjoy_series_v5", "boxjoy_items_v5", log)
	collection, err := appsvcs.NewCollectionService(context.Background(), repo, nil, log)
	require.NoError(t, err)

	svcs := &appsvcs.Services{
		Collection: collection,
		Classify:   appsvcs.NewClassifyService(classifier, time.Second, nil, log),
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) { api.CollectionRoutes(r, cfg, svcs) })
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestSeriesEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := do(t, http.MethodGet, srv.URL+"/api/series", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]handlers.SeriesProgressResponse](t, resp)
	require.Len(t, list, 5)
	assert.Equal(t, "s1", list[0].ID)
	assert.Equal(t, 3, list[0].OwnedCount)
	assert.Equal(t, 13, list[0].Total)

	resp = do(t, http.MethodPost, srv.URL+"/api/series", map[string]any{"name": "Labubu", "totalSecret": 0})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[handlers.SeriesResponse](t, resp)
	assert.Equal(t, 12, created.TotalRegular)
	assert.Equal(t, 0, created.TotalSecret)

	resp = do(t, http.MethodPut, srv.URL+"/api/series/"+created.ID, map[string]any{"name": "Labubu v2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Labubu v2", decode[handlers.SeriesResponse](t, resp).Name)

	resp = do(t, http.MethodGet, srv.URL+"/api/series/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/api/series", map[string]any{"name": "  "})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/api/series", map[string]any{"name": "X", "totalRegular": -1})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDeleteSeries_CascadesOverHTTP(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := do(t, http.MethodDelete, srv.URL+"/api/series/s1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4, decode[handlers.DeleteSeriesResponse](t, resp).DeletedItems)

	resp = do(t, http.MethodGet, srv.URL+"/api/items?series=s1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, decode[handlers.ItemListResponse](t, resp).Count)

	resp = do(t, http.MethodDelete, srv.URL+"/api/series/s1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestItemsEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := do(t, http.MethodPost, srv.URL+"/api/items", map[string]any{
		"name": "企鵝", "seriesId": "s1", "price": 350, "tags": []string{"新品"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[handlers.ItemResponse](t, resp)
	assert.Equal(t, "displayed", created.Status)
	assert.Equal(t, "展示中", created.StatusLabel)
	assert.NotEmpty(t, created.DateAcquired)

	resp = do(t, http.MethodPut, srv.URL+"/api/items/"+created.ID, map[string]any{
		"name": "企鵝", "seriesId": "s1", "price": 400, "status": "stored",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[handlers.ItemResponse](t, resp)
	assert.Equal(t, created.DateAcquired, updated.DateAcquired)
	assert.Equal(t, "stored", updated.Status)
	assert.Empty(t, updated.Tags)

	resp = do(t, http.MethodGet, srv.URL+"/api/items/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 400.0, decode[handlers.ItemResponse](t, resp).Price)

	resp = do(t, http.MethodDelete, srv.URL+"/api/items/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/api/items/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateItem_Errors(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name       string
		body       map[string]any
		wantStatus int
	}{
		{"unknown series", map[string]any{"name": "X", "seriesId": "s99"}, http.StatusNotFound},
		{"negative price", map[string]any{"name": "X", "seriesId": "s1", "price": -5}, http.StatusUnprocessableEntity},
		{"bad status", map[string]any{"name": "X", "seriesId": "s1", "status": "lost"}, http.StatusUnprocessableEntity},
		{"missing name", map[string]any{"seriesId": "s1"}, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, http.MethodPost, srv.URL+"/api/items", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestListItems_ViewQuery(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := do(t, http.MethodGet, srv.URL+"/api/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := decode[handlers.ItemListResponse](t, resp)
	assert.Equal(t, 10, all.Count)
	assert.Nil(t, all.GhostSlots, "no ghost slots without a series")

	resp = do(t, http.MethodGet, srv.URL+"/api/items?series=s1", nil)
	bySeries := decode[handlers.ItemListResponse](t, resp)
	assert.Equal(t, 4, bySeries.Count)
	require.NotNil(t, bySeries.GhostSlots)
	assert.Equal(t, 8, bySeries.GhostSlots.Regular)
	assert.Equal(t, 1, bySeries.GhostSlots.Secret)
	require.Len(t, bySeries.GhostSlots.Placeholders, 9)
	assert.Equal(t, handlers.SlotPlaceholder{Kind: "regular", Index: 0}, bySeries.GhostSlots.Placeholders[0])
	assert.Equal(t, handlers.SlotPlaceholder{Kind: "secret", Index: 0}, bySeries.GhostSlots.Placeholders[8])

	resp = do(t, http.MethodGet, srv.URL+"/api/items?series=s1&status=displayed", nil)
	filtered := decode[handlers.ItemListResponse](t, resp)
	assert.Equal(t, 2, filtered.Count)
	assert.Nil(t, filtered.GhostSlots, "ghost slots hidden under a status filter")

	resp = do(t, http.MethodGet, srv.URL+"/api/items?q=%E9%BE%8D&sort=price_asc", nil) // q=龍
	byPrice := decode[handlers.ItemListResponse](t, resp)
	require.Equal(t, 2, byPrice.Count)
	assert.Equal(t, "翼龍", byPrice.Items[0].Name)
	assert.True(t, byPrice.Items[1].Secret)

	resp = do(t, http.MethodGet, srv.URL+"/api/items?sort=bogus", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "unknown sort falls back to default")

	resp = do(t, http.MethodGet, srv.URL+"/api/items?status=lost", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSlotsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := do(t, http.MethodGet, srv.URL+"/api/series/s4/slots", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	slots := decode[handlers.SlotsResponse](t, resp)
	assert.True(t, slots.Applicable)
	assert.Equal(t, 11, slots.Regular)
	assert.Equal(t, 0, slots.Secret, "the T-Rex fills the secret slot")

	assert.Len(t, slots.Placeholders, 11)

	resp = do(t, http.MethodGet, srv.URL+"/api/series/s4/slots?q=x", nil)
	hidden := decode[handlers.SlotsResponse](t, resp)
	assert.False(t, hidden.Applicable)
	assert.Empty(t, hidden.Placeholders)

	resp = do(t, http.MethodGet, srv.URL+"/api/series/zzz/slots", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStatsAndReset(t *testing.T) {
	srv := newTestServer(t, nil)

	resp := do(t, http.MethodGet, srv.URL+"/api/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	st := decode[handlers.StatsResponse](t, resp)
	assert.Equal(t, 8, st.OwnedCount)
	assert.Equal(t, 2, st.Level)
	assert.Equal(t, 60, st.Progress)

	resp = do(t, http.MethodGet, srv.URL+"/api/stats/snapshot", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	do(t, http.MethodDelete, srv.URL+"/api/series/s1", nil)

	resp = do(t, http.MethodPost, srv.URL+"/api/reset", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/api/reset", map[string]any{"confirm": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, handlers.ResetResponse{Series: 5, Items: 10}, decode[handlers.ResetResponse](t, resp))
}

func TestClassifyEndpoint(t *testing.T) {
	img := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg"))

	t.Run("disabled", func(t *testing.T) {
		srv := newTestServer(t, nil)
		resp := do(t, http.MethodPost, srv.URL+"/api/classify", map[string]any{"image": img})
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("success", func(t *testing.T) {
		srv := newTestServer(t, fakeClassifier{})
		resp := do(t, http.MethodPost, srv.URL+"/api/classify", map[string]any{"image": img})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode[handlers.ClassifyResponse](t, resp)
		assert.Equal(t, "Secret", got.Rarity)
		assert.Equal(t, 0.9, got.Confidence)
	})

	t.Run("upstream failure", func(t *testing.T) {
		srv := newTestServer(t, fakeClassifier{err: collectiondomain.ErrClassificationFailed})
		resp := do(t, http.MethodPost, srv.URL+"/api/classify", map[string]any{"image": img})
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("bad image", func(t *testing.T) {
		srv := newTestServer(t, fakeClassifier{})
		resp := do(t, http.MethodPost, srv.URL+"/api/classify", map[string]any{"image": "***"})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("missing image", func(t *testing.T) {
		srv := newTestServer(t, fakeClassifier{})
		resp := do(t, http.MethodPost, srv.URL+"/api/classify", map[string]any{})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}
