package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bfd-backend/domain/catalog"
)

type catalogFixture struct {
	server *httptest.Server
	sink   *recordingSink
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()

	sink := &recordingSink{}
	handler := NewCatalogHandler(catalog.New(), sink, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/destinations", handler.ListDestinations)
		r.Get("/destinations/{slug}", handler.GetDestination)
		r.Get("/destinations/{slug}/mission", handler.GetDestinationMission)
		r.Get("/routes", handler.ListRoutes)
		r.Get("/routes/{slug}", handler.GetRoute)
		r.Get("/routes/{slug}/mission", handler.GetRouteMission)
		r.Get("/deals", handler.ListDeals)
		r.Get("/deals/{dealID}/mission", handler.GetDealMission)
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &catalogFixture{server: server, sink: sink}
}

func (f *catalogFixture) get(t *testing.T, path string) (*http.Response, map[string]interface{}) {
	t.Helper()

	resp, err := http.Get(f.server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestCatalogHandler_ListDestinations(t *testing.T) {
	f := newCatalogFixture(t)

	resp, body := f.get(t, "/catalog/destinations")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	dests := body["destinations"].([]interface{})
	require.NotEmpty(t, dests)
	first := dests[0].(map[string]interface{})
	assert.Equal(t, "lisbon", first["slug"])
	assert.Equal(t, "LIS", first["destinationCode"])
	// index projections stay lean
	assert.NotContains(t, first, "sections")
}

func TestCatalogHandler_GetDestination(t *testing.T) {
	f := newCatalogFixture(t)

	resp, body := f.get(t, "/catalog/destinations/lisbon")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Portugal", body["country"])
	assert.Contains(t, body, "sections")

	resp, _ = f.get(t, "/catalog/destinations/atlantis")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalogHandler_GetDestinationMission(t *testing.T) {
	f := newCatalogFixture(t)

	resp, body := f.get(t, "/catalog/destinations/lisbon/mission")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	m := body["mission"].(map[string]interface{})
	assert.Equal(t, "yyz-lis", m["id"])
	assert.Equal(t, "deep_link", m["source"])

	launched := f.sink.named("destination_mission_launched")
	require.Len(t, launched, 1)
	assert.Equal(t, "lisbon", launched[0].props["slug"])
}

func TestCatalogHandler_Routes(t *testing.T) {
	f := newCatalogFixture(t)

	resp, body := f.get(t, "/catalog/routes")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	routes := body["routes"].([]interface{})
	assert.Len(t, routes, 180)

	resp, body = f.get(t, "/catalog/routes/toronto-to-lisbon")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "YYZ", body["originIata"])

	views := f.sink.named("route_page_view")
	require.Len(t, views, 1)
	assert.Equal(t, "toronto-to-lisbon", views[0].props["slug"])

	resp, _ = f.get(t, "/catalog/routes/toronto-to-narnia")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalogHandler_GetRouteMission(t *testing.T) {
	f := newCatalogFixture(t)

	resp, body := f.get(t, "/catalog/routes/toronto-to-bangkok/mission")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	m := body["mission"].(map[string]interface{})
	assert.Equal(t, "toronto-to-bangkok", m["id"])
	assert.Equal(t, "BKK", m["destinationCode"])
	assert.Equal(t, "November", m["month"])

	started := f.sink.named("route_mission_started")
	require.Len(t, started, 1)
	assert.Equal(t, "YYZ", started[0].props["origin"])
}

func TestCatalogHandler_Deals(t *testing.T) {
	f := newCatalogFixture(t)

	resp, body := f.get(t, "/catalog/deals")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deals := body["deals"].([]interface{})
	assert.Len(t, deals, 8)

	resp, body = f.get(t, "/catalog/deals/yyz-mex/mission")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	m := body["mission"].(map[string]interface{})
	assert.Equal(t, "MEX", m["destinationCode"])
	assert.Equal(t, "deals_grid", m["source"])

	resp, _ = f.get(t, "/catalog/deals/yyz-xyz/mission")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
