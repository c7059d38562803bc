package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"companykata/internal/company"
	"companykata/internal/company/repository"
	"companykata/internal/config"
	"companykata/internal/fixture"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := repository.NewMemoryCompanyRepository(fixture.NewCompany())
	srv := httptest.NewServer(NewRouter(company.NewModule(repo, zap.NewNop()), zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/health")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestRouter_SupplierNames(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/api/v1/suppliers/names")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"names":"Shedtastic~Splendid Crocks~Annoying Pets~Gnomes 'R' Us~Furniture Hamlet~SFD~Doxins"`)
}

func TestRouter_TopCustomerIsStaticRoute(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/api/v1/customers/top")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"name":"Mary"`)
}

func TestRouter_DeliverThenInspect(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/cities/London/deliveries", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, fred := get(t, srv.URL+"/api/v1/customers/Fred")
	assert.NotContains(t, fred, `"delivered":false`)

	_, mary := get(t, srv.URL+"/api/v1/customers/Mary")
	assert.NotContains(t, mary, `"delivered":true`)
}

func TestRouter_UnknownCustomer(t *testing.T) {
	srv := newTestServer(t)

	status, body := get(t, srv.URL+"/api/v1/customers/Zed")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, `"error":"NOT_FOUND"`)
}

func TestNew_UsesConfiguredPort(t *testing.T) {
	srv := New(config.ServerConfig{Port: 9090}, http.NotFoundHandler(), zap.NewNop())

	assert.Equal(t, ":9090", srv.Addr())
}
