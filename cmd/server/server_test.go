package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/config"
	"github.com/mmynk/splitledger/internal/storage/sqlstore"
	"github.com/mmynk/splitledger/pkg/api"
)

func newTestServer(t *testing.T, metrics bool) *httptest.Server {
	t.Helper()

	store, err := sqlstore.New(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)

	cfg := &config.Config{MetricsEnabled: metrics}
	server := httptest.NewServer(newHandler(cfg, store))
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
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

func TestHealthz(t *testing.T) {
	server := newTestServer(t, false)

	status, body := get(t, server.URL+"/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)
}

func TestMetrics(t *testing.T) {
	server := newTestServer(t, true)
	client := api.NewSplitServiceClient(http.DefaultClient, server.URL)

	_, err := client.CalculateSplits(context.Background(), connect.NewRequest(&api.CalculateSplitsRequest{
		Total:  10,
		Policy: "equal",
		Inputs: []api.SplitInput{{MemberID: "a"}},
	}))
	require.NoError(t, err)

	_, err = client.CalculateSplits(context.Background(), connect.NewRequest(&api.CalculateSplitsRequest{
		Total: 10,
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	status, body := get(t, server.URL+"/metrics")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `splitledger_rpc_requests_total{code="ok",procedure="/splitledger.v1.SplitService/CalculateSplits"} 1`)
	assert.Contains(t, body, `splitledger_rpc_requests_total{code="invalid_argument",procedure="/splitledger.v1.SplitService/CalculateSplits"} 1`)
	assert.Contains(t, body, "splitledger_rpc_duration_seconds_bucket")
}

func TestMetricsDisabled(t *testing.T) {
	server := newTestServer(t, false)

	status, _ := get(t, server.URL+"/metrics")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCORSPreflight(t *testing.T) {
	server := newTestServer(t, false)

	req, err := http.NewRequest(http.MethodOptions, server.URL+api.GroupServiceCreateGroupProcedure, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Connect-Protocol-Version")
}

func TestGroupServiceMounted(t *testing.T) {
	server := newTestServer(t, false)
	client := api.NewGroupServiceClient(http.DefaultClient, server.URL)

	_, err := client.GetGroup(context.Background(), connect.NewRequest(&api.GetGroupRequest{GroupID: "missing"}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
