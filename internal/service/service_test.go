package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/storage/sqlstore"
	"github.com/mmynk/splitledger/pkg/api"
)

// setupTestServer starts both services against a fresh SQLite database and
// returns clients for them. Everything is torn down with the test.
func setupTestServer(t *testing.T) (*api.SplitServiceClient, *api.GroupServiceClient) {
	t.Helper()

	store, err := sqlstore.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	opts := connect.WithInterceptors(middleware.ValidationInterceptor())
	splitPath, splitHandler := api.NewSplitServiceHandler(NewSplitService(), opts)
	groupPath, groupHandler := api.NewGroupServiceHandler(NewGroupService(store), opts)

	mux := http.NewServeMux()
	mux.Handle(splitPath, splitHandler)
	mux.Handle(groupPath, groupHandler)

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return api.NewSplitServiceClient(http.DefaultClient, server.URL),
		api.NewGroupServiceClient(http.DefaultClient, server.URL)
}

// expectCode fails the test unless err is a Connect error with the given code.
func expectCode(t *testing.T, err error, want connect.Code) *connect.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Fatalf("expected code %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
	return connectErr
}

func boolPtr(b bool) *bool { return &b }
