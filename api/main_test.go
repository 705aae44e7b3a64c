package api_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"

	"go.uber.org/goleak"

	"github.com/carelink/carelink/api"
	dbfs "github.com/carelink/carelink/db"
	"github.com/carelink/carelink/internal/db"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// setupServer starts a test server over a fresh in-memory database with the
// embedded migrations applied. Each test gets its own database named after
// the test.
func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	api.SetLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	d, err := db.New(ctx, dsn, nil)
	if err != nil {
		t.Fatalf("db.New returned error: %v", err)
	}
	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("db.Migrate returned error: %v", err)
	}

	srv := httptest.NewServer(api.SetupRoutes("test", "unknown", d))
	t.Cleanup(func() {
		srv.Close()
		d.Close()
		http.DefaultClient.CloseIdleConnections()
	})

	return srv
}

// doJSON issues a request with a JSON body and returns the response.
func doJSON(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s returned error: %v", method, url, err)
	}
	return resp
}
