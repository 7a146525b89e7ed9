package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/go-book-catalog/internal/adapters/http"
	"github.com/jsamuelsen11/go-book-catalog/internal/adapters/storage/sqlstore"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/config"
	"github.com/jsamuelsen11/go-book-catalog/internal/platform/logging"
)

// writeConfigDir creates a config directory with a "test" profile backed by
// a SQLite file in a temporary directory.
func writeConfigDir(t *testing.T, extra string) string {
	t.Helper()

	dir := t.TempDir()
	dsn := "file:" + filepath.Join(dir, "books.db")

	base := "log:\n  level: error\n  format: text\n"
	profile := "database:\n  driver: sqlite\n  dsn: \"" + dsn + "\"\n  connect_retry:\n    max_attempts: 1\n" + extra

	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(base), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(profile), 0o600))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_RequiresProfile(t *testing.T) {
	t.Setenv("APP_PROFILE", "")

	_, err := execute(t, "seed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_PROFILE")
}

func TestRoot_RejectsUnknownProfile(t *testing.T) {
	dir := writeConfigDir(t, "")

	_, err := execute(t, "seed", "--profile", "missing", "--config-dir", dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestSeedCmd_LoadsOnce(t *testing.T) {
	dir := writeConfigDir(t, "")

	out, err := execute(t, "seed", "--profile", "test", "--config-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "seeded 5 books", strings.TrimSpace(out))

	out, err = execute(t, "seed", "--profile", "test", "--config-dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "seeded 0 books", strings.TrimSpace(out))
}

func TestSeedCmd_ProfileFromEnvironment(t *testing.T) {
	dir := writeConfigDir(t, "")
	t.Setenv("APP_PROFILE", "test")

	out, err := execute(t, "seed", "--config-dir", dir)

	require.NoError(t, err)
	assert.Contains(t, out, "seeded")
}

func TestInjector_WiresRouter(t *testing.T) {
	dir := writeConfigDir(t, "")
	cfg, err := config.Load("test", config.WithConfigDir(dir))
	require.NoError(t, err)

	ctx := context.Background()
	injector := newInjector(ctx, cfg, logging.New("error", "text", &bytes.Buffer{}), nil)
	t.Cleanup(func() { _ = do.MustInvoke[*sqlstore.DB](injector).Close() })

	handler, err := do.Invoke[http.Handler](injector)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "database")
	assert.Contains(t, rec.Body.String(), "storage-breaker")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-Total-Count"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestInjector_AuthEnabledProtectsBooks(t *testing.T) {
	dir := writeConfigDir(t, "http:\n  auth:\n    enabled: true\n    jwt_secret: \"0123456789abcdef0123456789abcdef\"\n")
	cfg, err := config.Load("test", config.WithConfigDir(dir))
	require.NoError(t, err)

	injector := newInjector(context.Background(), cfg, logging.New("error", "text", &bytes.Buffer{}), nil)
	t.Cleanup(func() { _ = do.MustInvoke[*sqlstore.DB](injector).Close() })

	handler := do.MustInvoke[http.Handler](injector)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareChain_RateLimitOptional(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	without := middlewareChain(cfg, logging.New("error", "text", &bytes.Buffer{}), nil)

	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 1}
	with := middlewareChain(cfg, logging.New("error", "text", &bytes.Buffer{}), nil)

	require.Len(t, with, len(without))
	assert.Nil(t, without[6])
	assert.NotNil(t, with[6])
}

func TestRunServer_StopsWhenContextEnds(t *testing.T) {
	t.Parallel()

	server := adapthttp.NewServer(config.ServerConfig{
		Host:         "127.0.0.1",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServer(ctx, server, time.Second, logging.New("error", "text", &bytes.Buffer{})) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + server.Addr() + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("runServer did not return after cancellation")
	}
}

func TestRunServer_ListenFailure(t *testing.T) {
	t.Parallel()

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })
	port := busy.Addr().(*net.TCPAddr).Port

	server := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1", Port: port}, http.NotFoundHandler(), nil)

	err = runServer(context.Background(), server, time.Second, logging.New("error", "text", &bytes.Buffer{}))

	assert.ErrorContains(t, err, "listening on")
}
