package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appConfig "github.com/courtside/nba-stats/internal/config"
	dbconfig "github.com/courtside/nba-stats/internal/database/config"
	"github.com/courtside/nba-stats/internal/database/database"
)

// unreachableDatabaseEnv points the database settings at a port nothing listens on.
func unreachableDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "1")
	t.Setenv("DB_RETRY_MAX_ATTEMPTS", "1")
	t.Setenv("DB_AUTO_MIGRATE", "false")
}

func serverConfig(t *testing.T) appConfig.Config {
	t.Helper()
	cfg := testConfig(t)
	cfg.Server = appConfig.ServerConfig{
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		IdleTimeout:     5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
	}
	return cfg
}

func fetch(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServe_DatabaseUnreachable(t *testing.T) {
	unreachableDatabaseEnv(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, serverConfig(t), zap.NewNop().Sugar(), ln)
	}()

	base := "http://" + ln.Addr().String()
	client := &http.Client{Timeout: 10 * time.Second}

	status, body := fetch(t, client, base+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `href="/teams"`)

	for _, path := range []string{"/teams", "/shots"} {
		status, body = fetch(t, client, base+path)
		assert.Equal(t, http.StatusInternalServerError, status, path)
		assert.Equal(t, "An error occurred...", body, path)
	}

	status, _ = fetch(t, client, base+"/health")
	assert.Equal(t, http.StatusServiceUnavailable, status)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_InvalidTemplatesDir(t *testing.T) {
	unreachableDatabaseEnv(t)

	cfg := serverConfig(t)
	cfg.Web.TemplatesDir = t.TempDir()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	err = serve(context.Background(), cfg, zap.NewNop().Sugar(), ln)
	require.Error(t, err)

	_, dialErr := net.Dial("tcp", ln.Addr().String())
	assert.Error(t, dialErr, "listener should be closed")
}

func TestServe_MissingPageTemplate(t *testing.T) {
	unreachableDatabaseEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>index</h1>"), 0o644))

	cfg := serverConfig(t)
	cfg.Web.TemplatesDir = dir

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	err = serve(context.Background(), cfg, zap.NewNop().Sugar(), ln)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `template "teams" not found`)
}

func TestRun_InvalidAddress(t *testing.T) {
	cfg := serverConfig(t)
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "not-a-port"

	err := run(context.Background(), cfg, zap.NewNop().Sugar())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestConnectAndMigrate_UnreachableSkipsMigrations(t *testing.T) {
	unreachableDatabaseEnv(t)

	core, logs := observer.New(zapcore.WarnLevel)
	sugar := zap.New(core).Sugar()

	dbCfg := dbconfig.LoadConfigFromEnv()
	opts := database.OptionsFromEnv(sugar)
	db, err := database.Open(dbCfg, opts)
	require.NoError(t, err)
	defer func() { _ = database.Close(db) }()

	require.NoError(t, connectAndMigrate(context.Background(), db, dbCfg, opts, sugar))
	assert.Equal(t, 1, logs.FilterMessage("migrations skipped").Len())
	assert.Equal(t, 1, logs.FilterMessage("database unreachable, pages needing data will fail until it recovers").Len())
}
