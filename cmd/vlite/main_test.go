package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vlite/internal/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", t.TempDir(), "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionShort(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestRenderCounter(t *testing.T) {
	out, err := execute(t, "render", "counter", "--click", "inc", "--click", "inc")
	require.NoError(t, err)
	assert.Contains(t, out, `<p class="count">Count: 2</p>`)
	assert.NotContains(t, out, "data-hid")
}

func TestRenderPretty(t *testing.T) {
	out, err := execute(t, "render", "todo", "--pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "\n  <h1>")
}

func TestRenderToDir(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "render", "todo", "--out", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "todo.html"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
	assert.Contains(t, string(data), "0 items left")
}

func TestRenderErrors(t *testing.T) {
	_, err := execute(t, "render", "chess")
	assert.Equal(t, "E601", errors.CodeOf(err))

	_, err = execute(t, "render", "counter", "--click", "missing")
	assert.Equal(t, "E401", errors.CodeOf(err))

	_, err = execute(t, "render")
	assert.Error(t, err)
}

func TestPublishRequiresBucket(t *testing.T) {
	_, err := execute(t, "publish", "counter")
	assert.Equal(t, "E502", errors.CodeOf(err))
}

func TestPublishToEndpoint(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()
	t.Setenv("AWS_ACCESS_KEY_ID", "id")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")

	_, err := execute(t, "publish", "counter", "--bucket", "site", "--prefix", "apps", "--endpoint", ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "/site/apps/counter.html", gotPath)
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vlite.json"), []byte(`{"log":{"level":"loud"}}`), 0644))

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--config", dir, "render", "counter"})
	err := cmd.Execute()
	assert.Equal(t, "E301", errors.CodeOf(err))
}

func TestNewServer(t *testing.T) {
	c := &cli{dir: t.TempDir(), logLevel: "error"}
	require.NoError(t, c.load())

	srv, err := c.newServer("counter")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), "Count: 0")

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `vlite_renders_total{app="counter",status="success"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	_, err = c.newServer("chess")
	assert.Error(t, err)
}
