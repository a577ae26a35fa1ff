package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig creates a config file keeping all state under a temp dir.
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "storage:\n  path: " + filepath.Join(dir, "worklance.db") + "\n  session_backend: sqlite\n" +
		"log:\n  file: " + filepath.Join(dir, "worklance.log") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/auth/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["password"] != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
				return
			}
			_, _ = w.Write([]byte(`{"id":"u1","name":"Ana","role":"freelancer","trust_score":80}`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = orig })
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestPing(t *testing.T) {
	srv := fakeBackend(t)
	cfg := writeConfig(t)

	out, err := execute(t, "--config", cfg, "--api", srv.URL, "ping")
	require.NoError(t, err)
	assert.Contains(t, out, "backend reachable at "+srv.URL)
}

func TestPingUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := execute(t, "--config", writeConfig(t), "--api", url, "ping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), url)
}

func TestLoginThenLogout(t *testing.T) {
	srv := fakeBackend(t)
	cfg := writeConfig(t)
	stubPassword(t, "secret")

	out, err := execute(t, "--config", cfg, "--api", srv.URL, "login", "--email", "ana@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as Ana (freelancer)")

	out, err = execute(t, "--config", cfg, "--api", srv.URL, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged out")

	out, err = execute(t, "--config", cfg, "--api", srv.URL, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in")
}

func TestLoginRejected(t *testing.T) {
	srv := fakeBackend(t)
	stubPassword(t, "wrong")

	_, err := execute(t, "--config", writeConfig(t), "--api", srv.URL, "login", "--email", "ana@example.com")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)
	assert.FileExists(t, path)

	_, err = execute(t, "--config", path, "config", "init")
	assert.Error(t, err)

	out, err = execute(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)
}
