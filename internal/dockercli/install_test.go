package dockercli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestInstallRunsFetchedScript(t *testing.T) {
	script := "#!/bin/sh\nexit 0\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(script))
	}))
	defer srv.Close()

	ins := &Installer{URL: srv.URL}
	if err := ins.Install(context.Background()); err != nil {
		t.Fatalf("Install: %v", err)
	}
}

func TestInstallVerifiesChecksum(t *testing.T) {
	script := "#!/bin/sh\nexit 0\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(script))
	}))
	defer srv.Close()

	sum := sha256.Sum256([]byte(script))
	good := &Installer{URL: srv.URL, SHA256: hex.EncodeToString(sum[:])}
	if err := good.Install(context.Background()); err != nil {
		t.Fatalf("Install with matching pin: %v", err)
	}

	bad := &Installer{URL: srv.URL, SHA256: strings.Repeat("0", 64)}
	err := bad.Install(context.Background())
	if err == nil {
		t.Fatal("Install should reject a checksum mismatch")
	}
	if !strings.Contains(err.Error(), "checksum mismatch") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInstallFailsOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	ins := &Installer{URL: srv.URL}
	if err := ins.Install(context.Background()); err == nil {
		t.Fatal("Install should fail on a non-200 response")
	}
}

func TestInstallFailsWhenScriptFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("#!/bin/sh\necho boom >&2\nexit 3\n"))
	}))
	defer srv.Close()

	ins := &Installer{URL: srv.URL}
	err := ins.Install(context.Background())
	if err == nil {
		t.Fatal("Install should surface script failure")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error should carry script output, got %v", err)
	}
}

func TestDaemonConfig(t *testing.T) {
	path := t.TempDir() + "/docker/daemon.json"
	if err := WriteDaemonConfig(path, "journald"); err != nil {
		t.Fatalf("WriteDaemonConfig: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading daemon config: %v", err)
	}
	if got := string(data); got != `{"log-driver":"journald"}` {
		t.Errorf("daemon.json = %s", got)
	}
}
