package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"strategy-worker/internal/events"
	"strategy-worker/internal/licserver"
	"strategy-worker/internal/worker"
	"strategy-worker/pkg/db"
	"strategy-worker/pkg/license"
)

const gateSecret = "integration-secret"

// newLicenseTestServer wires a license server over an in-memory ledger.
func newLicenseTestServer(t *testing.T) (*httptest.Server, func()) {
	t.Helper()

	database, err := db.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create db: %v", err)
	}
	if err := db.ApplyMigrations(database); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	server := licserver.NewServer(database, gateSecret, zerolog.Nop())
	httpServer := httptest.NewServer(server.Router)

	cleanup := func() {
		httpServer.Close()
		_ = database.Close()
	}
	return httpServer, cleanup
}

func doRequest(t *testing.T, client *http.Client, method, url string, body any, out any) int {
	t.Helper()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if out != nil {
		respBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("failed to read body: %v", err)
		}
		if err := json.Unmarshal(respBytes, out); err != nil {
			t.Fatalf("failed to decode body %s: %v", respBytes, err)
		}
	}
	return resp.StatusCode
}

// TestLicenseGateWorkflow runs the whole licensing loop: issue a token from
// the license server, verify it, then use it to call an auth-enabled worker.
func TestLicenseGateWorkflow(t *testing.T) {
	machine, err := license.MachineID()
	if err != nil {
		t.Skipf("machine id unavailable: %v", err)
	}

	log.Println("🧪 Starting License Gate Test...")

	licSrv, licCleanup := newLicenseTestServer(t)
	defer licCleanup()

	// Issue a token bound to this host.
	var issued struct {
		Token     string `json:"token"`
		ExpiresAt string `json:"expires_at"`
	}
	statusCode := doRequest(t, licSrv.Client(), http.MethodPost, licSrv.URL+"/license/issue",
		map[string]any{
			"machine": machine,
			"days":    7,
			"note":    "integration run",
		}, &issued)
	if statusCode != http.StatusOK || issued.Token == "" {
		t.Fatalf("issue failed, status=%d resp=%+v", statusCode, issued)
	}
	log.Println("✅ License issued")

	// The server recognises its own ledger entry.
	var verified struct {
		Valid   bool   `json:"valid"`
		Machine string `json:"machine"`
		Known   bool   `json:"known"`
	}
	statusCode = doRequest(t, licSrv.Client(), http.MethodGet,
		licSrv.URL+"/license/verify?token="+issued.Token, nil, &verified)
	if statusCode != http.StatusOK {
		t.Fatalf("verify failed, status=%d", statusCode)
	}
	if !verified.Valid || !verified.Known || verified.Machine != machine {
		t.Fatalf("verify answer wrong: %+v", verified)
	}
	log.Println("✅ License verified")

	// An auth-enabled worker sharing the secret.
	reg := newGridRegistry(t)
	client, cleanup := newWorkerTestClient(t, reg, events.NewBus(), worker.Options{
		Concurrency: 2,
		RequireAuth: true,
		Licenses:    license.NewManager(gateSecret),
	})
	defer cleanup()

	t.Run("RejectsWithoutToken", func(t *testing.T) {
		_, err := client.OnTick(context.Background(), "BTCUSDT", 95, nil)
		if status.Code(err) != codes.Unauthenticated {
			t.Fatalf("err=%v, expected Unauthenticated", err)
		}
		log.Println("✅ Unauthenticated tick rejected")
	})

	t.Run("AcceptsIssuedToken", func(t *testing.T) {
		ctx := metadata.AppendToOutgoingContext(context.Background(),
			"authorization", "Bearer "+issued.Token)
		sig, err := client.OnTick(ctx, "BTCUSDT", 95, nil)
		if err != nil {
			t.Fatalf("authed OnTick failed: %v", err)
		}
		if sig.Action != "BUY" {
			t.Errorf("action = %s, want BUY", sig.Action)
		}
		log.Println("✅ Authed tick answered")
	})

	log.Println("🎉 License gate workflow passed")
}
