package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"strategy-worker/internal/events"
	"strategy-worker/internal/strategy"
	"strategy-worker/internal/worker"
)

// newWorkerTestClient starts a worker on an in-memory listener and returns a
// client wired to it.
func newWorkerTestClient(t *testing.T, reg *strategy.Registry, bus *events.Bus, opts worker.Options) (*strategy.WorkerClient, func()) {
	t.Helper()

	opts.Log = zerolog.Nop()
	svc := worker.NewService(reg, bus, zerolog.Nop())
	srv := worker.NewServer(svc, opts)

	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = srv.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to dial bufconn: %v", err)
	}
	client := strategy.NewWorkerClientFromConn(conn)

	cleanup := func() {
		_ = client.Close()
		srv.Stop()
		_ = lis.Close()
	}
	return client, cleanup
}

func newGridRegistry(t *testing.T) *strategy.Registry {
	t.Helper()

	reg := strategy.NewRegistry()
	grid, err := strategy.NewGridStrategy("grid-1", "BTCUSDT", 100, 200, 0.001)
	if err != nil {
		t.Fatalf("failed to build grid: %v", err)
	}
	if err := reg.Add("BTCUSDT", grid); err != nil {
		t.Fatalf("failed to register grid: %v", err)
	}
	return reg
}

// TestWorkerGridRoundTrip walks a price path through a real gRPC hop and
// checks the grid answers, including the re-arm behaviour around both bounds.
func TestWorkerGridRoundTrip(t *testing.T) {
	reg := newGridRegistry(t)
	bus := events.NewBus()
	client, cleanup := newWorkerTestClient(t, reg, bus, worker.Options{Concurrency: 2})
	defer cleanup()

	ctx := context.Background()
	walk := []struct {
		price  float64
		action string
	}{
		{95, "BUY"},    // below lower bound
		{110, "HOLD"},  // back inside the band, buy side re-arms
		{99, "BUY"},    // triggers again after the re-arm
		{205, "SELL"},  // above upper bound
		{201, "HOLD"},  // still latched, not far enough below the bound
		{150, "HOLD"},  // sell side re-arms
		{205, "SELL"},
	}

	for i, step := range walk {
		sig, err := client.OnTick(ctx, "BTCUSDT", step.price, nil)
		if err != nil {
			t.Fatalf("step %d: OnTick(%.2f) failed: %v", i, step.price, err)
		}
		if sig.Action != step.action {
			t.Errorf("step %d: price %.2f action = %s, want %s (note %q)", i, step.price, sig.Action, step.action, sig.Note)
		}
		if sig.Symbol != "BTCUSDT" {
			t.Errorf("step %d: symbol = %s, want BTCUSDT", i, sig.Symbol)
		}
		if step.action == "HOLD" && sig.Note != "no-op" {
			t.Errorf("step %d: hold note = %q, want %q", i, sig.Note, "no-op")
		}
	}
}

// TestWorkerHoldsForUnknownSymbol checks a tick for a symbol no strategy
// handles still gets an answer.
func TestWorkerHoldsForUnknownSymbol(t *testing.T) {
	reg := strategy.NewRegistry()
	grid, _ := strategy.NewGridStrategy("grid-1", "BTCUSDT", 100, 200, 0.001)
	eth, _ := strategy.NewGridStrategy("grid-2", "ETHUSDT", 2000, 3000, 0.01)
	if err := reg.Add("BTCUSDT", grid); err != nil {
		t.Fatalf("failed to register grid: %v", err)
	}
	if err := reg.Add("ETHUSDT", eth); err != nil {
		t.Fatalf("failed to register grid: %v", err)
	}

	client, cleanup := newWorkerTestClient(t, reg, events.NewBus(), worker.Options{Concurrency: 2})
	defer cleanup()

	sig, err := client.OnTick(context.Background(), "SOLUSDT", 40, nil)
	if err != nil {
		t.Fatalf("OnTick failed: %v", err)
	}
	if sig.Action != "HOLD" || sig.Symbol != "SOLUSDT" || sig.Note != "no-op" {
		t.Errorf("unexpected answer for unrouted symbol: %+v", sig)
	}
}

// TestWorkerSignalReachesSubscribers checks a tick arriving over gRPC fans
// out to bus subscribers, which is what feeds the websocket endpoint.
func TestWorkerSignalReachesSubscribers(t *testing.T) {
	reg := newGridRegistry(t)
	bus := events.NewBus()
	client, cleanup := newWorkerTestClient(t, reg, bus, worker.Options{Concurrency: 2})
	defer cleanup()

	stream, unsubscribe := bus.Subscribe(events.EventSignal, 4)
	defer unsubscribe()

	if _, err := client.OnTick(context.Background(), "BTCUSDT", 95, nil); err != nil {
		t.Fatalf("OnTick failed: %v", err)
	}

	select {
	case msg := <-stream:
		ev, ok := msg.(events.SignalEvent)
		if !ok {
			t.Fatalf("unexpected payload type %T", msg)
		}
		if ev.StrategyID != "grid-1" || ev.Action != "BUY" || ev.Symbol != "BTCUSDT" {
			t.Errorf("unexpected event: %+v", ev)
		}
		if ev.At.IsZero() {
			t.Error("event timestamp not set")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no signal event received")
	}
}
