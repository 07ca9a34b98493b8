package main

import (
	"context"
	"log"
	"os"

	"google.golang.org/grpc/metadata"

	"strategy-worker/internal/strategy"
	"strategy-worker/pkg/config"
)

// worker_check/main.go
//
// Small tool: fire a short price walk at a running worker and print what it
// answers, so a deploy can be smoke-tested without wiring up a real feed.
//
// Usage:
//
//   go run ./scripts/worker_check
//
// Relevant environment variables (same as the main program):
//   WORKER_PORT      (default "50051")
//   WORKER_ADDR      (default "127.0.0.1:$WORKER_PORT")
//   LICENSE_TOKEN    (forwarded as a Bearer token when set)
//   CHECK_SYMBOL     (default "BTCUSDT")
//
// The walk crosses the default grid band from below 100 to above 200, so a
// worker running the built-in configuration answers at least one BUY and one
// SELL along the way.

func main() {
	log.Println("=== Worker check starting ===")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	addr := getenv("WORKER_ADDR", "127.0.0.1:"+cfg.WorkerPort)
	symbol := getenv("CHECK_SYMBOL", "BTCUSDT")
	token := os.Getenv("LICENSE_TOKEN")

	client, err := strategy.NewWorkerClient(addr)
	if err != nil {
		log.Fatalf("connect %s: %v", addr, err)
	}
	defer client.Close()

	log.Printf("Target: addr=%s symbol=%s auth=%v", addr, symbol, token != "")

	prices := []float64{95, 110, 150, 199, 205, 201, 95}
	for _, price := range prices {
		ctx := context.Background()
		if token != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
		}

		sig, err := client.OnTick(ctx, symbol, price, nil)
		if err != nil {
			log.Fatalf("OnTick(%.2f): %v", price, err)
		}
		if sig == nil {
			log.Printf("tick %8.2f -> no reply", price)
			continue
		}
		log.Printf("tick %8.2f -> %-4s size=%g note=%q", price, sig.Action, sig.Size, sig.Note)
	}

	log.Println("=== Worker check done ===")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
