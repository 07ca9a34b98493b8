// dry_run_demo drives the full signal path in one process with a synthetic
// random walk: two strategies, per-tick indicators, the bus and the stdout
// notifier. It opens no listener and touches no database.
//
// Usage:
//   go run ./scripts/dry_run_demo
//
// Env:
//   DRY_RUN_STEPS  ticks to generate per symbol (default 200)
//   DRY_RUN_START  starting price of the BTCUSDT walk (default 150)
package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"strategy-worker/internal/alert"
	"strategy-worker/internal/events"
	"strategy-worker/internal/indicators"
	"strategy-worker/internal/strategy"
	"strategy-worker/internal/util"
	"strategy-worker/internal/worker"
	"strategy-worker/pkg/config"
	pb "strategy-worker/proto"
)

func main() {
	log.Println("=== Dry-run demo starting ===")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config error: %v", err)
	}
	logger := util.NewLogger(cfg.LogLevel)

	steps := getenvInt("DRY_RUN_STEPS", 200)
	start := getenvFloat("DRY_RUN_START", 150)

	reg := strategy.NewRegistry()
	grid, err := strategy.NewGridStrategy("grid-demo", "BTCUSDT", start*0.97, start*1.03, 0.001)
	if err != nil {
		log.Fatalf("build grid error: %v", err)
	}
	momentum, err := strategy.NewDemoStrategy("demo-eth", "ETHUSDT", 0.05, 0.004)
	if err != nil {
		log.Fatalf("build momentum error: %v", err)
	}
	if err := reg.Add("BTCUSDT", grid); err != nil {
		log.Fatalf("register grid error: %v", err)
	}
	if err := reg.Add("ETHUSDT", momentum); err != nil {
		log.Fatalf("register momentum error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := events.NewBus()
	alertMon := &alert.Monitor{Bus: bus, Notifier: alert.NewStdout(logger), Log: logger}
	alertMon.Start(ctx)

	svc := worker.NewService(reg, bus, logger)
	engine := indicators.NewEngine(5, 20, 14, 64)

	symbols := []string{"BTCUSDT", "ETHUSDT"}
	prices := map[string]float64{"BTCUSDT": start, "ETHUSDT": 2500}

	signals := 0
	ticks := 0
	for i := 0; i < steps; i++ {
		for _, sym := range symbols {
			// simple random walk, half a percent either way
			prices[sym] += (rand.Float64()*2 - 1) * prices[sym] * 0.005
			price := prices[sym]

			resp, err := svc.OnTick(ctx, &pb.TickData{
				Symbol:     sym,
				Price:      price,
				Indicators: engine.Update(sym, price),
			})
			if err != nil {
				log.Fatalf("tick error: %v", err)
			}
			ticks++
			if resp.Action != "HOLD" {
				signals++
			}
		}
	}

	// let the notifier drain
	time.Sleep(100 * time.Millisecond)

	log.Printf("final prices: BTCUSDT %.2f, ETHUSDT %.2f", prices["BTCUSDT"], prices["ETHUSDT"])
	log.Printf("=== Dry-run demo finished: %d signals over %d ticks ===", signals, ticks)
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}
	return def
}
