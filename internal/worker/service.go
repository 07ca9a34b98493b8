package worker

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"strategy-worker/internal/events"
	"strategy-worker/internal/monitor"
	"strategy-worker/internal/strategy"
	"strategy-worker/pkg/i18n"
	pb "strategy-worker/proto"
)

// Service answers OnTick requests by routing ticks into the strategy
// registry and publishing emitted signals on the event bus.
type Service struct {
	pb.UnimplementedStrategyServiceServer

	Registry *strategy.Registry
	Bus      *events.Bus
	Log      zerolog.Logger
}

func NewService(reg *strategy.Registry, bus *events.Bus, log zerolog.Logger) *Service {
	return &Service{Registry: reg, Bus: bus, Log: log}
}

// OnTick maps one tick to one signal. The RPC itself never fails: strategy
// errors, unrouted symbols and panics all come back as a HOLD so a broken
// strategy cannot take the caller down with it.
func (s *Service) OnTick(ctx context.Context, req *pb.TickData) (resp *pb.Signal, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.Log.Error().Msgf(i18n.M().SignalProcessingPanic, r)
			monitor.StrategyErrorsTotal.Inc()
			resp = holdSignal(req.GetSymbol())
			err = nil
		}
		monitor.TickSeconds.Observe(time.Since(start).Seconds())
	}()

	monitor.TicksTotal.WithLabelValues(req.GetSymbol()).Inc()

	sig, derr := s.Registry.Dispatch(req.GetSymbol(), req.GetPrice(), req.GetIndicators())
	if derr != nil {
		if errors.Is(derr, strategy.ErrNoRoute) {
			s.Log.Debug().Str("symbol", req.GetSymbol()).Msg("tick for unrouted symbol")
		} else {
			s.Log.Error().Err(derr).Str("symbol", req.GetSymbol()).Msg("strategy error")
			monitor.StrategyErrorsTotal.Inc()
		}
		return holdSignal(req.GetSymbol()), nil
	}
	if sig == nil {
		return holdSignal(req.GetSymbol()), nil
	}

	monitor.SignalsTotal.WithLabelValues(sig.Symbol, sig.Action).Inc()
	s.Log.Info().Msgf(i18n.M().StrategySignal, sig.StrategyID, *sig)
	s.Bus.Publish(events.EventSignal, events.SignalEvent{
		StrategyID: sig.StrategyID,
		Action:     sig.Action,
		Symbol:     sig.Symbol,
		Size:       sig.Size,
		Note:       sig.Note,
		At:         time.Now().UTC(),
	})

	return &pb.Signal{
		Action: sig.Action,
		Symbol: sig.Symbol,
		Size:   sig.Size,
		Note:   sig.Note,
	}, nil
}

// holdSignal is the do-nothing answer; callers treat it as "take no action".
func holdSignal(symbol string) *pb.Signal {
	return &pb.Signal{Action: strategy.ActionHold, Symbol: symbol, Note: "no-op"}
}
