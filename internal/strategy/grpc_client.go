package strategy

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "strategy-worker/proto"
)

// WorkerClient sends ticks to a strategy worker over gRPC. Callers that need
// auth attach the bearer token to the context metadata themselves.
type WorkerClient struct {
	conn   *grpc.ClientConn
	client pb.StrategyServiceClient
}

func NewWorkerClient(addr string) (*WorkerClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return NewWorkerClientFromConn(conn), nil
}

// NewWorkerClientFromConn wraps an already-established connection; tests use
// this with an in-memory listener.
func NewWorkerClientFromConn(conn *grpc.ClientConn) *WorkerClient {
	return &WorkerClient{
		conn:   conn,
		client: pb.NewStrategyServiceClient(conn),
	}
}

func (w *WorkerClient) Close() error {
	if w.conn == nil {
		return nil
	}
	return w.conn.Close()
}

// OnTick forwards one tick to the worker and translates the response back into Signal.
func (w *WorkerClient) OnTick(ctx context.Context, symbol string, price float64, indicators map[string]float64) (*Signal, error) {
	req := &pb.TickData{
		Symbol:     symbol,
		Price:      price,
		Indicators: indicators,
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	resp, err := w.client.OnTick(ctx, req)
	if err != nil {
		return nil, err
	}
	return &Signal{
		Action: resp.Action,
		Symbol: resp.Symbol,
		Size:   resp.Size,
		Note:   resp.Note,
	}, nil
}
