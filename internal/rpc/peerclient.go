package rpc

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"kvmesh/internal/manager"
	"kvmesh/internal/rpc/storagepb"
)

// GRPCDialer is a manager.PeerDialer that dials Storage Node
// StorageService endpoints over gRPC, caching one connection per
// endpoint for the lifetime of the Manager process.
type GRPCDialer struct {
	mu    sync.Mutex
	conns map[string]*grpc.ClientConn
}

// NewGRPCDialer returns an empty GRPCDialer.
func NewGRPCDialer() *GRPCDialer {
	return &GRPCDialer{conns: make(map[string]*grpc.ClientConn)}
}

// Dial returns a StoragePeer for endpoint, reusing a cached
// connection when one already exists.
func (d *GRPCDialer) Dial(endpoint string) (manager.StoragePeer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	conn, ok := d.conns[endpoint]
	if !ok {
		var err error
		conn, err = grpc.NewClient(endpoint,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		)
		if err != nil {
			return nil, fmt.Errorf("dial storage peer %s: %w", endpoint, err)
		}
		d.conns[endpoint] = conn
	}

	return &grpcPeer{client: storagepb.NewStorageServiceClient(conn)}, nil
}

// Close tears down every cached connection.
func (d *GRPCDialer) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var firstErr error
	for endpoint, conn := range d.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close connection to %s: %w", endpoint, err)
		}
	}
	d.conns = make(map[string]*grpc.ClientConn)
	return firstErr
}

// grpcPeer adapts storagepb.StorageServiceClient to manager.StoragePeer.
type grpcPeer struct {
	client storagepb.StorageServiceClient
}

func (p *grpcPeer) GetData(ctx context.Context, key string) (string, bool, error) {
	resp, err := p.client.GetData(ctx, &storagepb.GetDataRequest{Key: key})
	if err != nil {
		return "", false, err
	}
	return resp.GetValue(), resp.GetOk(), nil
}

func (p *grpcPeer) PrepareAPut(ctx context.Context, key, value string) (bool, error) {
	resp, err := p.client.PrepareAPut(ctx, &storagepb.PrepareAPutRequest{Key: key, Value: value})
	if err != nil {
		return false, err
	}
	return resp.GetOk(), nil
}

func (p *grpcPeer) PrepareADel(ctx context.Context, key string) (bool, error) {
	resp, err := p.client.PrepareADel(ctx, &storagepb.PrepareADelRequest{Key: key})
	if err != nil {
		return false, err
	}
	return resp.GetOk(), nil
}

func (p *grpcPeer) Commit(ctx context.Context, key string, del bool) error {
	_, err := p.client.Commit(ctx, &storagepb.FinishRequest{Key: key, Delete: del})
	return err
}

func (p *grpcPeer) Abort(ctx context.Context, key string, del bool) error {
	_, err := p.client.Abort(ctx, &storagepb.FinishRequest{Key: key, Delete: del})
	return err
}

var _ manager.PeerDialer = (*GRPCDialer)(nil)
var _ manager.StoragePeer = (*grpcPeer)(nil)
