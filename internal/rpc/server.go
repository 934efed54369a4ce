// Package rpc exposes the Manager's coordination engine over gRPC:
// the ManagerServiceServer implementation translating wire requests
// into internal/manager calls, and the peer-side gRPC client the
// Manager uses to reach Storage Nodes (peerclient.go).
package rpc

import (
	"context"
	"errors"

	"kvmesh"
	"kvmesh/internal/manager"
	"kvmesh/internal/rpc/managerpb"
)

// Server implements managerpb.ManagerServiceServer over a
// *manager.Manager. Every business-logic failure becomes a populated
// ok=false response with the spec-mandated message text rather than a
// transport-level gRPC error (SPEC_FULL.md §4.7).
type Server struct {
	managerpb.UnimplementedManagerServiceServer
	m *manager.Manager
}

// NewServer wraps m for gRPC registration.
func NewServer(m *manager.Manager) *Server {
	return &Server{m: m}
}

func (s *Server) Connect(ctx context.Context, _ *managerpb.ConnectRequest) (*managerpb.ConnectResponse, error) {
	host, port, cid, err := s.m.Connect()
	if err != nil {
		return &managerpb.ConnectResponse{Ok: false, Errmes: errMessage(err)}, nil
	}
	return &managerpb.ConnectResponse{Host: host, Port: port, ClientId: cid, Ok: true}, nil
}

func (s *Server) Disconnect(ctx context.Context, req *managerpb.DisconnectRequest) (*managerpb.DisconnectResponse, error) {
	if err := s.m.Disconnect(req.GetClientId()); err != nil {
		return &managerpb.DisconnectResponse{Ok: false}, nil
	}
	return &managerpb.DisconnectResponse{Ok: true}, nil
}

func (s *Server) ChangeServer(ctx context.Context, req *managerpb.ChangeServerRequest) (*managerpb.ChangeServerResponse, error) {
	api, err := s.m.ChangeServer(req.GetClientId(), req.GetApi())
	if err != nil {
		return &managerpb.ChangeServerResponse{Ok: false, Errmes: errMessage(err)}, nil
	}
	return &managerpb.ChangeServerResponse{Api: api, Ok: true}, nil
}

func (s *Server) ChangeServerRandom(ctx context.Context, req *managerpb.ChangeServerRandomRequest) (*managerpb.ChangeServerResponse, error) {
	api, err := s.m.ChangeServerRandom(req.GetClientId())
	if err != nil {
		return &managerpb.ChangeServerResponse{Ok: false, Errmes: errMessage(err)}, nil
	}
	return &managerpb.ChangeServerResponse{Api: api, Ok: true}, nil
}

func (s *Server) Online(ctx context.Context, req *managerpb.OnlineRequest) (*managerpb.OnlineResponse, error) {
	id, err := s.m.Online(req.GetHost(), req.GetPort(), req.GetToken())
	if err != nil {
		return &managerpb.OnlineResponse{Ok: false, Errmes: errMessage(err)}, nil
	}
	return &managerpb.OnlineResponse{ServerId: id, Ok: true}, nil
}

func (s *Server) Offline(ctx context.Context, req *managerpb.OfflineRequest) (*managerpb.OfflineResponse, error) {
	if err := s.m.Offline(req.GetServerId(), req.GetToken()); err != nil {
		return &managerpb.OfflineResponse{Ok: false, Errmes: errMessage(err)}, nil
	}
	return &managerpb.OfflineResponse{Ok: true}, nil
}

func (s *Server) Get(ctx context.Context, req *managerpb.GetRequest) (*managerpb.GetResponse, error) {
	value, err := s.m.Get(ctx, req.GetServerId(), req.GetKey())
	if err != nil {
		return &managerpb.GetResponse{Ok: false, Errmes: errMessage(err)}, nil
	}
	return &managerpb.GetResponse{Value: value, Ok: true}, nil
}

func (s *Server) Put(ctx context.Context, req *managerpb.PutRequest) (*managerpb.PutResponse, error) {
	if err := s.m.Put(ctx, req.GetServerId(), req.GetKey(), req.GetValue()); err != nil {
		return &managerpb.PutResponse{Ok: false, Errmes: errMessage(err)}, nil
	}
	return &managerpb.PutResponse{Ok: true}, nil
}

func (s *Server) Del(ctx context.Context, req *managerpb.DelRequest) (*managerpb.DelResponse, error) {
	if err := s.m.Del(ctx, req.GetServerId(), req.GetKey()); err != nil {
		return &managerpb.DelResponse{Ok: false, Errmes: errMessage(err)}, nil
	}
	return &managerpb.DelResponse{Ok: true}, nil
}

func (s *Server) ListNodes(ctx context.Context, _ *managerpb.ListNodesRequest) (*managerpb.ListNodesResponse, error) {
	nodes := s.m.ListNodes()
	out := make([]*managerpb.NodeInfo, len(nodes))
	for i, n := range nodes {
		out[i] = &managerpb.NodeInfo{Id: n.ID, Endpoint: n.Endpoint}
	}
	return &managerpb.ListNodesResponse{Nodes: out}, nil
}

func (s *Server) Status(ctx context.Context, _ *managerpb.StatusRequest) (*managerpb.StatusResponse, error) {
	nodeCount, clientCount := s.m.Status()
	return &managerpb.StatusResponse{NodeCount: int32(nodeCount), ClientCount: int32(clientCount)}, nil
}

// errMessage extracts the canonical, spec-mandated message text for a
// known coordination-protocol error rather than the fuller
// errdefs-wrapped Error() string (which would prefix the fixed
// Chinese strings with the containerd/errdefs classification text).
func errMessage(err error) string {
	switch {
	case errors.Is(err, kvmesh.ErrUnregisteredNode):
		return kvmesh.ErrUnregisteredNode.Error()
	case errors.Is(err, kvmesh.ErrNoNodesAvailable):
		return kvmesh.ErrNoNodesAvailable.Error()
	case errors.Is(err, kvmesh.ErrUnknownEndpoint):
		return kvmesh.ErrUnknownEndpoint.Error()
	case errors.Is(err, kvmesh.ErrPutRefused):
		return kvmesh.ErrPutRefused.Error()
	case errors.Is(err, kvmesh.ErrDelRefused):
		return kvmesh.ErrDelRefused.Error()
	case errors.Is(err, kvmesh.ErrUnknownNode):
		return kvmesh.ErrUnknownNode.Error()
	case errors.Is(err, kvmesh.ErrUnauthorizedNode):
		return kvmesh.ErrUnauthorizedNode.Error()
	case errors.Is(err, kvmesh.ErrDuplicateEndpoint):
		return kvmesh.ErrDuplicateEndpoint.Error()
	case errors.Is(err, kvmesh.ErrKeyAbsent):
		return kvmesh.ErrKeyAbsent.Error()
	case errors.Is(err, kvmesh.ErrNoConsensus):
		return kvmesh.ErrNoConsensus.Error()
	case errors.Is(err, kvmesh.ErrIdExhausted):
		return kvmesh.ErrIdExhausted.Error()
	default:
		return err.Error()
	}
}

var _ managerpb.ManagerServiceServer = (*Server)(nil)
