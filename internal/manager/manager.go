// Package manager implements the Manager's coordination engine: the
// Node Registry, Client Registry, Liveness Checker, Assignment
// Policy, Read Reconciler, and Two-Phase Coordinator described by the
// coordination protocol. All state is volatile and held in process
// memory behind one mutation lock.
package manager

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"kvmesh"
	"kvmesh/internal/telemetry"
)

const (
	// maxID is the inclusive upper bound for server/client id
	// allocation: 31-bit positive integers, per the data model.
	maxID = (1 << 31) - 1

	// idAllocAttempts bounds the collision-reject loop before an
	// allocation gives up with IdExhausted (spec.md §9, "Random id
	// allocation").
	idAllocAttempts = 64
)

// Manager owns the coordination engine's volatile state: registered
// Storage Nodes, connected clients, and the derived endpoint set. A
// single mutex (the "big lock") serializes every registry mutation
// and every Two-Phase Coordinator round, matching the coarse
// mutation-lock design in spec.md §5.
type Manager struct {
	mu sync.Mutex

	nodes     map[int32]kvmesh.ServerNode
	endpoints map[string]int32 // endpoint -> server id
	clients   map[int32]string // client id -> endpoint

	dialer PeerDialer

	prepareTimeout time.Duration
	commitTimeout  time.Duration
	probeTimeout   time.Duration

	logger *slog.Logger
	tracer trace.Tracer
}

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithDialer sets how the Manager reaches Storage Node peers. Callers
// must supply one before any C5/C6 operation runs; New defaults to a
// dialer that always fails, so without one every peer is treated as
// unreachable.
func WithDialer(d PeerDialer) Option {
	return func(m *Manager) { m.dialer = d }
}

// WithPrepareTimeout overrides the per-peer prepare-phase RPC budget.
func WithPrepareTimeout(d time.Duration) Option {
	return func(m *Manager) { m.prepareTimeout = d }
}

// WithCommitTimeout overrides the per-peer commit/abort-phase RPC
// budget.
func WithCommitTimeout(d time.Duration) Option {
	return func(m *Manager) { m.commitTimeout = d }
}

// WithProbeTimeout overrides the per-peer liveness probe budget.
func WithProbeTimeout(d time.Duration) Option {
	return func(m *Manager) { m.probeTimeout = d }
}

// WithLogger overrides the Manager's structured logger. Defaults to
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithTracer overrides the tracer used for round/fan-out spans.
// Defaults to the global otel tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(m *Manager) { m.tracer = t }
}

type unreachableDialer struct{}

func (unreachableDialer) Dial(endpoint string) (StoragePeer, error) {
	return nil, kvmesh.UnknownEndpoint()
}

// New constructs a Manager with empty registries.
func New(opts ...Option) *Manager {
	m := &Manager{
		nodes:          make(map[int32]kvmesh.ServerNode),
		endpoints:      make(map[string]int32),
		clients:        make(map[int32]string),
		dialer:         unreachableDialer{},
		prepareTimeout: 2 * time.Second,
		commitTimeout:  2 * time.Second,
		probeTimeout:   1 * time.Second,
		logger:         slog.Default(),
		tracer:         otel.Tracer("kvmesh/manager"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// allocateID samples a fresh, unused id uniformly from [1, 2^31-1],
// rejecting collisions against taken. It is always called with mu
// held.
func allocateID(taken map[int32]struct{}) (int32, error) {
	for i := 0; i < idAllocAttempts; i++ {
		candidate := rand.Int32N(maxID) + 1
		if _, exists := taken[candidate]; !exists {
			return candidate, nil
		}
	}
	return 0, kvmesh.IdExhausted()
}

// startRound opens one telemetry.Operation span for a coordination
// round or reconciliation fan-out, tagging it with roundID for log
// correlation (SPEC_FULL.md §3).
func (m *Manager) startRound(ctx context.Context, name string, roundID string) (context.Context, *telemetry.Operation) {
	op, err := telemetry.EmitPlan(ctx, m.tracer, name, telemetry.Plan{
		Steps: []telemetry.PlannedStep{{ID: roundID, Title: name}},
	})
	if err != nil {
		// Plan validation failures are a programmer error (a
		// malformed static plan), never a runtime condition; fall
		// back to an untraced round rather than fail the call.
		return ctx, nil
	}
	return op.Context(), op
}
