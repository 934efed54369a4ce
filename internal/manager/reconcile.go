package manager

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"kvmesh"
)

// Get runs the Read Reconciler (C5): a requesting Storage Node that
// missed key locally asks the Manager to fan the read out to every
// other live node and return the strict-majority value. requesterID
// must name a currently registered node, same authorization rule as
// the Two-Phase Coordinator.
func (m *Manager) Get(ctx context.Context, requesterID int32, key string) (string, error) {
	m.mu.Lock()
	if _, ok := m.nodes[requesterID]; !ok {
		m.mu.Unlock()
		return "", kvmesh.UnregisteredNode()
	}
	peers := make(map[int32]string, len(m.nodes))
	for id, node := range m.nodes {
		if id == requesterID {
			continue
		}
		peers[id] = node.Endpoint()
	}
	m.mu.Unlock()

	roundID := uuid.NewString()
	rctx, op := m.startRound(ctx, "reconcile", roundID)
	if op != nil {
		defer op.End(nil)
	}

	values := m.fanOutGet(rctx, peers, key)
	if len(values) == 0 {
		return "", kvmesh.KeyAbsent()
	}

	value, cnt, ok := majority(values)
	if !ok {
		m.logger.Info("reconcile: no consensus", "round_id", roundID, "key", key, "responders", len(values))
		return "", kvmesh.NoConsensus()
	}

	m.logger.Info("reconcile: majority value", "round_id", roundID, "key", key, "value", value, "votes", cnt, "responders", len(values))
	return value, nil
}

// fanOutGet issues GetData against every peer endpoint concurrently,
// each bounded by prepareTimeout, and returns the values collected
// from peers that replied ok. Peers that refuse, error, or time out
// are excluded from the result; dial and GetData errors are logged at
// warn level — spec.md §4.5 step 2.
func (m *Manager) fanOutGet(ctx context.Context, peers map[int32]string, key string) []string {
	var (
		mu     sync.Mutex
		values []string
	)

	g, gctx := errgroup.WithContext(ctx)
	for id, endpoint := range peers {
		id, endpoint := id, endpoint
		g.Go(func() error {
			peer, err := m.dialer.Dial(endpoint)
			if err != nil {
				m.logger.Warn("reconcile: dial failed", "server_id", id, "endpoint", endpoint, "error", err)
				return nil
			}

			pctx, cancel := context.WithTimeout(gctx, m.prepareTimeout)
			defer cancel()

			value, ok, err := peer.GetData(pctx, key)
			if err != nil {
				m.logger.Warn("reconcile: getdata failed", "server_id", id, "endpoint", endpoint, "error", err)
				return nil
			}
			if !ok {
				return nil
			}

			mu.Lock()
			values = append(values, value)
			mu.Unlock()
			return nil
		})
	}
	// Fan-out never fails the group: errors are logged, not propagated.
	_ = g.Wait()

	return values
}

// majority computes the mode of values and reports whether its
// multiplicity is a strict majority (cnt > total/2) of len(values).
// Ties never return ok=true (spec.md §4.5 step 4, property 5).
func majority(values []string) (value string, cnt int, ok bool) {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var bestValue string
	var bestCount int
	for v, c := range counts {
		if c > bestCount {
			bestValue, bestCount = v, c
		}
	}

	if bestCount*2 > len(values) {
		return bestValue, bestCount, true
	}
	return "", 0, false
}
