package manager

import (
	"context"
	"time"
)

// probeKey is the reserved key the Liveness Checker reads on every
// sweep. Storage Nodes need not actually hold it — GetData's ok
// result is irrelevant here, only reachability is.
const probeKey = "__kvmesh_liveness_probe__"

// RunLiveness runs the Liveness Checker (C3): a ticker-driven sweep
// that probes every registered node and evicts those that fail to
// respond within probeTimeout. It blocks until ctx is cancelled,
// matching the errgroup-managed background loop the daemon starts
// alongside the RPC server.
func (m *Manager) RunLiveness(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.probeSweep(ctx)
		}
	}
}

// probeSweep performs one liveness pass. It snapshots the registry
// under the mutation lock, then probes outside the lock so a slow or
// dead peer cannot block RPC handlers — only the eviction itself
// reacquires the lock, one node at a time.
func (m *Manager) probeSweep(ctx context.Context) {
	m.mu.Lock()
	snapshot := make(map[int32]string, len(m.nodes))
	for id, node := range m.nodes {
		snapshot[id] = node.Endpoint()
	}
	m.mu.Unlock()

	for id, endpoint := range snapshot {
		if !m.probeOne(ctx, endpoint) {
			m.evictUnreachable(id)
		}
	}
}

// probeOne reports whether endpoint answered within probeTimeout. A
// transport error or timeout both count as unreachable; the probed
// key being absent does not — the point is reachability, not content.
func (m *Manager) probeOne(ctx context.Context, endpoint string) bool {
	peer, err := m.dialer.Dial(endpoint)
	if err != nil {
		return false
	}

	pctx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()

	_, _, err = peer.GetData(pctx, probeKey)
	return err == nil
}
