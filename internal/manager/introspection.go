package manager

import "kvmesh"

// ListNodes returns a snapshot of the Node Registry (C10). Tokens are
// never included — NodeInfo is the operator-facing projection.
func (m *Manager) ListNodes() []kvmesh.NodeInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]kvmesh.NodeInfo, 0, len(m.nodes))
	for id, node := range m.nodes {
		out = append(out, kvmesh.NodeInfo{ID: id, Endpoint: node.Endpoint()})
	}
	return out
}

// Status reports cheap registry counts for health dashboards (C10).
func (m *Manager) Status() (nodeCount, clientCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.nodes), len(m.clients)
}
