package manager

import (
	"kvmesh"
	"kvmesh/internal/check"
)

// Online registers a Storage Node (C1). It allocates a fresh 31-bit
// id, rejecting collisions against the live registry, and adds
// host+port to the endpoint set. Re-registering an endpoint that is
// already live under a different id fails with DuplicateEndpoint; the
// caller must offline (or be evicted) first.
func (m *Manager) Online(host, port, token string) (int32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	endpoint := host + port
	if _, exists := m.endpoints[endpoint]; exists {
		return 0, kvmesh.DuplicateEndpoint()
	}

	taken := make(map[int32]struct{}, len(m.nodes))
	for id := range m.nodes {
		taken[id] = struct{}{}
	}
	id, err := allocateID(taken)
	if err != nil {
		return 0, err
	}

	m.nodes[id] = kvmesh.ServerNode{ID: id, Host: host, Port: port, Token: token}
	m.endpoints[endpoint] = id

	m.logger.Info("node online", "server_id", id, "endpoint", endpoint)
	return id, nil
}

// Offline unregisters a Storage Node (C1). A missing node is logged,
// not fatal — it returns UnknownNode so the caller can decide whether
// that matters, but callers wanting spec.md's "ok=false, not fatal"
// semantics should treat UnknownNode as a soft failure.
func (m *Manager) Offline(serverID int32, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	node, ok := m.nodes[serverID]
	if !ok {
		m.logger.Warn("offline: unknown node", "server_id", serverID)
		return kvmesh.UnknownNode()
	}
	if node.Token != token {
		return kvmesh.UnauthorizedNode()
	}

	m.removeNodeLocked(serverID, node)
	m.logger.Info("node offline", "server_id", serverID, "endpoint", node.Endpoint())
	return nil
}

// removeNodeLocked deletes node from both the registry and the
// endpoint set. Callers must hold mu.
func (m *Manager) removeNodeLocked(serverID int32, node kvmesh.ServerNode) {
	delete(m.nodes, serverID)
	delete(m.endpoints, node.Endpoint())
	check.Assertf(len(m.endpoints) <= len(m.nodes), "endpoint set size %d exceeds node registry size %d after removing %d", len(m.endpoints), len(m.nodes), serverID)
}

// evictUnreachable removes a node the same way offline does, but
// without a token check — used by the Liveness Checker (C3), which
// has no caller-supplied credential to check. It is observationally
// equivalent to offline with respect to invariants 1-3 (spec.md §3,
// invariant 5).
func (m *Manager) evictUnreachable(serverID int32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	node, ok := m.nodes[serverID]
	if !ok {
		return
	}
	m.removeNodeLocked(serverID, node)
	m.logger.Warn("node evicted: liveness probe failed", "server_id", serverID, "endpoint", node.Endpoint())
}
