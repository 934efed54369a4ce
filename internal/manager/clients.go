package manager

import (
	"math/rand/v2"

	"kvmesh"
)

// Connect admits a new client (C2), assigning it a live node via the
// Assignment Policy (C4). Fails with NoNodesAvailable if the endpoint
// set is empty.
func (m *Manager) Connect() (host, port string, clientID int32, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	endpoint, pickErr := m.pickEndpointLocked()
	if pickErr != nil {
		return "", "", 0, pickErr
	}

	taken := make(map[int32]struct{}, len(m.clients))
	for id := range m.clients {
		taken[id] = struct{}{}
	}
	id, allocErr := allocateID(taken)
	if allocErr != nil {
		return "", "", 0, allocErr
	}

	m.clients[id] = endpoint
	node := m.nodes[m.endpoints[endpoint]]

	m.logger.Info("client connect", "client_id", id, "endpoint", endpoint)
	return node.Host, node.Port, id, nil
}

// Disconnect removes a client binding (C2). Idempotent: disconnecting
// an unknown id is not an error.
func (m *Manager) Disconnect(clientID int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.clients, clientID)
	m.logger.Info("client disconnect", "client_id", clientID)
	return nil
}

// ChangeServer rebinds a client to a specific endpoint (C4). Fails
// with UnknownEndpoint if target is not currently registered, leaving
// the existing binding untouched.
func (m *Manager) ChangeServer(clientID int32, target string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.endpoints[target]; !ok {
		return "", kvmesh.UnknownEndpoint()
	}
	m.clients[clientID] = target
	m.logger.Info("client rebind", "client_id", clientID, "endpoint", target)
	return target, nil
}

// ChangeServerRandom rebinds a client to a freshly, uniformly chosen
// live endpoint (C4).
func (m *Manager) ChangeServerRandom(clientID int32) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	endpoint, err := m.pickEndpointLocked()
	if err != nil {
		return "", err
	}
	m.clients[clientID] = endpoint
	m.logger.Info("client rebind random", "client_id", clientID, "endpoint", endpoint)
	return endpoint, nil
}

// pickEndpointLocked returns one endpoint chosen uniformly at random
// from the current endpoint set (C4). Callers must hold mu.
func (m *Manager) pickEndpointLocked() (string, error) {
	n := len(m.endpoints)
	if n == 0 {
		return "", kvmesh.NoNodesAvailable()
	}

	pick := rand.IntN(n)
	i := 0
	for endpoint := range m.endpoints {
		if i == pick {
			return endpoint, nil
		}
		i++
	}
	panic("unreachable: pick index exceeded endpoint set size")
}
