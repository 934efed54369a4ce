package storagefake

import (
	"fmt"
	"sync"

	"kvmesh/internal/manager"
)

// Dialer resolves endpoints to registered Storage fakes, implementing
// manager.PeerDialer for tests.
type Dialer struct {
	mu    sync.Mutex
	peers map[string]*Storage
}

// NewDialer returns an empty Dialer.
func NewDialer() *Dialer {
	return &Dialer{peers: make(map[string]*Storage)}
}

// Register associates endpoint with a Storage fake so Dial can find
// it later.
func (d *Dialer) Register(endpoint string, s *Storage) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.peers[endpoint] = s
}

// Unregister removes endpoint, simulating a peer going permanently
// unreachable without an explicit offline call.
func (d *Dialer) Unregister(endpoint string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.peers, endpoint)
}

func (d *Dialer) Dial(endpoint string) (manager.StoragePeer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.peers[endpoint]
	if !ok {
		return nil, fmt.Errorf("storagefake: no peer registered for %q", endpoint)
	}
	return s, nil
}

var _ manager.PeerDialer = (*Dialer)(nil)
