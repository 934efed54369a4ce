package manager

import "context"

// StoragePeer is the Manager's outbound view of one Storage Node: the
// five calls spec'd in spec.md §6 ("The Manager consumes these
// methods on each Storage Node"). A concrete implementation dials the
// node's StorageService over gRPC; internal/storagefake provides an
// in-memory one for tests.
type StoragePeer interface {
	// GetData fetches a key for the Read Reconciler fan-out (C5). ok
	// is false when the peer does not have the key; err is reserved
	// for transport failure.
	GetData(ctx context.Context, key string) (value string, ok bool, err error)

	// PrepareAPut asks the peer to tentatively accept a put. ok false
	// means the peer refused (not a transport error).
	PrepareAPut(ctx context.Context, key, value string) (ok bool, err error)

	// PrepareADel asks the peer to tentatively accept a delete.
	PrepareADel(ctx context.Context, key string) (ok bool, err error)

	// Commit finalizes a previously prepared put (del=false) or
	// delete (del=true) for key. Errors are logged, never surfaced:
	// commit is best-effort per spec.md §4.6.
	Commit(ctx context.Context, key string, del bool) error

	// Abort discards a previously prepared put or delete for key.
	// Best-effort, same as Commit.
	Abort(ctx context.Context, key string, del bool) error
}

// PeerDialer resolves a Storage Node endpoint (host+port) to a
// StoragePeer. Kept as a narrow interface so tests can substitute
// internal/storagefake without touching gRPC.
type PeerDialer interface {
	Dial(endpoint string) (StoragePeer, error)
}

// PeerDialerFunc adapts a function to PeerDialer.
type PeerDialerFunc func(endpoint string) (StoragePeer, error)

func (f PeerDialerFunc) Dial(endpoint string) (StoragePeer, error) {
	return f(endpoint)
}
