package manager

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"kvmesh"
	"kvmesh/internal/check"
)

// Put runs the Two-Phase Coordinator (C6) for a put(key, value) op
// initiated by requesterID.
func (m *Manager) Put(ctx context.Context, requesterID int32, key, value string) error {
	return m.round(ctx, requesterID, key, value, false)
}

// Del runs the Two-Phase Coordinator (C6) for a del(key) op initiated
// by requesterID.
func (m *Manager) Del(ctx context.Context, requesterID int32, key string) error {
	return m.round(ctx, requesterID, key, "", true)
}

// round executes one full prepare -> commit-all-or-abort-all cycle.
// It holds the Manager's mutation lock for the entire round (spec.md
// §5), so concurrent Put/Del calls are strictly serialized —
// property 4 (mutation serialization) and invariant 4.
func (m *Manager) round(ctx context.Context, requesterID int32, key, value string, isDelete bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.nodes[requesterID]; !ok {
		return kvmesh.UnregisteredNode()
	}

	roundID := uuid.NewString()
	rctx, op := m.startRound(ctx, "twophase", roundID)
	if op != nil {
		defer op.End(nil)
	}

	peers := make(map[int32]string, len(m.nodes))
	for id, node := range m.nodes {
		peers[id] = node.Endpoint()
	}

	responded, consensus, allReached, prepErr := m.preparePhase(rctx, peers, key, value, isDelete)
	check.Assertf(len(responded) <= len(peers), "prepare phase responded count %d exceeds peer count %d", len(responded), len(peers))
	commit := consensus && allReached

	m.logger.Info("twophase: decision",
		"round_id", roundID, "key", key, "delete", isDelete,
		"commit", commit, "responded", len(responded), "peers", len(peers))

	if commit {
		m.fanOutFinish(rctx, responded, key, isDelete, true)
		return nil
	}

	m.fanOutFinish(rctx, responded, key, isDelete, false)
	if prepErr != nil {
		m.logger.Warn("twophase: prepare errors", "round_id", roundID, "error", prepErr)
	}
	return kvmesh.PrepareRefused(isDelete)
}

// preparePhase fans the prepare call out to every peer (including the
// initiator — spec.md §9 pins "initiator participates symmetrically")
// and returns which peers responded, whether every responder
// accepted, and whether every peer was reached at all. A peer that
// cannot be dialed or errors is excluded from responded and flips
// both consensus and allReached to false ("respond-means-reached",
// spec.md §9).
func (m *Manager) preparePhase(ctx context.Context, peers map[int32]string, key, value string, isDelete bool) (responded map[int32]string, consensus, allReached bool, errs error) {
	responded = make(map[int32]string, len(peers))
	consensus = true
	allReached = true

	var (
		mu   sync.Mutex
		mErr *multierror.Error
	)

	g, gctx := errgroup.WithContext(ctx)
	for id, endpoint := range peers {
		id, endpoint := id, endpoint
		g.Go(func() error {
			peer, err := m.dialer.Dial(endpoint)
			if err != nil {
				mu.Lock()
				allReached = false
				consensus = false
				mErr = multierror.Append(mErr, err)
				mu.Unlock()
				return nil
			}

			pctx, cancel := context.WithTimeout(gctx, m.prepareTimeout)
			defer cancel()

			var ok bool
			if isDelete {
				ok, err = peer.PrepareADel(pctx, key)
			} else {
				ok, err = peer.PrepareAPut(pctx, key, value)
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				allReached = false
				consensus = false
				mErr = multierror.Append(mErr, err)
				return nil
			}
			responded[id] = endpoint
			if !ok {
				consensus = false
			}
			return nil
		})
	}
	_ = g.Wait()

	if mErr != nil {
		errs = mErr.ErrorOrNil()
	}
	return responded, consensus, allReached, errs
}

// fanOutFinish sends commit (commit=true) or abort (commit=false) to
// every peer that responded to prepare, best-effort: per-peer errors
// are logged and otherwise ignored, matching spec.md §4.6 steps 4-5.
func (m *Manager) fanOutFinish(ctx context.Context, responded map[int32]string, key string, isDelete, commit bool) {
	var g errgroup.Group
	for id, endpoint := range responded {
		id, endpoint := id, endpoint
		g.Go(func() error {
			peer, err := m.dialer.Dial(endpoint)
			if err != nil {
				m.logger.Warn("twophase: finish dial failed", "server_id", id, "endpoint", endpoint, "commit", commit, "error", err)
				return nil
			}

			fctx, cancel := context.WithTimeout(ctx, m.commitTimeout)
			defer cancel()

			if commit {
				err = peer.Commit(fctx, key, isDelete)
			} else {
				err = peer.Abort(fctx, key, isDelete)
			}
			if err != nil {
				m.logger.Warn("twophase: finish failed", "server_id", id, "endpoint", endpoint, "commit", commit, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}
