package manager_test

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"kvmesh/internal/manager"
	"kvmesh/internal/storagefake"
)

// TestLivenessEvictsDeadNode exercises C3: a node that stops
// answering the probe is pruned exactly as offline would remove it,
// without a token. synctest lets the ticker-driven sweep run to
// completion deterministically instead of racing wall-clock sleeps.
func TestLivenessEvictsDeadNode(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		dialer := storagefake.NewDialer()
		m := manager.New(manager.WithDialer(dialer), manager.WithProbeTimeout(10*time.Millisecond))

		sid, err := m.Online("dead", ":1", "tok")
		if err != nil {
			t.Fatalf("Online: %v", err)
		}
		// Never registered with the dialer: every probe dial fails,
		// simulating a node that died without calling offline.
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan struct{})
		go func() {
			_ = m.RunLiveness(ctx, 10*time.Millisecond)
			close(done)
		}()

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		found := false
		for _, n := range m.ListNodes() {
			if n.ID == sid {
				found = true
			}
		}
		if found {
			t.Fatalf("server id %d still present after liveness sweep should have evicted it", sid)
		}

		cancel()
		<-done
	})
}
