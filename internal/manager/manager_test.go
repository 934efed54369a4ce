package manager_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"kvmesh"
	"kvmesh/internal/manager"
	"kvmesh/internal/storagefake"
)

// newTestManager wires a Manager to a storagefake.Dialer so peers
// never touch the network.
func newTestManager(t *testing.T) (*manager.Manager, *storagefake.Dialer) {
	t.Helper()
	dialer := storagefake.NewDialer()
	m := manager.New(manager.WithDialer(dialer))
	return m, dialer
}

func onlineNode(t *testing.T, m *manager.Manager, dialer *storagefake.Dialer, host, port string) (int32, *storagefake.Storage) {
	t.Helper()
	id, err := m.Online(host, port, "tok-"+host+port)
	if err != nil {
		t.Fatalf("Online(%s, %s) = %v", host, port, err)
	}
	storage := storagefake.NewStorage()
	dialer.Register(host+port, storage)
	return id, storage
}

// S1: register/unregister.
func TestOnlineOffline(t *testing.T) {
	m, _ := newTestManager(t)

	sid, err := m.Online("localhost", ":50051", "tok")
	if err != nil {
		t.Fatalf("Online: %v", err)
	}

	nodes := m.ListNodes()
	found := false
	for _, n := range nodes {
		if n.ID == sid {
			found = true
		}
	}
	if !found {
		t.Fatalf("server id %d not present after Online", sid)
	}

	if err := m.Offline(sid, "tok"); err != nil {
		t.Fatalf("Offline: %v", err)
	}

	for _, n := range m.ListNodes() {
		if n.ID == sid {
			t.Fatalf("server id %d still present after Offline", sid)
		}
	}
}

func TestOnlineDuplicateEndpoint(t *testing.T) {
	m, _ := newTestManager(t)

	if _, err := m.Online("localhost", ":50051", "tok-a"); err != nil {
		t.Fatalf("Online: %v", err)
	}
	if _, err := m.Online("localhost", ":50051", "tok-b"); err == nil {
		t.Fatal("expected DuplicateEndpoint error on re-registering a live endpoint")
	} else if !errors.Is(err, kvmesh.ErrDuplicateEndpoint) {
		t.Fatalf("got %v, want DuplicateEndpoint", err)
	}
}

func TestOfflineUnauthorized(t *testing.T) {
	m, _ := newTestManager(t)

	sid, err := m.Online("localhost", ":50051", "tok")
	if err != nil {
		t.Fatalf("Online: %v", err)
	}
	if err := m.Offline(sid, "wrong-token"); err == nil {
		t.Fatal("expected Unauthorized error with wrong token")
	} else if !errors.Is(err, kvmesh.ErrUnauthorizedNode) {
		t.Fatalf("got %v, want UnauthorizedNode", err)
	}
}

// S2: connect with no nodes.
func TestConnectNoNodes(t *testing.T) {
	m, _ := newTestManager(t)

	_, _, _, err := m.Connect()
	if err == nil {
		t.Fatal("expected NoNodesAvailable on empty registry")
	}
	if got := err.Error(); got == "" {
		t.Fatal("expected a non-empty error message")
	}
	if !errors.Is(err, kvmesh.ErrNoNodesAvailable) {
		t.Fatalf("got %v, want NoNodesAvailable", err)
	}
}

// S3: change to an endpoint that isn't registered leaves the binding
// untouched.
func TestChangeServerUnknownEndpoint(t *testing.T) {
	m, dialer := newTestManager(t)
	onlineNode(t, m, dialer, "host-a", ":1")
	onlineNode(t, m, dialer, "host-b", ":2")

	host, port, cid, err := m.Connect()
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	bound := host + port

	if _, err := m.ChangeServer(cid, "localhost:9"); err == nil {
		t.Fatal("expected UnknownEndpoint for an unregistered target")
	} else if !errors.Is(err, kvmesh.ErrUnknownEndpoint) {
		t.Fatalf("got %v, want UnknownEndpoint", err)
	}

	// The Manager exposes no read of a single binding, so this only
	// checks that the originally bound endpoint is still registered:
	// a further ChangeServer to it must succeed.
	if got, err := m.ChangeServer(cid, bound); err != nil || got != bound {
		t.Fatalf("ChangeServer(original) = (%q, %v), want (%q, nil)", got, err, bound)
	}
}

// S4: mutation attempted by an id absent from the registry.
func TestUnregisteredNodeMutation(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	const phantom int32 = 123456

	if err := m.Put(ctx, phantom, "k", "v"); err == nil || !errors.Is(err, kvmesh.ErrUnregisteredNode) {
		t.Fatalf("Put: got %v, want UnregisteredNode", err)
	}
	if err := m.Del(ctx, phantom, "k"); err == nil || !errors.Is(err, kvmesh.ErrUnregisteredNode) {
		t.Fatalf("Del: got %v, want UnregisteredNode", err)
	}
	if _, err := m.Get(ctx, phantom, "k"); err == nil || !errors.Is(err, kvmesh.ErrUnregisteredNode) {
		t.Fatalf("Get: got %v, want UnregisteredNode", err)
	}
}

// S5: majority read across three peers.
func TestMajorityRead(t *testing.T) {
	m, dialer := newTestManager(t)

	requester, _ := onlineNode(t, m, dialer, "req", ":0")
	_, p1 := onlineNode(t, m, dialer, "peer", ":1")
	_, p2 := onlineNode(t, m, dialer, "peer", ":2")
	_, p3 := onlineNode(t, m, dialer, "peer", ":3")

	p1.Seed("k", "x")
	p2.Seed("k", "x")
	p3.Seed("k", "y")

	ctx := context.Background()
	got, err := m.Get(ctx, requester, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "x" {
		t.Fatalf("Get = %q, want %q", got, "x")
	}
}

func TestNoConsensusRead(t *testing.T) {
	m, dialer := newTestManager(t)

	requester, _ := onlineNode(t, m, dialer, "req", ":0")
	_, p1 := onlineNode(t, m, dialer, "peer", ":1")
	_, p2 := onlineNode(t, m, dialer, "peer", ":2")
	_, p3 := onlineNode(t, m, dialer, "peer", ":3")

	p1.Seed("k", "x")
	p2.Seed("k", "y")
	p3.Seed("k", "z")

	ctx := context.Background()
	if _, err := m.Get(ctx, requester, "k"); err == nil || !errors.Is(err, kvmesh.ErrNoConsensus) {
		t.Fatalf("Get: got %v, want NoConsensus", err)
	}
}

func TestKeyAbsentRead(t *testing.T) {
	m, dialer := newTestManager(t)
	requester, _ := onlineNode(t, m, dialer, "req", ":0")
	onlineNode(t, m, dialer, "peer", ":1")

	ctx := context.Background()
	if _, err := m.Get(ctx, requester, "missing"); err == nil || !errors.Is(err, kvmesh.ErrKeyAbsent) {
		t.Fatalf("Get: got %v, want KeyAbsent", err)
	}
}

// S6: all peers accept a put — every responded peer gets Commit, none
// get Abort.
func TestAllAcceptPut(t *testing.T) {
	m, dialer := newTestManager(t)

	requester, sReq := onlineNode(t, m, dialer, "n", ":0")
	_, s1 := onlineNode(t, m, dialer, "n", ":1")
	_, s2 := onlineNode(t, m, dialer, "n", ":2")

	ctx := context.Background()
	if err := m.Put(ctx, requester, "k", "v"); err != nil {
		t.Fatalf("Put: %v", err)
	}

	for name, s := range map[string]*storagefake.Storage{"requester": sReq, "peer1": s1, "peer2": s2} {
		if calls := s.Calls("Commit"); len(calls) != 1 {
			t.Errorf("%s: Commit called %d times, want 1", name, len(calls))
		}
		if calls := s.Calls("Abort"); len(calls) != 0 {
			t.Errorf("%s: Abort called %d times, want 0", name, len(calls))
		}
		if v, ok := s.Value("k"); !ok || v != "v" {
			t.Errorf("%s: Value(k) = (%q, %v), want (\"v\", true)", name, v, ok)
		}
	}
}

// S7: one peer refuses — every responded peer gets Abort, none get
// Commit, and the round fails with the put-specific message.
func TestOneRefusePut(t *testing.T) {
	m, dialer := newTestManager(t)

	requester, sReq := onlineNode(t, m, dialer, "n", ":0")
	_, s1 := onlineNode(t, m, dialer, "n", ":1")
	_, s2 := onlineNode(t, m, dialer, "n", ":2")
	s2.SetRefusePrepare(true)

	ctx := context.Background()
	err := m.Put(ctx, requester, "k", "v")
	if err == nil {
		t.Fatal("expected the round to fail when a peer refuses prepare")
	}
	if !errors.Is(err, kvmesh.ErrPutRefused) {
		t.Fatalf("got %v, want PutRefused (提交失败)", err)
	}

	// All three peers responded to prepare (s2 with ok=false), so all
	// three are in the round's responded set and all three receive
	// Abort — spec.md §8 S7: "observe that all three responded peers
	// receive abort."
	for name, s := range map[string]*storagefake.Storage{"requester": sReq, "peer1": s1, "peer2 (refused)": s2} {
		if calls := s.Calls("Abort"); len(calls) != 1 {
			t.Errorf("%s: Abort called %d times, want 1", name, len(calls))
		}
		if calls := s.Calls("Commit"); len(calls) != 0 {
			t.Errorf("%s: Commit called %d times, want 0", name, len(calls))
		}
	}
}

func TestOneRefuseDelUsesDelMessage(t *testing.T) {
	m, dialer := newTestManager(t)
	requester, _ := onlineNode(t, m, dialer, "n", ":0")
	_, s1 := onlineNode(t, m, dialer, "n", ":1")
	s1.SetRefusePrepare(true)

	ctx := context.Background()
	err := m.Del(ctx, requester, "k")
	if err == nil || !errors.Is(err, kvmesh.ErrDelRefused) {
		t.Fatalf("got %v, want DelRefused (删除失败)", err)
	}
}

// Property 6: idempotent disconnect.
func TestDisconnectIdempotent(t *testing.T) {
	m, dialer := newTestManager(t)
	onlineNode(t, m, dialer, "host", ":1")
	_, _, cid, err := m.Connect()
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}

	if err := m.Disconnect(cid); err != nil {
		t.Fatalf("first Disconnect: %v", err)
	}
	if err := m.Disconnect(cid); err != nil {
		t.Fatalf("second Disconnect: %v", err)
	}
}

// Property 2: assignment domain — Connect always returns a live
// endpoint.
func TestConnectReturnsLiveEndpoint(t *testing.T) {
	m, dialer := newTestManager(t)
	onlineNode(t, m, dialer, "a", ":1")
	onlineNode(t, m, dialer, "b", ":2")

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		host, port, _, err := m.Connect()
		if err != nil {
			t.Fatalf("Connect: %v", err)
		}
		seen[host+port] = true
	}

	want := map[string]bool{"a:1": true, "b:2": true}
	if diff := cmp.Diff(want, seen, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("endpoints seen across repeated Connect calls (-want +got):\n%s", diff)
	}
}

