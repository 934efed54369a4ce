package rpc_test

import (
	"context"
	"testing"

	"kvmesh/internal/manager"
	"kvmesh/internal/rpc"
	"kvmesh/internal/rpc/managerpb"
	"kvmesh/internal/storagefake"
)

// TestUnregisteredNodeMessage pins the exact fixed-string response
// text scenario S4 asserts against — the errdefs-classified wrapper
// error must not leak its "unauthorized: " prefix into the wire
// response.
func TestUnregisteredNodeMessage(t *testing.T) {
	m := manager.New(manager.WithDialer(storagefake.NewDialer()))
	srv := rpc.NewServer(m)

	const wantMessage = "节点未注册, 无权操作!"

	putResp, err := srv.Put(context.Background(), &managerpb.PutRequest{ServerId: 999, Key: "k", Value: "v"})
	if err != nil {
		t.Fatalf("Put transport error: %v", err)
	}
	if putResp.GetOk() {
		t.Fatal("Put: expected ok=false for an unregistered requester")
	}
	if putResp.GetErrmes() != wantMessage {
		t.Fatalf("Put errmes = %q, want %q", putResp.GetErrmes(), wantMessage)
	}

	getResp, err := srv.Get(context.Background(), &managerpb.GetRequest{ServerId: 999, Key: "k"})
	if err != nil {
		t.Fatalf("Get transport error: %v", err)
	}
	if getResp.GetErrmes() != wantMessage {
		t.Fatalf("Get errmes = %q, want %q", getResp.GetErrmes(), wantMessage)
	}
}

// TestConnectNoNodesMessage pins scenario S2's fixed string.
func TestConnectNoNodesMessage(t *testing.T) {
	m := manager.New(manager.WithDialer(storagefake.NewDialer()))
	srv := rpc.NewServer(m)

	resp, err := srv.Connect(context.Background(), &managerpb.ConnectRequest{})
	if err != nil {
		t.Fatalf("Connect transport error: %v", err)
	}
	if resp.GetOk() {
		t.Fatal("Connect: expected ok=false with an empty registry")
	}
	if want := "连接失败, 目前暂无键值服务器"; resp.GetErrmes() != want {
		t.Fatalf("Connect errmes = %q, want %q", resp.GetErrmes(), want)
	}
}

// TestOnlineConnectRoundTrip exercises the happy path end to end
// through the Server, not just the manager package directly.
func TestOnlineConnectRoundTrip(t *testing.T) {
	dialer := storagefake.NewDialer()
	m := manager.New(manager.WithDialer(dialer))
	srv := rpc.NewServer(m)

	onlineResp, err := srv.Online(context.Background(), &managerpb.OnlineRequest{Host: "localhost", Port: ":1", Token: "tok"})
	if err != nil || !onlineResp.GetOk() {
		t.Fatalf("Online = (%+v, %v)", onlineResp, err)
	}
	dialer.Register("localhost:1", storagefake.NewStorage())

	connResp, err := srv.Connect(context.Background(), &managerpb.ConnectRequest{})
	if err != nil || !connResp.GetOk() {
		t.Fatalf("Connect = (%+v, %v)", connResp, err)
	}
	if connResp.GetHost()+connResp.GetPort() != "localhost:1" {
		t.Fatalf("Connect endpoint = %q, want %q", connResp.GetHost()+connResp.GetPort(), "localhost:1")
	}
}
