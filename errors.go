package kvmesh

import (
	"errors"
	"fmt"

	cerrdefs "github.com/containerd/errdefs"
)

// Sentinel errors for the coordination protocol (spec.md §7). Every
// handler-level response still carries the fixed Chinese error
// strings scenarios S2/S4/S7 assert against; these sentinels are for
// internal control flow and classification via errdefs.Is*, the same
// local-wrapper convention docker/moby's daemon/internal/errdefs uses
// over github.com/containerd/errdefs.
var (
	ErrDuplicateEndpoint = errors.New("endpoint already registered under a different node id")
	ErrUnknownNode       = errors.New("no such server id")
	ErrUnauthorizedNode  = errors.New("token does not match registered node")
	ErrNoNodesAvailable  = errors.New("连接失败, 目前暂无键值服务器")
	ErrUnknownEndpoint   = errors.New("不存在此存储服务器")
	ErrUnregisteredNode  = errors.New("节点未注册, 无权操作!")
	ErrKeyAbsent         = errors.New("key absent from all reachable replicas")
	ErrNoConsensus       = errors.New("replicas disagree on value, no strict majority")
	ErrPutRefused        = errors.New("提交失败")
	ErrDelRefused        = errors.New("删除失败")
	ErrIdExhausted       = errors.New("id space exhausted after maximum allocation attempts")
)

// DuplicateEndpoint and friends are the constructors the manager
// package builds classified errors with. Each wraps both the
// containerd/errdefs sentinel (for errdefs.Is* classification by
// callers outside this package) and the package's own sentinel (for
// errors.Is against a specific condition).
func DuplicateEndpoint() error {
	return fmt.Errorf("%w: %w", cerrdefs.ErrAlreadyExists, ErrDuplicateEndpoint)
}

func UnknownNode() error {
	return fmt.Errorf("%w: %w", cerrdefs.ErrNotFound, ErrUnknownNode)
}

func UnauthorizedNode() error {
	return fmt.Errorf("%w: %w", cerrdefs.ErrUnauthorized, ErrUnauthorizedNode)
}

func NoNodesAvailable() error {
	return fmt.Errorf("%w: %w", cerrdefs.ErrUnavailable, ErrNoNodesAvailable)
}

func UnknownEndpoint() error {
	return fmt.Errorf("%w: %w", cerrdefs.ErrNotFound, ErrUnknownEndpoint)
}

func UnregisteredNode() error {
	return fmt.Errorf("%w: %w", cerrdefs.ErrUnauthorized, ErrUnregisteredNode)
}

func KeyAbsent() error {
	return fmt.Errorf("%w: %w", cerrdefs.ErrNotFound, ErrKeyAbsent)
}

func NoConsensus() error {
	return fmt.Errorf("%w: %w", cerrdefs.ErrFailedPrecondition, ErrNoConsensus)
}

// PutRefused and DelRefused both signal a Two-Phase Coordinator round
// that did not reach commit (some peer refused prepare, or was
// unreachable). The round's op determines the message text:
// original_source logs a put-specific and a delete-specific failure
// string rather than one generic one.
func PutRefused() error {
	return fmt.Errorf("%w: %w", cerrdefs.ErrAborted, ErrPutRefused)
}

func DelRefused() error {
	return fmt.Errorf("%w: %w", cerrdefs.ErrAborted, ErrDelRefused)
}

// PrepareRefused picks PutRefused or DelRefused depending on which op
// the round was for.
func PrepareRefused(isDelete bool) error {
	if isDelete {
		return DelRefused()
	}
	return PutRefused()
}

func IdExhausted() error {
	return fmt.Errorf("%w: %w", cerrdefs.ErrResourceExhausted, ErrIdExhausted)
}
