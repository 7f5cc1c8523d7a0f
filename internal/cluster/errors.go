package cluster

import "errors"

var (
	// ErrStaleEpoch rejects a write attempted under a superseded epoch.
	// Never retried by the node itself; the deposed node must re-register.
	ErrStaleEpoch = errors.New("stale epoch")

	// ErrNoAvailableMaster is returned when all nodes are unhealthy or a
	// promotion is still in progress.
	ErrNoAvailableMaster = errors.New("no available master")

	// ErrReplicationTimeout means sync-majority acknowledgment was not
	// reached in time. Durability of the write is ambiguous to the caller.
	ErrReplicationTimeout = errors.New("replication timeout")

	ErrNotMaster = errors.New("not master")

	ErrNotFound = errors.New("not found")

	ErrUnknownNode = errors.New("unknown node")

	ErrUnknownEntity = errors.New("unknown entity type")
)
