// Package cluster holds the shared vocabulary of the data tier: entity
// types, roles, health states, replication entries and routing snapshots.
package cluster

import (
	"time"
)

type EntityType int32

const (
	EntityUser EntityType = 0
	EntityRide EntityType = 1
)

var entityNames = map[EntityType]string{
	EntityUser: "user",
	EntityRide: "ride",
}

func (e EntityType) String() string {
	if n, ok := entityNames[e]; ok {
		return n
	}
	return "unknown"
}

func (e EntityType) Valid() bool {
	_, ok := entityNames[e]
	return ok
}

// EntityTypes lists every known entity type in stable order.
func EntityTypes() []EntityType {
	return []EntityType{EntityUser, EntityRide}
}

type OperationKind int32

const (
	OpCreate OperationKind = 0
	OpUpdate OperationKind = 1
	OpDelete OperationKind = 2
)

func (o OperationKind) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

type Role int32

const (
	RoleMaster Role = 0
	RoleSlave  Role = 1
)

func (r Role) String() string {
	switch r {
	case RoleMaster:
		return "master"
	case RoleSlave:
		return "slave"
	default:
		return "unknown"
	}
}

type HealthState int32

const (
	Healthy HealthState = iota
	Suspect
	Dead
)

func (h HealthState) String() string {
	switch h {
	case Healthy:
		return "healthy"
	case Suspect:
		return "suspect"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Operation is a client write before the master has sequenced it.
type Operation struct {
	Entity  EntityType
	Kind    OperationKind
	Key     string
	Payload []byte
}

// Entry is a committed operation as it travels master -> slave. Sequence
// numbers are master-assigned, strictly increasing and gap-free.
type Entry struct {
	Sequence uint64
	Entity   EntityType
	Kind     OperationKind
	Key      string
	Payload  []byte
	Epoch    uint64
	CommitTS time.Time
}

// Record is a stored key/payload pair returned by reads.
type Record struct {
	Key     string
	Payload []byte
}

// FieldMatch selects records whose JSON payload field at Path equals Value.
type FieldMatch struct {
	Path  string
	Value string
}

// Filter narrows List results by key prefix and payload field equality.
type Filter struct {
	Prefix string
	Fields []FieldMatch
}

// NodeInfo is the orchestrator's view of a registered node.
type NodeInfo struct {
	ID            uint64
	Addr          string
	Role          Role
	Epoch         uint64
	Health        HealthState
	AppliedSeq    uint64
	LastHeartbeat time.Time
}

// RouteSnapshot is a consistent epoch/master pairing captured per routing
// call. Calls are never routed against a half-updated table.
type RouteSnapshot struct {
	Epoch    uint64
	Version  uint64
	MasterID uint64
}
