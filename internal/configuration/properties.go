package configuration

import (
	"time"
)

type Config struct {
	Application AppProperties         `yaml:"app"`
	Transport   TransportProperties   `yaml:"transport"`
	Cluster     ClusterProperties     `yaml:"cluster"`
	Replication ReplicationProperties `yaml:"replication"`
	Health      HealthProperties      `yaml:"health"`
}

type AppProperties struct {
	Profile     string `yaml:"profile"`
	LogLevel    string `yaml:"log-level"`
	MetricsPort string `yaml:"metrics-port"`
}

type TransportProperties struct {
	Address string `yaml:"address"`
	Port    string `yaml:"port"`
	Network string `yaml:"network"`
	// Timeout bounds every control RPC, in seconds.
	Timeout uint64 `yaml:"timeout"`
}

type ClusterProperties struct {
	NodeID           uint64 `yaml:"node-id"`
	OrchestratorAddr string `yaml:"orchestrator-addr"`
	StorageDir       string `yaml:"storage-dir"`
	WalNoSync        bool   `yaml:"wal-no-sync"`
}

type ReplicationProperties struct {
	// AckPolicy is "async" or "sync-majority".
	AckPolicy     string        `yaml:"ack-policy"`
	AckTimeout    time.Duration `yaml:"ack-timeout"`
	SendQueueSize int           `yaml:"send-queue-size"`
	PruneInterval time.Duration `yaml:"prune-interval"`
}

type HealthProperties struct {
	HeartbeatInterval time.Duration `yaml:"heartbeat-interval"`
	// SuspicionThreshold is the number of consecutive missed heartbeats
	// before a node turns suspect.
	SuspicionThreshold int           `yaml:"suspicion-threshold"`
	ProbeTimeout       time.Duration `yaml:"probe-timeout"`
}

func (t *TransportProperties) ListenAddr() string {
	return t.Address + ":" + t.Port
}

func (t *TransportProperties) CallTimeout() time.Duration {
	return time.Duration(t.Timeout) * time.Second
}
