package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClusterEpoch = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "datatier",
		Subsystem: "cluster",
		Name:      "epoch",
		Help:      "Current routing-table epoch",
	})

	ClusterNodes = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "datatier",
		Subsystem: "cluster",
		Name:      "nodes",
		Help:      "Registered nodes by health state",
	}, []string{"state"})

	NodeIsMaster = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "datatier",
		Subsystem: "node",
		Name:      "is_master",
		Help:      "Whether this node is the master (1=master, 0=slave)",
	})

	NodeEpoch = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "datatier",
		Subsystem: "node",
		Name:      "epoch",
		Help:      "Node-local epoch",
	})

	NodeAppliedSeq = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "datatier",
		Subsystem: "node",
		Name:      "applied_seq",
		Help:      "Applied-sequence watermark",
	})

	NodeBufferedEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "datatier",
		Subsystem: "node",
		Name:      "buffered_entries",
		Help:      "Out-of-order entries buffered while a gap is open",
	})

	PromotionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "datatier",
		Subsystem: "cluster",
		Name:      "promotions_total",
		Help:      "Total completed promotions",
	})

	PromotionsDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "datatier",
		Subsystem: "cluster",
		Name:      "promotions_discarded_total",
		Help:      "Promotion triggers discarded because the epoch had already advanced",
	})

	PromotionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "datatier",
		Subsystem: "cluster",
		Name:      "promotion_duration_seconds",
		Help:      "Time to run the promotion protocol",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 15),
	})

	HeartbeatMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datatier",
		Subsystem: "health",
		Name:      "heartbeat_misses_total",
		Help:      "Consecutive heartbeat misses observed per node",
	}, []string{"node_id"})

	ProbesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datatier",
		Subsystem: "health",
		Name:      "probes_total",
		Help:      "Direct confirmation probes by outcome",
	}, []string{"outcome"})

	WritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datatier",
		Subsystem: "routing",
		Name:      "writes_total",
		Help:      "Writes routed to the master by status",
	}, []string{"entity", "status"})

	ReadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datatier",
		Subsystem: "routing",
		Name:      "reads_total",
		Help:      "Reads routed by target role",
	}, []string{"entity", "target"})

	StaleEpochRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "datatier",
		Subsystem: "routing",
		Name:      "stale_epoch_rejections_total",
		Help:      "Writes rejected by epoch fencing",
	})

	RequestCounter = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "datatier",
		Subsystem: "requests",
		Name:      "count",
		Help:      "Resettable per-entity request counter",
	}, []string{"entity"})

	ReplicationEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datatier",
		Subsystem: "replication",
		Name:      "entries_total",
		Help:      "Entries shipped to slaves by outcome",
	}, []string{"peer_id", "outcome"})

	ReplicationQueueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "datatier",
		Subsystem: "replication",
		Name:      "queue_depth",
		Help:      "Entries waiting in a per-slave send queue",
	}, []string{"peer_id"})

	ReplicationLag = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "datatier",
		Subsystem: "replication",
		Name:      "lag",
		Help:      "Master sequence minus slave acknowledged sequence",
	}, []string{"peer_id"})

	ReplicationTimeouts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "datatier",
		Subsystem: "replication",
		Name:      "timeouts_total",
		Help:      "Sync-majority acknowledgments that timed out",
	})

	StorageKeysTotal = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "datatier",
		Subsystem: "storage",
		Name:      "keys_total",
		Help:      "Records held per entity type",
	}, []string{"entity"})

	StorageOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datatier",
		Subsystem: "storage",
		Name:      "operations_total",
		Help:      "Total storage operations",
	}, []string{"operation"})

	WALWritesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "datatier",
		Subsystem: "wal",
		Name:      "writes_total",
		Help:      "Total replication log appends",
	})

	WALWriteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "datatier",
		Subsystem: "wal",
		Name:      "write_duration_seconds",
		Help:      "Replication log append duration",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 20),
	})

	GRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "datatier",
		Subsystem: "grpc",
		Name:      "requests_total",
		Help:      "Total gRPC requests",
	}, []string{"service", "method", "code"})

	GRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "datatier",
		Subsystem: "grpc",
		Name:      "request_duration_seconds",
		Help:      "gRPC request duration",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20),
	}, []string{"service", "method"})
)
