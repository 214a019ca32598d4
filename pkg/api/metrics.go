package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

// clusterOperations tracks mutating cluster API calls by operation and outcome.
var clusterOperations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "clusterman_cluster_operations_total",
		Help: "Total number of cluster operations by operation and outcome",
	},
	[]string{
		"operation", // add, update, delete
		"outcome",   // success, error
	},
)

func init() {
	prometheus.MustRegister(clusterOperations)
}
