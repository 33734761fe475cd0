package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tasksProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_tasks_processed_total",
			Help: "Total number of tasks processed successfully",
		},
		[]string{"task_type"},
	)

	tasksRetried = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_tasks_retried_total",
			Help: "Total number of task retry requeues",
		},
		[]string{"task_type"},
	)

	tasksDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_tasks_dropped_total",
			Help: "Total number of tasks dropped without success",
		},
		[]string{"task_type", "reason"},
	)
)
