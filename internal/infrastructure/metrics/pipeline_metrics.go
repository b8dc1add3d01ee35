package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage outcome labels
const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusDegraded = "degraded"
)

var (
	// stageTotal counts pipeline stage executions
	// Labels: stage (transcribe/translate/summarize_en/...), status (success/error/degraded)
	stageTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meeting_pipeline_stage_total",
			Help: "Total number of pipeline stage executions by stage and outcome",
		},
		[]string{"stage", "status"},
	)

	// stageDuration observes stage latency in seconds, external calls dominate
	stageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meeting_pipeline_stage_duration_seconds",
			Help:    "Pipeline stage duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		},
		[]string{"stage"},
	)

	fallbackExtractions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "meeting_pipeline_fallback_extractions_total",
			Help: "Number of times the rule-based action extractor replaced an empty model response",
		},
	)
)

// RecordStage records the outcome and duration of one stage execution
func RecordStage(stage, status string, elapsed time.Duration) {
	stageTotal.WithLabelValues(stage, status).Inc()
	stageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// RecordFallbackExtraction counts one use of the rule-based extractor
func RecordFallbackExtraction() {
	fallbackExtractions.Inc()
}
