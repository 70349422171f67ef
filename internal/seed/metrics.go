package seed

import "github.com/prometheus/client_golang/prometheus"

var (
	runsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "seed",
		Name:      "runs_total",
		Help:      "Number of seed runs, labeled by outcome.",
	}, []string{"status"})

	recordsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "octofit",
		Subsystem: "seed",
		Name:      "records_inserted_total",
		Help:      "Number of records inserted by committed seed runs, labeled by collection.",
	}, []string{"collection"})

	runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "octofit",
		Subsystem: "seed",
		Name:      "run_duration_seconds",
		Help:      "Time spent clearing and repopulating the store.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(runsCounter, recordsCounter, runDuration)
}

func recordResult(r *Result) {
	recordsCounter.WithLabelValues("teams").Add(float64(r.Teams))
	recordsCounter.WithLabelValues("users").Add(float64(r.Users))
	recordsCounter.WithLabelValues("activities").Add(float64(r.Activities))
	recordsCounter.WithLabelValues("leaderboard").Add(float64(r.Leaderboard))
	recordsCounter.WithLabelValues("workouts").Add(float64(r.Workouts))
}
