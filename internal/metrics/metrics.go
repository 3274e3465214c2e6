package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

var FetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bonuses",
	Name:      "fetch_total",
	Help:      "Bonus list reads by source and result.",
}, []string{"source", "result"})

var FetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "bonuses",
	Name:      "fetch_duration_seconds",
	Help:      "Time spent reading and normalising bonuses, including first-use initialisation.",
	Buckets:   prometheus.DefBuckets,
}, []string{"source"})

var RecordsReturned = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "bonuses",
	Name:      "records_returned",
	Help:      "Number of bonus records returned by the last successful read.",
}, []string{"source"})

var InitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bonuses",
	Name:      "init_total",
	Help:      "Backend client initialisation attempts by source and result.",
}, []string{"source", "result"})

func ObserveFetch(source string, start time.Time, records int, err error) {
	FetchDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	FetchTotal.WithLabelValues(source, result(err)).Inc()
	if err == nil {
		RecordsReturned.WithLabelValues(source).Set(float64(records))
	}
}

func ObserveInit(source string, err error) {
	InitTotal.WithLabelValues(source, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}
