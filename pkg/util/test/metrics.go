package test

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func GetCounterValue(metric prometheus.Counter) (float64, error) {
	var m = &dto.Metric{}
	if err := metric.Write(m); err != nil {
		return 0, err
	}
	return m.Counter.GetValue(), nil
}

func GetCounterVecValue(metric *prometheus.CounterVec, label string) (float64, error) {
	return GetCounterValue(metric.WithLabelValues(label))
}

// GetHistogramSampleCount returns the number of observations of a histogram.
func GetHistogramSampleCount(metric prometheus.Histogram) (uint64, error) {
	var m = &dto.Metric{}
	if err := metric.Write(m); err != nil {
		return 0, err
	}
	return m.Histogram.GetSampleCount(), nil
}
