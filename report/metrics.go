/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package report

import (
	"fmt"
	"strconv"

	"github.com/iancoleman/strcase"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "synthetics"

// MetricsRecorder keeps attributes as prometheus gauges. Numeric values get a
// gauge of their own, everything else is exposed through an info gauge
// labelled with the attribute name and value.
type MetricsRecorder struct {
	registry *prometheus.Registry
	gauges   map[string]prometheus.Gauge
	info     *prometheus.GaugeVec
}

// NewMetricsRecorder creates a MetricsRecorder with its own registry.
func NewMetricsRecorder() *MetricsRecorder {
	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "attribute_info",
		Help:      "Non numeric attributes of the last synthetic run.",
	}, []string{"name", "value"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(info)

	return &MetricsRecorder{
		registry: registry,
		gauges:   map[string]prometheus.Gauge{},
		info:     info,
	}
}

// SetAttribute records the attribute value.
func (m *MetricsRecorder) SetAttribute(key string, value any) {
	if f, ok := toFloat(value); ok {
		m.gauge(key).Set(f)
		return
	}
	m.info.DeletePartialMatch(prometheus.Labels{"name": key})
	m.info.WithLabelValues(key, fmt.Sprint(value)).Set(1)
}

// Gatherer returns the registry holding the recorded metrics.
func (m *MetricsRecorder) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteFile writes the metrics to path in the text exposition format, as
// expected by the node exporter textfile collector.
func (m *MetricsRecorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}

func (m *MetricsRecorder) gauge(key string) prometheus.Gauge {
	if g, ok := m.gauges[key]; ok {
		return g
	}
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      strcase.ToSnake(key),
		Help:      fmt.Sprintf("Value of the %s attribute of the last synthetic run.", key),
	})
	m.registry.MustRegister(g)
	m.gauges[key] = g
	return g
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
