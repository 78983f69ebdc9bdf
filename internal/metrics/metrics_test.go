package metrics_test

import (
	"testing"

	dto "github.com/prometheus/client_model/go"

	"github.com/siso-dis/cdis-gateway/internal/metrics"
)

func TestCountersIncrement(t *testing.T) {
	metrics.PacketsReceived.WithLabelValues("dis").Inc()
	metrics.RejectedCount.WithLabelValues("encoder", "parse_error").Inc()

	c := metrics.PacketsReceived.WithLabelValues("dis")
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("could not write metric: %v", err)
	}
	if m.GetCounter().GetValue() <= 0 {
		t.Errorf("PacketsReceived did not increment, got %v", m.GetCounter().GetValue())
	}
}
