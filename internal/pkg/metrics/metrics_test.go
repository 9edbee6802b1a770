package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFilterOutcomesTotal(t *testing.T) {
	before := testutil.ToFloat64(FilterOutcomesTotal.WithLabelValues(OutcomeDegraded))

	FilterOutcomesTotal.WithLabelValues(OutcomeDegraded).Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(FilterOutcomesTotal.WithLabelValues(OutcomeDegraded)))
}

func TestUpstreamRequestsTotal(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("fillout", "200"))

	UpstreamRequestsTotal.WithLabelValues("fillout", "200").Inc()
	UpstreamRequestsTotal.WithLabelValues("fillout", "200").Inc()

	assert.Equal(t, before+2, testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("fillout", "200")))
}
