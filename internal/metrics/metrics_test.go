package metrics

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	r := New()
	r.Observe(5, 1, 2*time.Millisecond, nil)
	r.Observe(5, 1, time.Millisecond, nil)
	r.Observe(8, 2, time.Second, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.runs.WithLabelValues("5", "1", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues("8", "2", OutcomeError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.runs.WithLabelValues("8", "2", OutcomeOK)))
	assert.Equal(t, 2, testutil.CollectAndCount(r.duration))
}

func TestWriteText(t *testing.T) {
	r := New()
	r.Observe(1, 2, 3*time.Millisecond, nil)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "# TYPE aoc_runs_total counter")
	assert.Contains(t, out, `aoc_runs_total{day="1",outcome="ok",part="2"} 1`)
	assert.Contains(t, out, `aoc_solve_duration_seconds_count{day="1",part="2"} 1`)
}
