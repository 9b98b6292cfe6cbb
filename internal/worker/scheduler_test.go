package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vestalumina/vls-api/pkg/logger"
)

type countingJob struct {
	name string
	runs atomic.Int32
	err  error
}

func (j *countingJob) Name() string { return j.name }

func (j *countingJob) Run(ctx context.Context) error {
	j.runs.Add(1)
	return j.err
}

func TestScheduler_RunNowRecordsResult(t *testing.T) {
	registry := prometheus.NewRegistry()
	scheduler := NewScheduler(clock.NewMock(), logger.NewNop(), time.Minute, registry)
	ok := &countingJob{name: "backup"}
	failing := &countingJob{name: "reminder", err: errors.New("smtp down")}
	scheduler.Add(ok, time.Hour)
	scheduler.Add(failing, time.Hour)

	require.NoError(t, scheduler.RunNow("backup"))
	assert.Error(t, scheduler.RunNow("reminder"))
	assert.EqualError(t, scheduler.RunNow("nope"), "unknown job: nope")

	assert.Equal(t, 1.0, testutil.ToFloat64(scheduler.runs.WithLabelValues("backup", resultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(scheduler.runs.WithLabelValues("reminder", resultFailure)))
}

func TestScheduler_TicksEachJobOnItsInterval(t *testing.T) {
	mockClock := clock.NewMock()
	scheduler := NewScheduler(mockClock, logger.NewNop(), 0, nil)
	hourly := &countingJob{name: "hourly"}
	daily := &countingJob{name: "daily"}
	disabled := &countingJob{name: "disabled"}
	scheduler.Add(hourly, time.Hour)
	scheduler.Add(daily, 24*time.Hour)
	scheduler.Add(disabled, 0)

	scheduler.Start()
	// Let the loops create their tickers before moving the clock.
	time.Sleep(20 * time.Millisecond)
	for i := int32(1); i <= 24; i++ {
		mockClock.Add(time.Hour)
		require.Eventually(t, func() bool { return hourly.runs.Load() == i }, time.Second, time.Millisecond)
	}
	assert.Eventually(t, func() bool { return daily.runs.Load() == 1 }, time.Second, time.Millisecond)
	scheduler.Stop()

	assert.Zero(t, disabled.runs.Load())
}
