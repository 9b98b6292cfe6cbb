package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/pkg/logger"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// Job is one scheduled maintenance task. Runs must be safe to repeat.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

type scheduledJob struct {
	job      Job
	interval time.Duration
}

// Scheduler runs each job on its own ticker in its own goroutine, so a job
// never overlaps with itself.
type Scheduler struct {
	clock        clock.Clock
	logger       *logger.Logger
	jobTimeout   time.Duration
	jobs         []scheduledJob
	runs         *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewScheduler(clk clock.Clock, logger *logger.Logger, jobTimeout time.Duration, registerer prometheus.Registerer) *Scheduler {
	runs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maintenance_job_runs_total",
			Help: "Total number of maintenance job runs",
		},
		[]string{"job", "result"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "maintenance_job_duration_seconds",
			Help:    "Duration of maintenance job runs in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 4, 8),
		},
		[]string{"job"},
	)
	if registerer != nil {
		registerer.MustRegister(runs, duration)
	}

	return &Scheduler{
		clock:        clk,
		logger:       logger,
		jobTimeout:   jobTimeout,
		runs:         runs,
		duration:     duration,
		shutdownChan: make(chan struct{}),
	}
}

// Add registers a job. It must be called before Start.
func (s *Scheduler) Add(job Job, interval time.Duration) {
	s.jobs = append(s.jobs, scheduledJob{job: job, interval: interval})
}

func (s *Scheduler) Start() {
	s.logger.Info("Starting maintenance scheduler...", zap.Int("jobs", len(s.jobs)))

	for _, sj := range s.jobs {
		if sj.interval <= 0 {
			s.logger.Warn("Skipping job with non-positive interval", zap.String("job", sj.job.Name()))
			continue
		}
		s.waitGroup.Add(1)
		go s.runLoop(sj)
	}
}

func (s *Scheduler) Stop() {
	s.logger.Info("Stopping maintenance scheduler...")
	close(s.shutdownChan)
	s.waitGroup.Wait()
	s.logger.Info("All maintenance jobs stopped")
}

func (s *Scheduler) runLoop(sj scheduledJob) {
	defer s.waitGroup.Done()

	name := sj.job.Name()
	s.logger.Infof("Job %s scheduled every %s", name, sj.interval)

	ticker := s.clock.Ticker(sj.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.shutdownChan:
			s.logger.Infof("Job %s shutting down", name)
			return
		case <-ticker.C:
			_ = s.runJob(sj.job)
		}
	}
}

// RunNow runs the named job once, synchronously.
func (s *Scheduler) RunNow(name string) error {
	for _, sj := range s.jobs {
		if sj.job.Name() == name {
			return s.runJob(sj.job)
		}
	}
	return fmt.Errorf("unknown job: %s", name)
}

func (s *Scheduler) runJob(job Job) error {
	ctx := context.Background()
	if s.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.jobTimeout)
		defer cancel()
	}

	name := job.Name()
	start := s.clock.Now()
	err := job.Run(ctx)
	elapsed := s.clock.Since(start)

	s.duration.WithLabelValues(name).Observe(elapsed.Seconds())
	if err != nil {
		s.runs.WithLabelValues(name, resultFailure).Inc()
		s.logger.Error("Maintenance job failed", err, zap.String("job", name), zap.Duration("elapsed", elapsed))
		return err
	}

	s.runs.WithLabelValues(name, resultSuccess).Inc()
	s.logger.Info("Maintenance job finished", zap.String("job", name), zap.Duration("elapsed", elapsed))
	return nil
}
