package status

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"
)

// JobStatus is a completion counter shared by one worker and one monitor
type JobStatus struct {
	mu        sync.Mutex
	completed uint32
}

// Complete records one finished job and returns the new count
func (s *JobStatus) Complete() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed++
	return s.completed
}

// Completed returns the number of finished jobs
func (s *JobStatus) Completed() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// JobConfig controls the worker and monitor cadence
type JobConfig struct {
	Jobs         int
	JobInterval  time.Duration
	PollInterval time.Duration
}

// DefaultJobConfig returns ten half-second jobs polled once per second
func DefaultJobConfig() JobConfig {
	return JobConfig{
		Jobs:         10,
		JobInterval:  500 * time.Millisecond,
		PollInterval: time.Second,
	}
}

// LoadJobConfig overlays environment variables on the defaults
// Unparseable or non-positive values are ignored
func LoadJobConfig() JobConfig {
	cfg := DefaultJobConfig()

	if v := os.Getenv("RGBCONV_JOBS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Jobs = n
		}
	}
	if v := os.Getenv("RGBCONV_JOB_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.JobInterval = d
		}
	}
	if v := os.Getenv("RGBCONV_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.PollInterval = d
		}
	}

	return cfg
}

// RunJobs completes n jobs, sleeping interval before each one
func RunJobs(ctx context.Context, s *JobStatus, n int, interval time.Duration) error {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for i := 0; i < n; i++ {
		if i > 0 {
			timer.Reset(interval)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		s.Complete()
	}
	return nil
}

// WaitFor polls s until threshold jobs are complete
// onWait, if set, receives the current count each time the threshold is not yet met
func WaitFor(ctx context.Context, s *JobStatus, threshold uint32, poll time.Duration, onWait func(completed uint32)) error {
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		done := s.Completed()
		if done >= threshold {
			return nil
		}
		if onWait != nil {
			onWait(done)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
