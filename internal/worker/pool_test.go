package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingJob struct {
	count atomic.Int64
	err   error
}

func (j *countingJob) Process(ctx context.Context) error {
	j.count.Add(1)
	return j.err
}

func TestPool_ProcessesJobs(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	job := &countingJob{}
	for i := 0; i < 5; i++ {
		pool.Enqueue(job)
	}

	assert.Eventually(t, func() bool {
		return job.count.Load() == 5
	}, time.Second, time.Millisecond)
}

func TestPool_SurvivesJobErrors(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	failing := &countingJob{err: errors.New("boom")}
	ok := &countingJob{}

	pool.Enqueue(failing)
	pool.Enqueue(ok)

	assert.Eventually(t, func() bool {
		return ok.count.Load() == 1
	}, time.Second, time.Millisecond)
}
