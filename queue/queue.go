package queue

import (
	"sync"
	"time"
)

// Record is a single enqueued job. A nil ScheduledAt means the job runs
// immediately. Records are append-only; consumers must not mutate them.
type Record struct {
	Args        []any
	ScheduledAt *time.Time
}

//go:generate mockgen -destination=../match/queuemocks_test.go -package=match_test github.com/jobwatch/jobwatch/queue Lister
type Lister interface {
	ListJobs(jobType string) []*Record
}

// Ensure InMemory implements the Lister interface
var _ Lister = &InMemory{}

// InMemory keeps per-type job lists in process memory. It stands in for a
// real broker in test suites; call Clear between tests.
type InMemory struct {
	mu   sync.Mutex
	jobs map[string][]*Record
}

func NewInMemory() *InMemory {
	return &InMemory{
		jobs: make(map[string][]*Record),
	}
}

func (q *InMemory) Enqueue(jobType string, args ...any) *Record {
	return q.append(jobType, &Record{Args: args})
}

func (q *InMemory) EnqueueAt(jobType string, at time.Time, args ...any) *Record {
	return q.append(jobType, &Record{Args: args, ScheduledAt: &at})
}

func (q *InMemory) EnqueueIn(jobType string, d time.Duration, args ...any) *Record {
	return q.EnqueueAt(jobType, time.Now().Add(d), args...)
}

// ListJobs returns the jobs enqueued for jobType in enqueue order. The slice
// is a copy, but the records themselves are shared so pointer identity is
// stable across calls.
func (q *InMemory) ListJobs(jobType string) []*Record {
	q.mu.Lock()
	defer q.mu.Unlock()

	records := q.jobs[jobType]
	out := make([]*Record, len(records))
	copy(out, records)
	return out
}

func (q *InMemory) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.jobs = make(map[string][]*Record)
}

func (q *InMemory) append(jobType string, record *Record) *Record {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.jobs[jobType] = append(q.jobs[jobType], record)
	return record
}
