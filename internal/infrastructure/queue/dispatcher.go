package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"io"
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/studycare/studycare-client/internal/api/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// ErrClosed is returned by Enqueue after Wait has been called.
var ErrClosed = errors.New("upload queue closed")

// Upload kinds.
const (
	KindImage = "image"
	KindVoice = "voice"
)

// Job is one file to upload. Jobs with the same Key (a chat or voice session)
// are processed in submission order.
type Job struct {
	ID   string
	Key  string
	Kind string
	Name string
	Open func() (io.ReadCloser, error)

	seq int
}

// Result is the outcome of one Job.
type Result struct {
	Job    Job
	Output any
	Err    error
	Worker int
}

// Processor performs the upload of a single job.
type Processor interface {
	Process(ctx context.Context, job Job) (any, error)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, job Job) (any, error)

func (f ProcessorFunc) Process(ctx context.Context, job Job) (any, error) {
	return f(ctx, job)
}

// Dispatcher routes uploads to a fixed set of workers using consistent
// hashing on the job key, guaranteeing per-session ordering.
type Dispatcher struct {
	workers   []chan Job
	processor Processor
	log       zerolog.Logger

	wg sync.WaitGroup

	// sendMu is held for reading while sending and for writing while closing
	// the worker channels.
	sendMu sync.RWMutex
	closed bool

	mu      sync.Mutex
	seq     int
	results []Result
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor Processor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan Job, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan Job, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. After ctx is cancelled, remaining
// jobs are drained and reported with the context error instead of running.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its key. It blocks when
// that worker's buffer is full. Jobs without a key are keyed by their id.
func (d *Dispatcher) Enqueue(job Job) error {
	d.sendMu.RLock()
	defer d.sendMu.RUnlock()
	if d.closed {
		return ErrClosed
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Key == "" {
		job.Key = job.ID
	}
	d.mu.Lock()
	job.seq = d.seq
	d.seq++
	d.mu.Unlock()
	d.wg.Add(1)

	idx := d.shardIndex(job.Key)
	metrics.UploadQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	d.workers[idx] <- job
	return nil
}

// Wait closes the queue, blocks until every job has finished and returns
// the results in submission order.
func (d *Dispatcher) Wait() []Result {
	d.sendMu.Lock()
	if !d.closed {
		d.closed = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.sendMu.Unlock()

	d.wg.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	out := append([]Result(nil), d.results...)
	sort.Slice(out, func(i, j int) bool { return out[i].Job.seq < out[j].Job.seq })
	return out
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan Job) {
	depth := metrics.UploadQueueDepth.WithLabelValues(strconv.Itoa(id))
	for job := range ch {
		depth.Dec()
		d.record(d.process(ctx, id, job))
	}
}

func (d *Dispatcher) process(ctx context.Context, id int, job Job) Result {
	res := Result{Job: job, Worker: id}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	res.Output, res.Err = d.processor.Process(ctx, job)

	outcome := "ok"
	if res.Err != nil {
		outcome = "error"
		d.log.Error().Err(res.Err).
			Str("job_id", job.ID).
			Str("key", job.Key).
			Str("name", job.Name).
			Int("worker_id", id).
			Msg("upload failed")
	}
	metrics.UploadsTotal.WithLabelValues(job.Kind, outcome).Inc()
	return res
}

func (d *Dispatcher) record(res Result) {
	d.mu.Lock()
	d.results = append(d.results, res)
	d.mu.Unlock()
	d.wg.Done()
}
