package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/philipp01105/sinklog/core"
	"github.com/philipp01105/sinklog/formatter"
)

// DefaultEndpoint is the ingestion URL used when none is configured
const DefaultEndpoint = "https://in.logs.betterstack.com"

// HTTPConfig holds configuration for the HTTP transport
type HTTPConfig struct {
	// Token is sent as a bearer token (required)
	Token string
	// Endpoint is the ingestion URL (default: DefaultEndpoint)
	Endpoint string
	// Client performs the requests (default: client with a 10s timeout)
	Client *http.Client
	// BufferSize is the size of the queue (default: 1000)
	BufferSize int
	// BatchSize is the maximum number of records per request (default: 100)
	BatchSize int
	// FlushInterval is how often a partial batch is shipped (default: 1s)
	FlushInterval time.Duration
	// OverflowPolicy defines per-level overflow behavior (default: uses DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout bounds how long a Block policy stalls the caller (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// HTTP ships records as NDJSON batches to an ingestion endpoint
type HTTP struct {
	endpoint       string
	token          string
	client         *http.Client
	formatter      *formatter.JSON
	batchSize      int
	flushInterval  time.Duration
	overflowPolicy map[core.Level]OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration

	queue     chan core.Record
	flushReq  chan chan error
	closed    chan struct{}
	isClosed  atomic.Bool
	sendMu    sync.RWMutex // held for reading while enqueueing, for writing by Close
	closeOnce sync.Once
	closeErr  error
	wg        sync.WaitGroup
	stats     *Stats
}

// NewHTTP creates an HTTP transport and starts its delivery goroutine
func NewHTTP(cfg HTTPConfig) (*HTTP, error) {
	if cfg.Token == "" {
		return nil, errors.New("http transport: missing token")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("http transport: parse endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("http transport: unsupported endpoint scheme %q", u.Scheme)
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	t := &HTTP{
		endpoint:       u.String(),
		token:          cfg.Token,
		client:         cfg.Client,
		formatter:      formatter.NewJSON(),
		batchSize:      cfg.BatchSize,
		flushInterval:  cfg.FlushInterval,
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		queue:          make(chan core.Record, cfg.BufferSize),
		flushReq:       make(chan chan error),
		closed:         make(chan struct{}),
		stats:          NewStats(),
	}

	t.wg.Add(1)
	go t.process()

	return t, nil
}

// HTTPFactory returns a Factory building HTTP transports for endpoint.
// An empty endpoint selects DefaultEndpoint.
func HTTPFactory(endpoint string) Factory {
	return func(token string) (Transport, error) {
		return NewHTTP(HTTPConfig{Token: token, Endpoint: endpoint})
	}
}

// Send queues a record according to the overflow policy of its level.
// Only the Block policy can make the caller wait, and never longer than
// BlockTimeout.
func (t *HTTP) Send(rec core.Record) error {
	t.sendMu.RLock()
	defer t.sendMu.RUnlock()

	if t.isClosed.Load() {
		return ErrClosed
	}

	policy, ok := t.overflowPolicy[rec.Level]
	if !ok {
		policy = DropNewest // Default if not specified
	}

	switch policy {
	case Block:
		select {
		case t.queue <- rec:
			return nil
		default:
		}
		timer := time.NewTimer(t.blockTimeout)
		defer timer.Stop()
		select {
		case t.queue <- rec:
			return nil
		case <-timer.C:
			t.stats.IncrementBlocked()
			t.stats.IncrementDropped(rec.Level)
			return ErrQueueFull
		}

	case DropOldest:
		select {
		case t.queue <- rec:
			return nil
		default:
			// Queue full - try to drop oldest
			select {
			case old := <-t.queue:
				t.stats.IncrementDropped(old.Level)
			default:
			}
			select {
			case t.queue <- rec:
				return nil
			default:
				t.stats.IncrementDropped(rec.Level)
				return ErrQueueFull
			}
		}

	default:
		select {
		case t.queue <- rec:
			return nil
		default:
			t.stats.IncrementDropped(rec.Level)
			return ErrQueueFull
		}
	}
}

// Flush delivers all queued records
func (t *HTTP) Flush(ctx context.Context) error {
	done := make(chan error, 1)
	select {
	case t.flushReq <- done:
	case <-t.closed:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains the queue within the drain timeout and stops delivery.
// Records still queued when the drain timeout expires are counted as
// dropped.
func (t *HTTP) Close() error {
	t.closeOnce.Do(func() {
		// No Send is enqueueing once the write lock is held, so the
		// drain below sees every accepted record.
		t.sendMu.Lock()
		t.isClosed.Store(true)
		close(t.closed)
		t.sendMu.Unlock()
		t.wg.Wait()
	})
	return t.closeErr
}

// Stats returns a snapshot of the current statistics
func (t *HTTP) Stats() Snapshot {
	return t.stats.GetSnapshot()
}

// process batches queued records and ships them
func (t *HTTP) process() {
	defer t.wg.Done()

	ticker := time.NewTicker(t.flushInterval)
	defer ticker.Stop()

	batch := make([]core.Record, 0, t.batchSize)
	ship := func(ctx context.Context) error {
		if len(batch) == 0 {
			return nil
		}
		err := t.post(ctx, batch)
		batch = batch[:0]
		return err
	}

	for {
		select {
		case rec := <-t.queue:
			batch = append(batch, rec)
			if len(batch) >= t.batchSize {
				_ = ship(context.Background())
			}
		case <-ticker.C:
			_ = ship(context.Background())
		case done := <-t.flushReq:
			var err error
		flushLoop:
			for {
				select {
				case rec := <-t.queue:
					batch = append(batch, rec)
					if len(batch) >= t.batchSize {
						err = multierr.Append(err, ship(context.Background()))
					}
				default:
					break flushLoop
				}
			}
			done <- multierr.Append(err, ship(context.Background()))
		case <-t.closed:
			ctx, cancel := context.WithTimeout(context.Background(), t.drainTimeout)
			var err error
		drainLoop:
			for {
				select {
				case rec := <-t.queue:
					batch = append(batch, rec)
					if len(batch) >= t.batchSize {
						err = multierr.Append(err, ship(ctx))
					}
				case <-ctx.Done():
					break drainLoop
				default:
					break drainLoop
				}
			}
			t.closeErr = multierr.Append(err, ship(ctx))
			cancel()
			t.discardQueued()
			return
		}
	}
}

// discardQueued counts records left behind by an expired drain
func (t *HTTP) discardQueued() {
	for {
		select {
		case rec := <-t.queue:
			t.stats.IncrementDropped(rec.Level)
		default:
			return
		}
	}
}

// post sends one NDJSON batch
func (t *HTTP) post(ctx context.Context, batch []core.Record) error {
	var body bytes.Buffer
	for _, rec := range batch {
		if err := t.formatter.FormatRecord(rec, &body); err != nil {
			t.stats.AddFailed(len(batch))
			return fmt.Errorf("encode record: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, &body)
	if err != nil {
		t.stats.AddFailed(len(batch))
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.token)
	req.Header.Set("Content-Type", "application/x-ndjson")

	resp, err := t.client.Do(req)
	if err != nil {
		t.stats.AddFailed(len(batch))
		return fmt.Errorf("post batch: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		t.stats.AddFailed(len(batch))
		return fmt.Errorf("post batch: unexpected status %s", resp.Status)
	}
	t.stats.AddSent(len(batch))
	return nil
}
