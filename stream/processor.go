// Package stream implements the block-oriented publisher/subscriber
// streaming processor: push arbitrary-sized sample chunks, get one
// MODWTResult per completed block delivered to subscribers under
// explicit backpressure.
package stream

import (
	"fmt"
	"sync"

	"github.com/prophetizo/vectorwave-go/modwt"
)

type subscription struct {
	id     SubscriberID
	sink   Sink
	demand int64
	queue  []modwt.Result
	active bool
}

// Processor is a single stream's accumulation/dispatch state. All
// exported methods are safe to call from different goroutines, but the
// spec's concurrency model treats a given stream as single-threaded
// cooperative: Push, Subscribe, Request, and Close calls for one
// Processor are expected to be serialized by the caller except where
// Block-mode backpressure intentionally has Push wait for a concurrent
// Request to drain a full queue.
type Processor struct {
	mu   sync.Mutex
	cond *sync.Cond

	tr        *modwt.Transform
	blockSize int
	cfg       config

	buffer []float64
	subs   map[SubscriberID]*subscription
	order  []SubscriberID
	nextID SubscriberID

	processed uint64
	closed    bool
}

// New constructs a Processor for the named wavelet and boundary mode,
// emitting one result per blockSize samples pushed. Returns
// ErrInvalidBlockSize if blockSize is shorter than the wavelet's filter
// length.
func New(waveletName string, boundary modwt.BoundaryMode, blockSize int, opts ...Option) (*Processor, error) {
	tr, err := modwt.New(waveletName, modwt.WithBoundary(boundary))
	if err != nil {
		return nil, err
	}
	if blockSize < tr.Wavelet().FilterLength() {
		return nil, ErrInvalidBlockSize
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Processor{
		tr:        tr,
		blockSize: blockSize,
		cfg:       cfg,
		subs:      make(map[SubscriberID]*subscription),
	}
	p.cond = sync.NewCond(&p.mu)
	return p, nil
}

// ProcessedSamples returns the monotonic count of samples consumed into
// completed blocks so far (excludes any residual buffer).
func (p *Processor) ProcessedSamples() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.processed
}

// Subscribe registers sink with an initial demand, returning a handle
// for Request and Unsubscribe.
func (p *Processor) Subscribe(sink Sink, initialDemand int64) SubscriberID {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	id := p.nextID
	p.subs[id] = &subscription{id: id, sink: sink, demand: initialDemand, active: true}
	p.order = append(p.order, id)
	return id
}

// Unsubscribe deregisters a subscriber. Effective by the next block:
// delivery checks each subscriber's active flag under the lock just
// before handing it a result, so the subscriber is skipped for every
// block whose delivery reaches it after Unsubscribe has run.
func (p *Processor) Unsubscribe(id SubscriberID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	sub, ok := p.subs[id]
	if !ok || !sub.active {
		return ErrUnknownSubscriber
	}
	sub.active = false
	return nil
}

// Request grants a subscriber up to n additional deliveries, draining
// any results that queued while demand was exhausted.
func (p *Processor) Request(id SubscriberID, n int64) error {
	p.mu.Lock()
	sub, ok := p.subs[id]
	if !ok || !sub.active {
		p.mu.Unlock()
		return ErrUnknownSubscriber
	}
	sub.demand += n

	var drained []modwt.Result
	for sub.demand > 0 && len(sub.queue) > 0 {
		drained = append(drained, sub.queue[0])
		sub.queue = sub.queue[1:]
		sub.demand--
	}
	p.cond.Broadcast()
	p.mu.Unlock()

	for _, res := range drained {
		p.invokeResult(sub, res)
	}
	return nil
}

// Push appends chunk to the accumulating buffer, emitting one result per
// completed block of block_size samples to every active subscriber.
// Returns ErrStreamClosed if the stream has already been closed.
func (p *Processor) Push(chunk []float64) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrStreamClosed
	}
	p.buffer = append(p.buffer, chunk...)

	var blocks [][]float64
	for len(p.buffer) >= p.blockSize {
		block := make([]float64, p.blockSize)
		copy(block, p.buffer[:p.blockSize])
		blocks = append(blocks, block)
		p.buffer = p.buffer[p.blockSize:]
	}
	if len(p.buffer) > 0 {
		residual := make([]float64, len(p.buffer))
		copy(residual, p.buffer)
		p.buffer = residual
	} else {
		p.buffer = nil
	}
	p.mu.Unlock()

	for _, block := range blocks {
		res, err := p.tr.Forward(block)
		if err != nil {
			return err
		}
		p.mu.Lock()
		p.processed += uint64(len(block))
		p.mu.Unlock()
		p.deliver(res)
	}
	return nil
}

// Close flushes any residual buffer per the processor's FlushPolicy and
// delivers OnComplete to every subscriber still active. Idempotent.
func (p *Processor) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	residual := p.buffer
	p.buffer = nil
	p.mu.Unlock()

	if len(residual) > 0 && p.cfg.flush == ZeroPadResidual {
		padded := make([]float64, p.blockSize)
		copy(padded, residual)
		res, err := p.tr.Forward(padded)
		if err == nil {
			p.mu.Lock()
			p.processed += uint64(len(residual))
			p.mu.Unlock()
			p.deliver(res)
		}
	}

	p.mu.Lock()
	p.closed = true
	sinks := make([]*subscription, 0, len(p.order))
	for _, id := range p.order {
		if sub := p.subs[id]; sub.active {
			sinks = append(sinks, sub)
		}
	}
	p.cond.Broadcast()
	p.mu.Unlock()

	for _, sub := range sinks {
		p.invokeComplete(sub)
	}
	return nil
}

// deliver dispatches one result to every active subscriber, in
// registration order, honoring each subscriber's demand and queue depth
// per the configured BackpressureMode.
func (p *Processor) deliver(res modwt.Result) {
	p.mu.Lock()
	ids := make([]SubscriberID, len(p.order))
	copy(ids, p.order)
	p.mu.Unlock()

	for _, id := range ids {
		p.mu.Lock()
		sub, ok := p.subs[id]
		if !ok || !sub.active {
			p.mu.Unlock()
			continue
		}

		switch {
		case sub.demand > 0:
			sub.demand--
			p.mu.Unlock()
			p.invokeResult(sub, res)

		case len(sub.queue) < p.cfg.queueCap:
			sub.queue = append(sub.queue, res)
			p.mu.Unlock()

		case p.cfg.backpressure == Drop:
			p.mu.Unlock()
			p.invokeError(sub, ErrBackpressureOverflow)

		default: // Block: wait for Request to drain room, or for Close.
			for len(sub.queue) >= p.cfg.queueCap && !p.closed {
				p.cond.Wait()
			}
			switch {
			case p.closed:
				p.mu.Unlock()
			case sub.demand > 0:
				// Request may have granted demand while we waited;
				// prefer immediate delivery over requeuing.
				sub.demand--
				p.mu.Unlock()
				p.invokeResult(sub, res)
			default:
				sub.queue = append(sub.queue, res)
				p.mu.Unlock()
			}
		}
	}
}

func (p *Processor) invokeResult(sub *subscription, res modwt.Result) {
	defer p.recoverFault(sub)
	sub.sink.OnResult(res)
}

func (p *Processor) invokeError(sub *subscription, err error) {
	defer p.recoverFault(sub)
	sub.sink.OnError(err)
}

func (p *Processor) invokeComplete(sub *subscription) {
	defer p.recoverFault(sub)
	sub.sink.OnComplete()
}

// recoverFault isolates a panicking subscriber callback: the subscriber
// is unsubscribed and, best-effort, told about its own fault.
func (p *Processor) recoverFault(sub *subscription) {
	r := recover()
	if r == nil {
		return
	}
	p.mu.Lock()
	sub.active = false
	p.mu.Unlock()

	defer func() { recover() }()
	sub.sink.OnError(fmt.Errorf("%w: %v", ErrSubscriberFault, r))
}
