// Package geolocation runs on the delivery agent's side and streams the agent's location
// into the position store.
//
// Two sources feed one sink. A watch channel delivers device movement when the platform
// has it, and a ticker polls the sampler at a fixed interval in case it does not. There
// is no queue and no retry: a failed read or write is logged and the next sample
// replaces it.
package geolocation

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/agent"
	"orderflow/internal/core/domain/model/kernel"

	"go.uber.org/zap"
)

// DefaultPollInterval is how often the sampler is polled.
const DefaultPollInterval = 60 * time.Second

// Sampler reads the device location once.
type Sampler interface {
	Sample(ctx context.Context) (kernel.GeoPoint, error)
}

// Sink stores a position. ports.PositionStore satisfies it, as does HTTPSink.
type Sink interface {
	Put(ctx context.Context, position agent.Position) error
}

type Option func(*Pipeline)

// WithWatch adds a push source of device movement.
func WithWatch(watch <-chan kernel.GeoPoint) Option {
	return func(p *Pipeline) {
		p.watch = watch
	}
}

// WithPollInterval overrides DefaultPollInterval. Non-positive values are ignored.
func WithPollInterval(interval time.Duration) Option {
	return func(p *Pipeline) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(p *Pipeline) {
		p.clock = clock
	}
}

// Pipeline forwards every sample of one agent's location to a sink.
type Pipeline struct {
	agentID  kernel.UUID
	sampler  Sampler
	sink     Sink
	watch    <-chan kernel.GeoPoint
	interval time.Duration
	clock    func() time.Time
	logger   *zap.Logger
}

func NewPipeline(agentID kernel.UUID, sampler Sampler, sink Sink, logger *zap.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		agentID:  agentID,
		sampler:  sampler,
		sink:     sink,
		interval: DefaultPollInterval,
		clock:    time.Now,
		logger:   logger.With(zap.String("component", "geolocation_pipeline"), zap.String("agent_id", agentID.String())),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run polls once immediately and then on every tick, and forwards watch updates as they
// come, until ctx is done. A closed watch channel leaves polling running.
func (p *Pipeline) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)

	watch := p.watch
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.poll(ctx)
		case point, ok := <-watch:
			if !ok {
				p.logger.Info("location watch closed, polling only")
				watch = nil
				continue
			}
			p.forward(ctx, point)
		}
	}
}

func (p *Pipeline) poll(ctx context.Context) {
	point, err := p.sampler.Sample(ctx)
	if err != nil {
		p.logger.Warn("location sample failed", zap.Error(err))
		return
	}
	p.forward(ctx, point)
}

func (p *Pipeline) forward(ctx context.Context, point kernel.GeoPoint) {
	position, err := agent.NewPosition(p.agentID, point, p.clock())
	if err != nil {
		p.logger.Warn("invalid location dropped", zap.Error(err))
		return
	}
	if err = p.sink.Put(ctx, position); err != nil {
		p.logger.Warn("location write failed", zap.Error(err), zap.Stringer("point", point))
	}
}
