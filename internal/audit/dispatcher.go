package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Event struct {
	OrganizationID uint
	EventID        *uint
	UserID         *uint
	Action         string
	Entity         string
	EntityID       *uint
	Metadata       any
}

type Sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher grava a auditoria fora da request. Nunca bloqueia: com a
// fila cheia o evento é descartado.
type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink, size int, log *zap.Logger) *Dispatcher {
	if size <= 0 {
		size = 100
	}

	d := &Dispatcher{
		sink:  sink,
		log:   log.With(zap.String("component", "audit")),
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Error("audit error",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

// Dispatch aceita receiver nil para use cases montados sem auditoria.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drena a fila e espera o worker terminar. Depois de Close,
// Dispatch não pode mais ser chamado.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
