// Package notify implementa la cola de alertas de re-orden: un worker en
// background que entrega correos con reintentos, fuera del camino de la orden.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/jcastellr/almacen-api/pkg/logger"
)

// Message es una alerta de re-orden lista para entregar.
type Message struct {
	Recipients    []string
	Subject       string
	Barcode       string
	Location      string
	Specification string
	Remaining     int
}

// Sender entrega un mensaje por el transporte configurado (SMTP en producción).
// Debe ser seguro reintentar: la entrega puede repetirse ante fallos transitorios.
type Sender interface {
	Send(msg Message) error
}

// Dispatcher encola mensajes y los entrega desde un único worker con reintentos
// y backoff exponencial. Encolar nunca bloquea: con la cola llena el mensaje se
// descarta con un warning. Un fallo definitivo se loguea y se descarta; jamás
// se propaga al que encoló.
type Dispatcher struct {
	sender     Sender
	log        *logger.Logger
	jobs       chan Message
	wg         sync.WaitGroup
	maxRetries int
	baseDelay  time.Duration

	mu      sync.Mutex
	stopped bool
}

// Option ajusta el dispatcher al construirlo.
type Option func(*Dispatcher)

// WithBaseDelay cambia la espera base entre reintentos.
func WithBaseDelay(d time.Duration) Option {
	return func(dp *Dispatcher) { dp.baseDelay = d }
}

// WithQueueSize cambia la capacidad de la cola.
func WithQueueSize(n int) Option {
	return func(dp *Dispatcher) { dp.jobs = make(chan Message, n) }
}

// NewDispatcher construye el dispatcher y arranca su worker.
func NewDispatcher(sender Sender, maxRetries int, log *logger.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sender:     sender,
		log:        log,
		jobs:       make(chan Message, 64),
		maxRetries: maxRetries,
		baseDelay:  time.Second,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.wg.Add(1)
	go d.work()
	return d
}

// Enqueue agrega el mensaje a la cola sin bloquear. Tras Stop, o con la cola
// llena, el mensaje se descarta.
func (d *Dispatcher) Enqueue(msg Message) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		d.log.Warn().Str("barcode", msg.Barcode).Msg("dispatcher detenido, alerta descartada")
		return
	}
	select {
	case d.jobs <- msg:
	default:
		d.log.Warn().Str("barcode", msg.Barcode).Msg("cola de alertas llena, alerta descartada")
	}
}

// Stop drena la cola y espera a que el worker termine.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.jobs)
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for msg := range d.jobs {
		d.deliver(msg)
	}
}

// deliver intenta la entrega con backoff exponencial: base, 2x, 4x, ...
func (d *Dispatcher) deliver(msg Message) {
	var err error
	for attempt := 0; attempt <= d.maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(d.baseDelay << (attempt - 1))
		}
		if err = d.sender.Send(msg); err == nil {
			d.log.Info().
				Str("barcode", msg.Barcode).
				Int("recipients", len(msg.Recipients)).
				Msg("alerta de re-orden enviada")
			return
		}
		d.log.Warn().
			Err(err).
			Str("barcode", msg.Barcode).
			Int("attempt", attempt+1).
			Msg("fallo al enviar alerta de re-orden")
	}
	d.log.Error().
		Err(fmt.Errorf("agotados %d reintentos: %w", d.maxRetries, err)).
		Str("barcode", msg.Barcode).
		Msg("alerta de re-orden descartada")
}
