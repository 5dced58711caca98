package paysim

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"festival-flash-sale/internal/domain/payment"
	"festival-flash-sale/internal/pkg/config"
)

var ErrClosed = errors.New("payment simulator closed")

// Simulator stands in for an external payment provider. Every request is
// answered on Results after the configured delay; a DeclineRate share of them
// is declined.
type Simulator struct {
	delay       time.Duration
	declineRate float64
	roll        func() float64
	results     chan payment.Result
	logger      *slog.Logger

	mu      sync.Mutex
	closed  bool
	pending sync.WaitGroup
	done    chan struct{}
}

func NewSimulator(cfg config.PaymentConfig, logger *slog.Logger) *Simulator {
	buffer := cfg.ResultBuffer
	if buffer < 1 {
		buffer = 1
	}
	return &Simulator{
		delay:       cfg.SimulatedDelay,
		declineRate: cfg.DeclineRate,
		roll:        rand.Float64,
		results:     make(chan payment.Result, buffer),
		logger:      logger,
		done:        make(chan struct{}),
	}
}

func (s *Simulator) RequestPayment(ctx context.Context, req payment.Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	result := payment.Result{
		ResourceID: req.ResourceID,
		SessionID:  req.SessionID,
		Approved:   s.roll() >= s.declineRate,
	}
	if !result.Approved {
		result.Reason = "declined by simulator"
	}

	s.pending.Add(1)
	go s.deliver(result)
	return nil
}

func (s *Simulator) deliver(result payment.Result) {
	defer s.pending.Done()

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-s.done:
		s.logger.Warn("payment result dropped on shutdown", slog.String("session_id", result.SessionID.String()))
		return
	}

	select {
	case s.results <- result:
	case <-s.done:
		s.logger.Warn("payment result dropped on shutdown", slog.String("session_id", result.SessionID.String()))
	}
}

func (s *Simulator) Results() <-chan payment.Result {
	return s.results
}

// Close drops undelivered results and closes the results channel.
func (s *Simulator) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()

	s.pending.Wait()
	close(s.results)
	return nil
}
