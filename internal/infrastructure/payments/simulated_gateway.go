package payments

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/usecase/interfaces"
)

const defaultSubmitDelayMS = 900

// SimulatedGateway stands in for a real payment provider. It sleeps for a
// configurable delay to mimic network latency and then approves every
// authorization. The submit control stays disabled client-side for the whole
// delay, which is what makes the latency observable at all.
//
// Env vars:
//   - CHECKOUT_SUBMIT_DELAY_MS (default: 900; 0 disables the delay)

type SimulatedGateway struct {
	delay time.Duration
}

var _ interfaces.IPaymentGateway = (*SimulatedGateway)(nil)

func NewSimulatedGateway() *SimulatedGateway {
	delayMS := defaultSubmitDelayMS
	if raw := os.Getenv("CHECKOUT_SUBMIT_DELAY_MS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			delayMS = v
		}
	}
	return &SimulatedGateway{delay: time.Duration(delayMS) * time.Millisecond}
}

// NewSimulatedGatewayWithDelay is used by tests to avoid sleeping.
func NewSimulatedGatewayWithDelay(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{delay: delay}
}

func (g *SimulatedGateway) Authorize(ctx context.Context, method entities.PaymentMethod, amount float64, reference string) error {
	log.Printf("[payments][simulated] authorize method=%s amount=%.2f reference=%s delay=%s", method, amount, reference, g.delay)

	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
