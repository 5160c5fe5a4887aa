package interfaces

import (
	"context"

	"atelier_prints/internal/domain/entities"
)

// IPaymentGateway abstracts payment authorization at submit time.
//
// Real gateway integration is out of scope; the shipped implementation
// simulates latency and always approves. The port exists so a real provider
// can be slotted in without touching the checkout use case.
type IPaymentGateway interface {
	Authorize(ctx context.Context, method entities.PaymentMethod, amount float64, reference string) error
}
