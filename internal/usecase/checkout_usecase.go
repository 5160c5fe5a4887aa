package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrMissingContact       = errors.New("missing contact email")
	ErrMissingAddress       = errors.New("missing shipping address")
	ErrMissingCardDetails   = errors.New("missing card details")
	ErrInvalidOrderRef      = errors.New("invalid order reference")
	ErrOrderNotFound        = errors.New("order not found")
)

// SubmitOrderCommand is the checkout form translated into a domain command.
// Card fields arrive already normalized by the request DTO masks; they are
// presentation-level formatting, not validity checks.
type SubmitOrderCommand struct {
	CartID         string
	IdempotencyKey string
	Contact        entities.Contact
	Shipping       entities.ShippingAddress
	PaymentMethod  entities.PaymentMethod
	CardNumber     string
	CardExpiry     string
	CardCVV        string
}

// CheckoutQuote is the totals block rendered on every checkout view.
// AddressEntered gates whether shipping (and therefore the grand total) may
// be shown as a computed value; before an address exists the client renders
// "enter address" instead.
type CheckoutQuote struct {
	Totals         entities.CheckoutTotals
	CartEmpty      bool
	AddressEntered bool
}

// ICheckoutUseCase exposes the checkout flow: totals quoting, (simulated)
// submission and confirmation lookup.

type ICheckoutUseCase interface {
	Quote(ctx context.Context, cartID string, addressEntered bool) (CheckoutQuote, error)
	Submit(ctx context.Context, cmd SubmitOrderCommand) (entities.Order, error)
	GetOrderByReference(ctx context.Context, reference string) (entities.Order, error)
}

type CheckoutUseCase struct {
	cart    ICartUseCase
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(cart ICartUseCase, orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{cart: cart, orders: orders, gateway: gateway}
}

func (u *CheckoutUseCase) Quote(ctx context.Context, cartID string, addressEntered bool) (CheckoutQuote, error) {
	cart, err := u.cart.GetCart(ctx, cartID)
	if err != nil {
		return CheckoutQuote{}, err
	}
	return CheckoutQuote{
		Totals:         entities.TotalsFor(cart),
		CartEmpty:      cart.IsEmpty(),
		AddressEntered: addressEntered,
	}, nil
}

// Submit runs the whole submission stage: validate, authorize (simulated),
// persist the order, clear the cart. The order ID is the caller's idempotency
// key, so replaying the same submission returns the already-created order
// instead of duplicating it.
func (u *CheckoutUseCase) Submit(ctx context.Context, cmd SubmitOrderCommand) (entities.Order, error) {
	if err := validateSubmit(cmd); err != nil {
		return entities.Order{}, err
	}

	cart, err := u.cart.GetCart(ctx, cmd.CartID)
	if err != nil {
		return entities.Order{}, err
	}
	if cart.IsEmpty() {
		return entities.Order{}, ErrEmptyCart
	}

	key := strings.TrimSpace(cmd.IdempotencyKey)
	if key == "" {
		// Callers should generate the key once per checkout attempt; a
		// server-side fallback still prevents partial orders, just not
		// duplicate clicks that never sent a key.
		key = uuid.NewString()
	}

	totals := entities.TotalsFor(cart)
	reference := NewOrderReference(time.Now().UTC())

	log.Printf("[checkout][usecase] submit start cart_id=%s order_id=%s reference=%s grand_total=%.2f method=%s",
		cart.ID, key, reference, totals.GrandTotal, cmd.PaymentMethod)

	if u.gateway != nil {
		if err := u.gateway.Authorize(ctx, cmd.PaymentMethod, totals.GrandTotal, reference); err != nil {
			log.Printf("[checkout][usecase] authorize failed order_id=%s err=%v", key, err)
			return entities.Order{}, err
		}
	}

	order := entities.Order{
		ID:            key,
		Reference:     reference,
		CartID:        cart.ID,
		Items:         cart.Items,
		Totals:        totals,
		PaymentMethod: cmd.PaymentMethod,
		CardLast4:     cardLast4(cmd.CardNumber),
		Contact:       cmd.Contact,
		Shipping:      cmd.Shipping,
		Status:        entities.OrderStatusConfirmed,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	if created.ID == "" {
		// Conditional write lost: this idempotency key already produced an
		// order. Return that one and leave the cart alone; the original
		// submission cleared it.
		existing, err := u.orders.GetByID(ctx, key)
		if err != nil {
			return entities.Order{}, err
		}
		if existing.ID == "" {
			return entities.Order{}, ErrOrderNotFound
		}
		log.Printf("[checkout][usecase] duplicate submit order_id=%s reference=%s", existing.ID, existing.Reference)
		return existing, nil
	}

	if _, err := u.cart.Clear(ctx, cart.ID); err != nil {
		// The order exists; a failed cart clear is staleness, not a lost
		// order. Surface it in the logs only.
		log.Printf("[checkout][usecase] cart clear failed cart_id=%s order_id=%s err=%v", cart.ID, created.ID, err)
	}

	log.Printf("[checkout][usecase] submit success order_id=%s reference=%s", created.ID, created.Reference)
	return created, nil
}

func (u *CheckoutUseCase) GetOrderByReference(ctx context.Context, reference string) (entities.Order, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.Order{}, ErrInvalidOrderRef
	}

	o, err := u.orders.GetByReference(ctx, reference)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func validateSubmit(cmd SubmitOrderCommand) error {
	if strings.TrimSpace(cmd.CartID) == "" {
		return ErrInvalidCartID
	}
	if !cmd.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}
	if strings.TrimSpace(cmd.Contact.Email) == "" {
		return ErrMissingContact
	}
	if cmd.Shipping.IsEmpty() {
		return ErrMissingAddress
	}
	if cmd.PaymentMethod == entities.PaymentMethodCreditCard && cardLast4(cmd.CardNumber) == "" {
		return ErrMissingCardDetails
	}
	return nil
}

// NewOrderReference builds the timestamp-derived confirmation token, e.g.
// "PH-MBA3K2QJ-7F". Collision-resistant enough for a shop of this size: the
// millisecond timestamp in base36 plus a short random suffix.
func NewOrderReference(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix := strings.ToUpper(uuid.NewString()[:2])
	return "PH-" + ts + "-" + suffix
}

func cardLast4(number string) string {
	digits := make([]rune, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return ""
	}
	return string(digits[len(digits)-4:])
}
