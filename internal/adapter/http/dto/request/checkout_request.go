package request

import (
	"errors"
	"strings"

	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/usecase"
)

var (
	ErrNoPaymentMethod        = errors.New("no payment method selected")
	ErrAmbiguousPaymentMethod = errors.New("credit card and bank transfer are mutually exclusive")
)

type ContactRequest struct {
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

type ShippingAddressRequest struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country"`
}

// CardRequest carries the raw credit-card fields. The Normalized* accessors
// apply the same presentation masks the form uses: number grouped in blocks
// of four, expiry as "MM / YY", CVV digits-only capped at four. They are
// formatting, not validity checks; there is no Luhn validation here.
type CardRequest struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

func (r CardRequest) NormalizedNumber() string {
	return FormatCardNumber(r.Number)
}

func (r CardRequest) NormalizedExpiry() string {
	return FormatExpiry(r.Expiry)
}

func (r CardRequest) NormalizedCVV() string {
	return SanitizeCVV(r.CVV)
}

func (r CardRequest) isZero() bool {
	return strings.TrimSpace(r.Number) == "" && strings.TrimSpace(r.Expiry) == "" && strings.TrimSpace(r.CVV) == ""
}

// CheckoutRequest is the full checkout form. Exactly one of Card or
// BankTransfer must be chosen.
type CheckoutRequest struct {
	IdempotencyKey string                 `json:"idempotency_key"`
	Contact        ContactRequest         `json:"contact" binding:"required"`
	Shipping       ShippingAddressRequest `json:"shipping" binding:"required"`
	Card           *CardRequest           `json:"card"`
	BankTransfer   bool                   `json:"bank_transfer"`
}

// ResolvePaymentMethod enforces the mutual exclusion between card and bank
// transfer and returns the chosen method.
func (r CheckoutRequest) ResolvePaymentMethod() (entities.PaymentMethod, error) {
	hasCard := r.Card != nil && !r.Card.isZero()
	switch {
	case hasCard && r.BankTransfer:
		return "", ErrAmbiguousPaymentMethod
	case hasCard:
		return entities.PaymentMethodCreditCard, nil
	case r.BankTransfer:
		return entities.PaymentMethodBankTransfer, nil
	default:
		return "", ErrNoPaymentMethod
	}
}

// ToCommand translates the form into the domain submission command.
func (r CheckoutRequest) ToCommand(cartID string) (usecase.SubmitOrderCommand, error) {
	method, err := r.ResolvePaymentMethod()
	if err != nil {
		return usecase.SubmitOrderCommand{}, err
	}

	cmd := usecase.SubmitOrderCommand{
		CartID:         cartID,
		IdempotencyKey: strings.TrimSpace(r.IdempotencyKey),
		Contact: entities.Contact{
			Email: strings.TrimSpace(r.Contact.Email),
			Phone: strings.TrimSpace(r.Contact.Phone),
		},
		Shipping: entities.ShippingAddress{
			FullName:   strings.TrimSpace(r.Shipping.FullName),
			Street:     strings.TrimSpace(r.Shipping.Street),
			City:       strings.TrimSpace(r.Shipping.City),
			PostalCode: strings.TrimSpace(r.Shipping.PostalCode),
			Country:    strings.TrimSpace(r.Shipping.Country),
		},
		PaymentMethod: method,
	}
	if method == entities.PaymentMethodCreditCard {
		cmd.CardNumber = r.Card.NormalizedNumber()
		cmd.CardExpiry = r.Card.NormalizedExpiry()
		cmd.CardCVV = r.Card.NormalizedCVV()
	}
	return cmd, nil
}

// FormatCardNumber strips everything but digits and regroups them in blocks
// of four: "4242424242424242" -> "4242 4242 4242 4242".
func FormatCardNumber(raw string) string {
	digits := onlyDigits(raw)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry normalizes an expiry input to "MM / YY". Fewer than three
// digits pass through ungrouped so partial typing is representable.
func FormatExpiry(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) < 3 {
		return digits
	}
	return digits[:2] + " / " + digits[2:]
}

// SanitizeCVV keeps digits only, capped at four.
func SanitizeCVV(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
