package entities

import "time"

// PaymentMethod selects how the customer settles the order. Exactly one
// method must be chosen at checkout.

type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodBankTransfer
}

// OrderStatus tracks the order lifecycle. Submission is simulated, so every
// persisted order starts out confirmed.

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// Contact is the customer contact block collected at checkout.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ShippingAddress is the delivery address collected at checkout.
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func (a ShippingAddress) IsEmpty() bool {
	return a.Street == "" && a.City == "" && a.PostalCode == ""
}

// BankDetails are the static transfer instructions shown on bank-transfer
// confirmations.
type BankDetails struct {
	AccountHolder string `json:"account_holder"`
	IBAN          string `json:"iban"`
	BIC           string `json:"bic"`
	BankName      string `json:"bank_name"`
}

// StaticBankDetails returns the fixed account the shop receives transfers on.
func StaticBankDetails() BankDetails {
	return BankDetails{
		AccountHolder: "Atelier Prints Studio",
		IBAN:          "DE89 3704 0044 0532 0130 00",
		BIC:           "COBADEFFXXX",
		BankName:      "Commerzbank",
	}
}

// Order is a submitted checkout, persisted for confirmation lookup.
//
// Storage model (DynamoDB):
//   - PK: id (the idempotency key of the submission attempt)
//   - GSI: reference-index (PK: reference)
//
// Items and Totals are snapshots taken at submit time; the cart they came
// from is cleared as part of the same submission.

type Order struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	CartID        string          `json:"cart_id"`
	Items         []LineItem      `json:"items"`
	Totals        CheckoutTotals  `json:"totals"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	CardLast4     string          `json:"card_last4,omitempty"`
	Contact       Contact         `json:"contact"`
	Shipping      ShippingAddress `json:"shipping"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
