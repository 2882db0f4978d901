// Package dip demonstrates the Dependency Inversion Principle. Checkout is
// high-level policy and owns the PaymentService abstraction it depends on;
// PayPalPaymentService is a low-level detail that conforms to it. The
// dependency arrow points from detail to policy, never the other way.
package dip

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoCustomer is returned when the checkout has nobody to charge.
	ErrNoCustomer = errors.New("customer id is required")
	// ErrInvalidCharge is returned for zero or negative amounts.
	ErrInvalidCharge = errors.New("charge amount must be positive")
)

// PaymentService is the abstraction Checkout programs against. It returns a
// confirmation reference for a completed charge.
type PaymentService interface {
	Charge(customerID string, amount decimal.Decimal) (string, error)
}

// Order is the outcome of a successful checkout.
type Order struct {
	CustomerID   string
	Amount       decimal.Decimal
	Confirmation string
}

// Checkout is the high-level policy. It validates and delegates; which
// payment provider sits behind PaymentService is none of its business.
type Checkout struct {
	payments PaymentService
}

func NewCheckout(payments PaymentService) *Checkout {
	return &Checkout{payments: payments}
}

// Pay charges the customer and returns the resulting order.
func (c *Checkout) Pay(customerID string, amount decimal.Decimal) (Order, error) {
	if customerID == "" {
		return Order{}, ErrNoCustomer
	}
	if amount.Sign() <= 0 {
		return Order{}, fmt.Errorf("%w: %s", ErrInvalidCharge, amount)
	}
	confirmation, err := c.payments.Charge(customerID, amount)
	if err != nil {
		return Order{}, fmt.Errorf("charge: %w", err)
	}
	return Order{CustomerID: customerID, Amount: amount, Confirmation: confirmation}, nil
}

// PayPalPaymentService is one low-level detail behind the abstraction. A real
// one would call PayPal; this one issues deterministic merchant references so
// the shape of the dependency stays honest without a network.
type PayPalPaymentService struct {
	merchantID string
}

func NewPayPalPaymentService(merchantID string) *PayPalPaymentService {
	return &PayPalPaymentService{merchantID: merchantID}
}

var _ PaymentService = (*PayPalPaymentService)(nil)

func (p *PayPalPaymentService) Charge(customerID string, amount decimal.Decimal) (string, error) {
	if customerID == "" {
		return "", ErrNoCustomer
	}
	return fmt.Sprintf("paypal:%s:%s:%s", p.merchantID, customerID, amount.StringFixed(2)), nil
}
