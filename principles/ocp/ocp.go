// Package ocp demonstrates the Open/Closed Principle. Processor is closed:
// its charging logic never changes. The system is still open, because any new
// way to pay arrives as another PaymentMethod implementation.
package ocp

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownMethod is returned when no registered method matches the name.
	ErrUnknownMethod = errors.New("unknown payment method")
	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// PaymentMethod is the extension point. Implementations own their own fee
// model; the Processor knows none of them.
type PaymentMethod interface {
	Name() string
	Fee(amount decimal.Decimal) decimal.Decimal
}

// Receipt records one completed charge.
type Receipt struct {
	Method string
	Amount decimal.Decimal
	Fee    decimal.Decimal
	Total  decimal.Decimal
}

var creditCardFeeRate = decimal.RequireFromString("0.029")

// CreditCard charges a percentage fee.
type CreditCard struct {
	Number string
}

func (CreditCard) Name() string { return "credit-card" }

func (CreditCard) Fee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(creditCardFeeRate).Round(2)
}

var bankTransferFee = decimal.RequireFromString("0.35")

// BankTransfer charges a flat fee.
type BankTransfer struct {
	IBAN string
}

func (BankTransfer) Name() string { return "bank-transfer" }

func (BankTransfer) Fee(decimal.Decimal) decimal.Decimal { return bankTransferFee }

// Processor charges through whichever methods it was given. Supporting a new
// payment method means registering another implementation, never editing this
// type.
type Processor struct {
	methods map[string]PaymentMethod
}

func NewProcessor(methods ...PaymentMethod) *Processor {
	p := &Processor{methods: make(map[string]PaymentMethod, len(methods))}
	for _, m := range methods {
		p.methods[m.Name()] = m
	}
	return p
}

// Process charges amount through the named method and returns the receipt.
func (p *Processor) Process(method string, amount decimal.Decimal) (Receipt, error) {
	if amount.Sign() <= 0 {
		return Receipt{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	m, ok := p.methods[method]
	if !ok {
		return Receipt{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	fee := m.Fee(amount)
	return Receipt{
		Method: m.Name(),
		Amount: amount,
		Fee:    fee,
		Total:  amount.Add(fee),
	}, nil
}
