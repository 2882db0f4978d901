package ocp

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Process(t *testing.T) {
	proc := NewProcessor(CreditCard{Number: "4111"}, BankTransfer{IBAN: "DE89"})

	tests := []struct {
		name      string
		method    string
		amount    string
		wantFee   string
		wantTotal string
	}{
		{
			name:      "credit card takes a percentage",
			method:    "credit-card",
			amount:    "100.00",
			wantFee:   "2.90",
			wantTotal: "102.90",
		},
		{
			name:      "bank transfer takes a flat fee",
			method:    "bank-transfer",
			amount:    "15.50",
			wantFee:   "0.35",
			wantTotal: "15.85",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt, err := proc.Process(tt.method, decimal.RequireFromString(tt.amount))

			require.NoError(t, err)
			assert.Equal(t, tt.method, receipt.Method)
			assert.True(t, receipt.Fee.Equal(decimal.RequireFromString(tt.wantFee)),
				"fee: got %s, want %s", receipt.Fee, tt.wantFee)
			assert.True(t, receipt.Total.Equal(decimal.RequireFromString(tt.wantTotal)),
				"total: got %s, want %s", receipt.Total, tt.wantTotal)
		})
	}
}

func TestProcessor_UnknownMethod(t *testing.T) {
	proc := NewProcessor(CreditCard{})

	_, err := proc.Process("cash", decimal.RequireFromString("10"))

	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestProcessor_RejectsNonPositiveAmounts(t *testing.T) {
	proc := NewProcessor(CreditCard{})

	for _, amount := range []string{"0", "-3.20"} {
		_, err := proc.Process("credit-card", decimal.RequireFromString(amount))
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %s", amount)
	}
}

// giftCard exists only in this test. The processor charges through it without
// having been modified, which is the whole point of the package.
type giftCard struct{}

func (giftCard) Name() string { return "gift-card" }

func (giftCard) Fee(decimal.Decimal) decimal.Decimal { return decimal.Zero }

func TestProcessor_OpenToNewMethods(t *testing.T) {
	proc := NewProcessor(CreditCard{}, BankTransfer{}, giftCard{})

	receipt, err := proc.Process("gift-card", decimal.RequireFromString("25.00"))

	require.NoError(t, err)
	assert.True(t, receipt.Fee.IsZero())
	assert.True(t, receipt.Total.Equal(decimal.RequireFromString("25.00")))
}
