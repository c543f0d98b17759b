package entity

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const minorUnitExp = 2

// Order is the JSON form of a payment request accepted by the HTTP API and the CLI.
// Cart amounts are in major currency units.
type Order struct {
	OrderNo      string      `json:"orderNo"`
	MerchantData string      `json:"merchantData,omitempty"`
	CustomerID   string      `json:"customerId,omitempty"`
	Currency     string      `json:"currency,omitempty"`
	Language     string      `json:"language,omitempty"`
	PayOperation string      `json:"payOperation,omitempty"`
	PayMethod    string      `json:"payMethod,omitempty"`
	ClosePayment *bool       `json:"closePayment,omitempty"`
	ReturnURL    string      `json:"returnUrl,omitempty"`
	ReturnMethod string      `json:"returnMethod,omitempty"`
	Description  string      `json:"description,omitempty"`
	Cart         []OrderItem `json:"cart"`
}

type OrderItem struct {
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"number"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"number"`
	Description string          `json:"description,omitempty"`
}

// MinorUnits converts an amount in major currency units to minor units.
func MinorUnits(amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: amount %s is negative", ErrInvalidInput, amount)
	}

	minor := amount.Shift(minorUnitExp)
	if !minor.IsInteger() {
		return 0, fmt.Errorf("%w: amount %s has more than %d decimal places", ErrInvalidInput, amount, minorUnitExp)
	}

	if minor.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0, fmt.Errorf("%w: amount %s is too large", ErrInvalidInput, amount)
	}

	return minor.IntPart(), nil
}

// Request builds a payment request from the order.
func (o Order) Request() (*PaymentRequest, error) {
	p, err := NewPaymentRequest(o.OrderNo, o.MerchantData, o.CustomerID)
	if err != nil {
		return nil, err
	}

	p.Currency = o.Currency
	p.Language = o.Language
	p.PayOperation = o.PayOperation
	p.PayMethod = o.PayMethod
	p.ClosePayment = o.ClosePayment
	p.ReturnURL = o.ReturnURL
	p.ReturnMethod = o.ReturnMethod
	p.Description = o.Description

	for i, item := range o.Cart {
		amount, err := MinorUnits(item.Amount)
		if err != nil {
			return nil, fmt.Errorf("cart item %d: %w", i+1, err)
		}

		err = p.AddCartItem(item.Name, item.Quantity.String(), amount, item.Description)
		if err != nil {
			return nil, fmt.Errorf("cart item %d: %w", i+1, err)
		}
	}

	return p, nil
}
