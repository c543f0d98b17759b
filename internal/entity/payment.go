package entity

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	MaxCartItems        = 2
	MaxMerchantDataLen  = 255
	CartItemNameLen     = 20
	CartItemDescLen     = 40
	DescriptionLen      = 240
	CustomerIDLen       = 50
	DescriptionEllipsis = "..."
	DefaultPayOperation = "payment"
	DefaultPayMethod    = "card"
	DefaultCurrency     = "CZK"
	DefaultLanguage     = "CZ"
	DefaultClosePayment = true
	DateTimeLayout      = "20060102150405"
)

// Merchant is the merchant configuration consumed when a payment is prepared and signed.
type Merchant struct {
	ID                 string
	ShopName           string
	ReturnURL          string
	ReturnMethod       string
	PrivateKeyFile     string
	PrivateKeyPassword string
}

// CartItem is one line of an order. Amount is the total for all units in minor currency units.
type CartItem struct {
	Name        string
	Quantity    decimal.Decimal
	Amount      int64
	Description string
}

func (c CartItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name        string      `json:"name"`
		Quantity    json.Number `json:"quantity"`
		Amount      int64       `json:"amount"`
		Description string      `json:"description"`
	}{
		Name:        c.Name,
		Quantity:    json.Number(c.Quantity.String()),
		Amount:      c.Amount,
		Description: c.Description,
	})
}

// PaymentRequest collects order data from the merchant. It is turned into a
// PreparedPayment by Prepare; only a PreparedPayment can be signed.
//
// Zero values mean "unset" and are replaced by defaults during preparation.
// ClosePayment is a pointer so that an explicit false survives preparation.
type PaymentRequest struct {
	OrderNo      string
	Currency     string
	ClosePayment *bool
	ReturnURL    string
	ReturnMethod string
	Description  string
	CustomerID   string
	Language     string
	PayOperation string
	PayMethod    string

	cart         []CartItem
	merchantData string
}

// NewPaymentRequest creates a request for the given order. The order number is
// stored as is and checked by Prepare. Empty merchantData and customerID are ignored.
func NewPaymentRequest(orderNo, merchantData, customerID string) (*PaymentRequest, error) {
	p := &PaymentRequest{
		OrderNo:    orderNo,
		CustomerID: customerID,
	}

	if merchantData != "" {
		err := p.SetMerchantData(merchantData, false)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// AddCartItem appends an item to the cart. The gateway accepts at most two items.
// quantity must be a number not less than 1.
func (p *PaymentRequest) AddCartItem(name, quantity string, amount int64, description string) error {
	if len(p.cart) >= MaxCartItems {
		return fmt.Errorf("%w: cart supports up to %d items", ErrStructuralLimit, MaxCartItems)
	}

	q, err := ParseQuantity(quantity)
	if err != nil {
		return err
	}

	p.cart = append(p.cart, CartItem{
		Name:        shorten(name, CartItemNameLen, "", true),
		Quantity:    q,
		Amount:      amount,
		Description: shorten(description, CartItemDescLen, "", false),
	})

	return nil
}

// ParseQuantity parses a cart item quantity.
func ParseQuantity(quantity string) (decimal.Decimal, error) {
	q, err := decimal.NewFromString(quantity)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: quantity %q is not numeric", ErrInvalidInput, quantity)
	}

	if q.LessThan(decimal.NewFromInt(1)) {
		return decimal.Decimal{}, fmt.Errorf("%w: quantity %s must be >= 1", ErrInvalidInput, q)
	}

	return q, nil
}

// Cart returns a copy of the cart items in insertion order.
func (p *PaymentRequest) Cart() []CartItem {
	return append([]CartItem(nil), p.cart...)
}

// SetMerchantData stores data that the gateway sends back when the customer returns.
// Data is kept base64 encoded; pass alreadyEncoded when the caller did the encoding.
func (p *PaymentRequest) SetMerchantData(data string, alreadyEncoded bool) error {
	if alreadyEncoded {
		_, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return fmt.Errorf("%w: merchant data is not valid base64", ErrInvalidInput)
		}
	} else {
		data = base64.StdEncoding.EncodeToString([]byte(data))
	}

	if len(data) > MaxMerchantDataLen {
		return fmt.Errorf("%w: merchant data is %d characters after base64 encoding, max %d",
			ErrInvalidInput, len(data), MaxMerchantDataLen)
	}

	p.merchantData = data

	return nil
}

// MerchantData returns the decoded merchant data or an empty string if unset.
func (p *PaymentRequest) MerchantData() string {
	return decodeMerchantData(p.merchantData)
}

func decodeMerchantData(encoded string) string {
	if encoded == "" {
		return ""
	}

	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}

	return string(b)
}
