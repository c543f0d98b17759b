package entity

import (
	"fmt"
	"regexp"
	"time"
)

var orderNoRegexp = regexp.MustCompile(`^[0-9]{1,10}$`)

// PreparedPayment is a validated payment with every default filled in.
// It is produced only by PaymentRequest.Prepare and is read-only apart from
// the payment ID assigned by the gateway.
type PreparedPayment struct {
	merchantID   string
	orderNo      string
	dttm         string
	payOperation string
	payMethod    string
	totalAmount  int64
	currency     string
	closePayment bool
	returnURL    string
	returnMethod string
	cart         []CartItem
	description  string
	merchantData string
	customerID   string
	language     string

	payID string
}

// Prepare validates the request against the merchant configuration and returns
// the payment ready to be signed. The request itself is not modified.
func (p *PaymentRequest) Prepare(m Merchant, now time.Time) (*PreparedPayment, error) {
	pp := &PreparedPayment{
		merchantID:   m.ID,
		orderNo:      p.OrderNo,
		dttm:         now.Format(DateTimeLayout),
		payOperation: orDefault(p.PayOperation, DefaultPayOperation),
		payMethod:    orDefault(p.PayMethod, DefaultPayMethod),
		currency:     orDefault(p.Currency, DefaultCurrency),
		language:     orDefault(p.Language, DefaultLanguage),
		closePayment: DefaultClosePayment,
		returnURL:    orDefault(p.ReturnURL, m.ReturnURL),
		returnMethod: orDefault(p.ReturnMethod, m.ReturnMethod),
		merchantData: p.merchantData,
	}

	if p.ClosePayment != nil {
		pp.closePayment = *p.ClosePayment
	}

	if pp.returnURL == "" {
		return nil, fmt.Errorf("%w: return URL is set neither in the request nor in the merchant config", ErrConfiguration)
	}

	description := p.Description
	if description == "" {
		description = m.ShopName + ", " + p.OrderNo
	}

	pp.description = shorten(description, DescriptionLen, DescriptionEllipsis, false)
	pp.customerID = shorten(p.CustomerID, CustomerIDLen, "", true)

	if len(p.cart) == 0 {
		return nil, fmt.Errorf("%w: cart is empty, add one or two items", ErrStructuralLimit)
	}

	if !orderNoRegexp.MatchString(p.OrderNo) {
		return nil, fmt.Errorf("%w: order number %q must be 1 to 10 digits", ErrInvalidInput, p.OrderNo)
	}

	pp.cart = p.Cart()

	for _, item := range pp.cart {
		total := pp.totalAmount + item.Amount
		if (item.Amount > 0 && total < pp.totalAmount) || (item.Amount < 0 && total > pp.totalAmount) {
			return nil, fmt.Errorf("%w: total amount of the cart overflows", ErrInvalidInput)
		}

		pp.totalAmount = total
	}

	return pp, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}

func (p *PreparedPayment) MerchantID() string   { return p.merchantID }
func (p *PreparedPayment) OrderNo() string      { return p.orderNo }
func (p *PreparedPayment) DateTime() string     { return p.dttm }
func (p *PreparedPayment) PayOperation() string { return p.payOperation }
func (p *PreparedPayment) PayMethod() string    { return p.payMethod }
func (p *PreparedPayment) TotalAmount() int64   { return p.totalAmount }
func (p *PreparedPayment) Currency() string     { return p.currency }
func (p *PreparedPayment) ClosePayment() bool   { return p.closePayment }
func (p *PreparedPayment) ReturnURL() string    { return p.returnURL }
func (p *PreparedPayment) ReturnMethod() string { return p.returnMethod }
func (p *PreparedPayment) Description() string  { return p.description }
func (p *PreparedPayment) CustomerID() string   { return p.customerID }
func (p *PreparedPayment) Language() string     { return p.language }

// Cart returns a copy of the cart items in insertion order.
func (p *PreparedPayment) Cart() []CartItem {
	return append([]CartItem(nil), p.cart...)
}

// MerchantData returns the decoded merchant data or an empty string if unset.
func (p *PreparedPayment) MerchantData() string {
	return decodeMerchantData(p.merchantData)
}

// SetPayID records the payment ID assigned by the gateway after payment/init.
func (p *PreparedPayment) SetPayID(id string) {
	p.payID = id
}

func (p *PreparedPayment) PayID() string {
	return p.payID
}
