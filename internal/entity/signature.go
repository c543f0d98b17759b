package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	signatureDelimiter = "|"
	SignatureField     = "signature"
)

// SignFunc signs message with the private key stored in keyFile and returns the
// signature in the form the gateway expects.
type SignFunc func(message, keyFile, passphrase string) (string, error)

// Value is a field value of a signed payload. The set of kinds is closed:
// Scalar, BoolFlag and RecordList.
type Value interface {
	// String renders the value for the signature string.
	String() string
	json.Marshaler

	value()
}

// Scalar is plain text. Numeric scalars are framed as JSON numbers.
type Scalar struct {
	text    string
	numeric bool
}

func Text(s string) Scalar { return Scalar{text: s} }

func Int(n int64) Scalar { return Scalar{text: strconv.FormatInt(n, 10), numeric: true} }

func (s Scalar) String() string { return s.text }

func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.numeric {
		return []byte(s.text), nil
	}

	return json.Marshal(s.text)
}

func (Scalar) value() {}

type BoolFlag bool

func (b BoolFlag) String() string { return strconv.FormatBool(bool(b)) }

func (b BoolFlag) MarshalJSON() ([]byte, error) { return json.Marshal(bool(b)) }

func (BoolFlag) value() {}

// RecordList is the cart. Each item renders as its four fields joined by the
// delimiter and the items are joined by the same delimiter.
type RecordList []CartItem

func (r RecordList) String() string {
	parts := make([]string, 0, len(r)*4) //nolint:mnd

	for _, item := range r {
		parts = append(parts,
			item.Name,
			item.Quantity.String(),
			strconv.FormatInt(item.Amount, 10),
			item.Description,
		)
	}

	return strings.Join(parts, signatureDelimiter)
}

func (r RecordList) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]CartItem(r))
}

func (RecordList) value() {}

type field struct {
	name  string
	value func(p *PreparedPayment) Value
}

// fields is the order in which the gateway reads the payload. It must never change.
var fields = []field{
	{"merchantId", func(p *PreparedPayment) Value { return Text(p.merchantID) }},
	{"orderNo", func(p *PreparedPayment) Value { return Text(p.orderNo) }},
	{"dttm", func(p *PreparedPayment) Value { return Text(p.dttm) }},
	{"payOperation", func(p *PreparedPayment) Value { return Text(p.payOperation) }},
	{"payMethod", func(p *PreparedPayment) Value { return Text(p.payMethod) }},
	{"totalAmount", func(p *PreparedPayment) Value { return Int(p.totalAmount) }},
	{"currency", func(p *PreparedPayment) Value { return Text(p.currency) }},
	{"closePayment", func(p *PreparedPayment) Value { return BoolFlag(p.closePayment) }},
	{"returnUrl", func(p *PreparedPayment) Value { return Text(p.returnURL) }},
	{"returnMethod", func(p *PreparedPayment) Value { return Text(p.returnMethod) }},
	{"cart", func(p *PreparedPayment) Value { return RecordList(p.Cart()) }},
	{"description", func(p *PreparedPayment) Value { return Text(p.description) }},
	{"merchantData", func(p *PreparedPayment) Value { return Text(p.merchantData) }},
	{"customerId", func(p *PreparedPayment) Value { return Text(p.customerID) }},
	{"language", func(p *PreparedPayment) Value { return Text(p.language) }},
}

// FieldNames returns the names of the signed fields in signing order.
func FieldNames() []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.name)
	}

	return names
}

// SignatureString returns the exact text the signature covers.
func (p *PreparedPayment) SignatureString() string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.value(p).String())
	}

	return strings.Join(parts, signatureDelimiter)
}

// Field is one named value of a signed payload.
type Field struct {
	Name  string
	Value Value
}

// SignedPayload is the ordered field list sent to the gateway with the
// signature as the last field.
type SignedPayload []Field

// Get returns the value of the named field.
func (s SignedPayload) Get(name string) (Value, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}

// Signature returns the value of the signature field.
func (s SignedPayload) Signature() string {
	v, ok := s.Get(SignatureField)
	if !ok {
		return ""
	}

	return v.String()
}

// MarshalJSON encodes the payload as a JSON object keeping the field order.
func (s SignedPayload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range s {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}

		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("marshal field %s: %w", f.Name, err)
		}

		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// SignAndExport signs the signature string with the merchant key and returns
// the payload to send.
func (p *PreparedPayment) SignAndExport(m Merchant, sign SignFunc) (SignedPayload, error) {
	signature, err := sign(p.SignatureString(), m.PrivateKeyFile, m.PrivateKeyPassword)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}

	payload := make(SignedPayload, 0, len(fields)+1)
	for _, f := range fields {
		payload = append(payload, Field{Name: f.name, Value: f.value(p)})
	}

	payload = append(payload, Field{Name: SignatureField, Value: Text(signature)})

	return payload, nil
}

// SignedPayment is a prepared payment together with its signed wire payload.
type SignedPayment struct {
	Payment         *PreparedPayment
	Payload         SignedPayload
	SignatureString string
}
