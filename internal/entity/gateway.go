package entity

// PaymentInitResult is the gateway answer to payment/init.
type PaymentInitResult struct {
	PayID         string
	DateTime      string
	ResultCode    int
	ResultMessage string
	PaymentStatus int
}
