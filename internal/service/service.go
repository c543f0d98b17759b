package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samandr77/microservices/csob/internal/entity"
	"github.com/samandr77/microservices/csob/pkg/broker"
	"github.com/samandr77/microservices/csob/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Gateway interface {
	PaymentInit(ctx context.Context, payload entity.SignedPayload) (entity.PaymentInitResult, error)
}

type Producer interface {
	SendPaymentSigned(ctx context.Context, event broker.PaymentSignedEvent)
}

type Service struct {
	merchant entity.Merchant
	sign     entity.SignFunc
	gateway  Gateway
	producer Producer
	now      func() time.Time
}

type Option func(s *Service)

// WithGateway makes InitPayment register every signed payment with the gateway.
func WithGateway(g Gateway) Option {
	return func(s *Service) {
		s.gateway = g
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(merchant entity.Merchant, sign entity.SignFunc, producer Producer, opts ...Option) *Service {
	s := &Service{
		merchant: merchant,
		sign:     sign,
		producer: producer,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// InitPayment prepares and signs the request. When a gateway is configured the
// payment is registered there and the assigned payment ID is recorded.
func (s *Service) InitPayment(ctx context.Context, req *entity.PaymentRequest) (entity.SignedPayment, error) {
	ctx = logger.WithOrderNo(ctx, req.OrderNo)

	pp, err := req.Prepare(s.merchant, s.now())
	if err != nil {
		return entity.SignedPayment{}, fmt.Errorf("prepare payment: %w", err)
	}

	payload, err := pp.SignAndExport(s.merchant, s.sign)
	if err != nil {
		return entity.SignedPayment{}, fmt.Errorf("sign payment: %w", err)
	}

	if s.gateway != nil {
		res, err := s.gateway.PaymentInit(ctx, payload)
		if err != nil {
			return entity.SignedPayment{}, fmt.Errorf("init payment: %w", err)
		}

		pp.SetPayID(res.PayID)
	}

	s.producer.SendPaymentSigned(ctx, broker.PaymentSignedEvent{
		MerchantID:  pp.MerchantID(),
		OrderNo:     pp.OrderNo(),
		PayID:       pp.PayID(),
		TotalAmount: pp.TotalAmount(),
		Currency:    pp.Currency(),
		DateTime:    pp.DateTime(),
		Signature:   payload.Signature(),
	})

	slog.InfoContext(ctx, "payment signed",
		"total_amount", pp.TotalAmount(),
		"currency", pp.Currency(),
		"pay_id", pp.PayID(),
	)

	return entity.SignedPayment{
		Payment:         pp,
		Payload:         payload,
		SignatureString: pp.SignatureString(),
	}, nil
}

// SignatureString prepares the request and returns the text that would be signed.
func (s *Service) SignatureString(req *entity.PaymentRequest) (string, error) {
	pp, err := req.Prepare(s.merchant, s.now())
	if err != nil {
		return "", fmt.Errorf("prepare payment: %w", err)
	}

	return pp.SignatureString(), nil
}

const keyCheckMessage = "key check"

// CheckMerchantKey signs a probe message to make sure the merchant key is still
// readable with the configured passphrase.
func (s *Service) CheckMerchantKey(_ context.Context) error {
	_, err := s.sign(keyCheckMessage, s.merchant.PrivateKeyFile, s.merchant.PrivateKeyPassword)
	if err != nil {
		return fmt.Errorf("%w: merchant key check: %w", entity.ErrSigning, err)
	}

	return nil
}
