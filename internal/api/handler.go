package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/samandr77/microservices/csob/internal/entity"
)

// @title CSOB Payment Signing API
// @version 1.0
// @description Prepares and signs payment requests for the CSOB payment gateway
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

type Service interface {
	InitPayment(ctx context.Context, req *entity.PaymentRequest) (entity.SignedPayment, error)
	SignatureString(req *entity.PaymentRequest) (string, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

type PaymentResponse struct {
	PayID           string               `json:"payId,omitempty"`
	SignatureString string               `json:"signatureString"`
	Payload         entity.SignedPayload `json:"payload" swaggertype:"object"`
}

// CreatePayment prepares and signs a payment
// @Summary Create payment
// @Description Validates the order, fills defaults, signs it with the merchant key and
// @Description registers it with the gateway when enabled
// @Tags payments
// @Accept json
// @Produce json
// @Param Order body entity.Order true "Order to sign"
// @Success 201 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Order violates gateway rules"
// @Failure 500 {object} ErrorResponse "Merchant misconfigured"
// @Failure 502 {object} ErrorResponse "Signing or gateway failure"
// @Router /payments [post]
// @Security ApiKeyAuth
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := decodeOrder(w, r)
	if !ok {
		return
	}

	res, err := h.s.InitPayment(ctx, req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, PaymentResponse{
		PayID:           res.Payment.PayID(),
		SignatureString: res.SignatureString,
		Payload:         res.Payload,
	})
}

type SignatureStringResponse struct {
	SignatureString string `json:"signatureString"`
}

// SignatureString returns the text a payment signature covers
// @Summary Signature string
// @Description Prepares the order and returns the canonical string without signing it
// @Tags payments
// @Accept json
// @Produce json
// @Param Order body entity.Order true "Order"
// @Success 200 {object} SignatureStringResponse
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 422 {object} ErrorResponse "Order violates gateway rules"
// @Failure 500 {object} ErrorResponse "Merchant misconfigured"
// @Router /payments/signature-string [post]
// @Security ApiKeyAuth
func (h *Handler) SignatureString(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, ok := decodeOrder(w, r)
	if !ok {
		return
	}

	s, err := h.s.SignatureString(req)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, SignatureStringResponse{SignatureString: s})
}

func decodeOrder(w http.ResponseWriter, r *http.Request) (*entity.PaymentRequest, bool) {
	ctx := r.Context()

	var o entity.Order

	err := json.NewDecoder(r.Body).Decode(&o)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return nil, false
	}

	req, err := o.Request()
	if err != nil {
		sendServiceErr(ctx, w, err)
		return nil, false
	}

	return req, true
}

func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidInput):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid order data")
	case errors.Is(err, entity.ErrStructuralLimit):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Cart must hold one or two items")
	case errors.Is(err, entity.ErrConfiguration):
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Merchant is misconfigured")
	case errors.Is(err, entity.ErrSigning):
		SendJSONErr(ctx, w, http.StatusBadGateway, err, "Failed to sign payment")
	case errors.Is(err, entity.ErrGateway):
		SendJSONErr(ctx, w, http.StatusBadGateway, err, "Payment gateway rejected the payment")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create payment")
	}
}

// HealthHandler checks service health
// @Summary Health check
// @Description Returns a plain text message if the service is running
// @Tags health
// @Produce plain
// @Success 200 {string} string "Service is running"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Service is running\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service is down")
		return
	}
}
