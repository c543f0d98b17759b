package csob

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/samandr77/microservices/csob/internal/entity"
	"github.com/samandr77/microservices/csob/pkg/config"
	"github.com/samandr77/microservices/csob/pkg/transport"
)

type Client struct {
	cfg config.Gateway
	c   *http.Client
}

func NewClient(cfg config.Gateway) *Client {
	return &Client{
		cfg: cfg,
		c: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport.NewLoggingRoundTripper(http.DefaultTransport),
		},
	}
}

type paymentInitResponse struct {
	PayID         string `json:"payId"`
	DateTime      string `json:"dttm"`
	ResultCode    int    `json:"resultCode"`
	ResultMessage string `json:"resultMessage"`
	PaymentStatus int    `json:"paymentStatus"`
	Signature     string `json:"signature"`
}

// PaymentInit registers the signed payment with the gateway and returns the
// assigned payment ID. A non-zero result code is reported as ErrGateway.
func (c *Client) PaymentInit(ctx context.Context, payload entity.SignedPayload) (entity.PaymentInitResult, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return entity.PaymentInitResult{}, fmt.Errorf("marshal request: %w", err)
	}

	reqURL := strings.TrimRight(c.cfg.BaseURL, "/") + "/payment/init"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(b))
	if err != nil {
		return entity.PaymentInitResult{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.c.Do(req)
	if err != nil {
		return entity.PaymentInitResult{}, fmt.Errorf("%w: do request: %w", entity.ErrGateway, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.PaymentInitResult{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return entity.PaymentInitResult{}, fmt.Errorf("%w: bad response status %d: %s",
			entity.ErrGateway, resp.StatusCode, body)
	}

	var respData paymentInitResponse

	err = json.Unmarshal(body, &respData)
	if err != nil {
		return entity.PaymentInitResult{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if respData.ResultCode != 0 {
		return entity.PaymentInitResult{}, fmt.Errorf("%w: result code %d: %s",
			entity.ErrGateway, respData.ResultCode, respData.ResultMessage)
	}

	return entity.PaymentInitResult{
		PayID:         respData.PayID,
		DateTime:      respData.DateTime,
		ResultCode:    respData.ResultCode,
		ResultMessage: respData.ResultMessage,
		PaymentStatus: respData.PaymentStatus,
	}, nil
}
