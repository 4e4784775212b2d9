package payment

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"eatery/internal/config"
	"eatery/internal/entities"
)

const (
	prepayPath = "/v3/pay/transactions"
	refundPath = "/v3/refund/domestic/refunds"

	codeOrderPaid = "ORDER_PAID"
)

// Client — адаптер платёжного провайдера. Все вызовы идемпотентны на
// стороне провайдера по номеру заказа, поэтому повтор после таймаута
// безопасен.
type Client struct {
	baseURL    string
	merchantID string
	apiV3Key   []byte
	notifyURL  string
	httpc      *http.Client
}

func NewClient(cfg config.Payment) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		merchantID: cfg.MerchantID,
		apiV3Key:   []byte(cfg.APIV3Key),
		notifyURL:  cfg.NotifyURL,
		httpc:      &http.Client{Timeout: cfg.Timeout},
	}
}

type prepayRequest struct {
	MerchantID  string `json:"mchid"`
	OutTradeNo  string `json:"out_trade_no"`
	Description string `json:"description"`
	NotifyURL   string `json:"notify_url"`
	Amount      amount `json:"amount"`
	Payer       payer  `json:"payer"`
}

type amount struct {
	Total  int64 `json:"total"`
	Refund int64 `json:"refund,omitempty"`
}

type payer struct {
	PayerID int64 `json:"payer_id"`
}

type prepayResponse struct {
	PrepayID string `json:"prepay_id"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Prepay запрашивает токен оплаты. Если провайдер уже видел успешную
// оплату этого номера, возвращается entities.ErrAlreadyPaid.
func (c *Client) Prepay(ctx context.Context, orderNumber string, total int64, description string, payerID int64) (string, error) {
	body := prepayRequest{
		MerchantID:  c.merchantID,
		OutTradeNo:  orderNumber,
		Description: description,
		NotifyURL:   c.notifyURL,
		Amount:      amount{Total: total},
		Payer:       payer{PayerID: payerID},
	}

	var resp prepayResponse
	if err := c.post(ctx, prepayPath, body, &resp); err != nil {
		if errors.Is(err, entities.ErrAlreadyPaid) {
			return "", entities.ErrAlreadyPaid
		}
		return "", err
	}
	return resp.PrepayID, nil
}

type refundRequest struct {
	OutTradeNo  string `json:"out_trade_no"`
	OutRefundNo string `json:"out_refund_no"`
	Amount      amount `json:"amount"`
}

// Refund запрашивает возврат. Номер возврата служит ключом
// идемпотентности, повторный вызов провайдер дедуплицирует.
func (c *Client) Refund(ctx context.Context, orderNumber, refundNumber string, total, refund int64) error {
	body := refundRequest{
		OutTradeNo:  orderNumber,
		OutRefundNo: refundNumber,
		Amount:      amount{Total: total, Refund: refund},
	}
	return c.post(ctx, refundPath, body, &struct{}{})
}

func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &entities.ExternalServiceError{Service: "payment-gateway", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil && !errors.Is(err, io.EOF) {
			return &entities.ExternalServiceError{Service: "payment-gateway", Err: err}
		}
		return nil
	}

	var errResp errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Code == codeOrderPaid {
		return entities.ErrAlreadyPaid
	}
	return &entities.ExternalServiceError{
		Service: "payment-gateway",
		Err:     fmt.Errorf("unexpected status %d: %s %s", resp.StatusCode, errResp.Code, errResp.Message),
	}
}

type callbackEnvelope struct {
	Resource struct {
		Ciphertext     string `json:"ciphertext"`
		Nonce          string `json:"nonce"`
		AssociatedData string `json:"associated_data"`
	} `json:"resource"`
}

type callbackPayload struct {
	OutTradeNo string `json:"out_trade_no"`
	TradeState string `json:"trade_state"`
}

// DecryptCallback расшифровывает подписанный коллбэк провайдера
// (AES-256-GCM, ключ APIv3) и возвращает номер заказа.
func (c *Client) DecryptCallback(body []byte) (string, error) {
	var env callbackEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", fmt.Errorf("failed to parse callback envelope: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(env.Resource.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	block, err := aes.NewCipher(c.apiV3Key)
	if err != nil {
		return "", fmt.Errorf("failed to init cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to init gcm: %w", err)
	}

	// Open паникует на нонсе неверной длины, а коллбэк приходит без
	// аутентификации: длина проверяется до расшифровки.
	nonce := []byte(env.Resource.Nonce)
	if len(nonce) != gcm.NonceSize() {
		return "", fmt.Errorf("bad nonce length %d", len(nonce))
	}

	plaintext, err := gcm.Open(nil,
		nonce,
		ciphertext,
		[]byte(env.Resource.AssociatedData),
	)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt callback: %w", err)
	}

	var payload callbackPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return "", fmt.Errorf("failed to parse callback payload: %w", err)
	}
	if payload.TradeState != "SUCCESS" {
		return "", fmt.Errorf("unexpected trade state %q", payload.TradeState)
	}
	return payload.OutTradeNo, nil
}
