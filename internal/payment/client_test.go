package payment_test

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eatery/internal/config"
	"eatery/internal/entities"
	"eatery/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIV3Key = "0123456789abcdef0123456789abcdef"

func newClient(t *testing.T, baseURL string) *payment.Client {
	t.Helper()
	return payment.NewClient(config.Payment{
		BaseURL:    baseURL,
		MerchantID: "merchant-1",
		APIV3Key:   testAPIV3Key,
		NotifyURL:  "https://eatery.example/api/payment/notify",
		Timeout:    time.Second,
	})
}

func encryptCallback(t *testing.T, key, nonce, associatedData string, payload any) []byte {
	t.Helper()

	plaintext, err := json.Marshal(payload)
	require.NoError(t, err)

	block, err := aes.NewCipher([]byte(key))
	require.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	require.NoError(t, err)

	ciphertext := gcm.Seal(nil, []byte(nonce), plaintext, []byte(associatedData))

	body, err := json.Marshal(map[string]any{
		"resource": map[string]string{
			"ciphertext":      base64.StdEncoding.EncodeToString(ciphertext),
			"nonce":           nonce,
			"associated_data": associatedData,
		},
	})
	require.NoError(t, err)
	return body
}

func TestClient_DecryptCallback(t *testing.T) {
	testCases := []struct {
		name    string
		body    []byte
		want    string
		wantErr bool
	}{
		{
			name: "round trip",
			body: encryptCallback(t, testAPIV3Key, "abcdef123456", "transaction", map[string]string{
				"out_trade_no": "20260829120000000001",
				"trade_state":  "SUCCESS",
			}),
			want: "20260829120000000001",
		},
		{
			name: "non-success trade state is rejected",
			body: encryptCallback(t, testAPIV3Key, "abcdef123456", "transaction", map[string]string{
				"out_trade_no": "20260829120000000001",
				"trade_state":  "CLOSED",
			}),
			wantErr: true,
		},
		{
			name: "wrong key fails authentication",
			body: encryptCallback(t, "ffffffffffffffffffffffffffffffff", "abcdef123456", "transaction", map[string]string{
				"out_trade_no": "20260829120000000001",
				"trade_state":  "SUCCESS",
			}),
			wantErr: true,
		},
		{
			// Нонс короче GCM-стандарта не должен доходить до расшифровки.
			name:    "wrong nonce length",
			body:    []byte(`{"resource":{"ciphertext":"eA==","nonce":"short","associated_data":"transaction"}}`),
			wantErr: true,
		},
		{
			name:    "garbage body",
			body:    []byte("not json"),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, "http://unused")

			got, err := c.DecryptCallback(tc.body)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClient_Prepay(t *testing.T) {
	t.Run("returns payment token", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v3/pay/transactions", r.URL.Path)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "merchant-1", req["mchid"])
			assert.Equal(t, "20260829120000000001", req["out_trade_no"])

			json.NewEncoder(w).Encode(map[string]string{"prepay_id": "pay-token"})
		}))
		defer srv.Close()

		c := newClient(t, srv.URL)
		token, err := c.Prepay(context.Background(), "20260829120000000001", 1150, "eatery order", 7)

		require.NoError(t, err)
		assert.Equal(t, "pay-token", token)
	})

	t.Run("already paid on provider side", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"code": "ORDER_PAID", "message": "order already paid"})
		}))
		defer srv.Close()

		c := newClient(t, srv.URL)
		_, err := c.Prepay(context.Background(), "20260829120000000001", 1150, "eatery order", 7)

		assert.ErrorIs(t, err, entities.ErrAlreadyPaid)
	})

	t.Run("provider unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := newClient(t, srv.URL)
		_, err := c.Prepay(context.Background(), "20260829120000000001", 1150, "eatery order", 7)

		var external *entities.ExternalServiceError
		assert.ErrorAs(t, err, &external)
	})
}

func TestClient_Refund(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/refund/domestic/refunds", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "20260829120000000001", req["out_trade_no"])
		assert.Equal(t, "20260829120000000001", req["out_refund_no"])

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newClient(t, srv.URL)
	err := c.Refund(context.Background(), "20260829120000000001", "20260829120000000001", 1150, 1150)

	assert.NoError(t, err)
}
