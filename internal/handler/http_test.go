package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eatery/internal/entities"
	"eatery/internal/handler"
	mocks "eatery/internal/handler/mocks"
	"eatery/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newRouter(t *testing.T, svc *mocks.MockOrderService, decryptor *mocks.MockCallbackDecryptor) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc, decryptor, middleware.Auth(testSecret))

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestHTTPHandler_PaymentNotify(t *testing.T) {
	svcError := errors.New("db down")

	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockOrderService, decryptor *mocks.MockCallbackDecryptor)
		wantStatus   int
		wantCode     string
	}{
		{
			name: "first callback",
			mockBehavior: func(svc *mocks.MockOrderService, decryptor *mocks.MockCallbackDecryptor) {
				decryptor.EXPECT().DecryptCallback(mock.Anything).Return("20260829120000000001", nil).Once()
				svc.EXPECT().PaymentSucceeded(mock.Anything, "20260829120000000001").Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "SUCCESS",
		},
		{
			// Повтор по уже оплаченному заказу: движок делает no-op,
			// ответ тот же SUCCESS, иначе провайдер ретраит вечно.
			name: "duplicate callback",
			mockBehavior: func(svc *mocks.MockOrderService, decryptor *mocks.MockCallbackDecryptor) {
				decryptor.EXPECT().DecryptCallback(mock.Anything).Return("20260829120000000001", nil).Once()
				svc.EXPECT().PaymentSucceeded(mock.Anything, "20260829120000000001").Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCode:   "SUCCESS",
		},
		{
			name: "undecryptable payload",
			mockBehavior: func(svc *mocks.MockOrderService, decryptor *mocks.MockCallbackDecryptor) {
				decryptor.EXPECT().DecryptCallback(mock.Anything).Return("", errors.New("cipher: message authentication failed")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "FAIL",
		},
		{
			name: "engine failure is retried by provider",
			mockBehavior: func(svc *mocks.MockOrderService, decryptor *mocks.MockCallbackDecryptor) {
				decryptor.EXPECT().DecryptCallback(mock.Anything).Return("20260829120000000001", nil).Once()
				svc.EXPECT().PaymentSucceeded(mock.Anything, "20260829120000000001").Return(svcError).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "FAIL",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			decryptor := mocks.NewMockCallbackDecryptor(t)
			tc.mockBehavior(svc, decryptor)

			r := newRouter(t, svc, decryptor)

			req := httptest.NewRequest(http.MethodPost, "/api/payment/notify", bytes.NewBufferString(`{"resource":{}}`))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			assert.Equal(t, tc.wantStatus, res.StatusCode)

			var ack handler.CallbackAck
			require.NoError(t, json.NewDecoder(res.Body).Decode(&ack))
			assert.Equal(t, tc.wantCode, ack.Code)
		})
	}
}

func TestHTTPHandler_SubmitOrder(t *testing.T) {
	created := entities.Order{ID: 42, Number: "20260829120000000001", Status: entities.StatusPendingPayment, Amount: 1150}

	validBody := `{"consignee":"Ivan","phone":"+70000000000","address":"some street 1"}`

	testCases := []struct {
		name         string
		token        string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "success",
			token: signToken(t, "7"),
			body:  validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Submit(mock.Anything, mock.MatchedBy(func(sub entities.Submission) bool {
						return sub.UserID == 7 && sub.Address == "some street 1"
					})).
					Return(created, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"number":"20260829120000000001"`,
		},
		{
			name:         "no token",
			body:         validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "missing address",
			token:        signToken(t, "7"),
			body:         `{"consignee":"Ivan","phone":"+70000000000"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:  "empty cart",
			token: signToken(t, "7"),
			body:  validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().Submit(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"shopping cart is empty"`,
		},
		{
			name:  "out of delivery range",
			token: signToken(t, "7"),
			body:  validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().Submit(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrOutOfDeliveryRange).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"address is out of delivery range"`,
		},
		{
			name:  "geocoder down",
			token: signToken(t, "7"),
			body:  validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().Submit(mock.Anything, mock.Anything).
					Return(entities.Order{}, &entities.ExternalServiceError{Service: "geocoder", Err: errors.New("timeout")}).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			decryptor := mocks.NewMockCallbackDecryptor(t)
			tc.mockBehavior(svc)

			r := newRouter(t, svc, decryptor)

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(tc.body))
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	order := entities.Order{ID: 42, Number: "20260829120000000001", Status: entities.StatusCompleted}

	testCases := []struct {
		name         string
		path         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			path: "/api/orders/42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, int64(7), int64(42)).Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"COMPLETED"`,
		},
		{
			name: "not found",
			path: "/api/orders/404",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, int64(7), int64(404)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "malformed id",
			path:         "/api/orders/abc",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			decryptor := mocks.NewMockCallbackDecryptor(t)
			tc.mockBehavior(svc)

			r := newRouter(t, svc, decryptor)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, "7"))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

// Конфликт состояния — 409 с текущим и запрошенным статусами в теле.
func TestHTTPHandler_ConfirmOrder_StateConflict(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	decryptor := mocks.NewMockCallbackDecryptor(t)

	svc.EXPECT().Confirm(mock.Anything, int64(42)).Return(&entities.StateConflictError{
		OrderID:   42,
		Current:   entities.StatusCancelled,
		Requested: entities.StatusConfirmed,
	}).Once()

	r := newRouter(t, svc, decryptor)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/42/confirm", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "1"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusConflict, res.StatusCode)

	var resp handler.StateConflictResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	assert.Equal(t, "CANCELLED", resp.Current)
	assert.Equal(t, "CONFIRMED", resp.Requested)
}

func TestHTTPHandler_RejectOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name: "success",
			body: `{"reason":"out of stock"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().Reject(mock.Anything, int64(42), "out of stock").Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:         "reason is required",
			body:         `{}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			decryptor := mocks.NewMockCallbackDecryptor(t)
			tc.mockBehavior(svc)

			r := newRouter(t, svc, decryptor)

			req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/42/reject", bytes.NewBufferString(tc.body))
			req.Header.Set("Authorization", "Bearer "+signToken(t, "1"))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()
			assert.Equal(t, tc.wantStatus, res.StatusCode)
		})
	}
}

func TestHTTPHandler_CancelOrder_FallbackReason(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	decryptor := mocks.NewMockCallbackDecryptor(t)

	// Пустое тело: подставляется причина по умолчанию, владельца
	// сверяет движок по id из токена.
	svc.EXPECT().CancelByUser(mock.Anything, int64(7), int64(42), "cancelled by user").Return(nil).Once()

	r := newRouter(t, svc, decryptor)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/42/cancel", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "7"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
}

func TestHTTPHandler_AdminCancelOrder_FallbackReason(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	decryptor := mocks.NewMockCallbackDecryptor(t)

	svc.EXPECT().Cancel(mock.Anything, int64(42), "cancelled by operator").Return(nil).Once()

	r := newRouter(t, svc, decryptor)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/orders/42/cancel", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "1"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
}

func TestHTTPHandler_AdminListOrders(t *testing.T) {
	orders := []entities.Order{
		{ID: 42, Number: "20260829120000000001", UserID: 7, Status: entities.StatusToBeConfirmed, Phone: "+70000000000"},
		{ID: 43, Number: "20260829120000000002", UserID: 9, Status: entities.StatusToBeConfirmed, Phone: "+70000000001"},
	}

	svc := mocks.NewMockOrderService(t)
	decryptor := mocks.NewMockCallbackDecryptor(t)

	svc.EXPECT().SearchOrders(mock.Anything, entities.OrderFilter{
		Status: entities.StatusToBeConfirmed,
		Phone:  "+7000",
		Limit:  10,
		Offset: 0,
	}).Return(orders, nil).Once()

	r := newRouter(t, svc, decryptor)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/?status=TO_BE_CONFIRMED&phone=%2B7000&limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "1"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp []handler.Order
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "20260829120000000001", resp[0].Number)
	assert.Equal(t, "20260829120000000002", resp[1].Number)
}

func TestHTTPHandler_Statistics(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	decryptor := mocks.NewMockCallbackDecryptor(t)

	svc.EXPECT().Statistics(mock.Anything).Return(map[entities.OrderStatus]int{
		entities.StatusToBeConfirmed:      3,
		entities.StatusConfirmed:          1,
		entities.StatusDeliveryInProgress: 2,
	}, nil).Once()

	r := newRouter(t, svc, decryptor)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/statistics", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "1"))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp handler.StatisticsResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	assert.Equal(t, 3, resp.ToBeConfirmed)
	assert.Equal(t, 1, resp.Confirmed)
	assert.Equal(t, 2, resp.DeliveryInProgress)
}
