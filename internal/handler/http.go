package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"eatery/internal/entities"
	"eatery/internal/middleware"
	"eatery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// OrderService — движок жизненного цикла заказа, единственная точка
// мутации состояния.
type OrderService interface {
	Submit(ctx context.Context, sub entities.Submission) (entities.Order, error)
	GetOrder(ctx context.Context, userID, orderID int64) (entities.Order, error)
	ListOrders(ctx context.Context, userID int64, status entities.OrderStatus, limit, offset int) ([]entities.Order, error)
	SearchOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	Statistics(ctx context.Context) (map[entities.OrderStatus]int, error)

	Prepay(ctx context.Context, userID, orderID int64) (string, error)
	PaymentSucceeded(ctx context.Context, orderNumber string) error

	Confirm(ctx context.Context, orderID int64) error
	Reject(ctx context.Context, orderID int64, reason string) error
	Cancel(ctx context.Context, orderID int64, reason string) error
	CancelByUser(ctx context.Context, userID, orderID int64, reason string) error
	Dispatch(ctx context.Context, orderID int64) error
	Complete(ctx context.Context, orderID int64) error
	Remind(ctx context.Context, userID, orderID int64) error
}

type CallbackDecryptor interface {
	DecryptCallback(body []byte) (string, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	svc       OrderService
	decryptor CallbackDecryptor
	auth      func(next http.Handler) http.Handler
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, decryptor CallbackDecryptor, auth func(next http.Handler) http.Handler) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		svc:       svc,
		decryptor: decryptor,
		auth:      auth,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		// Коллбэк провайдера приходит без нашего токена.
		r.Post("/payment/notify", h.PaymentNotify)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/orders", h.SubmitOrder)
			r.Get("/orders", h.ListOrders)
			r.Get("/orders/{id}", h.GetOrder)
			r.Post("/orders/{id}/payment", h.PayOrder)
			r.Post("/orders/{id}/cancel", h.CancelOrder)
			r.Post("/orders/{id}/reminder", h.RemindOrder)

			r.Route("/admin/orders", func(r chi.Router) {
				r.Get("/", h.AdminListOrders)
				r.Get("/statistics", h.Statistics)
				r.Put("/{id}/confirm", h.ConfirmOrder)
				r.Put("/{id}/reject", h.RejectOrder)
				r.Put("/{id}/cancel", h.AdminCancelOrder)
				r.Put("/{id}/dispatch", h.DispatchOrder)
				r.Put("/{id}/complete", h.CompleteOrder)
			})
		})
	})
}

// SubmitOrder оформляет заказ из корзины текущего пользователя.
func (h *HTTPHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := middleware.ActorID(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SubmitOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "malformed body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.Submit(ctx, entities.Submission{
		UserID:    userID,
		Consignee: req.Consignee,
		Phone:     req.Phone,
		Address:   req.Address,
		Remark:    req.Remark,
	})
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := middleware.ActorID(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDParam(r)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.svc.GetOrder(ctx, userID, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := middleware.ActorID(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	status := entities.OrderStatus(r.URL.Query().Get("status"))
	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	orders, err := h.svc.ListOrders(ctx, userID, status, limit, offset)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

// PayOrder запрашивает у шлюза токен оплаты для заказа.
func (h *HTTPHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := middleware.ActorID(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDParam(r)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	token, err := h.svc.Prepay(ctx, userID, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, PrepayResponse{PaymentToken: token}, http.StatusOK)
}

// PaymentNotify — асинхронный коллбэк провайдера об успешной оплате.
// Ответ одинаков для первого применения и для повторов: провайдер
// перестаёт ретраить только после {code: SUCCESS}.
func (h *HTTPHandler) PaymentNotify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		paymentCallbacks.WithLabelValues("invalid").Inc()
		utils.WriteJSON(w, CallbackAck{Code: "FAIL", Message: "unreadable body"}, http.StatusBadRequest)
		return
	}

	orderNumber, err := h.decryptor.DecryptCallback(body)
	if err != nil {
		h.logger.WarnContext(ctx, "undecryptable payment callback", slog.Any("error", err))
		paymentCallbacks.WithLabelValues("invalid").Inc()
		utils.WriteJSON(w, CallbackAck{Code: "FAIL", Message: "bad payload"}, http.StatusBadRequest)
		return
	}

	if err := h.svc.PaymentSucceeded(ctx, orderNumber); err != nil {
		// Любой сбой здесь ретраится провайдером, дубликаты отсекает движок.
		h.logger.ErrorContext(ctx, "failed to apply payment callback",
			slog.String("number", orderNumber),
			slog.Any("error", err),
		)
		paymentCallbacks.WithLabelValues("error").Inc()
		utils.WriteJSON(w, CallbackAck{Code: "FAIL", Message: "internal error"}, http.StatusInternalServerError)
		return
	}

	paymentCallbacks.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, CallbackAck{Code: "SUCCESS", Message: "SUCCESS"}, http.StatusOK)
}

// CancelOrder — отмена покупателем, движок сверяет владельца.
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := middleware.ActorID(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDParam(r)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	if err := h.svc.CancelByUser(ctx, userID, orderID, cancelReason(r, "cancelled by user")); err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) AdminCancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := orderIDParam(r)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Cancel(ctx, orderID, cancelReason(r, "cancelled by operator")); err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func cancelReason(r *http.Request, fallback string) string {
	var req CancelOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil || req.Reason == "" {
		return fallback
	}
	return req.Reason
}

func (h *HTTPHandler) RemindOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := middleware.ActorID(ctx)
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orderID, err := orderIDParam(r)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Remind(ctx, userID, orderID); err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Confirm)
}

func (h *HTTPHandler) DispatchOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Dispatch)
}

func (h *HTTPHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Complete)
}

func (h *HTTPHandler) transition(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, orderID int64) error) {
	ctx := r.Context()

	orderID, err := orderIDParam(r)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	if err := apply(ctx, orderID); err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) RejectOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := orderIDParam(r)
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req RejectOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "malformed body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.svc.Reject(ctx, orderID, req.Reason); err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminListOrders — операторский поиск по всем заказам: статус точно,
// номер и телефон по подстроке, с постраничной выдачей.
func (h *HTTPHandler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	orders, err := h.svc.SearchOrders(ctx, entities.OrderFilter{
		Status: entities.OrderStatus(q.Get("status")),
		Number: q.Get("number"),
		Phone:  q.Get("phone"),
		Limit:  queryInt(r, "limit", 20),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *HTTPHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := h.svc.Statistics(ctx)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, StatisticsResponse{
		ToBeConfirmed:      counts[entities.StatusToBeConfirmed],
		Confirmed:          counts[entities.StatusConfirmed],
		DeliveryInProgress: counts[entities.StatusDeliveryInProgress],
	}, http.StatusOK)
}

// writeDomainError переводит ошибки движка в HTTP-статусы.
// StateConflict — бизнес-ошибка, хендлер её не ретраит.
func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	var conflict *entities.StateConflictError
	var external *entities.ExternalServiceError

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrEmptyCart):
		utils.WriteError(w, "shopping cart is empty", http.StatusBadRequest)
	case errors.Is(err, entities.ErrAddressNotFound):
		utils.WriteError(w, "address not found", http.StatusBadRequest)
	case errors.Is(err, entities.ErrOutOfDeliveryRange):
		utils.WriteError(w, "address is out of delivery range", http.StatusBadRequest)
	case errors.Is(err, entities.ErrAlreadyPaid):
		utils.WriteError(w, "order is already paid", http.StatusConflict)
	case errors.As(err, &conflict):
		utils.WriteJSON(w, StateConflictResponse{
			Message:   "order state conflict",
			Current:   string(conflict.Current),
			Requested: string(conflict.Requested),
		}, http.StatusConflict)
	case errors.As(err, &external):
		h.logger.ErrorContext(ctx, "external service failure", slog.Any("error", err))
		utils.WriteError(w, external.Service+" is unavailable", http.StatusBadGateway)
	default:
		h.logger.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func orderIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
	}
	return fallback
}
