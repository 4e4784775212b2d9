package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"eatery/internal/entities"
	"eatery/pkg/trm"
	"eatery/pkg/utils"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order, lines []entities.OrderLine) (int64, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (entities.Order, error)

	// CompareAndSetStatus применяет upd, только если текущий статус равен expected.
	// false без ошибки означает проигранную гонку, не сбой.
	CompareAndSetStatus(ctx context.Context, id int64, expected entities.OrderStatus, upd entities.StatusUpdate) (bool, error)

	ListOrders(ctx context.Context, userID int64, status entities.OrderStatus, limit, offset int) ([]entities.Order, error)
	SearchOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatus]int, error)
}

type CartRepo interface {
	ListCart(ctx context.Context, userID int64) ([]entities.CartLine, error)
	ClearCart(ctx context.Context, userID int64) error
}

type PaymentGateway interface {
	Prepay(ctx context.Context, orderNumber string, amount int64, description string, payerID int64) (string, error)
	Refund(ctx context.Context, orderNumber, refundNumber string, total, refund int64) error
}

type RangeChecker interface {
	Check(ctx context.Context, address string) error
}

type Broadcaster interface {
	Broadcast(msg entities.Notification)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev entities.OrderEvent) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// Статусы, из которых заказ ещё можно отменить.
var cancellable = map[entities.OrderStatus]bool{
	entities.StatusPendingPayment: true,
	entities.StatusToBeConfirmed:  true,
	entities.StatusConfirmed:      true,
}

const paymentTimeoutReason = "payment timeout"

// Service — движок жизненного цикла заказа.
type Service struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	cart      CartRepo
	gateway   PaymentGateway
	geo       RangeChecker
	notifier  Broadcaster
	events    EventPublisher
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	cart CartRepo,
	gateway PaymentGateway,
	geo RangeChecker,
	notifier Broadcaster,
	events EventPublisher,
	cache Cache,
) *Service {
	return &Service{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		cart:      cart,
		gateway:   gateway,
		geo:       geo,
		notifier:  notifier,
		events:    events,
		cache:     cache,
	}
}

// Submit оформляет заказ из корзины пользователя: проверка зоны доставки,
// вставка заказа с позициями и очистка корзины в одной транзакции.
func (s *Service) Submit(ctx context.Context, sub entities.Submission) (entities.Order, error) {
	cartLines, err := s.cart.ListCart(ctx, sub.UserID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cartLines) == 0 {
		return entities.Order{}, entities.ErrEmptyCart
	}

	// Блокирующий вызов геокодера идёт до любой записи в базу.
	if err := s.geo.Check(ctx, sub.Address); err != nil {
		return entities.Order{}, err
	}

	now := time.Now()
	order := entities.Order{
		Number:    entities.NewOrderNumber(now),
		UserID:    sub.UserID,
		Status:    entities.StatusPendingPayment,
		PayStatus: entities.PayStatusUnpaid,
		Consignee: sub.Consignee,
		Phone:     sub.Phone,
		Address:   sub.Address,
		Remark:    sub.Remark,
		OrderTime: now,
	}

	lines := make([]entities.OrderLine, 0, len(cartLines))
	for _, cl := range cartLines {
		amount := cl.UnitPrice * int64(cl.Quantity)
		lines = append(lines, entities.OrderLine{
			Name:      cl.Name,
			Image:     cl.Image,
			Quantity:  cl.Quantity,
			UnitPrice: cl.UnitPrice,
			Amount:    amount,
		})
		order.Amount += amount
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.orders.CreateOrder(ctx, order, lines)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		order.ID = id

		if err := s.cart.ClearCart(ctx, sub.UserID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	order.Lines = lines
	ordersSubmitted.Inc()
	s.logger.Info("order submitted",
		slog.Int64("order_id", order.ID),
		slog.String("number", order.Number),
		slog.Int64("amount", order.Amount),
	)
	return order, nil
}

// Prepay запрашивает у шлюза токен оплаты. Номер заказа служит
// ключом идемпотентности на стороне шлюза.
func (s *Service) Prepay(ctx context.Context, userID, orderID int64) (string, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order.UserID != userID {
		return "", entities.ErrOrderNotFound
	}
	if order.PayStatus == entities.PayStatusPaid {
		return "", entities.ErrAlreadyPaid
	}
	if order.Status != entities.StatusPendingPayment {
		return "", &entities.StateConflictError{
			OrderID:   order.ID,
			Current:   order.Status,
			Requested: entities.StatusPendingPayment,
		}
	}

	description := fmt.Sprintf("eatery order %s", order.Number)
	return s.gateway.Prepay(ctx, order.Number, order.Amount, description, userID)
}

// PaymentSucceeded применяет успешный коллбэк оплаты. Идемпотентен:
// повторный коллбэк по уже оплаченному заказу — no-op без уведомлений.
func (s *Service) PaymentSucceeded(ctx context.Context, orderNumber string) error {
	order, err := s.orders.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		return err
	}
	if order.PayStatus == entities.PayStatusPaid {
		s.logger.Debug("duplicate payment callback", slog.String("number", orderNumber))
		return nil
	}

	now := time.Now()
	paid := entities.PayStatusPaid
	ok, err := s.orders.CompareAndSetStatus(ctx, order.ID, entities.StatusPendingPayment, entities.StatusUpdate{
		Status:       entities.StatusToBeConfirmed,
		PayStatus:    &paid,
		CheckoutTime: &now,
	})
	if err != nil {
		return fmt.Errorf("failed to apply payment: %w", err)
	}
	if !ok {
		// Кто-то успел раньше: второй коллбэк или отмена по таймауту.
		// Для провайдера это всё равно успех.
		s.logger.Debug("payment callback lost the race", slog.String("number", orderNumber))
		return nil
	}

	s.afterTransition(ctx, order, entities.StatusToBeConfirmed)
	s.notifier.Broadcast(entities.Notification{
		Type:    entities.NotificationNewOrder,
		OrderID: order.ID,
		Content: fmt.Sprintf("order %s is paid and awaits confirmation", order.Number),
	})
	s.logger.Info("order paid", slog.Int64("order_id", order.ID), slog.String("number", order.Number))
	return nil
}

// Confirm: оператор принимает оплаченный заказ.
func (s *Service) Confirm(ctx context.Context, orderID int64) error {
	order, err := s.fetchExpecting(ctx, orderID, entities.StatusToBeConfirmed, entities.StatusConfirmed)
	if err != nil {
		return err
	}
	return s.cas(ctx, order, entities.StatusToBeConfirmed, entities.StatusUpdate{
		Status: entities.StatusConfirmed,
	})
}

// Reject: оператор отклоняет заказ. Если заказ оплачен, возврат идёт
// до смены статуса: упавший возврат оставляет заказ как есть, и отмену
// можно повторить — шлюз дедуплицирует по номеру заказа.
func (s *Service) Reject(ctx context.Context, orderID int64, reason string) error {
	order, err := s.fetchExpecting(ctx, orderID, entities.StatusToBeConfirmed, entities.StatusCancelled)
	if err != nil {
		return err
	}

	now := time.Now()
	upd := entities.StatusUpdate{
		Status:          entities.StatusCancelled,
		RejectionReason: reason,
		CancelTime:      &now,
	}
	if order.PayStatus == entities.PayStatusPaid {
		if err := s.refund(ctx, order); err != nil {
			return err
		}
		refunded := entities.PayStatusRefunded
		upd.PayStatus = &refunded
	}

	return s.cas(ctx, order, entities.StatusToBeConfirmed, upd)
}

// Cancel — операторская отмена заказа до начала доставки,
// с возвратом если он оплачен.
func (s *Service) Cancel(ctx context.Context, orderID int64, reason string) error {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	return s.cancel(ctx, order, reason)
}

// CancelByUser — отмена самим покупателем, чужой заказ неотличим
// от несуществующего.
func (s *Service) CancelByUser(ctx context.Context, userID, orderID int64, reason string) error {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return entities.ErrOrderNotFound
	}
	return s.cancel(ctx, order, reason)
}

func (s *Service) cancel(ctx context.Context, order entities.Order, reason string) error {
	if !cancellable[order.Status] {
		return &entities.StateConflictError{
			OrderID:   order.ID,
			Current:   order.Status,
			Requested: entities.StatusCancelled,
		}
	}

	now := time.Now()
	upd := entities.StatusUpdate{
		Status:       entities.StatusCancelled,
		CancelReason: reason,
		CancelTime:   &now,
	}
	if order.PayStatus == entities.PayStatusPaid {
		if err := s.refund(ctx, order); err != nil {
			return err
		}
		refunded := entities.PayStatusRefunded
		upd.PayStatus = &refunded
	}

	return s.cas(ctx, order, order.Status, upd)
}

// Dispatch: заказ передан курьеру.
func (s *Service) Dispatch(ctx context.Context, orderID int64) error {
	order, err := s.fetchExpecting(ctx, orderID, entities.StatusConfirmed, entities.StatusDeliveryInProgress)
	if err != nil {
		return err
	}
	return s.cas(ctx, order, entities.StatusConfirmed, entities.StatusUpdate{
		Status: entities.StatusDeliveryInProgress,
	})
}

// Complete: доставка завершена.
func (s *Service) Complete(ctx context.Context, orderID int64) error {
	order, err := s.fetchExpecting(ctx, orderID, entities.StatusDeliveryInProgress, entities.StatusCompleted)
	if err != nil {
		return err
	}
	now := time.Now()
	return s.cas(ctx, order, entities.StatusDeliveryInProgress, entities.StatusUpdate{
		Status:       entities.StatusCompleted,
		DeliveryTime: &now,
	})
}

// ExpirePayment — таймаут-переход реконсилера: неоплаченный заказ
// отменяется. Проигранный CAS означает, что статус уже сменился
// (например, пришла оплата) — свип идемпотентен по построению.
func (s *Service) ExpirePayment(ctx context.Context, order entities.Order) error {
	now := time.Now()
	ok, err := s.orders.CompareAndSetStatus(ctx, order.ID, entities.StatusPendingPayment, entities.StatusUpdate{
		Status:       entities.StatusCancelled,
		CancelReason: paymentTimeoutReason,
		CancelTime:   &now,
	})
	if err != nil {
		return fmt.Errorf("failed to expire order %d: %w", order.ID, err)
	}
	if !ok {
		return nil
	}

	s.afterTransition(ctx, order, entities.StatusCancelled)
	s.logger.Info("order cancelled by payment timeout", slog.Int64("order_id", order.ID))
	return nil
}

// ForceComplete — таймаут-переход реконсилера: доставка, висящая дольше
// дедлайна, принудительно завершается.
func (s *Service) ForceComplete(ctx context.Context, order entities.Order) error {
	now := time.Now()
	ok, err := s.orders.CompareAndSetStatus(ctx, order.ID, entities.StatusDeliveryInProgress, entities.StatusUpdate{
		Status:       entities.StatusCompleted,
		DeliveryTime: &now,
	})
	if err != nil {
		return fmt.Errorf("failed to force-complete order %d: %w", order.ID, err)
	}
	if !ok {
		return nil
	}

	s.afterTransition(ctx, order, entities.StatusCompleted)
	forcedCompletions.Inc()
	s.logger.Info("order force-completed by delivery timeout", slog.Int64("order_id", order.ID))
	return nil
}

// Remind не меняет состояние: только сигнал операторам.
func (s *Service) Remind(ctx context.Context, userID, orderID int64) error {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != userID {
		return entities.ErrOrderNotFound
	}

	s.notifier.Broadcast(entities.Notification{
		Type:    entities.NotificationReminder,
		OrderID: order.ID,
		Content: fmt.Sprintf("customer reminder for order %s", order.Number),
	})
	return nil
}

// GetOrder отдаёт заказ его владельцу, чужой заказ неотличим
// от несуществующего. Проверка владельца идёт после чтения,
// кэшированный снапшот её тоже проходит.
func (s *Service) GetOrder(ctx context.Context, userID, orderID int64) (entities.Order, error) {
	key := strconv.FormatInt(orderID, 10)
	if data, ok := s.cache.Get(key); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			if order.UserID != userID {
				return entities.Order{}, entities.ErrOrderNotFound
			}
			return order, nil
		}
		s.logger.Warn("failed to unmarshal cached order", slog.Int64("order_id", orderID))
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	// Кэшируются только терминальные заказы: они уже не меняются.
	if order.Status.Terminal() {
		if data, err := order.Marshal(); err == nil {
			s.cache.Set(key, data)
		}
	}
	if order.UserID != userID {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, userID int64, status entities.OrderStatus, limit, offset int) ([]entities.Order, error) {
	return s.orders.ListOrders(ctx, userID, status, limit, offset)
}

// SearchOrders — операторский поиск по всем заказам.
func (s *Service) SearchOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	return s.orders.SearchOrders(ctx, f)
}

func (s *Service) Statistics(ctx context.Context) (map[entities.OrderStatus]int, error) {
	return s.orders.CountByStatus(ctx)
}

func (s *Service) fetchExpecting(ctx context.Context, orderID int64, expected, requested entities.OrderStatus) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Status != expected {
		return entities.Order{}, &entities.StateConflictError{
			OrderID:   order.ID,
			Current:   order.Status,
			Requested: requested,
		}
	}
	return order, nil
}

func (s *Service) cas(ctx context.Context, order entities.Order, expected entities.OrderStatus, upd entities.StatusUpdate) error {
	ok, err := s.orders.CompareAndSetStatus(ctx, order.ID, expected, upd)
	if err != nil {
		return fmt.Errorf("failed to update order %d: %w", order.ID, err)
	}
	if !ok {
		return s.conflict(ctx, order.ID, upd.Status)
	}

	s.afterTransition(ctx, order, upd.Status)
	return nil
}

// conflict перечитывает заказ, чтобы в ошибке был актуальный статус победителя.
func (s *Service) conflict(ctx context.Context, orderID int64, requested entities.OrderStatus) error {
	conflict := &entities.StateConflictError{OrderID: orderID, Requested: requested}
	if order, err := s.orders.GetOrderByID(ctx, orderID); err == nil {
		conflict.Current = order.Status
	}
	return conflict
}

// afterTransition публикует событие перехода. Публикация best-effort:
// сбой брокера не откатывает уже зафиксированный переход.
func (s *Service) afterTransition(ctx context.Context, order entities.Order, to entities.OrderStatus) {
	transitionsTotal.WithLabelValues(string(to)).Inc()

	ev := entities.OrderEvent{
		OrderNumber: order.Number,
		OldStatus:   order.Status,
		NewStatus:   to,
		At:          time.Now(),
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("number", order.Number),
			slog.Any("error", err),
		)
	}
}

func (s *Service) refund(ctx context.Context, order entities.Order) error {
	err := s.gateway.Refund(ctx, order.Number, order.Number, order.Amount, order.Amount)
	if err != nil {
		return err
	}
	refundsTotal.Inc()
	s.logger.Info("refund issued", slog.String("number", order.Number), slog.Int64("amount", order.Amount))
	return nil
}
