package worker

import (
	"context"
	"log/slog"
	"time"

	"eatery/internal/config"
	"eatery/internal/entities"
)

// Engine — таймаут-переходы движка. Оба идемпотентны: проигранный CAS
// внутри движка превращается в no-op, поэтому пересечение двух свипов
// по одному заказу безопасно без блокировок.
type Engine interface {
	ExpirePayment(ctx context.Context, order entities.Order) error
	ForceComplete(ctx context.Context, order entities.Order) error
}

type StuckLister interface {
	ListStuck(ctx context.Context, status entities.OrderStatus, olderThan time.Time) ([]entities.Order, error)
}

// Reconciler гоняет два периодических свипа: отмена неоплаченных заказов
// и принудительное завершение зависших доставок.
type Reconciler struct {
	logger *slog.Logger
	repo   StuckLister
	engine Engine
	cfg    config.Reconciler
}

func NewReconciler(logger *slog.Logger, repo StuckLister, engine Engine, cfg config.Reconciler) *Reconciler {
	return &Reconciler{
		logger: logger.With(slog.String("worker", "reconciler")),
		repo:   repo,
		engine: engine,
		cfg:    cfg,
	}
}

// Start блокируется до отмены контекста.
func (r *Reconciler) Start(ctx context.Context) error {
	go r.run(ctx, "payment", r.cfg.PaymentSweepInterval, 0, r.sweepPayments)

	// Сдвиг, чтобы оба тикера не сработали по одному заказу одновременно.
	r.run(ctx, "delivery", r.cfg.DeliverySweepInterval, r.cfg.DeliverySweepOffset, r.sweepDeliveries)
	return nil
}

func (r *Reconciler) run(ctx context.Context, name string, interval, offset time.Duration, sweep func(ctx context.Context)) {
	if offset > 0 {
		select {
		case <-time.After(offset):
		case <-ctx.Done():
			return
		}
	}

	r.logger.Info("sweep started", slog.String("sweep", name), slog.String("interval", interval.String()))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sweep(ctx)
		case <-ctx.Done():
			r.logger.Info("sweep stopped", slog.String("sweep", name))
			return
		}
	}
}

func (r *Reconciler) sweepPayments(ctx context.Context) {
	r.sweep(ctx, "payment", entities.StatusPendingPayment, r.cfg.PaymentTimeout, r.engine.ExpirePayment)
}

func (r *Reconciler) sweepDeliveries(ctx context.Context) {
	r.sweep(ctx, "delivery", entities.StatusDeliveryInProgress, r.cfg.DeliveryTimeout, r.engine.ForceComplete)
}

// sweep применяет переход к каждому застрявшему заказу по отдельности:
// ошибка одного заказа не прерывает обход остальных.
func (r *Reconciler) sweep(ctx context.Context, name string, status entities.OrderStatus, deadline time.Duration, apply func(ctx context.Context, order entities.Order) error) {
	orders, err := r.repo.ListStuck(ctx, status, time.Now().Add(-deadline))
	if err != nil {
		r.logger.Error("failed to list stuck orders", slog.String("sweep", name), slog.Any("error", err))
		sweepErrors.WithLabelValues(name).Inc()
		return
	}
	if len(orders) == 0 {
		return
	}

	r.logger.Info("sweeping stuck orders", slog.String("sweep", name), slog.Int("count", len(orders)))
	for _, order := range orders {
		if err := apply(ctx, order); err != nil {
			r.logger.Error("failed to apply timeout transition",
				slog.String("sweep", name),
				slog.Int64("order_id", order.ID),
				slog.Any("error", err),
			)
			sweepErrors.WithLabelValues(name).Inc()
			continue
		}
		sweptOrders.WithLabelValues(name).Inc()
	}
}
