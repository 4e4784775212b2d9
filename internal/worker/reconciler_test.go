package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"eatery/internal/config"
	"eatery/internal/entities"
	"eatery/internal/worker"
	mocks "eatery/internal/worker/mocks"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Ошибка на одном заказе не прерывает обход остальных.
func TestReconciler_PaymentSweep_ErrorIsolation(t *testing.T) {
	stuck := []entities.Order{
		{ID: 1, Status: entities.StatusPendingPayment},
		{ID: 2, Status: entities.StatusPendingPayment},
		{ID: 3, Status: entities.StatusPendingPayment},
	}

	repo := mocks.NewMockStuckLister(t)
	engine := mocks.NewMockEngine(t)

	repo.EXPECT().
		ListStuck(mock.Anything, entities.StatusPendingPayment, mock.Anything).
		Return(stuck, nil)

	applied := make(chan int64, 16)
	engine.EXPECT().ExpirePayment(mock.Anything, stuck[0]).RunAndReturn(
		func(ctx context.Context, order entities.Order) error {
			applied <- order.ID
			return nil
		})
	engine.EXPECT().ExpirePayment(mock.Anything, stuck[1]).RunAndReturn(
		func(ctx context.Context, order entities.Order) error {
			applied <- order.ID
			return errors.New("db timeout")
		})
	engine.EXPECT().ExpirePayment(mock.Anything, stuck[2]).RunAndReturn(
		func(ctx context.Context, order entities.Order) error {
			applied <- order.ID
			return nil
		})

	r := worker.NewReconciler(newLogger(), repo, engine, config.Reconciler{
		PaymentSweepInterval:  10 * time.Millisecond,
		PaymentTimeout:        15 * time.Minute,
		DeliverySweepInterval: time.Hour,
		DeliveryTimeout:       time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		require.NoError(t, r.Start(ctx))
		close(done)
	}()

	seen := make(map[int64]bool)
	for len(seen) < 3 {
		select {
		case id := <-applied:
			seen[id] = true
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for sweep to visit all orders")
		}
	}

	cancel()
	<-done
}

func TestReconciler_DeliverySweep(t *testing.T) {
	stuck := []entities.Order{{ID: 7, Status: entities.StatusDeliveryInProgress}}

	repo := mocks.NewMockStuckLister(t)
	engine := mocks.NewMockEngine(t)

	// Дедлайн доставки передаётся в выборку как нижняя граница возраста.
	repo.EXPECT().
		ListStuck(mock.Anything, entities.StatusDeliveryInProgress, mock.MatchedBy(func(olderThan time.Time) bool {
			return time.Since(olderThan) > 50*time.Minute
		})).
		Return(stuck, nil)

	applied := make(chan int64, 16)
	engine.EXPECT().ForceComplete(mock.Anything, stuck[0]).RunAndReturn(
		func(ctx context.Context, order entities.Order) error {
			applied <- order.ID
			return nil
		})

	r := worker.NewReconciler(newLogger(), repo, engine, config.Reconciler{
		PaymentSweepInterval:  time.Hour,
		PaymentTimeout:        15 * time.Minute,
		DeliverySweepInterval: 10 * time.Millisecond,
		DeliveryTimeout:       time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		require.NoError(t, r.Start(ctx))
		close(done)
	}()

	select {
	case <-applied:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for delivery sweep")
	}

	cancel()
	<-done
}

// Сбой выборки не валит воркер: следующий тик пробует снова.
func TestReconciler_ListFailureDoesNotStopSweep(t *testing.T) {
	repo := mocks.NewMockStuckLister(t)
	engine := mocks.NewMockEngine(t)

	listed := make(chan struct{}, 16)
	repo.EXPECT().
		ListStuck(mock.Anything, entities.StatusPendingPayment, mock.Anything).
		RunAndReturn(func(ctx context.Context, status entities.OrderStatus, olderThan time.Time) ([]entities.Order, error) {
			listed <- struct{}{}
			return nil, errors.New("connection refused")
		})

	r := worker.NewReconciler(newLogger(), repo, engine, config.Reconciler{
		PaymentSweepInterval:  10 * time.Millisecond,
		PaymentTimeout:        15 * time.Minute,
		DeliverySweepInterval: time.Hour,
		DeliveryTimeout:       time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		require.NoError(t, r.Start(ctx))
		close(done)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-listed:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for sweep tick")
		}
	}

	cancel()
	<-done
}
