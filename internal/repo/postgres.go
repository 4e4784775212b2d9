package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eatery/internal/entities"
	"eatery/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"id", "number", "user_id", "status", "pay_status",
	"amount", "consignee", "phone", "address", "remark",
	"cancel_reason", "rejection_reason",
	"order_time", "checkout_time", "cancel_time", "delivery_time",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateOrder вставляет заказ и его позиции. Атомарность обеспечивает
// транзакция из контекста (trm), сюда она попадает из сервиса.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order, lines []entities.OrderLine) (int64, error) {
	query, args := r.qb.Insert("orders").
		Columns("number", "user_id", "status", "pay_status",
			"amount", "consignee", "phone", "address", "remark", "order_time").
		Values(o.Number, o.UserID, string(o.Status), string(o.PayStatus),
			o.Amount, o.Consignee, o.Phone, o.Address, nullString(o.Remark), o.OrderTime).
		Suffix("RETURNING id").
		MustSql()

	var id int64
	if err := r.getContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	if len(lines) == 0 {
		return id, nil
	}

	q := r.qb.Insert("order_lines").
		Columns("order_id", "name", "image", "quantity", "unit_price", "amount")
	for _, l := range lines {
		q = q.Values(id, l.Name, nullString(l.Image), l.Quantity, l.UnitPrice, l.Amount)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("failed to insert order lines: %w", err)
	}

	return id, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, number string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"number": number})
}

func (r *postgresRepo) getOrder(ctx context.Context, pred sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(pred).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("id", "order_id", "name", "image", "quantity", "unit_price", "amount").
		From("order_lines").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("id").
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order lines: %w", err)
	}

	return OrderToEntity(order, lines), nil
}

// CompareAndSetStatus — единственный способ сменить статус заказа.
// Обновление применяется, только если текущий статус равен ожидаемому,
// возвращает false, если заказ уже ушёл в другое состояние.
func (r *postgresRepo) CompareAndSetStatus(ctx context.Context, id int64, expected entities.OrderStatus, upd entities.StatusUpdate) (bool, error) {
	q := r.qb.Update("orders").
		Set("status", string(upd.Status)).
		Where(sq.Eq{"id": id, "status": string(expected)})

	if upd.PayStatus != nil {
		q = q.Set("pay_status", string(*upd.PayStatus))
	}
	if upd.CheckoutTime != nil {
		q = q.Set("checkout_time", *upd.CheckoutTime)
	}
	if upd.CancelTime != nil {
		q = q.Set("cancel_time", *upd.CancelTime)
	}
	if upd.DeliveryTime != nil {
		q = q.Set("delivery_time", *upd.DeliveryTime)
	}
	if upd.CancelReason != "" {
		q = q.Set("cancel_reason", upd.CancelReason)
	}
	if upd.RejectionReason != "" {
		q = q.Set("rejection_reason", upd.RejectionReason)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// ListStuck возвращает заказы в статусе status, оформленные раньше olderThan.
// Позиции не загружаются, свипу они не нужны.
func (r *postgresRepo) ListStuck(ctx context.Context, status entities.OrderStatus, olderThan time.Time) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"status": string(status)}).
		Where(sq.Lt{"order_time": olderThan}).
		OrderBy("order_time").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select stuck orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, nil))
	}
	return result, nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, userID int64, status entities.OrderStatus, limit, offset int) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("order_time DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if status != "" {
		q = q.Where(sq.Eq{"status": string(status)})
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return r.attachLines(ctx, orders)
}

// SearchOrders — операторская выборка без привязки к пользователю:
// статус точно, номер и телефон по подстроке.
func (r *postgresRepo) SearchOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("order_time DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": string(f.Status)})
	}
	if f.Number != "" {
		q = q.Where(sq.Like{"number": "%" + f.Number + "%"})
	}
	if f.Phone != "" {
		q = q.Where(sq.Like{"phone": "%" + f.Phone + "%"})
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search orders: %w", err)
	}
	return r.attachLines(ctx, orders)
}

// attachLines догружает позиции одним батч-запросом на всю страницу.
func (r *postgresRepo) attachLines(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]int64, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args := r.qb.Select("id", "order_id", "name", "image", "quantity", "unit_price", "amount").
		From("order_lines").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var lines []OrderLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order lines: %w", err)
	}
	linesMap := make(map[int64][]OrderLine, len(ids))
	for _, l := range lines {
		linesMap[l.OrderID] = append(linesMap[l.OrderID], l)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, linesMap[o.ID]))
	}
	return result, nil
}

func (r *postgresRepo) CountByStatus(ctx context.Context) (map[entities.OrderStatus]int, error) {
	query, args := r.qb.Select("status", "count(*) AS cnt").
		From("orders").
		GroupBy("status").
		MustSql()

	var rows []struct {
		Status string `db:"status"`
		Cnt    int    `db:"cnt"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	result := make(map[entities.OrderStatus]int, len(rows))
	for _, row := range rows {
		result[entities.OrderStatus(row.Status)] = row.Cnt
	}
	return result, nil
}

func (r *postgresRepo) ListCart(ctx context.Context, userID int64) ([]entities.CartLine, error) {
	query, args := r.qb.Select("user_id", "name", "image", "quantity", "unit_price").
		From("shopping_cart").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	var lines []CartLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart: %w", err)
	}

	result := make([]entities.CartLine, 0, len(lines))
	for _, l := range lines {
		result = append(result, CartLineToEntity(l))
	}
	return result, nil
}

func (r *postgresRepo) ClearCart(ctx context.Context, userID int64) error {
	query, args := r.qb.Delete("shopping_cart").
		Where(sq.Eq{"user_id": userID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
