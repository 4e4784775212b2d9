package repo

import (
	"database/sql"
	"time"

	"eatery/internal/entities"
)

type Order struct {
	ID        int64  `db:"id"`
	Number    string `db:"number"`
	UserID    int64  `db:"user_id"`
	Status    string `db:"status"`
	PayStatus string `db:"pay_status"`

	Amount    int64          `db:"amount"`
	Consignee string         `db:"consignee"`
	Phone     string         `db:"phone"`
	Address   string         `db:"address"`
	Remark    sql.NullString `db:"remark"`

	CancelReason    sql.NullString `db:"cancel_reason"`
	RejectionReason sql.NullString `db:"rejection_reason"`

	OrderTime    time.Time    `db:"order_time"`
	CheckoutTime sql.NullTime `db:"checkout_time"`
	CancelTime   sql.NullTime `db:"cancel_time"`
	DeliveryTime sql.NullTime `db:"delivery_time"`
}

type OrderLine struct {
	ID        int64          `db:"id"`
	OrderID   int64          `db:"order_id"`
	Name      string         `db:"name"`
	Image     sql.NullString `db:"image"`
	Quantity  int            `db:"quantity"`
	UnitPrice int64          `db:"unit_price"`
	Amount    int64          `db:"amount"`
}

type CartLine struct {
	UserID    int64          `db:"user_id"`
	Name      string         `db:"name"`
	Image     sql.NullString `db:"image"`
	Quantity  int            `db:"quantity"`
	UnitPrice int64          `db:"unit_price"`
}

func OrderToEntity(o Order, lines []OrderLine) entities.Order {
	order := entities.Order{
		ID:        o.ID,
		Number:    o.Number,
		UserID:    o.UserID,
		Status:    entities.OrderStatus(o.Status),
		PayStatus: entities.PayStatus(o.PayStatus),

		Amount:    o.Amount,
		Consignee: o.Consignee,
		Phone:     o.Phone,
		Address:   o.Address,
		Remark:    nullStringToString(o.Remark),

		CancelReason:    nullStringToString(o.CancelReason),
		RejectionReason: nullStringToString(o.RejectionReason),

		OrderTime:    o.OrderTime,
		CheckoutTime: nullTimeToPtr(o.CheckoutTime),
		CancelTime:   nullTimeToPtr(o.CancelTime),
		DeliveryTime: nullTimeToPtr(o.DeliveryTime),
	}

	if len(lines) > 0 {
		order.Lines = make([]entities.OrderLine, 0, len(lines))
		for _, l := range lines {
			order.Lines = append(order.Lines, LineToEntity(l))
		}
	}

	return order
}

func LineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		ID:        l.ID,
		OrderID:   l.OrderID,
		Name:      l.Name,
		Image:     nullStringToString(l.Image),
		Quantity:  l.Quantity,
		UnitPrice: l.UnitPrice,
		Amount:    l.Amount,
	}
}

func CartLineToEntity(l CartLine) entities.CartLine {
	return entities.CartLine{
		UserID:    l.UserID,
		Name:      l.Name,
		Image:     nullStringToString(l.Image),
		Quantity:  l.Quantity,
		UnitPrice: l.UnitPrice,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}
