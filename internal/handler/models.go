package handler

import (
	"time"

	"eatery/internal/entities"
)

// SubmitOrderRequest — оформление заказа из корзины
type SubmitOrderRequest struct {
	Consignee string `json:"consignee" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	Remark    string `json:"remark,omitempty"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type RejectOrderRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// Order представляет заказ
type Order struct {
	ID        int64  `json:"id"`
	Number    string `json:"number"`
	Status    string `json:"status"`
	PayStatus string `json:"pay_status"`

	Amount    int64  `json:"amount"`
	Consignee string `json:"consignee"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Remark    string `json:"remark,omitempty"`

	CancelReason    string `json:"cancel_reason,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`

	OrderTime    time.Time  `json:"order_time"`
	CheckoutTime *time.Time `json:"checkout_time,omitempty"`
	CancelTime   *time.Time `json:"cancel_time,omitempty"`
	DeliveryTime *time.Time `json:"delivery_time,omitempty"`

	Lines []OrderLine `json:"lines,omitempty"`
}

// OrderLine — позиция заказа
type OrderLine struct {
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Amount    int64  `json:"amount"`
}

type PrepayResponse struct {
	PaymentToken string `json:"payment_token"`
}

// CallbackAck — фиксированный ответ платёжному провайдеру
type CallbackAck struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type StateConflictResponse struct {
	Message   string `json:"message"`
	Current   string `json:"current"`
	Requested string `json:"requested"`
}

type StatisticsResponse struct {
	ToBeConfirmed      int `json:"to_be_confirmed"`
	Confirmed          int `json:"confirmed"`
	DeliveryInProgress int `json:"delivery_in_progress"`
}

func OrderEntityToJSON(o entities.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLine{
			Name:      l.Name,
			Image:     l.Image,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Amount:    l.Amount,
		})
	}

	return Order{
		ID:        o.ID,
		Number:    o.Number,
		Status:    string(o.Status),
		PayStatus: string(o.PayStatus),

		Amount:    o.Amount,
		Consignee: o.Consignee,
		Phone:     o.Phone,
		Address:   o.Address,
		Remark:    o.Remark,

		CancelReason:    o.CancelReason,
		RejectionReason: o.RejectionReason,

		OrderTime:    o.OrderTime,
		CheckoutTime: o.CheckoutTime,
		CancelTime:   o.CancelTime,
		DeliveryTime: o.DeliveryTime,

		Lines: lines,
	}
}
