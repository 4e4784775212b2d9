package entities

import "time"

type NotificationType string

const (
	NotificationNewOrder NotificationType = "new-order"
	NotificationReminder NotificationType = "reminder"
)

// Notification — сообщение для консолей операторов. Доставка best-effort,
// состояние заказа из факта доставки никогда не выводится.
type Notification struct {
	Type    NotificationType `json:"type"`
	OrderID int64            `json:"orderId"`
	Content string           `json:"content"`
}

// OrderEvent публикуется в kafka после каждого зафиксированного перехода.
type OrderEvent struct {
	OrderNumber string      `json:"order_number"`
	OldStatus   OrderStatus `json:"old_status"`
	NewStatus   OrderStatus `json:"new_status"`
	At          time.Time   `json:"at"`
}
