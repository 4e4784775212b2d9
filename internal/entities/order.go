package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sync/atomic"
	"time"
)

type OrderStatus string

const (
	StatusPendingPayment     OrderStatus = "PENDING_PAYMENT"
	StatusToBeConfirmed      OrderStatus = "TO_BE_CONFIRMED"
	StatusConfirmed          OrderStatus = "CONFIRMED"
	StatusDeliveryInProgress OrderStatus = "DELIVERY_IN_PROGRESS"
	StatusCompleted          OrderStatus = "COMPLETED"
	StatusCancelled          OrderStatus = "CANCELLED"
)

// Terminal сообщает, что заказ больше не изменяется движком.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type PayStatus string

const (
	PayStatusUnpaid   PayStatus = "UNPAID"
	PayStatusPaid     PayStatus = "PAID"
	PayStatusRefunded PayStatus = "REFUNDED"
)

type Order struct {
	ID        int64
	Number    string
	UserID    int64
	Status    OrderStatus
	PayStatus PayStatus

	// Amount в копейках, чтобы не возиться с плавающей точкой
	Amount    int64
	Consignee string
	Phone     string
	Address   string
	Remark    string

	CancelReason    string
	RejectionReason string

	OrderTime    time.Time
	CheckoutTime *time.Time
	CancelTime   *time.Time
	DeliveryTime *time.Time

	Lines []OrderLine
}

// OrderLine — снапшот позиции на момент оформления,
// исторические заказы не меняются при изменении меню.
type OrderLine struct {
	ID        int64
	OrderID   int64
	Name      string
	Image     string
	Quantity  int
	UnitPrice int64
	Amount    int64
}

// CartLine — позиция корзины пользователя до оформления заказа.
type CartLine struct {
	UserID    int64
	Name      string
	Image     string
	Quantity  int
	UnitPrice int64
}

// OrderFilter — условия операторского поиска заказов.
// Пустые поля не фильтруют.
type OrderFilter struct {
	Status OrderStatus
	Number string
	Phone  string
	Limit  int
	Offset int
}

// Submission — данные оформления заказа.
type Submission struct {
	UserID    int64
	Consignee string
	Phone     string
	Address   string
	Remark    string
}

// StatusUpdate — поля, которые переход записывает вместе со сменой статуса.
// Nil-поля не трогаются.
type StatusUpdate struct {
	Status          OrderStatus
	PayStatus       *PayStatus
	CheckoutTime    *time.Time
	CancelTime      *time.Time
	DeliveryTime    *time.Time
	CancelReason    string
	RejectionReason string
}

var orderSeq atomic.Uint64

// NewOrderNumber генерирует внешний номер заказа: временная метка плюс
// сквозной счётчик процесса, коллизии внутри процесса исключены.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("%s%06d", now.Format("20060102150405"), orderSeq.Add(1)%1_000_000)
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(o)
}
