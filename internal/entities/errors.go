package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("shopping cart is empty")
	ErrAddressNotFound    = errors.New("address not found")
	ErrOutOfDeliveryRange = errors.New("address is out of delivery range")
	ErrAlreadyPaid        = errors.New("order is already paid")

	// ErrStateConflict — маркер для errors.Is, сами данные в StateConflictError.
	ErrStateConflict = errors.New("order state conflict")
)

// StateConflictError возвращается, когда предусловие перехода не выполнено:
// текущий статус заказа не совпадает с ожидаемым.
type StateConflictError struct {
	OrderID   int64
	Current   OrderStatus
	Requested OrderStatus
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("order %d: cannot move to %s from %s", e.OrderID, e.Requested, e.Current)
}

func (e *StateConflictError) Is(target error) bool {
	return target == ErrStateConflict
}

// ExternalServiceError — сбой внешнего сервиса (платёжный шлюз, геокодер).
// Состояние заказа при таком сбое не меняется, вызов можно повторить.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
