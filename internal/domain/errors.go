package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrOutOfStock           = errors.New("product is out of stock")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrForbidden            = errors.New("admin access required")
	ErrPaymentDeclined      = errors.New("payment declined")
)
