package checkout

import "errors"

var (
	ErrEmptyCart          = errors.New("cart is empty, nothing to check out")
	ErrNotAwaitingPayment = errors.New("no checkout awaiting payment for this session")
	ErrSubmitInFlight     = errors.New("a submission is already in flight for this session")
	ErrInvalidPayment     = errors.New("invalid payment method (allowed: cash, card, transfer)")
)
