package domain

import "errors"

var (
	ErrValidation          = errors.New("invalid donation input")
	ErrGateway             = errors.New("payment gateway request failed")
	ErrMalformedPayload    = errors.New("malformed notification payload")
	ErrSignatureMismatch   = errors.New("notification signature mismatch")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrSweepInProgress     = errors.New("pending status sweep already in progress")
)
