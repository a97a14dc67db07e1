package sentinel

import "errors"

// Sentinel dependency errors. Collaborators should return these (optionally wrapped)
// so the vault service can translate them into domain errors exactly once.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrTransferRejected  = errors.New("transfer rejected")
	ErrSlippage          = errors.New("output below minimum")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidState      = errors.New("invalid state")
	ErrUnavailable       = errors.New("unavailable")
)
