package supplychain

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios.
var (
	// General errors
	ErrNotFound      = errors.New("supplychain: not found")
	ErrAlreadyExists = errors.New("supplychain: already exists")
	ErrInvalidInput  = errors.New("supplychain: invalid input")
	ErrUnauthorized  = errors.New("supplychain: unauthorized")

	// Bootstrap errors
	ErrAlreadyInitialized = errors.New("supplychain: already initialized")
	ErrInvalidPlatformFee = errors.New("supplychain: platform fee exceeds maximum")

	// Registry errors
	ErrIdentityNotFound = errors.New("supplychain: identity not found")
	ErrInvalidRole      = errors.New("supplychain: invalid role")

	// Cross-link errors
	ErrIDMismatch              = errors.New("supplychain: record id mismatch")
	ErrConfigNotFound          = errors.New("supplychain: platform config not found")
	ErrFactoryNotFound         = errors.New("supplychain: factory not found")
	ErrProductNotFound         = errors.New("supplychain: product not found")
	ErrInspectionNotFound      = errors.New("supplychain: inspection not found")
	ErrWarehouseNotFound       = errors.New("supplychain: warehouse not found")
	ErrOrderNotFound           = errors.New("supplychain: order not found")
	ErrLogisticsNotFound       = errors.New("supplychain: logistics not found")
	ErrSellerNotFound          = errors.New("supplychain: seller not found")
	ErrSellerStockNotFound     = errors.New("supplychain: seller stock not found")
	ErrCustomerProductNotFound = errors.New("supplychain: customer product not found")
	ErrTransactionNotFound     = errors.New("supplychain: transaction not found")

	// Transition errors
	ErrAlreadyProcessed = errors.New("supplychain: already processed")
	ErrFeeUnpaid        = errors.New("supplychain: inspection fee not paid")
	ErrNotInspected     = errors.New("supplychain: product not quality checked")

	// Money errors
	ErrInsufficientStock      = errors.New("supplychain: insufficient stock")
	ErrInsufficientBalance    = errors.New("supplychain: insufficient balance")
	ErrBelowMinimumWithdrawal = errors.New("supplychain: amount below minimum withdrawal")
	ErrOverflow               = errors.New("supplychain: arithmetic overflow")

	// Store errors
	ErrStoreNotReady = errors.New("supplychain: store not ready")
	ErrStoreClosed   = errors.New("supplychain: store is closed")
)

// ValidationError represents a field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("supplychain: validation failed for %s: %s", e.Field, e.Message)
}

// Is makes ValidationError match ErrInvalidInput under errors.Is.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrIdentityNotFound) ||
		errors.Is(err, ErrFactoryNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrInspectionNotFound) ||
		errors.Is(err, ErrWarehouseNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrLogisticsNotFound) ||
		errors.Is(err, ErrSellerNotFound) ||
		errors.Is(err, ErrSellerStockNotFound) ||
		errors.Is(err, ErrCustomerProductNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsAuthError returns true if the error is an authorization failure.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsFundsError returns true if the error is related to balances or stock.
func IsFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrBelowMinimumWithdrawal)
}
