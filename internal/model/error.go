package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeMissingField         = "MISSING_FIELD"
	ErrCodeInvalidID            = "INVALID_ID"
	ErrCodeMenuItemNotFound     = "MENU_ITEM_NOT_FOUND"
	ErrCodeInvalidMenuItem      = "INVALID_MENU_ITEM"
	ErrCodeOutOfStock           = "OUT_OF_STOCK"
	ErrCodeInsufficientStock    = "INSUFFICIENT_STOCK"
	ErrCodeCartLineNotFound     = "CART_LINE_NOT_FOUND"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeNoActiveTable        = "NO_ACTIVE_TABLE"
	ErrCodeTableNotFound        = "TABLE_NOT_FOUND"
	ErrCodeOrderNotFound        = "ORDER_NOT_FOUND"
	ErrCodeAlreadyRefunded      = "ALREADY_REFUNDED"
	ErrCodeInvalidProfile       = "INVALID_PROFILE"
	ErrCodeNotLoggedIn          = "NOT_LOGGED_IN"
	ErrCodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	ErrCodeInsufficientCredits  = "INSUFFICIENT_CREDITS"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMenuItemNotFound     = NewDomainError(ErrCodeMenuItemNotFound, "Menu item not found")
	ErrInvalidMenuItem      = NewDomainError(ErrCodeInvalidMenuItem, "Menu item needs a name and non-negative price, cost and stock")
	ErrOutOfStock           = NewDomainError(ErrCodeOutOfStock, "Menu item is out of stock")
	ErrInsufficientStock    = NewDomainError(ErrCodeInsufficientStock, "Not enough stock")
	ErrCartLineNotFound     = NewDomainError(ErrCodeCartLineNotFound, "Item is not in the cart")
	ErrEmptyCart            = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrNoActiveTable        = NewDomainError(ErrCodeNoActiveTable, "No table is open")
	ErrTableNotFound        = NewDomainError(ErrCodeTableNotFound, "Table not found")
	ErrOrderNotFound        = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrAlreadyRefunded      = NewDomainError(ErrCodeAlreadyRefunded, "Order has already been refunded")
	ErrInvalidProfile       = NewDomainError(ErrCodeInvalidProfile, "Tax rate must be non-negative and logo one of coffee, mountain or cloud")
	ErrNotLoggedIn          = NewDomainError(ErrCodeNotLoggedIn, "No store session is active")
	ErrConfirmationRequired = NewDomainError(ErrCodeConfirmationRequired, "This action must be confirmed")
	ErrInsufficientCredits  = NewDomainError(ErrCodeInsufficientCredits, "Insufficient AI credits")
)
