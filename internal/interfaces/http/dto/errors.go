package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	// ErrCodeInsufficientStock is used when stock is insufficient
	ErrCodeInsufficientStock = "ERR_INSUFFICIENT_STOCK"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	ErrCodeInvalidState:      http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:      http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to transport-level codes.
// Domain code semantics decide the HTTP status: duplicates conflict,
// lifecycle violations are unprocessable, malformed values are bad requests.
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":      ErrCodeNotFound,
	"ITEM_NOT_FOUND": ErrCodeNotFound,
	"LINE_NOT_FOUND": ErrCodeNotFound,

	"ALREADY_EXISTS":         ErrCodeAlreadyExists,
	"DUPLICATE_ORDER_NUMBER": ErrCodeAlreadyExists,
	"DUPLICATE_SKU":          ErrCodeAlreadyExists,
	"DUPLICATE_LOCATION":     ErrCodeAlreadyExists,
	"DUPLICATE_PRODUCT":      ErrCodeAlreadyExists,
	"DUPLICATE_ITEM":         ErrCodeAlreadyExists,
	"DUPLICATE_LINE":         ErrCodeAlreadyExists,

	"CONCURRENCY_CONFLICT":    ErrCodeConcurrencyConflict,
	"CONCURRENT_MODIFICATION": ErrCodeConcurrencyConflict,

	"INVALID_STATE":      ErrCodeInvalidState,
	"INVALID_STATUS":     ErrCodeInvalidState,
	"QUANTITY_EXCEEDED":  ErrCodeInvalidState,
	"INSUFFICIENT_STOCK": ErrCodeInsufficientStock,

	"UNKNOWN_PRODUCT":  ErrCodeBusinessRule,
	"UNKNOWN_LOCATION": ErrCodeBusinessRule,

	"NO_LINES":              ErrCodeValidation,
	"INVALID_INPUT":         ErrCodeValidation,
	"INVALID_ORDER_NUMBER":  ErrCodeValidation,
	"INVALID_SUPPLIER_NAME": ErrCodeValidation,
	"INVALID_ORDER":         ErrCodeValidation,
	"INVALID_LINE":          ErrCodeValidation,
	"INVALID_ITEM":          ErrCodeValidation,
	"INVALID_PRODUCT":       ErrCodeValidation,
	"INVALID_LOCATION":      ErrCodeValidation,
	"INVALID_QUANTITY":      ErrCodeValidation,
	"INVALID_ADJUSTMENT":    ErrCodeValidation,
	"INVALID_MOVEMENT_TYPE": ErrCodeValidation,
	"INVALID_REASON":        ErrCodeValidation,
	"INVALID_TIMESTAMP":     ErrCodeValidation,
	"INVALID_SKU":           ErrCodeValidation,
	"INVALID_NAME":          ErrCodeValidation,
	"INVALID_WEIGHT":        ErrCodeValidation,
	"INVALID_DIMENSIONS":    ErrCodeValidation,
	"INVALID_CODE":          ErrCodeValidation,
	"INVALID_ZONE":          ErrCodeValidation,
	"INVALID_AISLE":         ErrCodeValidation,
	"INVALID_RACK":          ErrCodeValidation,
	"INVALID_BIN":           ErrCodeValidation,
	"INVALID_CAPACITY":      ErrCodeValidation,
}

// NormalizeErrorCode converts a domain error code to the transport format.
// Unmapped codes fall back to the generic business rule code so a new
// domain error never surfaces as a 500.
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	if _, ok := ErrorCodeHTTPStatus[code]; ok {
		return code
	}
	return ErrCodeBusinessRule
}
