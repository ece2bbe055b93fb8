package service

import (
	"errors"
	"fmt"
)

// Error categories, mapped to HTTP statuses by the transport layer.
var (
	ErrValidation   = errors.New("validation")   // 400
	ErrNotFound     = errors.New("not found")    // 404
	ErrConflict     = errors.New("conflict")     // 409
	ErrUnauthorized = errors.New("unauthorized") // 401
	ErrInternal     = errors.New("internal")     // 500
)

// Named failures. Every distinguishable outcome a caller can act on gets its
// own sentinel wrapping the category it reports as.
var (
	// cart
	ErrDuplicateActiveCart = fmt.Errorf("%w: client already has a pending cart", ErrConflict)
	ErrCartNotFound        = fmt.Errorf("%w: cart", ErrNotFound)
	ErrLineItemNotFound    = fmt.Errorf("%w: line item", ErrNotFound)
	ErrNoUpdateData        = fmt.Errorf("%w: no fields to update", ErrValidation)

	// order
	ErrMissingCart          = fmt.Errorf("%w: cart reference required", ErrValidation)
	ErrMissingAddress       = fmt.Errorf("%w: delivery address required", ErrValidation)
	ErrMissingPaymentMethod = fmt.Errorf("%w: payment method required", ErrValidation)
	ErrInvalidPaymentMethod = fmt.Errorf("%w: payment method must be transferencia or efectivo", ErrValidation)
	ErrCartDoesNotExist     = fmt.Errorf("%w: referenced cart does not exist", ErrNotFound)
	ErrOrderNotFound        = fmt.Errorf("%w: order", ErrNotFound)
	ErrInvalidDateFormat    = fmt.Errorf("%w: unparseable date", ErrValidation)
	ErrInvalidRange         = fmt.Errorf("%w: start date after end date", ErrValidation)
	ErrFutureDateRejected   = fmt.Errorf("%w: date range bound in the future", ErrValidation)

	// auth
	ErrInvalidEmail        = fmt.Errorf("%w: email missing or malformed", ErrValidation)
	ErrWeakPassword        = fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	ErrPrincipalNotFound   = fmt.Errorf("%w: no account with that email", ErrNotFound)
	ErrBadCredentials      = fmt.Errorf("%w: bad credentials", ErrUnauthorized)
	ErrTokenIssuanceFailed = fmt.Errorf("%w: could not sign token", ErrInternal)
	ErrDuplicateEmail      = fmt.Errorf("%w: email already registered", ErrConflict)

	// verification
	ErrDeliveryFailed        = fmt.Errorf("%w: could not deliver code email", ErrInternal)
	ErrTokenMissing          = fmt.Errorf("%w: verification ticket missing", ErrUnauthorized)
	ErrTokenExpiredOrInvalid = fmt.Errorf("%w: verification ticket expired or invalid", ErrUnauthorized)
	ErrCodeMismatch          = fmt.Errorf("%w: code does not match", ErrValidation)
	ErrNotYetVerified        = fmt.Errorf("%w: code not verified yet", ErrUnauthorized)
	ErrSamePasswordRejected  = fmt.Errorf("%w: new password must differ from the current one", ErrValidation)
)
