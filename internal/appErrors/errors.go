package appErrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error category across the API surface.
type ErrorCode string

// AppError is the application error carried from services up to the HTTP layer.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches AppErrors by code, so clones produced by WithMessage and
// friends still compare equal to their sentinel under errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap keeps the cause on the error chain.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	// Users
	ErrUserNotFound            = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists      = New(CodeEmailAlreadyExists, "Email already registered", http.StatusConflict)
	ErrUserNotApproved         = New(CodeUserNotApproved, "User account pending approval", http.StatusForbidden)
	ErrUserInactive            = New(CodeUserInactive, "User account is inactive", http.StatusForbidden)
	ErrWeakPassword            = New(CodeWeakPassword, "Password must be at least 8 characters", http.StatusBadRequest)
	ErrInvalidUserRole         = New(CodeInvalidUserRole, "Invalid user role", http.StatusBadRequest)
	ErrInsufficientPermissions = New(CodeInsufficientPermissions, "Insufficient permissions", http.StatusForbidden)

	// Profiles
	ErrProfileNotFound      = New(CodeProfileNotFound, "Profile not found", http.StatusNotFound)
	ErrProfileAlreadyExists = New(CodeConflict, "Profile already exists for this user", http.StatusConflict)

	// Trial gate. Expired trial maps to 402 so clients can route straight to
	// checkout; a consumed free slot is a plain 403.
	ErrTrialExpired = New(CodeTrialExpired,
		"Your 24-hour trial has expired. Please subscribe to continue accessing profiles.", http.StatusPaymentRequired)
	ErrFreeProfileLimitReached = New(CodeFreeProfileLimitReached,
		"You have already viewed your free profile during the trial. Please subscribe to view more profiles.", http.StatusForbidden)
	ErrSubscriptionRequired = New(CodeSubscriptionRequired, "Active subscription required", http.StatusForbidden)

	// Campaigns
	ErrCampaignNotFound = New(CodeCampaignNotFound, "Campaign not found", http.StatusNotFound)
	ErrInvalidBudget    = New(CodeValidationFailed, "Budget must be greater than zero", http.StatusBadRequest)

	// Payments
	ErrPaymentNotFound       = New(CodePaymentNotFound, "Payment not found", http.StatusNotFound)
	ErrPaymentProviderFailed = New(CodeUpstreamFailure, "Payment provider request failed", http.StatusBadGateway)

	// Notifications
	ErrNotificationNotFound = New(CodeNotificationNotFound, "Notification not found", http.StatusNotFound)

	// Subscription plans
	ErrPlanNotFound = New(CodePlanNotFound, "Subscription plan not found", http.StatusNotFound)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// InvalidTransition reports an attempt to move a campaign or payment out of a
// state that does not admit the requested action.
func InvalidTransition(message string) *AppError {
	return New(CodeInvalidStateTransition, message, http.StatusConflict)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
