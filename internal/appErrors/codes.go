package appErrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole  ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	CodeProfileNotFound      ErrorCode = "PROFILE_NOT_FOUND"
	CodeCampaignNotFound     ErrorCode = "CAMPAIGN_NOT_FOUND"
	CodePaymentNotFound      ErrorCode = "PAYMENT_NOT_FOUND"
	CodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"
	CodePlanNotFound         ErrorCode = "PLAN_NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists      ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotApproved         ErrorCode = "USER_NOT_APPROVED"
	CodeUserInactive            ErrorCode = "USER_INACTIVE"
	CodeInsufficientPermissions ErrorCode = "INSUFFICIENT_PERMISSIONS"
	CodeConflict                ErrorCode = "CONFLICT"
	CodeInvalidStateTransition  ErrorCode = "INVALID_STATE_TRANSITION"

	// Trial gate
	CodeTrialExpired             ErrorCode = "TRIAL_EXPIRED"
	CodeFreeProfileLimitReached  ErrorCode = "FREE_PROFILE_LIMIT_REACHED"
	CodeSubscriptionRequired     ErrorCode = "SUBSCRIPTION_REQUIRED"

	// System
	CodeInternalError   ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError   ErrorCode = "DATABASE_ERROR"
	CodeUpstreamFailure ErrorCode = "UPSTREAM_FAILURE"
)
