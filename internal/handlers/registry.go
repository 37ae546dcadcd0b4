package handlers

import (
	"influmatch_backend/internal/services"
	"influmatch_backend/internal/validator"
)

// ServiceContainer groups the services the handlers depend on.
type ServiceContainer struct {
	Auth         services.AuthService
	User         services.UserService
	Trial        services.TrialService
	Profile      services.ProfileService
	Campaign     services.CampaignService
	Payment      services.PaymentService
	Notification services.NotificationService
	Plan         services.PlanService
}

// AppHandlers holds every HTTP handler, wired once at startup.
type AppHandlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Profile      *ProfileHandler
	Campaign     *CampaignHandler
	Payment      *PaymentHandler
	Notification *NotificationHandler
	Plan         *PlanHandler
}

func NewAppHandlers(svcs ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:         NewAuthHandler(base, svcs.Auth),
		User:         NewUserHandler(base, svcs.User, svcs.Trial),
		Profile:      NewProfileHandler(base, svcs.Profile),
		Campaign:     NewCampaignHandler(base, svcs.Campaign),
		Payment:      NewPaymentHandler(base, svcs.Payment),
		Notification: NewNotificationHandler(base, svcs.Notification),
		Plan:         NewPlanHandler(base, svcs.Plan),
	}
}
