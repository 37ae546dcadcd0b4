package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"influmatch_backend/internal/models"
)

// registerCustomRules installs the domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-campaign-status", validateCampaignStatus)
	mustRegister("is-payment-status", validatePaymentStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty values
	}
	return models.ValidRole(models.UserRole(value))
}

func validateCampaignStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.CampaignStatus(value) {
	case models.CampaignStatusPending, models.CampaignStatusActive, models.CampaignStatusNegotiation,
		models.CampaignStatusRejected, models.CampaignStatusCompleted, models.CampaignStatusCancelled:
		return true
	default:
		return false
	}
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.PaymentStatus(value) {
	case models.PaymentStatusPending, models.PaymentStatusHeld, models.PaymentStatusCompleted,
		models.PaymentStatusRefunded, models.PaymentStatusFailed:
		return true
	default:
		return false
	}
}
