package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"influmatch_backend/internal/appErrors"
	"influmatch_backend/internal/logger"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/payments"
	"influmatch_backend/internal/repositories"
	"influmatch_backend/internal/services/dto"
)

// PaymentConfig is injected at wiring time.
type PaymentConfig struct {
	// CommissionRate is the platform's cut as a fraction, e.g. 0.15.
	CommissionRate decimal.Decimal
	CaptureTimeout time.Duration
}

type PaymentService interface {
	// CreatePayment captures funds for an active campaign and holds them in
	// escrow. Provider failure leaves no ledger entry.
	CreatePayment(brandID string, req *dto.CreatePaymentRequest) (*models.Payment, error)

	// ReleasePayment moves a held payment to completed. Admin only, and
	// only once the campaign itself is completed. Release is never
	// automatic.
	ReleasePayment(adminID, paymentID string) (*models.Payment, error)

	GetPayment(actorID, paymentID string) (*models.Payment, error)
	GetUserPayments(actorID string, limit, offset int) ([]models.Payment, error)
}

type paymentService struct {
	paymentRepo     repositories.PaymentRepository
	campaignRepo    repositories.CampaignRepository
	userRepo        repositories.UserRepository
	provider        payments.Provider
	notificationSvc NotificationService
	cfg             PaymentConfig
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	campaignRepo repositories.CampaignRepository,
	userRepo repositories.UserRepository,
	provider payments.Provider,
	notificationSvc NotificationService,
	cfg PaymentConfig,
) PaymentService {
	if cfg.CaptureTimeout <= 0 {
		cfg.CaptureTimeout = 10 * time.Second
	}
	return &paymentService{
		paymentRepo:     paymentRepo,
		campaignRepo:    campaignRepo,
		userRepo:        userRepo,
		provider:        provider,
		notificationSvc: notificationSvc,
		cfg:             cfg,
	}
}

func (s *paymentService) CreatePayment(brandID string, req *dto.CreatePaymentRequest) (*models.Payment, error) {
	brand, err := s.userRepo.FindByID(brandID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}
	if brand.Role != models.UserRoleBrand {
		return nil, appErrors.ErrInsufficientPermissions
	}

	if !req.Amount.IsPositive() {
		return nil, appErrors.NewBadRequestError("Payment amount must be greater than zero")
	}

	campaign, err := s.campaignRepo.FindByID(req.CampaignID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrCampaignNotFound) {
			return nil, appErrors.ErrCampaignNotFound
		}
		return nil, err
	}
	if campaign.BrandID != brand.ID {
		return nil, appErrors.ErrInsufficientPermissions
	}
	if campaign.Status != models.CampaignStatusActive {
		return nil, appErrors.InvalidTransition(
			fmt.Sprintf("cannot fund a campaign in status %q", campaign.Status))
	}

	// Exact split: the payout is the remainder, so commission + payout
	// always reassembles the charged amount.
	commission := req.Amount.Mul(s.cfg.CommissionRate).Round(2)
	payout := req.Amount.Sub(commission)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.CaptureTimeout)
	defer cancel()

	capture, err := s.provider.Capture(ctx, payments.CaptureRequest{
		Amount:           req.Amount,
		Currency:         req.Currency,
		PaymentMethodRef: req.PaymentMethodRef,
		CampaignID:       campaign.ID,
		BrandID:          brand.ID,
	})
	if err != nil {
		logger.Error("payment capture failed",
			"campaign_id", campaign.ID, "brand_id", brand.ID, "error", err)
		return nil, appErrors.ErrPaymentProviderFailed.WithError(err)
	}

	payment := &models.Payment{
		CampaignID:         campaign.ID,
		BrandID:            campaign.BrandID,
		InfluencerID:       campaign.InfluencerID,
		Amount:             req.Amount,
		PlatformCommission: commission,
		InfluencerPayout:   payout,
		ProviderPaymentID:  capture.PaymentIntentID,
		ProviderChargeID:   capture.ChargeID,
		Status:             models.PaymentStatusHeld,
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	logger.Info("payment held in escrow",
		"payment_id", payment.ID, "campaign_id", campaign.ID, "amount", req.Amount.String())

	go func() {
		err := s.notificationSvc.Notify(campaign.InfluencerID,
			repositories.NotificationTypePaymentHeld,
			"Payment secured",
			fmt.Sprintf("The budget for campaign '%s' is held in escrow", campaign.Title),
			"payment", payment.ID)
		if err != nil {
			logger.Error("failed to create payment notification", "payment_id", payment.ID, "error", err)
		}
	}()

	return payment, nil
}

func (s *paymentService) ReleasePayment(adminID, paymentID string) (*models.Payment, error) {
	admin, err := s.userRepo.FindByID(adminID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}
	if admin.Role != models.UserRoleAdmin {
		return nil, appErrors.ErrInsufficientPermissions
	}

	payment, err := s.paymentRepo.Release(paymentID, func(p *models.Payment, campaignStatus models.CampaignStatus) error {
		if p.Status != models.PaymentStatusHeld {
			return appErrors.InvalidTransition(
				fmt.Sprintf("cannot release a payment in status %q", p.Status))
		}
		if campaignStatus != models.CampaignStatusCompleted {
			return appErrors.InvalidTransition(
				fmt.Sprintf("cannot release payment while campaign is in status %q", campaignStatus))
		}

		now := time.Now()
		p.Status = models.PaymentStatusCompleted
		p.CompletedAt = &now
		return nil
	})
	if err != nil {
		if appErrors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, appErrors.ErrPaymentNotFound
		}
		return nil, err
	}

	logger.Info("payment released",
		"payment_id", payment.ID, "admin_id", admin.ID, "payout", payment.InfluencerPayout.String())

	go func() {
		err := s.notificationSvc.Notify(payment.InfluencerID,
			repositories.NotificationTypePaymentReleased,
			"Payment released",
			fmt.Sprintf("Your payout of %s has been released", payment.InfluencerPayout.StringFixed(2)),
			"payment", payment.ID)
		if err != nil {
			logger.Error("failed to create payment notification", "payment_id", payment.ID, "error", err)
		}
	}()

	return payment, nil
}

func (s *paymentService) GetPayment(actorID, paymentID string) (*models.Payment, error) {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}

	payment, err := s.paymentRepo.FindByID(paymentID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, appErrors.ErrPaymentNotFound
		}
		return nil, err
	}

	if actor.ID != payment.BrandID && actor.ID != payment.InfluencerID && actor.Role != models.UserRoleAdmin {
		return nil, appErrors.ErrInsufficientPermissions
	}
	return payment, nil
}

func (s *paymentService) GetUserPayments(actorID string, limit, offset int) ([]models.Payment, error) {
	actor, err := s.userRepo.FindByID(actorID)
	if err != nil {
		return nil, appErrors.ErrUserNotFound
	}

	switch actor.Role {
	case models.UserRoleBrand:
		return s.paymentRepo.FindByBrand(actor.ID, limit, offset)
	case models.UserRoleInfluencer:
		return s.paymentRepo.FindByInfluencer(actor.ID, limit, offset)
	default:
		return nil, appErrors.ErrInsufficientPermissions
	}
}
