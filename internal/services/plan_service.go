package services

import (
	"encoding/json"

	"gorm.io/datatypes"

	"influmatch_backend/internal/appErrors"
	"influmatch_backend/internal/logger"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/repositories"
	"influmatch_backend/internal/services/dto"
)

// PlanService manages the subscription catalogue and the simplified
// subscription checkout that flips the brand's access flag.
type PlanService interface {
	GetPlans() ([]models.SubscriptionPlan, error)
	GetPlan(planID string) (*models.SubscriptionPlan, error)
	CreatePlan(adminID string, req *dto.CreatePlanRequest) (*models.SubscriptionPlan, error)
	UpdatePlan(adminID, planID string, req *dto.UpdatePlanRequest) (*models.SubscriptionPlan, error)
	DeletePlan(adminID, planID string) error

	ActivateSubscription(userID, planID string) error
}

type planService struct {
	planRepo repositories.PlanRepository
	userRepo repositories.UserRepository
}

func NewPlanService(planRepo repositories.PlanRepository, userRepo repositories.UserRepository) PlanService {
	return &planService{planRepo: planRepo, userRepo: userRepo}
}

func (s *planService) GetPlans() ([]models.SubscriptionPlan, error) {
	return s.planRepo.FindActive()
}

func (s *planService) GetPlan(planID string) (*models.SubscriptionPlan, error) {
	plan, err := s.planRepo.FindByID(planID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, appErrors.ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *planService) CreatePlan(adminID string, req *dto.CreatePlanRequest) (*models.SubscriptionPlan, error) {
	if err := s.requireAdmin(adminID); err != nil {
		return nil, err
	}

	plan := &models.SubscriptionPlan{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		BillingPeriod: req.BillingPeriod,
		IsFeatured:    req.IsFeatured,
		IsActive:      req.IsActive,
		DisplayOrder:  req.DisplayOrder,
	}
	if plan.BillingPeriod == "" {
		plan.BillingPeriod = "monthly"
	}
	if features, err := json.Marshal(req.Features); err == nil {
		plan.Features = datatypes.JSON(features)
	}

	if err := s.planRepo.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) UpdatePlan(adminID, planID string, req *dto.UpdatePlanRequest) (*models.SubscriptionPlan, error) {
	if err := s.requireAdmin(adminID); err != nil {
		return nil, err
	}

	plan, err := s.GetPlan(planID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.BillingPeriod != nil {
		plan.BillingPeriod = *req.BillingPeriod
	}
	if req.IsFeatured != nil {
		plan.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		plan.DisplayOrder = *req.DisplayOrder
	}
	if req.Features != nil {
		if features, err := json.Marshal(req.Features); err == nil {
			plan.Features = datatypes.JSON(features)
		}
	}

	if err := s.planRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) DeletePlan(adminID, planID string) error {
	if err := s.requireAdmin(adminID); err != nil {
		return err
	}
	if err := s.planRepo.Delete(planID); err != nil {
		if appErrors.Is(err, repositories.ErrPlanNotFound) {
			return appErrors.ErrPlanNotFound
		}
		return err
	}
	return nil
}

func (s *planService) ActivateSubscription(userID, planID string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return appErrors.ErrUserNotFound
	}
	if user.Role != models.UserRoleBrand {
		return appErrors.ErrInsufficientPermissions
	}

	plan, err := s.GetPlan(planID)
	if err != nil {
		return err
	}
	if !plan.IsActive {
		return appErrors.NewBadRequestError("Subscription plan is not available")
	}

	if err := s.userRepo.SetSubscriptionActive(user.ID, true); err != nil {
		return err
	}

	logger.Info("subscription activated", "user_id", user.ID, "plan_id", plan.ID)
	return nil
}

func (s *planService) requireAdmin(adminID string) error {
	admin, err := s.userRepo.FindByID(adminID)
	if err != nil {
		return appErrors.ErrUserNotFound
	}
	if admin.Role != models.UserRoleAdmin {
		return appErrors.ErrInsufficientPermissions
	}
	return nil
}
