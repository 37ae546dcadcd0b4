package repositories

import (
	"errors"

	"influmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("subscription plan not found")

type PlanRepository interface {
	Create(plan *models.SubscriptionPlan) error
	FindByID(id string) (*models.SubscriptionPlan, error)
	FindActive() ([]models.SubscriptionPlan, error)
	Update(plan *models.SubscriptionPlan) error
	Delete(id string) error
}

type PlanRepositoryImpl struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &PlanRepositoryImpl{db: db}
}

func (r *PlanRepositoryImpl) Create(plan *models.SubscriptionPlan) error {
	return r.db.Create(plan).Error
}

func (r *PlanRepositoryImpl) FindByID(id string) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := r.db.First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepositoryImpl) FindActive() ([]models.SubscriptionPlan, error) {
	var plans []models.SubscriptionPlan
	err := r.db.Where("is_active = ?", true).
		Order("display_order ASC, price ASC").
		Find(&plans).Error
	return plans, err
}

func (r *PlanRepositoryImpl) Update(plan *models.SubscriptionPlan) error {
	result := r.db.Save(plan)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *PlanRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.SubscriptionPlan{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
