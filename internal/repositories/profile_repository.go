package repositories

import (
	"errors"

	"influmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

type ProfileRepository interface {
	Create(profile *models.InfluencerProfile) error
	FindByID(id string) (*models.InfluencerProfile, error)
	FindByUserID(userID string) (*models.InfluencerProfile, error)
	Update(profile *models.InfluencerProfile) error
	FindAll(limit, offset int) ([]models.InfluencerProfile, error)
	IncrementCampaignsCompleted(userID string) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(profile *models.InfluencerProfile) error {
	var existing models.InfluencerProfile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByID(id string) (*models.InfluencerProfile, error) {
	var profile models.InfluencerProfile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.InfluencerProfile, error) {
	var profile models.InfluencerProfile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Update(profile *models.InfluencerProfile) error {
	result := r.db.Save(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) FindAll(limit, offset int) ([]models.InfluencerProfile, error) {
	var profiles []models.InfluencerProfile
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) IncrementCampaignsCompleted(userID string) error {
	return r.db.Model(&models.InfluencerProfile{}).
		Where("user_id = ?", userID).
		UpdateColumn("total_campaigns_completed", gorm.Expr("total_campaigns_completed + 1")).Error
}
