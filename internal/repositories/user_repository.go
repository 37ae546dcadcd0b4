package repositories

import (
	"errors"
	"time"

	"influmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserFilter struct {
	Role       models.UserRole
	IsApproved *bool
	IsActive   *bool
	Search     string
	Page       int
	PageSize   int
}

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	FindWithFilter(criteria UserFilter) ([]models.User, int64, error)

	Approve(userID string) error
	Deactivate(userID string) error
	SetSubscriptionActive(userID string, active bool) error

	// InitTrialStart backfills trial_start_time for a brand row that has
	// none. The IS NULL guard makes concurrent backfills collapse to one
	// winner; the stored value is returned either way.
	InitTrialStart(userID string, start time.Time) (*time.Time, error)

	// ClaimTrialProfileView consumes the single free profile slot with a
	// compare-and-set on trial_profile_viewed_id IS NULL. Returns true when
	// this call claimed the slot, false when it was already taken.
	ClaimTrialProfileView(userID, profileID string) (bool, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("InfluencerProfile").First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"full_name":  user.FullName,
		"is_active":  user.IsActive,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindWithFilter(criteria UserFilter) ([]models.User, int64, error) {
	var users []models.User
	query := r.db.Model(&models.User{})

	if criteria.Role != "" {
		query = query.Where("role = ?", criteria.Role)
	}
	if criteria.IsApproved != nil {
		query = query.Where("is_approved = ?", *criteria.IsApproved)
	}
	if criteria.IsActive != nil {
		query = query.Where("is_active = ?", *criteria.IsActive)
	}
	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("email ILIKE ? OR full_name ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	if limit <= 0 {
		limit = 50
	}
	page := criteria.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

func (r *UserRepositoryImpl) Approve(userID string) error {
	return r.updateFields(userID, map[string]interface{}{"is_approved": true})
}

func (r *UserRepositoryImpl) Deactivate(userID string) error {
	return r.updateFields(userID, map[string]interface{}{"is_active": false})
}

func (r *UserRepositoryImpl) SetSubscriptionActive(userID string, active bool) error {
	return r.updateFields(userID, map[string]interface{}{"has_active_subscription": active})
}

func (r *UserRepositoryImpl) InitTrialStart(userID string, start time.Time) (*time.Time, error) {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND trial_start_time IS NULL", userID).
		Updates(map[string]interface{}{"trial_start_time": start, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, result.Error
	}

	// Re-read so a concurrent winner's value is the one reported.
	var user models.User
	if err := r.db.Select("trial_start_time").First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user.TrialStartTime, nil
}

func (r *UserRepositoryImpl) ClaimTrialProfileView(userID, profileID string) (bool, error) {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND trial_profile_viewed_id IS NULL", userID).
		Updates(map[string]interface{}{"trial_profile_viewed_id": profileID, "updated_at": time.Now()})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepositoryImpl) updateFields(userID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
