package repositories

import (
	"errors"

	"influmatch_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByID(id string) (*models.Payment, error)
	FindByBrand(brandID string, limit, offset int) ([]models.Payment, error)
	FindByInfluencer(influencerID string, limit, offset int) ([]models.Payment, error)
	FindByCampaign(campaignID string) ([]models.Payment, error)

	// Release locks the payment row, loads the campaign's current status and
	// applies mutate. The campaign status is read inside the same
	// transaction so a release decision never races a campaign transition.
	Release(id string, mutate func(payment *models.Payment, campaignStatus models.CampaignStatus) error) (*models.Payment, error)
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) FindByBrand(brandID string, limit, offset int) ([]models.Payment, error) {
	return r.findByParty("brand_id", brandID, limit, offset)
}

func (r *PaymentRepositoryImpl) FindByInfluencer(influencerID string, limit, offset int) ([]models.Payment, error) {
	return r.findByParty("influencer_id", influencerID, limit, offset)
}

func (r *PaymentRepositoryImpl) findByParty(column, id string, limit, offset int) ([]models.Payment, error) {
	var payments []models.Payment
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	err := r.db.Where(column+" = ?", id).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) FindByCampaign(campaignID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("campaign_id = ?", campaignID).Order("created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepositoryImpl) Release(id string, mutate func(payment *models.Payment, campaignStatus models.CampaignStatus) error) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}

		var campaign models.Campaign
		if err := tx.Select("status").First(&campaign, "id = ?", payment.CampaignID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCampaignNotFound
			}
			return err
		}

		if err := mutate(&payment, campaign.Status); err != nil {
			return err
		}

		return tx.Save(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
