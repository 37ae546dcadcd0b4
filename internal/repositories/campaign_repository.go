package repositories

import (
	"errors"

	"influmatch_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCampaignNotFound = errors.New("campaign not found")

type CampaignRepository interface {
	Create(campaign *models.Campaign) error
	FindByID(id string) (*models.Campaign, error)
	FindByBrand(brandID string, limit, offset int) ([]models.Campaign, error)
	FindByInfluencer(influencerID string, limit, offset int) ([]models.Campaign, error)

	// Transition loads the campaign under a row lock, applies mutate and
	// saves the result, all in one transaction. Concurrent transitions on
	// the same campaign serialize here; an error from mutate rolls back.
	Transition(id string, mutate func(campaign *models.Campaign) error) (*models.Campaign, error)
}

type CampaignRepositoryImpl struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &CampaignRepositoryImpl{db: db}
}

func (r *CampaignRepositoryImpl) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

func (r *CampaignRepositoryImpl) FindByID(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.First(&campaign, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *CampaignRepositoryImpl) FindByBrand(brandID string, limit, offset int) ([]models.Campaign, error) {
	return r.findByParty("brand_id", brandID, limit, offset)
}

func (r *CampaignRepositoryImpl) FindByInfluencer(influencerID string, limit, offset int) ([]models.Campaign, error) {
	return r.findByParty("influencer_id", influencerID, limit, offset)
}

func (r *CampaignRepositoryImpl) findByParty(column, id string, limit, offset int) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	err := r.db.Where(column+" = ?", id).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&campaigns).Error
	return campaigns, err
}

func (r *CampaignRepositoryImpl) Transition(id string, mutate func(campaign *models.Campaign) error) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&campaign, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCampaignNotFound
			}
			return err
		}

		if err := mutate(&campaign); err != nil {
			return err
		}

		return tx.Save(&campaign).Error
	})
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}
