package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type SubscriptionPlan struct {
	BaseModel
	Name          string          `gorm:"uniqueIndex;not null"`
	Description   string
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	BillingPeriod string          `gorm:"default:'monthly'"` // "monthly", "yearly"
	Features      datatypes.JSON  `gorm:"type:jsonb"`
	IsFeatured    bool            `gorm:"default:false"`
	IsActive      bool            `gorm:"default:true"`
	DisplayOrder  int             `gorm:"default:0"`
}
