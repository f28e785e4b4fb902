// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savings-tracker/backend/internal/domain/entity"
)

// ProfileModel represents the profiles table in the database.
// The monthly savings goal amount is never stored; it is derived from the
// salary and percent fields on read.
type ProfileModel struct {
	UserID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	JobTitle           string          `gorm:"type:varchar(100)"`
	MonthlySalary      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SavingsGoalPercent decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToEntity converts a ProfileModel to a domain Profile entity.
func (m *ProfileModel) ToEntity() *entity.Profile {
	return &entity.Profile{
		UserID:             m.UserID,
		JobTitle:           m.JobTitle,
		MonthlySalary:      m.MonthlySalary,
		SavingsGoalPercent: m.SavingsGoalPercent,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ProfileFromEntity creates a ProfileModel from a domain Profile entity.
func ProfileFromEntity(profile *entity.Profile) *ProfileModel {
	return &ProfileModel{
		UserID:             profile.UserID,
		JobTitle:           profile.JobTitle,
		MonthlySalary:      profile.MonthlySalary,
		SavingsGoalPercent: profile.SavingsGoalPercent,
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}
}
