package models

import (
	"time"

	"github.com/fundunity/donation-service/internal/domain"
)

type TransactionModel struct {
	ID              string                   `gorm:"primaryKey;type:uuid"`
	OrderID         string                   `gorm:"uniqueIndex;not null"`
	DonorName       string                   `gorm:"not null"`
	DonorEmail      string                   `gorm:"not null"`
	Amount          int64                    `gorm:"not null"`
	Notes           string                   `gorm:"not null"`
	Status          domain.TransactionStatus `gorm:"index:idx_transactions_status;not null"`
	PaymentType     *string
	VANumber        *string
	Bank            *string
	FraudStatus     *string
	TransactionTime *time.Time
	CreatedAt       time.Time `gorm:"index:idx_transactions_created_at"`
	UpdatedAt       time.Time
}
