package repository

import (
	"errors"
	"fmt"

	"github.com/fundunity/donation-service/internal/domain"
	"github.com/fundunity/donation-service/internal/infrastructure/postgres/mappers"
	"github.com/fundunity/donation-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(transaction *domain.Transaction) error {
	transactionModel := mappers.ToGORMTransaction(transaction)
	if err := r.DB.Create(transactionModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultTransactionRepository) GetTransactionByOrderID(orderID string) (*domain.Transaction, error) {
	var transactionModel models.TransactionModel
	if err := r.DB.First(&transactionModel, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", domain.ErrTransactionNotFound, orderID)
		}
		return nil, err
	}
	return mappers.ToDomainTransaction(&transactionModel), nil
}

// UpdateTransactionByOrderID applies a merge-patch: only the patch's
// non-nil fields are written, identifying fields are never touched.
func (r *DefaultTransactionRepository) UpdateTransactionByOrderID(orderID string, patch *domain.TransactionPatch) error {
	if patch == nil || patch.Empty() {
		return nil
	}

	values := map[string]interface{}{}
	if patch.Status != nil {
		values["status"] = *patch.Status
	}
	if patch.PaymentType != nil {
		values["payment_type"] = *patch.PaymentType
	}
	if patch.VANumber != nil {
		values["va_number"] = *patch.VANumber
	}
	if patch.Bank != nil {
		values["bank"] = *patch.Bank
	}
	if patch.FraudStatus != nil {
		values["fraud_status"] = *patch.FraudStatus
	}
	if patch.TransactionTime != nil {
		values["transaction_time"] = *patch.TransactionTime
	}

	result := r.DB.Model(&models.TransactionModel{}).
		Where("order_id = ?", orderID).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: order %s", domain.ErrTransactionNotFound, orderID)
	}
	return nil
}

func (r *DefaultTransactionRepository) GetTransactionsByStatus(status domain.TransactionStatus) ([]*domain.Transaction, error) {
	var transactionModels []models.TransactionModel
	if err := r.DB.
		Where("status = ?", status).
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, len(transactionModels))
	for i, transactionModel := range transactionModels {
		transactions[i] = mappers.ToDomainTransaction(&transactionModel)
	}
	return transactions, nil
}

func (r *DefaultTransactionRepository) GetAllTransactions() ([]*domain.Transaction, error) {
	var transactionModels []models.TransactionModel
	if err := r.DB.
		Order("created_at DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, len(transactionModels))
	for i, transactionModel := range transactionModels {
		transactions[i] = mappers.ToDomainTransaction(&transactionModel)
	}
	return transactions, nil
}
