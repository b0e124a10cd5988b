package mappers

import (
	"github.com/fundunity/donation-service/internal/domain"
	"github.com/fundunity/donation-service/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:              model.ID,
		OrderID:         model.OrderID,
		DonorName:       model.DonorName,
		DonorEmail:      model.DonorEmail,
		Amount:          model.Amount,
		Notes:           model.Notes,
		Status:          model.Status,
		PaymentType:     model.PaymentType,
		VANumber:        model.VANumber,
		Bank:            model.Bank,
		FraudStatus:     model.FraudStatus,
		TransactionTime: model.TransactionTime,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMTransaction(transaction *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:              transaction.ID,
		OrderID:         transaction.OrderID,
		DonorName:       transaction.DonorName,
		DonorEmail:      transaction.DonorEmail,
		Amount:          transaction.Amount,
		Notes:           transaction.Notes,
		Status:          transaction.Status,
		PaymentType:     transaction.PaymentType,
		VANumber:        transaction.VANumber,
		Bank:            transaction.Bank,
		FraudStatus:     transaction.FraudStatus,
		TransactionTime: transaction.TransactionTime,
		CreatedAt:       transaction.CreatedAt,
		UpdatedAt:       transaction.UpdatedAt,
	}
}
