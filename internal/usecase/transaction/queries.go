package usecase

import "github.com/fundunity/donation-service/internal/domain"

func (uc *DefaultTransactionUsecase) GetTransactions() ([]*domain.Transaction, error) {
	return uc.TransactionRepo.GetAllTransactions()
}
