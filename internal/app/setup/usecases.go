package setup

import (
	usecase "github.com/fundunity/donation-service/internal/usecase/transaction"
)

type UseCases struct {
	TransactionUsecase usecase.TransactionUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	transactionUsecase := usecase.NewDefaultTransactionUsecase(
		deps.TransactionRepo,
		deps.Gateway,
		deps.Verifier,
		deps.EventPublisher,
		deps.TransactionMetrics,
		usecase.ChargeOptions{
			NotificationURL: deps.Config.Midtrans.NotificationURL,
			FinishURL:       deps.Config.Midtrans.FinishURL,
		},
		deps.Config.Polling.QueryDelay,
	)

	return &UseCases{
		TransactionUsecase: transactionUsecase,
	}
}
