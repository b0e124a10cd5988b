package background

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fundunity/donation-service/internal/domain"
	usecase "github.com/fundunity/donation-service/internal/usecase/transaction"
)

type BackgroundTasks struct {
	TransactionUsecase usecase.TransactionUsecase
	PollInterval       time.Duration
}

func NewBackgroundTasks(transactionUC usecase.TransactionUsecase, pollInterval time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		TransactionUsecase: transactionUC,
		PollInterval:       pollInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startPendingStatusPoll(ctx)
}

func (bt *BackgroundTasks) startPendingStatusPoll(ctx context.Context) {
	log.Printf("Pending-transaction polling started, interval %s\n", bt.PollInterval)

	ticker := time.NewTicker(bt.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := bt.TransactionUsecase.CheckPendingTransactions(ctx)
			if errors.Is(err, domain.ErrSweepInProgress) {
				// previous sweep still running, skip this tick
				log.Println("Skipping poll tick: sweep still in progress")
				continue
			}
			if err != nil {
				log.Printf("Pending status sweep error: %v\n", err)
			}
		}
	}
}
