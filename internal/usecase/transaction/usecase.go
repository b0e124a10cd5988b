package usecase

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fundunity/donation-service/internal/domain"
	"github.com/fundunity/donation-service/internal/infrastructure/metrics"
	transactiondto "github.com/fundunity/donation-service/internal/usecase/dto/transaction"
)

// ReconcileOutcome is the terminal state of processing one gateway
// notification: rejected, unmatched, unchanged or updated.
type ReconcileOutcome string

const (
	OutcomeRejected  ReconcileOutcome = "rejected"
	OutcomeUnmatched ReconcileOutcome = "unmatched"
	OutcomeUnchanged ReconcileOutcome = "unchanged"
	OutcomeUpdated   ReconcileOutcome = "updated"
)

type TransactionUsecase interface {
	CreateTransaction(ctx context.Context, input *transactiondto.CreateTransactionInput) (*transactiondto.CreateTransactionOutput, error)
	HandleNotification(input *transactiondto.NotificationInput) (ReconcileOutcome, error)
	CheckPendingTransactions(ctx context.Context) error
	GetTransactions() ([]*domain.Transaction, error)
}

// ChargeOptions carries the static parts of every gateway charge request.
type ChargeOptions struct {
	NotificationURL string
	FinishURL       string
}

type DefaultTransactionUsecase struct {
	TransactionRepo domain.TransactionRepository
	Gateway         domain.PaymentGateway
	Verifier        domain.NotificationVerifier
	Publisher       domain.TransactionEventPublisher
	Metrics         *metrics.TransactionMetrics
	ChargeOptions   ChargeOptions
	QueryDelay      time.Duration

	// single-flight guard: one sweep per process at a time
	sweepRunning atomic.Bool
}

func NewDefaultTransactionUsecase(
	transactionRepo domain.TransactionRepository,
	gateway domain.PaymentGateway,
	verifier domain.NotificationVerifier,
	publisher domain.TransactionEventPublisher,
	transactionMetrics *metrics.TransactionMetrics,
	chargeOptions ChargeOptions,
	queryDelay time.Duration) *DefaultTransactionUsecase {

	return &DefaultTransactionUsecase{
		TransactionRepo: transactionRepo,
		Gateway:         gateway,
		Verifier:        verifier,
		Publisher:       publisher,
		Metrics:         transactionMetrics,
		ChargeOptions:   chargeOptions,
		QueryDelay:      queryDelay,
	}
}

func (uc *DefaultTransactionUsecase) publishStatusEvent(transaction *domain.Transaction, status domain.TransactionStatus, paymentType string) {
	if uc.Publisher == nil {
		return
	}
	event := domain.TransactionEvent{
		OrderID:     transaction.OrderID,
		Status:      string(status),
		Amount:      transaction.Amount,
		PaymentType: paymentType,
	}
	if err := uc.Publisher.PublishTransactionEvent(event); err != nil {
		// event stream is best-effort, reconciliation already committed
		slog.Error("failed to publish transaction event", "order_id", transaction.OrderID, "error", err.Error())
	}
}
