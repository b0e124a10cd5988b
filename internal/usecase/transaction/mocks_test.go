package usecase

import (
	"context"
	"fmt"

	"github.com/fundunity/donation-service/internal/domain"
)

type MockTransactionRepository struct {
	Transactions map[string]*domain.Transaction

	CreateCalls   int
	UpdatedOrders []string
	StatusQueries []domain.TransactionStatus

	CreateErr error
	GetErr    error
	UpdateErr error
	ListErr   error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[string]*domain.Transaction),
	}
}

func (m *MockTransactionRepository) CreateTransaction(transaction *domain.Transaction) error {
	m.CreateCalls++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	copied := *transaction
	m.Transactions[transaction.OrderID] = &copied
	return nil
}

func (m *MockTransactionRepository) GetTransactionByOrderID(orderID string) (*domain.Transaction, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	transaction, ok := m.Transactions[orderID]
	if !ok {
		return nil, fmt.Errorf("%w: order %s", domain.ErrTransactionNotFound, orderID)
	}
	copied := *transaction
	return &copied, nil
}

func (m *MockTransactionRepository) UpdateTransactionByOrderID(orderID string, patch *domain.TransactionPatch) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	transaction, ok := m.Transactions[orderID]
	if !ok {
		return fmt.Errorf("%w: order %s", domain.ErrTransactionNotFound, orderID)
	}
	m.UpdatedOrders = append(m.UpdatedOrders, orderID)
	if patch.Status != nil {
		transaction.Status = *patch.Status
	}
	if patch.PaymentType != nil {
		transaction.PaymentType = patch.PaymentType
	}
	if patch.VANumber != nil {
		transaction.VANumber = patch.VANumber
	}
	if patch.Bank != nil {
		transaction.Bank = patch.Bank
	}
	if patch.FraudStatus != nil {
		transaction.FraudStatus = patch.FraudStatus
	}
	if patch.TransactionTime != nil {
		transaction.TransactionTime = patch.TransactionTime
	}
	return nil
}

func (m *MockTransactionRepository) GetTransactionsByStatus(status domain.TransactionStatus) ([]*domain.Transaction, error) {
	m.StatusQueries = append(m.StatusQueries, status)
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var result []*domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.Status == status {
			copied := *transaction
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *MockTransactionRepository) GetAllTransactions() ([]*domain.Transaction, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var result []*domain.Transaction
	for _, transaction := range m.Transactions {
		copied := *transaction
		result = append(result, &copied)
	}
	return result, nil
}

type MockPaymentGateway struct {
	ChargeFunc func(req *domain.ChargeRequest) (*domain.ChargeSession, error)
	StatusFunc func(orderID string) (*domain.GatewayReport, error)

	ChargeCalls []*domain.ChargeRequest
	StatusCalls []string
}

func (m *MockPaymentGateway) CreateCharge(_ context.Context, req *domain.ChargeRequest) (*domain.ChargeSession, error) {
	m.ChargeCalls = append(m.ChargeCalls, req)
	if m.ChargeFunc != nil {
		return m.ChargeFunc(req)
	}
	return &domain.ChargeSession{Token: "snap-token", RedirectURL: "https://pay.example/redirect"}, nil
}

func (m *MockPaymentGateway) GetTransactionStatus(_ context.Context, orderID string) (*domain.GatewayReport, error) {
	m.StatusCalls = append(m.StatusCalls, orderID)
	if m.StatusFunc != nil {
		return m.StatusFunc(orderID)
	}
	return &domain.GatewayReport{OrderID: orderID, TransactionStatus: "pending"}, nil
}

// MockVerifier accepts every signature except the ones listed in Reject.
type MockVerifier struct {
	Reject map[string]bool
}

func (m *MockVerifier) Verify(_, _, _, signatureKey string) bool {
	return !m.Reject[signatureKey]
}

type MockEventPublisher struct {
	Events     []domain.TransactionEvent
	PublishErr error
}

func (m *MockEventPublisher) PublishTransactionEvent(event domain.TransactionEvent) error {
	m.Events = append(m.Events, event)
	return m.PublishErr
}

func newTestUsecase(repo *MockTransactionRepository, gateway *MockPaymentGateway) (*DefaultTransactionUsecase, *MockEventPublisher) {
	publisher := &MockEventPublisher{}
	uc := NewDefaultTransactionUsecase(
		repo,
		gateway,
		&MockVerifier{Reject: map[string]bool{"wrong-signature": true}},
		publisher,
		nil,
		ChargeOptions{
			NotificationURL: "https://donations.example/api/v1/content/transaction/notification",
			FinishURL:       "https://donations.example/thankyou",
		},
		0,
	)
	return uc, publisher
}
