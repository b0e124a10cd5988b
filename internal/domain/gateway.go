package domain

import "context"

// ChargeRequest carries everything the gateway needs to open a payment
// session for one donation. GrossAmount is in the smallest currency unit.
type ChargeRequest struct {
	OrderID         string
	GrossAmount     int64
	DonorName       string
	DonorEmail      string
	ItemName        string
	NotificationURL string
	FinishURL       string
}

type ChargeSession struct {
	Token       string
	RedirectURL string
}

// GatewayReport is the gateway's view of a transaction, delivered either
// by webhook notification or by a status lookup. Both channels use the
// same vocabulary.
type GatewayReport struct {
	OrderID           string
	StatusCode        string
	GrossAmount       string
	TransactionStatus string
	FraudStatus       string
	PaymentType       string
	TransactionTime   string
	VANumbers         []VirtualAccount
	BillKey           string
}

type VirtualAccount struct {
	Bank     string
	VANumber string
}

type PaymentGateway interface {
	CreateCharge(ctx context.Context, req *ChargeRequest) (*ChargeSession, error)
	GetTransactionStatus(ctx context.Context, orderID string) (*GatewayReport, error)
}

// NotificationVerifier proves an inbound notification originates from the
// gateway before any state is mutated.
type NotificationVerifier interface {
	Verify(orderID, statusCode, grossAmount, signatureKey string) bool
}
