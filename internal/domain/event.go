package domain

type TransactionEvent struct {
	OrderID     string `json:"order_id"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
	PaymentType string `json:"payment_type,omitempty"`
}

type TransactionEventPublisher interface {
	PublishTransactionEvent(event TransactionEvent) error
}
