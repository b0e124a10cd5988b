package transactiondto

type CreateTransactionInput struct {
	DonorName  string
	DonorEmail string
	Amount     int64
	Notes      string
}

// NotificationInput is the webhook payload after the delivery layer has
// parsed it. String fields are carried as the gateway sent them; the
// signature is recomputed over the raw gross amount after normalization.
type NotificationInput struct {
	OrderID           string
	StatusCode        string
	GrossAmount       string
	SignatureKey      string
	TransactionStatus string
	FraudStatus       string
	PaymentType       string
	TransactionTime   string
	VANumbers         []VANumberInput
	BillKey           string
}

type VANumberInput struct {
	Bank     string
	VANumber string
}
