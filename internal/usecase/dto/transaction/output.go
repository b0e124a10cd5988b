package transactiondto

type CreateTransactionOutput struct {
	OrderID     string
	SnapToken   string
	RedirectURL string
}
