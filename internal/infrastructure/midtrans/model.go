package midtrans

type snapChargeRequest struct {
	TransactionDetails transactionDetails `json:"transaction_details"`
	CustomerDetails    customerDetails    `json:"customer_details"`
	ItemDetails        []itemDetail       `json:"item_details"`
	CreditCard         creditCard         `json:"credit_card"`
	Callbacks          *callbacks         `json:"callbacks,omitempty"`
}

type transactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

type customerDetails struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

type itemDetail struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

type creditCard struct {
	Secure bool `json:"secure"`
}

type callbacks struct {
	Finish string `json:"finish,omitempty"`
}

type snapChargeResponse struct {
	Token         string   `json:"token"`
	RedirectURL   string   `json:"redirect_url"`
	ErrorMessages []string `json:"error_messages"`
}

type transactionStatusResponse struct {
	OrderID           string     `json:"order_id"`
	StatusCode        string     `json:"status_code"`
	StatusMessage     string     `json:"status_message"`
	GrossAmount       string     `json:"gross_amount"`
	TransactionStatus string     `json:"transaction_status"`
	FraudStatus       string     `json:"fraud_status"`
	PaymentType       string     `json:"payment_type"`
	TransactionTime   string     `json:"transaction_time"`
	SignatureKey      string     `json:"signature_key"`
	VANumbers         []vaNumber `json:"va_numbers"`
	BillKey           string     `json:"bill_key"`
}

type vaNumber struct {
	Bank     string `json:"bank"`
	VANumber string `json:"va_number"`
}

type errorResponse struct {
	StatusCode    string   `json:"status_code"`
	StatusMessage string   `json:"status_message"`
	ErrorMessages []string `json:"error_messages"`
}
