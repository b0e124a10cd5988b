package request

// NotificationRequest mirrors the gateway's webhook body.
type NotificationRequest struct {
	OrderID           string     `json:"order_id"`
	StatusCode        string     `json:"status_code"`
	GrossAmount       string     `json:"gross_amount"`
	SignatureKey      string     `json:"signature_key"`
	TransactionStatus string     `json:"transaction_status"`
	FraudStatus       string     `json:"fraud_status"`
	PaymentType       string     `json:"payment_type"`
	TransactionTime   string     `json:"transaction_time"`
	VANumbers         []VANumber `json:"va_numbers"`
	BillKey           string     `json:"bill_key"`
}

type VANumber struct {
	Bank     string `json:"bank"`
	VANumber string `json:"va_number"`
}

// WellFormed reports whether the body carries every field the
// reconciler requires; anything less is a 400, not an acknowledgment.
func (r *NotificationRequest) WellFormed() bool {
	return r.OrderID != "" &&
		r.StatusCode != "" &&
		r.GrossAmount != "" &&
		r.SignatureKey != "" &&
		r.TransactionStatus != ""
}
