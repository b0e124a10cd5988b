package domain

// PaymentChannel classifies the gateway's free-form payment_type strings
// into the variants the channel-field derivation branches on.
type PaymentChannel int

const (
	ChannelUnknown PaymentChannel = iota
	ChannelBankTransfer
	ChannelEChannel
	ChannelWalletQR
)

func ChannelOf(paymentType string) PaymentChannel {
	switch paymentType {
	case "bank_transfer":
		return ChannelBankTransfer
	case "echannel":
		return ChannelEChannel
	case "gopay", "qris":
		return ChannelWalletQR
	default:
		return ChannelUnknown
	}
}
