package service

import (
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

type UPIQRGenerator interface {
	Generate(upiNumber string, amount decimal.Decimal, orderID int) ([]byte, error)
}

// DefaultUPIQRGenerator encodes a upi://pay deep link so any UPI app
// can scan the order's payment straight from the QR.
type DefaultUPIQRGenerator struct {
	PayeeName string
}

func (g DefaultUPIQRGenerator) Generate(upiNumber string, amount decimal.Decimal, orderID int) ([]byte, error) {
	values := url.Values{}
	values.Set("pa", upiNumber)
	values.Set("pn", g.PayeeName)
	values.Set("am", amount.StringFixed(2))
	values.Set("cu", "INR")
	values.Set("tn", fmt.Sprintf("Order #%d", orderID))
	return qrcode.Encode("upi://pay?"+values.Encode(), qrcode.Medium, 256)
}
