package payment

import (
	"fmt"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
)

// Currency is the single currency the gateway account is configured for.
const Currency = "INR"

// Order is a payment order issued by the gateway.  Amount is in minor
// currency units (paise).
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// OrderCreator is the narrow gateway surface the handlers depend on, so
// tests can substitute a fake without touching the network.
type OrderCreator interface {
	CreateOrder(amountMajorUnits float64) (Order, error)
}

// RazorpayGateway creates orders through the official Razorpay SDK.
type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway builds a gateway bound to the given API key pair.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

// CreateOrder registers a new order with the gateway.  The amount arrives in
// major currency units and is converted to paise; callers must pass whole
// major-unit values or the conversion truncates.  Receipts are locally
// generated and unique per order.
func (g *RazorpayGateway) CreateOrder(amountMajorUnits float64) (Order, error) {
	amountPaise := int64(amountMajorUnits * 100)
	receipt := "rcpt_" + uuid.NewString()
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": Currency,
		"receipt":  receipt,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return Order{}, fmt.Errorf("razorpay: create order: %w", err)
	}
	order := Order{Amount: amountPaise, Currency: Currency, Receipt: receipt}
	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	if amt, ok := body["amount"].(float64); ok {
		order.Amount = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok {
		order.Currency = cur
	}
	if rcpt, ok := body["receipt"].(string); ok {
		order.Receipt = rcpt
	}
	return order, nil
}
