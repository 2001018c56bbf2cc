package notify

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

// MenuMessage renders the daily menu broadcast sent to customers.
func MenuMessage(menu *domain.Menu, orderURL string) string {
	var b strings.Builder
	b.WriteString("🍳 *Ms Kitchen - Daily Menu*\n")
	fmt.Fprintf(&b, "📅 Date: %s\n", menu.Date.Format("2006-01-02"))
	fmt.Fprintf(&b, "🚚 Delivery: %s - %s\n\n", menu.DeliveryWindowStart, menu.DeliveryWindowEnd)
	b.WriteString("*Menu Items:*\n\n")
	for i, item := range menu.Items {
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, item.Name)
		fmt.Fprintf(&b, "   💰 ₹%s\n", item.Price.StringFixed(2))
		fmt.Fprintf(&b, "   📦 Available: %d plates\n\n", item.QuantityAvailable)
	}
	b.WriteString("💳 *Payment:*\n")
	fmt.Fprintf(&b, "UPI: %s\n\n", menu.UPIPhoneNumber)
	fmt.Fprintf(&b, "📱 *Order Now:* %s/order/%d\n", orderURL, menu.ID)
	return b.String()
}

// OrderConfirmation renders the operator notification for a freshly
// placed order.
func OrderConfirmation(order *domain.Order) string {
	summary := make([]string, 0, len(order.Items))
	for _, line := range order.Items {
		summary = append(summary, fmt.Sprintf("%s x%d", line.ItemName, line.Quantity))
	}
	name := order.CustomerName
	if name == "" {
		name = "N/A"
	}
	return fmt.Sprintf("✅ *New Order Received*\n\n"+
		"Order ID: #%d\n"+
		"Customer: %s\n"+
		"WhatsApp: %s\n"+
		"Address: %s\n"+
		"Order Value: ₹%s\n"+
		"Items: %s\n"+
		"Time: %s",
		order.ID, name, order.CustomerWhatsApp, order.CustomerAddress,
		order.OrderValue.StringFixed(2), strings.Join(summary, ", "),
		order.CreatedAt.Format("02/01/2006, 3:04:05 pm"))
}

// PendingPaymentsSummary renders the operator report header for a day's
// unpaid orders.
func PendingPaymentsSummary(date string, payments []domain.PendingPayment) string {
	if len(payments) == 0 {
		return "✅ *Payment Report*\n\nAll payments received for today! 🎉"
	}
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.OrderValue)
	}
	var b strings.Builder
	b.WriteString("⚠️ *Pending Payments Report*\n\n")
	fmt.Fprintf(&b, "Date: %s\n", date)
	fmt.Fprintf(&b, "Total Pending: %d orders\n", len(payments))
	fmt.Fprintf(&b, "Total Amount: ₹%s\n\n", total.StringFixed(2))
	b.WriteString("Details will be sent separately.")
	return b.String()
}

// PendingPaymentDetail renders one order's reminder, meant to be
// forwarded to the customer.
func PendingPaymentDetail(p domain.PendingPayment) string {
	return fmt.Sprintf("💳 *Pending Payment*\n\n"+
		"Date: %s\n"+
		"Order ID: #%d\n"+
		"Customer: %s\n"+
		"Address: %s\n"+
		"Items: %s\n"+
		"Amount: ₹%s\n\n"+
		"Please forward this message to the customer.",
		p.MenuDate, p.OrderID, p.CustomerWhatsApp, p.CustomerAddress,
		p.OrderItems, p.OrderValue.StringFixed(2))
}
