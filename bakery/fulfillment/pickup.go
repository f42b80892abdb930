package fulfillment

import (
	"fmt"
	"strings"

	"github.com/pumpernickelhq/bakery-assistant/bakery/knowledge"
	"github.com/pumpernickelhq/bakery-assistant/bakery/pricing"
)

// Reminder is a pickup notification for the customer, with the contact
// details they need to find the shop.
type Reminder struct {
	Message        string             `json:"reminder_message"`
	PickupLocation string             `json:"pickup_location"`
	ContactInfo    knowledge.Contacts `json:"contact_info"`
	MapsLink       string             `json:"maps_link"`
}

// PickupReminder prices the order and builds the reminder message sent to
// the customer. An empty pickupTime falls back to the business hours.
func PickupReminder(selections []pricing.Selection, pickupTime string) (Reminder, error) {
	total, err := pricing.OrderTotal(selections)
	if err != nil {
		return Reminder{}, err
	}

	info := knowledge.Business()
	if pickupTime == "" {
		pickupTime = "during business hours (6:30 AM - 9:00 PM)"
	}

	var b strings.Builder
	b.WriteString("🔔 *Pickup Reminder - Pumpernickel Bakery*\n\n")
	b.WriteString("Your order is ready for pickup!\n\n")
	b.WriteString("*Order Summary:*\n")
	for _, item := range total.Items {
		fmt.Fprintf(&b, "• %s (%s) x%d\n", item.Product, item.Size, item.Quantity)
	}
	fmt.Fprintf(&b, "\n💰 Total: %s\n\n", total.Total)
	fmt.Fprintf(&b, "📍 Pickup Location: %s\n", info.Address)
	fmt.Fprintf(&b, "🕒 Pickup Time: %s\n", pickupTime)
	fmt.Fprintf(&b, "📞 Contact: %s\n\n", info.Phone)
	b.WriteString("Thank you for choosing Pumpernickel Bakery! 🥧")

	return Reminder{
		Message:        b.String(),
		PickupLocation: info.Address,
		ContactInfo: knowledge.Contacts{
			Phone:    info.Phone,
			WhatsApp: info.WhatsApp,
		},
		MapsLink: info.MapsLink,
	}, nil
}
