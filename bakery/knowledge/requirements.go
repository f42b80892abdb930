package knowledge

// RequirementField is one piece of information the bakery needs from the
// customer before an order can be placed. Required is a string rather than
// a bool because some fields are conditionally required ("Required for
// delivery").
type RequirementField struct {
	Name        string `json:"name"`
	Required    string `json:"required"`
	Description string `json:"description"`
}

type OrderRequirements struct {
	Fields []RequirementField `json:"fields"`
	Notes  []string           `json:"notes"`
}

var orderRequirements = OrderRequirements{
	Fields: []RequirementField{
		{Name: "name", Required: "true", Description: "Customer's full name."},
		{Name: "address", Required: "Required for delivery", Description: "Delivery address. Not needed for pickup."},
		{Name: "item_ordered", Required: "true", Description: "Item(s) ordered. Try to extract from message and/or image."},
		{Name: "contact_number", Required: "true", Description: "Customer's primary contact number."},
		{Name: "alternative_number", Required: "false", Description: "Alternative contact number (optional)."},
		{Name: "delivery_or_pickup", Required: "true", Description: "Specify 'delivery' or 'pickup'."},
		{Name: "date", Required: "true", Description: "Preferred date for delivery or pickup."},
		{Name: "time", Required: "true", Description: "Preferred time for delivery or pickup."},
		{Name: "payment_method", Required: "true", Description: "Payment method: Fonepay QR, Stripe, Khalti (directs to website)."},
		{Name: "message_on_cake", Required: "false", Description: "Optional message to be written on the cake."},
	},
	Notes: []string{
		"Address is only required for delivery orders.",
		"Try to extract item ordered from customer message or image if possible.",
		"Offer both delivery and pickup options, with calendar date & time.",
		"Ask for contact number if not available.",
		"Alternative number and cake message are optional fields.",
		"Payment methods supported: Fonepay QR, Stripe, Khalti (directs to payment website).",
	},
}

// Requirements describes the information needed to place an order.
func Requirements() OrderRequirements {
	return orderRequirements
}
