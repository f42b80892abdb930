package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"

	"github.com/pumpernickelhq/bakery-assistant/bakery/fulfillment"
)

// ReceiveOrderDetailsTool validates a details submission and echoes the
// confirmed summary back with a payment link when one is known.
type ReceiveOrderDetailsTool struct{}

func NewReceiveOrderDetailsTool() *ReceiveOrderDetailsTool {
	return &ReceiveOrderDetailsTool{}
}

func (t *ReceiveOrderDetailsTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "receive_order_details",
		Description: "Receive and validate order details from the customer.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"name":               stringProp("Customer's name (required)"),
				"address":            stringProp("Delivery address (required for delivery)"),
				"item_ordered":       stringProp("Item(s) ordered"),
				"contact_number":     stringProp("Customer's contact number (required)"),
				"alternative_number": stringProp("Optional alternative contact number"),
				"delivery_or_pickup": stringProp("'delivery' or 'pickup' (required)"),
				"date":               stringProp("Preferred date for delivery or pickup (required)"),
				"time":               stringProp("Preferred time for delivery or pickup (required)"),
				"payment_method":     stringProp("Payment method: Fonepay QR, Stripe, Khalti"),
				"message_on_cake":    stringProp("Optional message to be written on the cake"),
			},
		},
	}
}

func (t *ReceiveOrderDetailsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	details := fulfillment.Details{
		Name:              stringArg(args, "name"),
		Address:           stringArg(args, "address"),
		ItemOrdered:       stringArg(args, "item_ordered"),
		ContactNumber:     stringArg(args, "contact_number"),
		AlternativeNumber: stringArg(args, "alternative_number"),
		DeliveryOrPickup:  stringArg(args, "delivery_or_pickup"),
		Date:              stringArg(args, "date"),
		Time:              stringArg(args, "time"),
		PaymentMethod:     stringArg(args, "payment_method"),
		MessageOnCake:     stringArg(args, "message_on_cake"),
	}

	summary, problems, err := fulfillment.ValidateDetails(details)
	if err != nil {
		return jsonResult(map[string]any{
			"error":   "Missing required fields.",
			"details": problems,
		})
	}
	return jsonResult(map[string]any{
		"order_summary": summary,
		"status":        "Order details received successfully. Please confirm to proceed.",
	})
}

// PickupReminderTool builds the WhatsApp-ready reminder message.
type PickupReminderTool struct{}

func NewPickupReminderTool() *PickupReminderTool {
	return &PickupReminderTool{}
}

func (t *PickupReminderTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "generate_pickup_reminder",
		Description: "Generate a pickup reminder message for customers.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"order_items": itemsProp,
				"pickup_time": stringProp("Preferred pickup time"),
			},
			Required: []string{"order_items"},
		},
	}
}

func (t *PickupReminderTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	selections, ok := itemsArg(args, "order_items")
	if !ok {
		return mcp.NewToolResultError("order_items must be a list of {product_name, size, quantity} objects"), nil
	}

	reminder, err := fulfillment.PickupReminder(selections, stringArg(args, "pickup_time"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(reminder)
}

// ScheduleDeliveryTool books the one-hour delivery window and returns a
// calendar prefill link.
type ScheduleDeliveryTool struct{}

func NewScheduleDeliveryTool() *ScheduleDeliveryTool {
	return &ScheduleDeliveryTool{}
}

func (t *ScheduleDeliveryTool) Definition() mcp.Tool {
	return mcp.Tool{
		Name:        "schedule_delivery_with_calendar",
		Description: "Schedule a delivery for an order using Google Calendar integration.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"name":           stringProp("Customer's name"),
				"address":        stringProp("Delivery address"),
				"contact_number": stringProp("Customer's contact number"),
				"date":           stringProp("Delivery date (YYYY-MM-DD)"),
				"time":           stringProp("Delivery time (HH:MM, 24-hour format)"),
				"item_ordered":   stringProp("Item(s) ordered"),
				"delivery_notes": stringProp("Optional notes for delivery"),
			},
			Required: []string{"name", "address", "contact_number", "date", "time", "item_ordered"},
		},
	}
}

func (t *ScheduleDeliveryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	deliveryReq := fulfillment.DeliveryRequest{
		Name:          stringArg(args, "name"),
		Address:       stringArg(args, "address"),
		ContactNumber: stringArg(args, "contact_number"),
		Date:          stringArg(args, "date"),
		Time:          stringArg(args, "time"),
		ItemOrdered:   stringArg(args, "item_ordered"),
		DeliveryNotes: stringArg(args, "delivery_notes"),
	}

	event, err := fulfillment.ScheduleDelivery(deliveryReq)
	if err != nil {
		log.Error().Err(err).Msg("delivery scheduling failed")
		return mcp.NewToolResultError("Failed to schedule delivery."), nil
	}
	return jsonResult(map[string]any{
		"status":        "Delivery scheduled",
		"event_link":    event.EventLink,
		"event_details": event,
	})
}
