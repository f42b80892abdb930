package fulfillment

import (
	"errors"
	"strings"
	"testing"

	"github.com/pumpernickelhq/bakery-assistant/bakery/pricing"
)

func validDetails() Details {
	return Details{
		Name:             "Asha Shrestha",
		Address:          "Thamel, Kathmandu",
		ItemOrdered:      "Triple Chocolate Cake",
		ContactNumber:    "+977 9800000000",
		DeliveryOrPickup: "delivery",
		Date:             "2026-09-05",
		Time:             "15:00",
		PaymentMethod:    "Khalti",
	}
}

func TestValidateDetailsComplete(t *testing.T) {
	t.Parallel()
	summary, problems, err := ValidateDetails(validDetails())
	if err != nil {
		t.Fatalf("ValidateDetails() error = %v (problems %v)", err, problems)
	}
	if summary.Address != "Thamel, Kathmandu" {
		t.Fatalf("address = %q", summary.Address)
	}
	if summary.PaymentLink != "https://khalti.com/" {
		t.Fatalf("payment link = %q", summary.PaymentLink)
	}
}

func TestValidateDetailsMissingFields(t *testing.T) {
	t.Parallel()
	_, problems, err := ValidateDetails(Details{DeliveryOrPickup: "delivery"})
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("error = %v, want ErrIncomplete", err)
	}
	want := []string{
		"Name is required.",
		"Item ordered is required.",
		"Contact number is required.",
		"Date is required.",
		"Time is required.",
		"Address is required for delivery.",
		"Payment method is required.",
	}
	if len(problems) != len(want) {
		t.Fatalf("problems = %v", problems)
	}
	for i := range want {
		if problems[i] != want[i] {
			t.Fatalf("problem %d = %q, want %q", i, problems[i], want[i])
		}
	}
}

func TestValidateDetailsPickupNeedsNoAddress(t *testing.T) {
	t.Parallel()
	d := validDetails()
	d.Address = ""
	d.DeliveryOrPickup = "pickup"
	summary, problems, err := ValidateDetails(d)
	if err != nil {
		t.Fatalf("ValidateDetails() error = %v (problems %v)", err, problems)
	}
	if summary.Address != "N/A" {
		t.Fatalf("pickup address = %q, want N/A", summary.Address)
	}
}

func TestValidateDetailsUnknownPaymentMethod(t *testing.T) {
	t.Parallel()
	d := validDetails()
	d.PaymentMethod = "cash"
	summary, _, err := ValidateDetails(d)
	if err != nil {
		t.Fatalf("ValidateDetails() error = %v", err)
	}
	if summary.PaymentLink != "" {
		t.Fatalf("payment link = %q, want empty", summary.PaymentLink)
	}
}

func TestPickupReminder(t *testing.T) {
	t.Parallel()
	reminder, err := PickupReminder([]pricing.Selection{
		{ProductName: "Tiramisu", Size: "5inch", Quantity: 2},
	}, "4:00 PM")
	if err != nil {
		t.Fatalf("PickupReminder() error = %v", err)
	}
	if !strings.Contains(reminder.Message, "Tiramisu (5inch) x2") {
		t.Fatalf("message missing item line: %q", reminder.Message)
	}
	// 2*1450 = 2900 + 10% = 3190
	if !strings.Contains(reminder.Message, "Total: Rs. 3,190") {
		t.Fatalf("message missing total: %q", reminder.Message)
	}
	if !strings.Contains(reminder.Message, "Pickup Time: 4:00 PM") {
		t.Fatalf("message missing pickup time: %q", reminder.Message)
	}
	if reminder.PickupLocation != "Thamel, Kathmandu, Nepal" {
		t.Fatalf("location = %q", reminder.PickupLocation)
	}
}

func TestPickupReminderDefaultsTime(t *testing.T) {
	t.Parallel()
	reminder, err := PickupReminder([]pricing.Selection{
		{ProductName: "Brownie Cake", Size: "8inch", Quantity: 1},
	}, "")
	if err != nil {
		t.Fatalf("PickupReminder() error = %v", err)
	}
	if !strings.Contains(reminder.Message, "during business hours") {
		t.Fatalf("default pickup time missing: %q", reminder.Message)
	}
}

func TestPickupReminderUnknownProduct(t *testing.T) {
	t.Parallel()
	_, err := PickupReminder([]pricing.Selection{
		{ProductName: "Croissant", Size: "8inch", Quantity: 1},
	}, "")
	if !errors.Is(err, pricing.ErrUnknownProduct) {
		t.Fatalf("error = %v, want ErrUnknownProduct", err)
	}
}

func TestScheduleDelivery(t *testing.T) {
	t.Parallel()
	event, err := ScheduleDelivery(DeliveryRequest{
		Name:          "Asha Shrestha",
		Address:       "Patan, Lalitpur",
		ContactNumber: "+977 9800000000",
		Date:          "2026-09-05",
		Time:          "15:00",
		ItemOrdered:   "Triple Chocolate Cake",
		DeliveryNotes: "Call on arrival",
	})
	if err != nil {
		t.Fatalf("ScheduleDelivery() error = %v", err)
	}
	if event.Summary != "Delivery for Asha Shrestha" {
		t.Fatalf("summary = %q", event.Summary)
	}
	if got := event.End.Sub(event.Start); got != deliveryWindow {
		t.Fatalf("window = %v", got)
	}
	if event.TimeZone != "Asia/Kathmandu" {
		t.Fatalf("time zone = %q", event.TimeZone)
	}
	if !strings.Contains(event.EventLink, "calendar.google.com") {
		t.Fatalf("event link = %q", event.EventLink)
	}
	if !strings.Contains(event.EventLink, "20260905T150000%2F20260905T160000") {
		t.Fatalf("event link dates wrong: %q", event.EventLink)
	}
}

func TestScheduleDeliveryBadSlot(t *testing.T) {
	t.Parallel()
	_, err := ScheduleDelivery(DeliveryRequest{Date: "tomorrow", Time: "soon"})
	if err == nil {
		t.Fatal("expected parse error")
	}
}
