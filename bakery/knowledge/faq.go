package knowledge

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQ struct {
	Entries        []FAQEntry `json:"faqs"`
	ContactForMore Contacts   `json:"contact_for_more"`
}

type Contacts struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

var faqEntries = []FAQEntry{
	{
		Question: "What are your operating hours?",
		Answer:   "We're open every day from 6:30 AM to 9:00 PM.",
	},
	{
		Question: "Do you take custom orders?",
		Answer:   "Yes! Please contact us at least 24 hours in advance for custom orders.",
	},
	{
		Question: "Do you deliver?",
		Answer:   "We offer both pickup and delivery. For delivery, we charge 100 NPR per delivery. For pickup, we don't charge anything.",
	},
	{
		Question: "What payment methods do you accept?",
		Answer:   "We accept cash on delivery, eSewa, Khalti, Stripe and major credit/debit cards.",
	},
	{
		Question: "Can I see allergen information?",
		Answer:   "Yes! All our products include detailed allergen information. Common allergens include wheat, milk, eggs, and nuts.",
	},
	{
		Question: "How far in advance should I order?",
		Answer:   "For regular items, we offer same-day orders/delivery. For custom cakes or large orders, please give us 24-48 hours notice.",
	},
	{
		Question: "Do you offer sugar-free or vegan options?",
		Answer:   "We currently focus on our classic recipes. Please tell us about your special dietary requirements.",
	},
	{
		Question: "Can I modify cake designs?",
		Answer:   "Yes! We can customize decorations and messages on our cakes. Please tell us your requirements.",
	},
}

// FrequentlyAsked returns the FAQ together with contact details for
// questions it does not cover.
func FrequentlyAsked() FAQ {
	entries := make([]FAQEntry, len(faqEntries))
	copy(entries, faqEntries)
	return FAQ{
		Entries: entries,
		ContactForMore: Contacts{
			Phone:    business.Phone,
			WhatsApp: business.WhatsApp,
			Email:    business.Email,
		},
	}
}
