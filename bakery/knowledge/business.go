package knowledge

import (
	"fmt"
	"time"
)

type BusinessInfo struct {
	Name        string `json:"name"`
	Established int    `json:"established"`
	Tagline     string `json:"tagline"`
	Location    string `json:"location"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	WhatsApp    string `json:"whatsapp"`
	Email       string `json:"email"`
	MapsLink    string `json:"maps_link"`
	Hours       string `json:"hours"`
	About       string `json:"about"`
}

const about = `It all began in 1986, nestled in the heart of Thamel,
when Pumpernickel Bakery first opened its doors.
What started as a small, family-owned bakery has grown
into a beloved institution, cherished by locals and
travelers alike. For nearly four decades, we've poured our
heart into every loaf of bread, every slice of cake, and
every cup of coffee, staying true to the simple joy
of baking from scratch.`

var business = BusinessInfo{
	Name:        "Pumpernickel Bakery",
	Established: 1986,
	Tagline:     "Freshly Made, Classic Taste",
	Location:    "Thamel, Kathmandu",
	Address:     "Thamel, Kathmandu, Nepal",
	Phone:       "+977 9826045931",
	WhatsApp:    "http://wa.me/9779826045931",
	Email:       "customer.service@pumpernickel.com.np",
	MapsLink:    "https://maps.app.goo.gl/iUnUcJW7ZMGeHd3P8",
	Hours:       "6:30 AM - 9:00 PM (Open all day)",
	About:       about,
}

// Business returns the bakery's profile.
func Business() BusinessInfo {
	return business
}

// FormatPrice renders a price in Nepalese Rupees with thousands separators,
// e.g. FormatPrice(3250) == "Rs. 3,250".
func FormatPrice(price int) string {
	if price < 0 {
		return "-" + FormatPrice(-price)
	}
	if price < 1000 {
		return fmt.Sprintf("Rs. %d", price)
	}
	s := fmt.Sprintf("%d", price)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return "Rs. " + string(out)
}

// IsOpen reports whether the bakery is open at the given instant. Doors open
// at 06:30 and close at 21:00, every day.
func IsOpen(now time.Time) bool {
	minutes := now.Hour()*60 + now.Minute()
	return minutes >= 6*60+30 && minutes <= 21*60
}

// ContactOptions describes every way to reach the bakery.
type ContactOptions struct {
	Phone    ContactMethod `json:"phone"`
	WhatsApp ContactMethod `json:"whatsapp"`
	Email    ContactMethod `json:"email"`
	Visit    VisitInfo     `json:"visit"`
}

type ContactMethod struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}

type VisitInfo struct {
	Address  string `json:"address"`
	MapsLink string `json:"maps_link"`
	Hours    string `json:"hours"`
}

// Contact returns all available contact methods.
func Contact() ContactOptions {
	return ContactOptions{
		Phone: ContactMethod{
			Value:       business.Phone,
			Description: "Call for orders and inquiries",
		},
		WhatsApp: ContactMethod{
			Value:       business.WhatsApp,
			Description: "Chat with us on WhatsApp for quick orders",
		},
		Email: ContactMethod{
			Value:       business.Email,
			Description: "Email us for general inquiries",
		},
		Visit: VisitInfo{
			Address:  business.Address,
			MapsLink: business.MapsLink,
			Hours:    business.Hours,
		},
	}
}
