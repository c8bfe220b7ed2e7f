package order

import (
	"fmt"
	"net/url"
	"strings"
)

// Confirmation carries what the customer is told once an order is accepted
type Confirmation struct {
	CustomerName string
	PhoneNumber  string
	Pounds       string
	MeatType     MeatType
	Seasoning    Seasoning
	PepperLevel  PepperLevel
	RemovedItems []string
	City         string
	Location     string
	TotalJMD     int64
	PIN          string
}

// Message renders the plain-text confirmation sent to the customer
func (c Confirmation) Message() string {
	removed := ""
	if len(c.RemovedItems) > 0 {
		removed = fmt.Sprintf(" (removed: %s)", strings.Join(c.RemovedItems, ", "))
	}
	seasoning := strings.ReplaceAll(string(c.Seasoning), "_", " ")

	var b strings.Builder
	fmt.Fprintf(&b, "Thank you, %s!\n", c.CustomerName)
	fmt.Fprintf(&b, "Your order for %s lbs of %s\n", c.Pounds, c.MeatType)
	fmt.Fprintf(&b, "with %s seasoning%s\n", seasoning, removed)
	fmt.Fprintf(&b, "and pepper: %s to %s, %s was received.\n", c.PepperLevel, c.City, c.Location)
	fmt.Fprintf(&b, "Total: JMD %d\n", c.TotalJMD)
	fmt.Fprintf(&b, "PIN: %s\n", c.PIN)
	fmt.Fprintf(&b, "We'll call you shortly at %s to confirm.", c.PhoneNumber)
	return b.String()
}

// WhatsAppLink returns a wa.me deep link prefilled with the confirmation text
func (c Confirmation) WhatsAppLink() string {
	text := strings.ReplaceAll(url.QueryEscape(c.Message()), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", c.PhoneNumber, text)
}
