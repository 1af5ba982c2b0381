package types

// Producer is the reference material producer with its contact details.
// Every field is optional; Name is semantically primary. Street through
// CountryCode serialize nested under the contact's location child.
type Producer struct {
	Name        string `json:"name"`
	Street      string `json:"street,omitempty"`
	StreetNo    string `json:"street_no,omitempty"`
	PostCode    string `json:"post_code,omitempty"`
	City        string `json:"city,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Fax         string `json:"fax,omitempty"`
	Email       string `json:"email,omitempty"`
}
