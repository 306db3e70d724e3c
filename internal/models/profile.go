package models

// Profile is the synthetic user at the root of every aggregate.
type Profile struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Gender        string `json:"gender"`
	PictureURL    string `json:"profilePicture"`
	Age           int    `json:"age"`
	DateOfBirth   string `json:"dateOfBirth"`
	City          string `json:"city"`
	Country       string `json:"country"`
	StreetAddress string `json:"fullAddress"`
}
