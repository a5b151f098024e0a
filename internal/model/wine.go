// Package model defines the core domain types shared across the application.
package model

// Wine represents a single catalog entry. Records are immutable after load.
type Wine struct {
	Name        string
	Winery      string
	Varietal    string
	Vintage     string
	Region      string
	Country     string
	Type        string
	Description string
	ImageURL    string
	ID          int
	Rank        int
	Score       int
	Price       float64
}

// Placeholder values applied when the source record is missing a field.
const (
	UnknownName        = "Unnamed Wine"
	UnknownWinery      = "Unknown Winery"
	UnknownRegion      = "Unknown Region"
	UnknownCountry     = "Unknown Country"
	UnknownValue       = "N/A"
	UnknownDescription = "No description available."
)
