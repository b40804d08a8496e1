package models

// SiteAll selects every launch site.
const SiteAll = "ALL"

// Known launch sites, in dropdown order.
var KnownSites = []string{
	"CCAFS LC-40",
	"CCAFS SLC-40",
	"KSC LC-39A",
	"VAFB SLC-4E",
}

// Launch outcome classes.
const (
	ClassFailure = 0
	ClassSuccess = 1
)

// LaunchRecord is one row of the launch table.
type LaunchRecord struct {
	FlightNumber    int     `json:"flight_number,omitempty"`
	Site            string  `json:"launch_site"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	Class           int     `json:"class"` // 1 = success, 0 = failure
	BoosterVersion  string  `json:"booster_version,omitempty"`
	BoosterCategory string  `json:"booster_version_category"`
}

// PayloadRange is an inclusive payload mass window in kg.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether kg lies in [Low, High].
func (r PayloadRange) Contains(kg float64) bool {
	return kg >= r.Low && kg <= r.High
}
