package models

import (
	"time"

	"github.com/julianstephens/smokefree/internal/utils"
)

// Profile holds the user's quit configuration
type Profile struct {
	QuitDate          string  `json:"quit_date"` // YYYY-MM-DD format
	DailyCigarettes   int     `json:"daily_cigarettes"`
	CostPerPack       float64 `json:"cost_per_pack"`
	CigarettesPerPack int     `json:"cigarettes_per_pack"`
	MyWhy             string  `json:"my_why"`
	SetupComplete     bool    `json:"setup_complete"`
}

// CostPerCigarette returns the price of a single cigarette, or 0 when the
// pack configuration cannot produce a finite, positive price.
func (p Profile) CostPerCigarette() float64 {
	if p.CigarettesPerPack <= 0 || p.CostPerPack <= 0 {
		return 0
	}
	return p.CostPerPack / float64(p.CigarettesPerPack)
}

// QuitDay returns local midnight of the quit date in loc.
func (p Profile) QuitDay(loc *time.Location) (time.Time, error) {
	return utils.ParseDateInLocation(p.QuitDate, loc)
}
