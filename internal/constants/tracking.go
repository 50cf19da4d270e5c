package constants

const (
	// ConquestPoints is awarded for every resisted craving.
	ConquestPoints = 10

	DefaultCigarettesPerPack = 20
	DefaultCravingStrength   = 3
	MinCravingStrength       = 1
	MaxCravingStrength       = 5

	// RollingWindowDays is the length of the statistics series.
	RollingWindowDays = 30
	// TopLocations caps the location breakdown.
	TopLocations = 5

	// UnspecifiedLocation groups slip-ups logged without a location.
	UnspecifiedLocation = "Not specified"

	DefaultCurrency = "$"
	DefaultTimezone = "Local"
)

// Locations is the fixed vocabulary offered when logging a slip-up.
var Locations = []string{
	"At Home",
	"At Work",
	"In Car",
	"With Coffee",
	"After Meal",
	"During Break",
	"Social Event",
	"During Stress",
	"Other",
}

// SlipUpMessage is shown right after a slip-up is logged.
const SlipUpMessage = "The journey continues. Every moment is a new chance to succeed. " +
	"Focus on the next smoke-free hour. You've got this!"
