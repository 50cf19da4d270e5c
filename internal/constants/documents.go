package constants

// Document keys. Each key holds one whole JSON document and is replaced on every write.
const (
	KeyProfile      = "profile"
	KeySlipUps      = "slip_ups"
	KeyConquests    = "conquests"
	KeyQuitPoints   = "quit_points"
	KeyAchievements = "achievements"
	KeyDarkMode     = "dark_mode"
)

// DocumentKeys lists every persisted key. Reset clears all of them.
var DocumentKeys = []string{
	KeyProfile,
	KeySlipUps,
	KeyConquests,
	KeyQuitPoints,
	KeyAchievements,
	KeyDarkMode,
}
