package storage

import (
	"errors"

	"github.com/julianstephens/smokefree/internal/migration"
	"github.com/julianstephens/smokefree/internal/models"
)

// ErrNotFound is returned when a document has never been written.
var ErrNotFound = errors.New("document not found")

// Documents is a keyed store of raw JSON values. Each backend implements it.
type Documents interface {
	Init() error
	Load() error
	Close() error

	// Get returns the value under key; ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
	Delete(keys ...string) error

	GetConfigPath() string
}

// Migrator is implemented by backends with a versioned schema.
type Migrator interface {
	MigrationStatus() (migration.Status, error)
}

// Provider is the typed view of the six persisted documents.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profile
	GetProfile() (models.Profile, error)
	SaveProfile(models.Profile) error

	// Event logs
	GetSlipUps() ([]models.SlipUp, error)
	SaveSlipUps([]models.SlipUp) error
	GetConquests() ([]models.Conquest, error)
	SaveConquests([]models.Conquest) error

	// Derived state
	GetQuitPoints() (int, error)
	SaveQuitPoints(int) error
	GetAchievements() ([]models.Achievement, error)
	SaveAchievements([]models.Achievement) error

	// Preferences
	GetDarkMode() (bool, error)
	SaveDarkMode(bool) error

	// Reset removes every document.
	Reset() error

	// Utils
	Backend() string
	GetConfigPath() string
}
