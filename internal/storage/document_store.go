package storage

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/migration"
	"github.com/julianstephens/smokefree/internal/models"
	"github.com/julianstephens/smokefree/internal/storage/postgres"
	"github.com/julianstephens/smokefree/internal/storage/sqlite"
)

// DocumentStore implements Provider on top of any Documents backend.
type DocumentStore struct {
	docs    Documents
	backend string
}

func newDocumentStore(docs Documents, backend string) *DocumentStore {
	return &DocumentStore{docs: docs, backend: backend}
}

// NewSQLiteStore creates a store backed by a SQLite database file.
func NewSQLiteStore(path string) *DocumentStore {
	return newDocumentStore(sqlite.NewStore(path), constants.BackendSQLite)
}

// NewPostgresStore creates a store backed by PostgreSQL.
func NewPostgresStore(connStr string) *DocumentStore {
	return newDocumentStore(postgres.New(connStr), constants.BackendPostgres)
}

// NewJSONStore creates a store backed by a single JSON file.
func NewJSONStore(path string) *DocumentStore {
	return newDocumentStore(newJSONDocuments(path), constants.BackendJSON)
}

// New picks a backend by name.
func New(backend, path string) (*DocumentStore, error) {
	switch backend {
	case constants.BackendSQLite, "":
		return NewSQLiteStore(path), nil
	case constants.BackendJSON:
		return NewJSONStore(path), nil
	case constants.BackendPostgres:
		return NewPostgresStore(path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string contains a password.
func HasEmbeddedCredentials(connStr string) bool {
	return postgres.HasEmbeddedCredentials(connStr)
}

// Lifecycle methods
func (s *DocumentStore) Init() error           { return s.docs.Init() }
func (s *DocumentStore) Load() error           { return s.docs.Load() }
func (s *DocumentStore) Close() error          { return s.docs.Close() }
func (s *DocumentStore) Backend() string       { return s.backend }
func (s *DocumentStore) GetConfigPath() string { return s.docs.GetConfigPath() }

// MigrationStatus reports the schema state when the backend is versioned.
func (s *DocumentStore) MigrationStatus() (migration.Status, error) {
	m, ok := s.docs.(Migrator)
	if !ok {
		return migration.Status{}, fmt.Errorf("%s backend has no schema", s.backend)
	}
	return m.MigrationStatus()
}

func getDocument[T any](docs Documents, key string) (T, error) {
	var out T
	data, ok, err := docs.Get(key)
	if err != nil {
		return out, err
	}
	if !ok {
		return out, ErrNotFound
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return out, nil
}

func putDocument(docs Documents, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	return docs.Put(key, data)
}

func (s *DocumentStore) GetProfile() (models.Profile, error) {
	return getDocument[models.Profile](s.docs, constants.KeyProfile)
}

func (s *DocumentStore) SaveProfile(p models.Profile) error {
	return putDocument(s.docs, constants.KeyProfile, p)
}

func (s *DocumentStore) GetSlipUps() ([]models.SlipUp, error) {
	return getDocument[[]models.SlipUp](s.docs, constants.KeySlipUps)
}

func (s *DocumentStore) SaveSlipUps(slipUps []models.SlipUp) error {
	if slipUps == nil {
		slipUps = []models.SlipUp{}
	}
	return putDocument(s.docs, constants.KeySlipUps, slipUps)
}

func (s *DocumentStore) GetConquests() ([]models.Conquest, error) {
	return getDocument[[]models.Conquest](s.docs, constants.KeyConquests)
}

func (s *DocumentStore) SaveConquests(conquests []models.Conquest) error {
	if conquests == nil {
		conquests = []models.Conquest{}
	}
	return putDocument(s.docs, constants.KeyConquests, conquests)
}

func (s *DocumentStore) GetQuitPoints() (int, error) {
	return getDocument[int](s.docs, constants.KeyQuitPoints)
}

func (s *DocumentStore) SaveQuitPoints(points int) error {
	return putDocument(s.docs, constants.KeyQuitPoints, points)
}

func (s *DocumentStore) GetAchievements() ([]models.Achievement, error) {
	return getDocument[[]models.Achievement](s.docs, constants.KeyAchievements)
}

func (s *DocumentStore) SaveAchievements(achievements []models.Achievement) error {
	return putDocument(s.docs, constants.KeyAchievements, achievements)
}

func (s *DocumentStore) GetDarkMode() (bool, error) {
	return getDocument[bool](s.docs, constants.KeyDarkMode)
}

func (s *DocumentStore) SaveDarkMode(dark bool) error {
	return putDocument(s.docs, constants.KeyDarkMode, dark)
}

func (s *DocumentStore) Reset() error {
	return s.docs.Delete(constants.DocumentKeys...)
}
