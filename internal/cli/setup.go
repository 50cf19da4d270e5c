package cli

import (
	"errors"
	"strings"

	"github.com/julianstephens/smokefree/internal/config"
	"github.com/julianstephens/smokefree/internal/constants"
	apperrors "github.com/julianstephens/smokefree/internal/errors"
	"github.com/julianstephens/smokefree/internal/keyring"
	"github.com/julianstephens/smokefree/internal/logger"
	"github.com/julianstephens/smokefree/internal/storage"
	"github.com/julianstephens/smokefree/internal/storage/postgres"
	"github.com/julianstephens/smokefree/internal/tracker"
	"github.com/julianstephens/smokefree/internal/utils"
)

// ErrCredentialsInConfig rejects passwords in the config file or --db flag.
var ErrCredentialsInConfig = apperrors.WithHint(
	errors.New("PostgreSQL connection strings with embedded credentials are not allowed here"),
	"store it with 'smokefree keyring set' or export "+keyring.ConnectionEnvVar+", or use a .pgpass file",
)

func isPostgresDSN(s string) bool {
	return postgres.IsConnString(s) || strings.Contains(s, "host=")
}

// OpenStore builds the document store selected by cfg. The store is not
// loaded yet.
func OpenStore(cfg config.Config) (*storage.DocumentStore, error) {
	switch cfg.Storage.Backend {
	case constants.BackendPostgres:
		configured := cfg.Storage.Path
		if !isPostgresDSN(configured) {
			configured = ""
		}
		if configured != "" && storage.HasEmbeddedCredentials(configured) {
			return nil, ErrCredentialsInConfig
		}
		connStr, source, err := keyring.ResolveConnectionString(configured)
		if err != nil {
			return nil, err
		}
		logger.Debug("Using PostgreSQL connection string", "source", source)
		return storage.NewPostgresStore(connStr), nil

	case constants.BackendJSON:
		path := cfg.Storage.Path
		if path == "" || path == constants.DefaultDBPath {
			path = constants.DefaultJSONPath
		}
		return storage.NewJSONStore(utils.ExpandPath(path)), nil

	default:
		path := cfg.Storage.Path
		if path == "" {
			path = constants.DefaultDBPath
		}
		return storage.New(cfg.Storage.Backend, utils.ExpandPath(path))
	}
}

// ApplyDBOverride points cfg at a path or connection string given on the
// command line. A connection string switches the backend to postgres.
func ApplyDBOverride(cfg *config.Config, db string) {
	if db == "" {
		return
	}
	cfg.Storage.Path = db
	switch {
	case isPostgresDSN(db):
		cfg.Storage.Backend = constants.BackendPostgres
	case strings.HasSuffix(db, ".json"):
		cfg.Storage.Backend = constants.BackendJSON
	case cfg.Storage.Backend == constants.BackendPostgres:
		cfg.Storage.Backend = constants.BackendSQLite
	}
}

// NewContext binds the configuration. The store is opened on first use so
// commands that never touch it (keyring, config, notify) work before a
// connection string exists.
func NewContext(cfg config.Config, configPath string) *Context {
	return &Context{
		Config:     cfg,
		ConfigPath: configPath,
	}
}

// Open builds the store and tracker from the configuration if that has not
// happened yet. Contexts built with a Store already set are left alone.
func (c *Context) Open() error {
	if c.Store != nil {
		return nil
	}
	store, err := OpenStore(c.Config)
	if err != nil {
		return err
	}
	c.Store = store

	opts := []tracker.Option{
		tracker.WithLocation(c.Config.Location()),
		tracker.WithNotifier(c.Notifier()),
	}
	if _, err := c.BackupManager(); err == nil {
		opts = append(opts, tracker.WithBackup(func() (string, error) {
			mgr, err := c.BackupManager()
			if err != nil {
				return "", err
			}
			return mgr.CreateBackup()
		}))
	}
	c.Tracker = tracker.New(store, opts...)
	return nil
}

// Close releases the store if one was opened.
func (c *Context) Close() error {
	if c.Store == nil {
		return nil
	}
	return c.Store.Close()
}
