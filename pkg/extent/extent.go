// Package extent keeps the set of live restaurants and persists it through a
// configured store. The registry is an explicit value; there is no package
// level state.
package extent

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/bistro/internal/jsonstore"
	"github.com/mesh-intelligence/bistro/internal/record"
	"github.com/mesh-intelligence/bistro/internal/sqlite"
	"github.com/mesh-intelligence/bistro/pkg/types"
)

// Store persists extent documents at a path.
type Store interface {
	Save(path string, doc *record.Document) error
	Load(path string) (*record.Document, error)
}

// Extent is the registry of restaurants. It is safe for concurrent use;
// the restaurants it returns are not.
type Extent struct {
	mu          sync.RWMutex
	config      types.Config
	store       Store
	log         logrus.FieldLogger
	restaurants []*types.Restaurant
}

// Option configures an Extent.
type Option func(*Extent)

// WithLogger sets the logger for save and load events.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Extent) { e.log = log }
}

// WithStore replaces the store chosen from the config backend.
func WithStore(s Store) Option {
	return func(e *Extent) { e.store = s }
}

// New returns an empty extent bound to the store for cfg.Backend.
func New(cfg types.Config, opts ...Option) (*Extent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Extent{config: cfg, log: logrus.StandardLogger()}
	switch cfg.Backend {
	case types.BackendJSON:
		e.store = jsonstore.New()
	case types.BackendSQLite:
		e.store = sqlite.NewStore()
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// FileName is the name of the extent file for backend.
func FileName(backend string) string {
	if backend == types.BackendSQLite {
		return "extent.db"
	}
	return "extent.json"
}

// Path is the extent file inside the configured data directory.
func (e *Extent) Path() string {
	return filepath.Join(e.config.DataDir, FileName(e.config.Backend))
}

// NewRestaurant constructs a restaurant and registers it.
func (e *Extent) NewRestaurant(name string, maxCapacity int) (*types.Restaurant, error) {
	r, err := types.NewRestaurant(name, maxCapacity)
	if err != nil {
		return nil, err
	}
	if err := e.Register(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds r to the extent. Registering the same restaurant twice has
// no effect.
func (e *Extent) Register(r *types.Restaurant) error {
	if r == nil {
		return fmt.Errorf("%w: restaurant is required", types.ErrPrecondition)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, existing := range e.restaurants {
		if existing == r {
			return nil
		}
	}
	e.restaurants = append(e.restaurants, r)
	return nil
}

// All returns the registered restaurants in registration order.
func (e *Extent) All() []*types.Restaurant {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*types.Restaurant, len(e.restaurants))
	copy(out, e.restaurants)
	return out
}

// Len returns the number of registered restaurants.
func (e *Extent) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.restaurants)
}

// Clear empties the extent.
func (e *Extent) Clear() {
	e.mu.Lock()
	e.restaurants = nil
	e.mu.Unlock()
}

// Save writes every registered restaurant to path. The document is checked
// with the same rules Load applies; when it fails them nothing is written
// and the error wraps the broken rule, such as types.ErrDuplicateKey.
func (e *Extent) Save(path string) error {
	e.mu.RLock()
	doc := encodeDocument(e.restaurants, time.Now().UTC())
	e.mu.RUnlock()

	log := e.log.WithFields(logrus.Fields{"path": path, "backend": e.config.Backend})
	if err := doc.Validate(); err != nil {
		log.WithError(err).Warn("extent save rejected")
		return fmt.Errorf("save extent: %w", err)
	}
	if err := e.store.Save(path, doc); err != nil {
		log.WithError(err).Warn("extent save failed")
		return fmt.Errorf("save extent: %w", err)
	}
	log.WithField("restaurants", len(doc.Restaurants)).Info("extent saved")
	return nil
}

// Load replaces the extent with the restaurants stored at path. The whole
// document is read and checked before the extent changes. On any failure the
// extent is left empty and the error wraps types.ErrCorruptData.
func (e *Extent) Load(path string) error {
	log := e.log.WithFields(logrus.Fields{"path": path, "backend": e.config.Backend})

	restaurants, err := e.read(path)
	if err != nil {
		e.Clear()
		log.WithError(err).Warn("extent load failed, extent cleared")
		return fmt.Errorf("%w: load extent from %s: %w", types.ErrCorruptData, path, err)
	}

	e.mu.Lock()
	e.restaurants = restaurants
	e.mu.Unlock()
	log.WithField("restaurants", len(restaurants)).Info("extent loaded")
	return nil
}

func (e *Extent) read(path string) ([]*types.Restaurant, error) {
	doc, err := e.store.Load(path)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return decodeDocument(doc)
}
