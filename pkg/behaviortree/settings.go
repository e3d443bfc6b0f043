package behaviortree

import (
	"fmt"
	"log/slog"

	"github.com/randalmurphal/behaviortree/pkg/behaviortree/config"
	"github.com/randalmurphal/behaviortree/pkg/behaviortree/history"
)

// NewTreeFromSettings creates a tree around root configured by s.
//
// The logger is filtered to s.Level(); a nil logger disables logging.
// When s selects a history driver the store is opened here, and the caller
// owns it: close it with CloseHistory when done with the tree.
//
// Extra options are applied after the ones derived from s.
func NewTreeFromSettings(root Node, s config.Settings, logger *slog.Logger, opts ...TreeOption) (*Tree, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	store, err := OpenHistory(s.History)
	if err != nil {
		return nil, err
	}

	base := []TreeOption{
		WithMetrics(s.Metrics),
		WithTracing(s.Tracing),
	}
	if logger != nil {
		base = append(base, WithLogger(slog.New(&levelHandler{level: s.Level(), next: logger.Handler()})))
	}
	if store != nil {
		base = append(base, WithHistory(store))
	}

	return NewTree(s.Name, root, append(base, opts...)...), nil
}

// OpenHistory opens the store selected by hs.
// Returns a nil store when hs.Driver is config.DriverNone.
func OpenHistory(hs config.HistorySettings) (history.Store, error) {
	switch hs.Driver {
	case config.DriverNone:
		return nil, nil
	case config.DriverMemory:
		return history.NewMemoryStore(), nil
	case config.DriverSQLite:
		store, err := history.NewSQLiteStore(hs.Path)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, hs.Driver)
	}
}

// CloseHistory closes the history store configured on t, if any.
func (t *Tree) CloseHistory() error {
	if t.cfg.history == nil {
		return nil
	}
	return t.cfg.history.Close()
}
