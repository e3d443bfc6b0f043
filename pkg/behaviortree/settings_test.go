package behaviortree

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/behaviortree/pkg/behaviortree/config"
	"github.com/randalmurphal/behaviortree/pkg/behaviortree/history"
)

func TestNewTreeFromSettings_Defaults(t *testing.T) {
	tree, err := NewTreeFromSettings(NewSequence(), config.Default(), nil)
	require.NoError(t, err)

	assert.Equal(t, "tree", tree.Name())
	assert.Nil(t, tree.cfg.history)
	assert.Nil(t, tree.cfg.logger)
	assert.NoError(t, tree.CloseHistory())

	status, err := tree.Tick(testCtx())
	require.NoError(t, err)
	assert.Equal(t, Success, status)
}

func TestNewTreeFromSettings_Invalid(t *testing.T) {
	s := config.Default()
	s.Name = ""

	_, err := NewTreeFromSettings(NewSequence(), s, nil)
	assert.ErrorIs(t, err, config.ErrNameRequired)
}

func TestNewTreeFromSettings_MemoryHistory(t *testing.T) {
	s := config.Default()
	s.Name = "guard"
	s.History.Driver = config.DriverMemory

	tree, err := NewTreeFromSettings(NewAction(func() Status { return Fail }), s, nil)
	require.NoError(t, err)
	defer tree.CloseHistory()

	_, err = tree.Tick(testCtx())
	require.NoError(t, err)

	rec, err := tree.cfg.history.Latest("guard")
	require.NoError(t, err)
	assert.Equal(t, "fail", rec.Status)
}

func TestNewTreeFromSettings_SQLiteHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticks.db")
	s := config.Default()
	s.Name = "guard"
	s.History = config.HistorySettings{Driver: config.DriverSQLite, Path: path}

	tree, err := NewTreeFromSettings(NewAction(scripted(Running, Success)), s, nil)
	require.NoError(t, err)

	_, err = tree.Tick(testCtx())
	require.NoError(t, err)
	_, err = tree.Tick(testCtx())
	require.NoError(t, err)
	require.NoError(t, tree.CloseHistory())

	store, err := history.NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	recs, err := store.List("guard")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "running", recs[0].Status)
	assert.Equal(t, "success", recs[1].Status)
}

func TestNewTreeFromSettings_LogLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := config.Default()
	s.LogLevel = "warn"

	tree, err := NewTreeFromSettings(NewSequence(), s, logger)
	require.NoError(t, err)

	_, err = tree.Tick(testCtx())
	require.NoError(t, err)
	assert.Empty(t, buf.String(), "info and debug tick logs are filtered")

	s.LogLevel = "debug"
	tree, err = NewTreeFromSettings(NewSequence(), s, logger)
	require.NoError(t, err)

	_, err = tree.Tick(testCtx())
	require.NoError(t, err)
	assert.Len(t, logLines(t, &buf), 2)
}

func TestNewTreeFromSettings_ExtraOptionsWin(t *testing.T) {
	store := history.NewMemoryStore()
	s := config.Default()
	s.History.Driver = config.DriverMemory

	tree, err := NewTreeFromSettings(NewSequence(), s, nil, WithHistory(store))
	require.NoError(t, err)

	_, err = tree.Tick(testCtx())
	require.NoError(t, err)

	recs, err := store.List("tree")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestOpenHistory(t *testing.T) {
	store, err := OpenHistory(config.HistorySettings{})
	require.NoError(t, err)
	assert.Nil(t, store)

	store, err = OpenHistory(config.HistorySettings{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &history.MemoryStore{}, store)

	_, err = OpenHistory(config.HistorySettings{Driver: "redis"})
	assert.ErrorIs(t, err, config.ErrUnknownDriver)
}
