package stores

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/colonyops/taskline/internal/data/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(sql.ErrNoRows))
	assert.True(t, IsNotFoundError(fmt.Errorf("kv get %q: %w", "tasks", sql.ErrNoRows)))
	assert.False(t, IsNotFoundError(errors.New("some other error")))
	assert.False(t, IsNotFoundError(nil))
}

func TestIsCorruptionError_MessageFallback(t *testing.T) {
	assert.True(t, IsCorruptionError(errors.New("database disk image is malformed")))
	assert.True(t, IsCorruptionError(errors.New("file is not a database")))
	assert.False(t, IsCorruptionError(errors.New("no such table: tasks")))
}

func TestIsBusyError_NonSQLite(t *testing.T) {
	assert.False(t, IsBusyError(errors.New("timeout")))
	assert.False(t, IsBusyError(nil))
}

func TestRecoverFromCorruption_BacksUpDatabase(t *testing.T) {
	dataDir := t.TempDir()
	dbPath := filepath.Join(dataDir, db.FileName)
	require.NoError(t, os.WriteFile(dbPath, []byte("not a sqlite file"), 0o644))
	require.NoError(t, os.WriteFile(dbPath+"-wal", []byte("wal"), 0o644))
	require.NoError(t, os.WriteFile(dbPath+"-shm", []byte("shm"), 0o644))

	require.NoError(t, RecoverFromCorruption(dataDir))

	// Original files are gone; a timestamped backup remains.
	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(dbPath + "-wal")
	assert.True(t, os.IsNotExist(err))

	backups, err := filepath.Glob(filepath.Join(dataDir, db.FileName+".corrupt.*"))
	require.NoError(t, err)
	assert.NotEmpty(t, backups)
}

func TestRecoverFromCorruption_MissingFile(t *testing.T) {
	assert.NoError(t, RecoverFromCorruption(t.TempDir()))
}

func TestRecoverFromCorruption_ReopensClean(t *testing.T) {
	dataDir := t.TempDir()
	dbPath := filepath.Join(dataDir, db.FileName)
	require.NoError(t, os.WriteFile(dbPath, []byte("garbage"), 0o644))

	require.NoError(t, RecoverFromCorruption(dataDir))

	database, err := db.Open(dataDir, db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
}
