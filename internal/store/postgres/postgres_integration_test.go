package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wellnest/wellnest/internal/store"
	"github.com/wellnest/wellnest/internal/store/storetest"
)

// Runs only when WELLNEST_TEST_POSTGRES_DSN points at a disposable database.
func TestPostgresStoreCompliance(t *testing.T) {
	dsn := os.Getenv("WELLNEST_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("WELLNEST_TEST_POSTGRES_DSN not set")
	}

	storetest.Run(t, func(t *testing.T) store.Store {
		db, err := Open(dsn)
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		// start from a clean slate for each suite section
		_, err = db.Exec(`DROP TABLE IF EXISTS moods, habits, habit_entries, journal_entries`)
		require.NoError(t, err)

		s, err := NewWithDB(context.Background(), db)
		require.NoError(t, err)
		return s
	})
}
