package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/mtcli/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openTestStore(t)

	base := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Record(ctx, Entry{
		Executable: "/mnt/c/Program Files/MetaTrader 5/terminal64.exe",
		Args:       []string{`/config:C:\tmp\tester.ini`},
		ExitCode:   0,
		StartedAt:  base,
		Duration:   1500 * time.Millisecond,
	}))
	require.NoError(t, store.Record(ctx, Entry{
		Executable: "metaeditor64.exe",
		Args:       []string{"/compile:a.mq5", "/log:a.log"},
		ExitCode:   1,
		StartedAt:  base.Add(time.Minute),
	}))

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "metaeditor64.exe", entries[0].Executable)
	assert.Equal(t, 1, entries[0].ExitCode)
	assert.NotEmpty(t, entries[0].ID)

	assert.Equal(t, []string{`/config:C:\tmp\tester.ini`}, entries[1].Args)
	assert.Equal(t, 1500*time.Millisecond, entries[1].Duration)
	assert.True(t, base.Equal(entries[1].StartedAt))
}

func TestRecentHonoursLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, Entry{
			Executable: "terminal64.exe",
			Args:       []string{},
			StartedAt:  time.Unix(int64(i), 0),
		}))
	}

	entries, err := store.Recent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, int64(4), entries[0].StartedAt.Unix())
}

func TestRecentEmpty(t *testing.T) {
	t.Parallel()

	entries, err := openTestStore(t).Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCloseReleasesDatabase(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	ctx, _ := testutil.NewTestContext(t)
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, Entry{Executable: "terminal64.exe", StartedAt: time.Now()}))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	entries, err := reopened.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
