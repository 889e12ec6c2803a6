package storage

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/mtcli/internal/constants"
)

func TestStorageManagerPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		methodCall   func(*Manager) (string, error)
		expectedPath func() string
		name         string
	}{
		{
			name: "GetDataDir returns correct path",
			methodCall: func(m *Manager) (string, error) {
				return m.GetDataDir()
			},
			expectedPath: func() string {
				return filepath.Join(xdg.DataHome, constants.AppName)
			},
		},
		{
			name: "GetLogPath returns correct path",
			methodCall: func(m *Manager) (string, error) {
				return m.GetLogPath()
			},
			expectedPath: func() string {
				return filepath.Join(xdg.DataHome, constants.AppName, constants.LogFilename)
			},
		},
		{
			name: "GetHistoryPath returns correct path",
			methodCall: func(m *Manager) (string, error) {
				return m.GetHistoryPath()
			},
			expectedPath: func() string {
				return filepath.Join(xdg.DataHome, constants.AppName, constants.HistoryFilename)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			manager := New(afero.NewMemMapFs())

			actualPath, err := tt.methodCall(manager)
			if err != nil {
				t.Fatalf("method call failed: %v", err)
			}

			expectedPath := tt.expectedPath()
			if actualPath != expectedPath {
				t.Errorf("got %s, want %s", actualPath, expectedPath)
			}
		})
	}
}

func TestGetDataDirCreatesDirectory(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	dir, err := New(fs).GetDataDir()
	require.NoError(t, err)

	exists, err := afero.DirExists(fs, dir)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetDataDirReadOnlyFs(t *testing.T) {
	t.Parallel()

	_, err := New(afero.NewReadOnlyFs(afero.NewMemMapFs())).GetDataDir()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create data directory")
}
