package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/mtcli/internal/config"
	"github.com/wizzomafizzo/mtcli/internal/history"
	"github.com/wizzomafizzo/mtcli/internal/launcher"
	"github.com/wizzomafizzo/mtcli/internal/locate"
	"github.com/wizzomafizzo/mtcli/internal/platform/wsl"
)

const (
	testTerminal   = "/opt/mt5/terminal64.exe"
	testMetaEditor = "/opt/mt5/metaeditor64.exe"
	testDataDir    = "/data"
	testConfigPath = "/home/user/.mtcli/config.json"
)

var testNow = time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

type testEnv struct {
	fs       afero.Fs
	fake     *launcher.FakeExecutor
	out      *bytes.Buffer
	recorder *memoryHistory
	app      *App
	sleeps   []time.Duration
}

type memoryHistory struct {
	entries []history.Entry
}

func (m *memoryHistory) Record(_ context.Context, e history.Entry) error {
	m.entries = append(m.entries, e)
	return nil
}

func (m *memoryHistory) Recent(_ context.Context, limit int) ([]history.Entry, error) {
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	return m.entries[:limit], nil
}

func fullSettings() config.Settings {
	return config.Settings{Terminal: testTerminal, MetaEditor: testMetaEditor, DataDir: testDataDir}
}

func newTestEnv(t *testing.T, settings config.Settings) *testEnv {
	t.Helper()

	env := &testEnv{
		fs:       afero.NewMemMapFs(),
		fake:     launcher.NewFakeExecutor(),
		out:      &bytes.Buffer{},
		recorder: &memoryHistory{},
	}
	paths := wsl.NewConverter(wsl.Environment{}, nil)
	env.app = NewApp(AppOptions{
		Fs:       env.fs,
		Out:      env.out,
		Paths:    paths,
		Executor: env.fake,
		Recorder: env.recorder,
		History:  env.recorder,
		Store:    config.NewStore(env.fs, testConfigPath),
		Locator:  locate.New(env.fs, paths, ""),
		Now:      func() time.Time { return testNow },
		Sleep:    func(_ context.Context, d time.Duration) { env.sleeps = append(env.sleeps, d) },
		Settings: settings,
		WorkDir:  "/work",
	})
	return env
}

func (e *testEnv) read(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
