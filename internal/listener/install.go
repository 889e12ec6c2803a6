package listener

import (
	"context"
	_ "embed"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/mtcli/internal/constants"
	"github.com/wizzomafizzo/mtcli/internal/launcher"
	"github.com/wizzomafizzo/mtcli/internal/platform/wsl"
)

var (
	//go:embed mql5/CommandListenerEA.mq5
	listenerCode []byte

	//go:embed mql5/AplicarTemplate.mq5
	templateScriptCode []byte
)

// Source is an MQL5 file installed into the data folder.
type Source struct {
	RelPath string
	Code    []byte
}

var (
	// ListenerEA polls MQL5/Files/cmd.txt and runs chart commands.
	ListenerEA = Source{RelPath: constants.ListenerSource, Code: listenerCode}
	// TemplateScript applies a template to a chart once.
	TemplateScript = Source{RelPath: constants.TemplateScriptSource, Code: templateScriptCode}
)

// Runner starts the editor. *launcher.Launcher satisfies it.
type Runner interface {
	RunWindows(ctx context.Context, exe string, args []string) (int, error)
}

// Installer writes sources into a data folder and compiles them.
type Installer struct {
	fs     afero.Fs
	paths  *wsl.Converter
	runner Runner
}

// NewInstaller creates an installer. runner is only used when compiling.
func NewInstaller(fs afero.Fs, paths *wsl.Converter, runner Runner) *Installer {
	return &Installer{fs: fs, paths: paths, runner: runner}
}

// InstallOptions control a single source installation.
type InstallOptions struct {
	// MetaEditor compiles the source when set and Compile is true.
	MetaEditor string
	// Force overwrites an existing source.
	Force   bool
	Compile bool
}

// Result describes what happened to one source.
type Result struct {
	Path    string
	LogPath string
	// Written is false when an existing source was kept.
	Written bool
	// CompileSkipped is true when compilation was wanted but no editor is known.
	CompileSkipped bool
	Compiled       bool
	ExitCode       int
}

// Ensure writes src below dataDir/MQL5 unless it already exists, then compiles it.
// A failed compilation is reported through Result, not as an error.
func (in *Installer) Ensure(ctx context.Context, dataDir string, src Source, opts InstallOptions) (Result, error) {
	log := zerolog.Ctx(ctx)
	base := in.paths.ToLocal(ctx, dataDir)
	target := filepath.Join(base, constants.MQL5Dir, filepath.FromSlash(src.RelPath))
	res := Result{Path: target}

	if err := in.fs.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return res, fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
	}

	exists, err := afero.Exists(in.fs, target)
	if err != nil {
		return res, fmt.Errorf("failed to check %s: %w", target, err)
	}
	if opts.Force || !exists {
		if err := afero.WriteFile(in.fs, target, src.Code, 0o644); err != nil {
			return res, fmt.Errorf("failed to write %s: %w", target, err)
		}
		res.Written = true
		log.Debug().Str("path", target).Msg("Wrote MQL5 source")
	}

	if !opts.Compile {
		return res, nil
	}
	if opts.MetaEditor == "" {
		res.CompileSkipped = true
		return res, nil
	}

	res.LogPath = launcher.ReplaceExt(target, ".log")
	code, err := in.runner.RunWindows(ctx, opts.MetaEditor, launcher.CompileArgs(target, res.LogPath, false))
	if err != nil {
		return res, fmt.Errorf("failed to run metaeditor: %w", err)
	}
	res.ExitCode = code
	res.Compiled = code == 0
	return res, nil
}

// Bootstrap prepares a data folder for listener use: the command and template
// directories, the compiled listener expert and the template script source.
func (in *Installer) Bootstrap(ctx context.Context, dataDir, metaEditor string, force bool) ([]Result, error) {
	base := in.paths.ToLocal(ctx, dataDir)
	for _, dir := range []string{
		filepath.Join(base, constants.MQL5Dir, constants.FilesDir),
		filepath.Join(base, constants.MQL5Dir, constants.ProfilesDir, constants.TemplatesDir),
	} {
		if err := in.fs.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	results := make([]Result, 0, 2)
	res, err := in.Ensure(ctx, dataDir, ListenerEA, InstallOptions{MetaEditor: metaEditor, Force: force, Compile: true})
	if err != nil {
		return results, err
	}
	results = append(results, res)

	res, err = in.Ensure(ctx, dataDir, TemplateScript, InstallOptions{Force: force})
	if err != nil {
		return results, err
	}
	return append(results, res), nil
}
