// Package constants contains names of files and directories used by mtcli and by the
// MetaTrader 5 data folder layout it writes into.
package constants

const (
	// AppName is used for XDG directory paths.
	AppName = "mtcli"

	// ConfigDirName is the per-user settings directory under the home directory.
	ConfigDirName = ".mtcli"

	// ConfigFilename is the settings file inside ConfigDirName.
	ConfigFilename = "config.json"

	// EnvPrefix prefixes every environment override (MTCLI_TERMINAL, ...).
	EnvPrefix = "MTCLI"

	// LogFilename is the rotated log file in the XDG data directory.
	LogFilename = "mtcli.log"

	// HistoryFilename is the run history database in the XDG data directory.
	HistoryFilename = "history.db"
)

// Data folder layout.
const (
	MQL5Dir         = "MQL5"
	FilesDir        = "Files"
	LogsDir         = "Logs"
	ProfilesDir     = "Profiles"
	ChartsDir       = "Charts"
	TemplatesDir    = "Templates"
	DefaultProfile  = "Default"
	CommandFilename = "cmd.txt"

	// ListenerExpert is the expert name the terminal loads in listener mode.
	ListenerExpert = "CommandListenerEA"
	// ListenerSource is the EA source path relative to MQL5Dir.
	ListenerSource = "Experts/CommandListenerEA.mq5"
	// ListenerTemplate is the template the EA falls back to for ATTACH_EA.
	ListenerTemplate = "CommandListenerEA.tpl"
	// TemplateScriptSource is the template helper script relative to MQL5Dir.
	TemplateScriptSource = "Scripts/AplicarTemplate.mq5"
)

// Engine directories probed next to the data folder.
var EngineDirs = []string{"Gen4Engine", "EngineIV"}

// ServiceImage is the Windows process image name of the engine service.
const ServiceImage = "Gen4EngineService.exe"
