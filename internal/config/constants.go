package config

const SourceFileExt = ".hs"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{SourceFileExt, ".mhs"}

// REPL defaults, overridable via haski.yaml.
const (
	DefaultPrompt      = "haski> "
	DefaultHistoryFile = ".haski_history"
)

// ConfigFileName is the optional per-project configuration file,
// searched upward from the working directory.
const ConfigFileName = "haski.yaml"
