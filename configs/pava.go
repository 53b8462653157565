package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/pava/cmds"
	"github.com/reusee/pava/vars"
)

var configPaths = cmds.Collect[string]("-config")

// Config holds the interpreter's CLI-facing settings. Script semantics are
// not configurable.
type Config struct {
	Prompt      string
	HistoryFile string
	Trace       bool
}

const pavaSchema = `
prompt?: string
historyFile?: string
trace?: bool
`

func (Module) Loader() Loader {
	paths := *configPaths
	if dir, err := os.UserConfigDir(); err == nil {
		defaultPath := filepath.Join(dir, "pava", "config.cue")
		if _, err := os.Stat(defaultPath); err == nil {
			paths = append(paths, defaultPath)
		}
	}
	return NewLoader(paths, pavaSchema)
}

func (Module) Config(
	loader Loader,
) Config {
	return Config{
		Prompt: vars.FirstNonZero(
			First[string](loader, "prompt"),
			"> ",
		),
		HistoryFile: vars.FirstNonZero(
			First[string](loader, "historyFile"),
			defaultHistoryFile(),
		),
		Trace: First[bool](loader, "trace"),
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pava_history")
}
