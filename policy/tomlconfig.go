package policy

import (
	"os"

	"github.com/pelletier/go-toml"

	"github.com/pkujhd/golink/resolve"
)

// tomlConfig mirrors Config's flat fields for the file-based
// alternative to CLI flags, per SPEC_FULL.md's AMBIENT STACK section:
// a TOML document a driver can load instead of (or merged with) flags.
type tomlConfig struct {
	Shared                  bool     `toml:"shared"`
	ExportDynamic           bool     `toml:"export_dynamic"`
	AllowMultipleDefinition bool     `toml:"allow_multiple_definition"`
	WarnCommon              bool     `toml:"warn_common"`
	GlobalsByDefault        bool     `toml:"globals_by_default"`
	Undefined               []string `toml:"undefined"`
	DynamicListFiles        []string `toml:"dynamic_list_files"`
	VersionScriptFile       string   `toml:"version_script_file"`
	TraceSymbols            []string `toml:"trace_symbols"`
	WrapNames               []string `toml:"wrap"`
}

// LoadConfigFile reads a TOML configuration file into a Config,
// the on-disk counterpart to cmd/golink-demo's pflag-based flags.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var tc tomlConfig
	if err := toml.Unmarshal(data, &tc); err != nil {
		return Config{}, err
	}

	return Config{
		Engine: resolve.Config{
			Shared:                  tc.Shared,
			ExportDynamic:           tc.ExportDynamic,
			AllowMultipleDefinition: tc.AllowMultipleDefinition,
			WarnCommon:              tc.WarnCommon,
			GlobalsByDefault:        tc.GlobalsByDefault,
		},
		Undefined:         tc.Undefined,
		DynamicListFiles:  tc.DynamicListFiles,
		VersionScriptFile: tc.VersionScriptFile,
		TraceSymbols:      tc.TraceSymbols,
		WrapNames:         tc.WrapNames,
	}, nil
}
