package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

const (
	// DefaultConfigFile is picked up from the working directory when
	// no --config flag is given.
	DefaultConfigFile = "oasmap.yaml"

	// DefaultSpecFile is assumed under the base directory when no
	// spec argument is given.
	DefaultSpecFile = "openapi.yaml"
)

type Config struct {
	Spec    string       `koanf:"spec"`
	BaseDir string       `koanf:"base-dir"`
	Output  OutputConfig `koanf:"output"`
}

type OutputConfig struct {
	SchemaBodies bool `koanf:"schema-bodies"`
	UsageMap     bool `koanf:"usage-map"`
}

// BindFlags binds the inspection flags to the command
func BindFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: oasmap.yaml)")
	flags.StringP("spec", "s", "", "OpenAPI spec file path or bare filename")
	flags.String("base-dir", "", "Base directory for bare spec filenames")
	flags.Bool("no-schema-bodies", false, "Omit pretty-printed schema bodies from the structure dump")
	flags.Bool("no-usage-map", false, "Omit the final schema usage map section")
}

// Load merges defaults, an optional config file and CLI flags, in
// that order of precedence.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"spec":                 DefaultSpecFile,
		"base-dir":             ".",
		"output.schema-bodies": true,
		"output.usage-map":     true,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			configFile = DefaultConfigFile
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	flagChanged := func(name string) bool {
		return cmd.Flags().Changed(name) || cmd.PersistentFlags().Changed(name)
	}

	getBool := func(name string) bool {
		if v, err := cmd.Flags().GetBool(name); err == nil && v {
			return v
		}
		v, _ := cmd.PersistentFlags().GetBool(name)
		return v
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("base-dir"); v != "" {
		m["base-dir"] = v
	}
	if flagChanged("no-schema-bodies") {
		m["output.schema-bodies"] = !getBool("no-schema-bodies")
	}
	if flagChanged("no-usage-map") {
		m["output.usage-map"] = !getBool("no-usage-map")
	}

	return m
}

func (c *Config) Validate() error {
	if c.Spec == "" {
		return fmt.Errorf("spec file is required")
	}
	if c.BaseDir == "" {
		return fmt.Errorf("base directory is required")
	}
	return nil
}
