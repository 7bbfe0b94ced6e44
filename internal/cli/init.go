package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/bistro/internal/paths"
	"github.com/mesh-intelligence/bistro/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir,omitempty"`
	TaxRate string `yaml:"tax_rate"`
}

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize bistro configuration and storage",
		Long:  "Create the configuration and data directories, write a default config.yaml\nand an empty extent file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	e, s, err := a.openExtent()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := writeConfigIfMissing(paths.ConfigFile(s.configDir), s.config); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.MkdirAll(s.config.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	// An existing extent is left alone.
	if path := e.Path(); !fileExists(path) {
		if err := e.Save(path); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "bistro initialized (%s backend, data in %s)\n", s.config.Backend, s.config.DataDir)
	return nil
}

// writeConfigIfMissing creates config.yaml with the given values if the
// file does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path string, cfg types.Config) error {
	if fileExists(path) {
		return nil
	}
	data, err := yaml.Marshal(&configFile{
		Backend: cfg.Backend,
		DataDir: cfg.DataDir,
		TaxRate: types.TaxRate().String(),
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
