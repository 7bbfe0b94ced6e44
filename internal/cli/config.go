package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/bistro/internal/paths"
	"github.com/mesh-intelligence/bistro/pkg/extent"
	"github.com/mesh-intelligence/bistro/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys in config.yaml.
	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"
	cfgKeyTaxRate = "tax_rate"

	defaultBackend = types.BackendJSON
)

// settings is the resolved configuration for one command run.
type settings struct {
	configDir string
	config    types.Config
	taxRate   decimal.Decimal
}

// loadConfig reads config.yaml from configDir. A missing file is not an
// error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyTaxRate, types.DefaultTaxRate.String())
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// loadSettings resolves directories, reads config.yaml and applies the tax
// rate it names.
func (a *app) loadSettings() (settings, error) {
	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return settings{}, fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return settings{}, err
	}
	dataDir, err := paths.ResolveDataDir(a.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return settings{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{Backend: v.GetString(cfgKeyBackend), DataDir: dataDir}
	if err := cfg.Validate(); err != nil {
		return settings{}, fmt.Errorf("config %s: %w", cfgKeyBackend, err)
	}
	rate, err := decimal.NewFromString(v.GetString(cfgKeyTaxRate))
	if err != nil {
		return settings{}, fmt.Errorf("config %s: %w", cfgKeyTaxRate, err)
	}
	if err := types.ChangeTaxRate(rate); err != nil {
		return settings{}, fmt.Errorf("config %s: %w", cfgKeyTaxRate, err)
	}

	a.log.WithFields(logrus.Fields{
		"config_dir": configDir,
		"data_dir":   dataDir,
		"backend":    cfg.Backend,
	}).Debug("configuration resolved")
	return settings{configDir: configDir, config: cfg, taxRate: rate}, nil
}

// openExtent returns an empty extent for the resolved settings.
func (a *app) openExtent() (*extent.Extent, settings, error) {
	s, err := a.loadSettings()
	if err != nil {
		return nil, settings{}, err
	}
	e, err := extent.New(s.config, extent.WithLogger(a.log))
	if err != nil {
		return nil, settings{}, err
	}
	return e, s, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
