// Package config provides the project configuration for the generators:
// where each artifact kind is written, which shared files receive
// registrations, and the defaults applied when the command line leaves a
// choice open.
//
// Configuration is read from an optional anvil.yaml in the project root; a
// missing file yields the Laravel-conventional defaults unchanged.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the resolved project configuration. All directory values are
// relative to ProjectRoot.
type Config struct {
	// ProjectRoot is the Laravel project directory generation targets.
	ProjectRoot string `mapstructure:"-"`

	ModelsDir      string `mapstructure:"models_dir"`
	MigrationsDir  string `mapstructure:"migrations_dir"`
	ControllersDir string `mapstructure:"controllers_dir"`
	ResourcesDir   string `mapstructure:"resources_dir"`
	RequestsDir    string `mapstructure:"requests_dir"`
	PoliciesDir    string `mapstructure:"policies_dir"`
	TestsDir       string `mapstructure:"tests_dir"`

	// RoutesFile is the shared registration file for API routes.
	RoutesFile string `mapstructure:"routes_file"`

	// ComponentsDir and RouterFile locate the SPA artifacts.
	ComponentsDir string `mapstructure:"components_dir"`
	RouterFile    string `mapstructure:"router_file"`

	// Frontend is the default SPA framework ("vue" or "react").
	Frontend string `mapstructure:"frontend"`
	// APIVersion is the default API route version segment.
	APIVersion string `mapstructure:"api_version"`
	// PHPBinary is the interpreter used for artisan commands.
	PHPBinary string `mapstructure:"php_binary"`
}

// Default returns the Laravel-conventional configuration for a project root.
func Default(projectRoot string) *Config {
	return &Config{
		ProjectRoot:    projectRoot,
		ModelsDir:      "app/Models",
		MigrationsDir:  "database/migrations",
		ControllersDir: "app/Http/Controllers",
		ResourcesDir:   "app/Http/Resources",
		RequestsDir:    "app/Http/Requests",
		PoliciesDir:    "app/Policies",
		TestsDir:       "tests/Feature",
		RoutesFile:     "routes/api.php",
		ComponentsDir:  "resources/js/components",
		RouterFile:     "resources/js/router.js",
		Frontend:       "vue",
		APIVersion:     "v1",
		PHPBinary:      "php",
	}
}

// Load reads anvil.yaml from the project root, falling back to Default for
// every key the file does not set. A missing file is not an error.
func Load(projectRoot string) (*Config, error) {
	defaults := Default(projectRoot)

	v := viper.New()
	v.SetConfigName("anvil")
	v.SetConfigType("yaml")
	v.AddConfigPath(projectRoot)

	v.SetDefault("models_dir", defaults.ModelsDir)
	v.SetDefault("migrations_dir", defaults.MigrationsDir)
	v.SetDefault("controllers_dir", defaults.ControllersDir)
	v.SetDefault("resources_dir", defaults.ResourcesDir)
	v.SetDefault("requests_dir", defaults.RequestsDir)
	v.SetDefault("policies_dir", defaults.PoliciesDir)
	v.SetDefault("tests_dir", defaults.TestsDir)
	v.SetDefault("routes_file", defaults.RoutesFile)
	v.SetDefault("components_dir", defaults.ComponentsDir)
	v.SetDefault("router_file", defaults.RouterFile)
	v.SetDefault("frontend", defaults.Frontend)
	v.SetDefault("api_version", defaults.APIVersion)
	v.SetDefault("php_binary", defaults.PHPBinary)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read project config: %w", err)
		}
	}

	cfg := &Config{ProjectRoot: projectRoot}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse project config: %w", err)
	}
	cfg.ProjectRoot = projectRoot

	return cfg, nil
}

// Path resolves a configured relative path against the project root.
func (c *Config) Path(rel string) string {
	return filepath.Join(c.ProjectRoot, rel)
}
