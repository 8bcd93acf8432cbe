package config_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/stokaro/anvil/config"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	c := qt.New(t)
	root := c.TempDir()

	cfg, err := config.Load(root)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, config.Default(root))
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	c := qt.New(t)
	root := c.TempDir()

	err := os.WriteFile(filepath.Join(root, "anvil.yaml"), []byte(`
frontend: react
api_version: v2
components_dir: resources/js/src/components
`), 0o644)
	c.Assert(err, qt.IsNil)

	cfg, err := config.Load(root)
	c.Assert(err, qt.IsNil)

	c.Assert(cfg.Frontend, qt.Equals, "react")
	c.Assert(cfg.APIVersion, qt.Equals, "v2")
	c.Assert(cfg.ComponentsDir, qt.Equals, "resources/js/src/components")

	// Unset keys keep their defaults.
	c.Assert(cfg.ModelsDir, qt.Equals, "app/Models")
	c.Assert(cfg.RoutesFile, qt.Equals, "routes/api.php")
}

func TestLoad_MalformedFile(t *testing.T) {
	c := qt.New(t)
	root := c.TempDir()

	err := os.WriteFile(filepath.Join(root, "anvil.yaml"), []byte("frontend: [broken"), 0o644)
	c.Assert(err, qt.IsNil)

	_, err = config.Load(root)
	c.Assert(err, qt.IsNotNil)
}

func TestPath(t *testing.T) {
	c := qt.New(t)

	cfg := config.Default("/srv/app")
	c.Assert(cfg.Path("app/Models"), qt.Equals, filepath.Join("/srv/app", "app/Models"))
}
