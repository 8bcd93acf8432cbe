package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stokaro/anvil/core/emit"
	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/naming"
	"github.com/stokaro/anvil/core/render/dialects/react"
	"github.com/stokaro/anvil/core/render/dialects/vue"
	"github.com/stokaro/anvil/core/render/php"
)

// stagedFile is one rendered per-entity artifact awaiting its write.
type stagedFile struct {
	artifact Artifact
	path     string
	content  string
}

// registrationKind selects the skeleton and insertion style of a shared
// registration file.
type registrationKind string

const (
	registrationPHPRoutes registrationKind = "php-routes"
	registrationJSRouter  registrationKind = "js-router"
)

// registration is one marker-guarded append to a shared file.
type registration struct {
	artifact Artifact
	path     string
	marker   string
	kind     registrationKind
}

// stage renders every requested artifact in memory. It fails as a whole on
// the first rendering error so that a partially renderable request writes
// nothing at all.
func (c *Coordinator) stage(entity fieldspec.EntityDescriptor, artifacts []Artifact) ([]stagedFile, []registration, error) {
	name := entity.CanonicalName
	fieldNames := make([]string, len(entity.Fields))
	for i, f := range entity.Fields {
		fieldNames[i] = f.Name
	}

	var files []stagedFile
	var registrations []registration

	for _, artifact := range artifacts {
		switch artifact {
		case ArtifactModel:
			files = append(files, stagedFile{
				artifact: artifact,
				path:     filepath.Join(c.cfg.Path(c.cfg.ModelsDir), name+".php"),
				content: php.ModelFile(php.ModelSpec{
					Name:        name,
					Table:       naming.Table(name),
					Fillable:    fieldNames,
					Casts:       c.emitter.Casts(entity),
					SoftDeletes: entity.Options.SoftDeletes,
				}),
			})

		case ArtifactMigration:
			content, err := php.MigrationFile(c.emitter.Schema(entity))
			if err != nil {
				return nil, nil, fmt.Errorf("rendering migration: %w", err)
			}
			files = append(files, stagedFile{
				artifact: artifact,
				path:     c.migrationPath(naming.Table(name)),
				content:  content,
			})

		case ArtifactController:
			files = append(files, stagedFile{
				artifact: artifact,
				path:     filepath.Join(c.cfg.Path(c.cfg.ControllersDir), "Api", name+"Controller.php"),
				content: php.ControllerFile(php.ControllerSpec{
					Name:         name,
					Variable:     naming.Variable(name),
					RouteSegment: naming.RouteSegment(name),
					API:          true,
				}),
			})

		case ArtifactResource:
			files = append(files, stagedFile{
				artifact: artifact,
				path:     filepath.Join(c.cfg.Path(c.cfg.ResourcesDir), name+"Resource.php"),
				content:  php.ResourceFile(name, fieldNames, !entity.Options.NoTimestamps),
			})

		case ArtifactRequests:
			for _, mode := range []emit.Mode{emit.ModeCreate, emit.ModeUpdate} {
				content, err := php.RequestFile(c.emitter.Validation(entity, mode))
				if err != nil {
					return nil, nil, fmt.Errorf("rendering %s request: %w", mode, err)
				}
				prefix := "Store"
				if mode == emit.ModeUpdate {
					prefix = "Update"
				}
				files = append(files, stagedFile{
					artifact: artifact,
					path:     filepath.Join(c.cfg.Path(c.cfg.RequestsDir), prefix+name+"Request.php"),
					content:  content,
				})
			}

		case ArtifactUIComponents:
			staged, err := c.stageComponents(entity)
			if err != nil {
				return nil, nil, err
			}
			files = append(files, staged...)

			marker := vue.RouterRegistration(name)
			if c.frontend(entity) == "react" {
				marker = react.RouterRegistration(name)
			}
			registrations = append(registrations, registration{
				artifact: artifact,
				path:     c.cfg.Path(c.cfg.RouterFile),
				marker:   marker,
				kind:     registrationJSRouter,
			})

		case ArtifactRoutes:
			registrations = append(registrations, registration{
				artifact: artifact,
				path:     c.cfg.Path(c.cfg.RoutesFile),
				marker:   php.RouteRegistration(name, emit.APIPath(entity)),
				kind:     registrationPHPRoutes,
			})

		case ArtifactTests:
			files = append(files, stagedFile{
				artifact: artifact,
				path:     filepath.Join(c.cfg.Path(c.cfg.TestsDir), name+"Test.php"),
				content:  php.FeatureTestFile(name, emit.APIPath(entity)),
			})

		case ArtifactPolicy:
			files = append(files, stagedFile{
				artifact: artifact,
				path:     filepath.Join(c.cfg.Path(c.cfg.PoliciesDir), name+"Policy.php"),
				content:  php.PolicyFile(name),
			})

		default:
			return nil, nil, fmt.Errorf("unknown artifact kind: %s", artifact)
		}
	}

	return files, registrations, nil
}

// frontend resolves the SPA framework for an entity: the entity option wins,
// then the project default.
func (c *Coordinator) frontend(entity fieldspec.EntityDescriptor) string {
	if entity.Options.Frontend != "" {
		return entity.Options.Frontend
	}
	return c.cfg.Frontend
}

// stageComponents renders the form and list components for the selected
// frontend. Both frameworks consume the same form node.
func (c *Coordinator) stageComponents(entity fieldspec.EntityDescriptor) ([]stagedFile, error) {
	form := c.emitter.Form(entity)
	name := entity.CanonicalName
	dir := c.cfg.Path(c.cfg.ComponentsDir)

	switch c.frontend(entity) {
	case "react":
		formText, err := react.New().Render(form)
		if err != nil {
			return nil, fmt.Errorf("rendering react form: %w", err)
		}
		return []stagedFile{
			{artifact: ArtifactUIComponents, path: filepath.Join(dir, name+"Form.jsx"), content: formText},
			{artifact: ArtifactUIComponents, path: filepath.Join(dir, name+"List.jsx"), content: react.IndexFile(form)},
		}, nil
	default:
		formText, err := vue.New().Render(form)
		if err != nil {
			return nil, fmt.Errorf("rendering vue form: %w", err)
		}
		return []stagedFile{
			{artifact: ArtifactUIComponents, path: filepath.Join(dir, name+"Form.vue"), content: formText},
			{artifact: ArtifactUIComponents, path: filepath.Join(dir, name+"List.vue"), content: vue.IndexFile(form)},
		}, nil
	}
}

// migrationPath computes the timestamped migration file path, bumping the
// timestamp by one second while a file with that name already exists so a
// regeneration never clobbers an earlier migration.
func (c *Coordinator) migrationPath(table string) string {
	dir := c.cfg.Path(c.cfg.MigrationsDir)
	ts := c.now()

	for {
		name := fmt.Sprintf("%s_create_%s_table.php", ts.Format("2006_01_02_150405"), table)
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			return path
		}
		ts = ts.Add(time.Second)
	}
}
