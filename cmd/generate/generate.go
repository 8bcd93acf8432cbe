// Package generate implements the "make" command family: the generators that
// turn one entity declaration into migrations, models, requests, controllers,
// resources, policies, tests, route registrations and SPA components.
package generate

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/stokaro/anvil/artisan"
	"github.com/stokaro/anvil/config"
	"github.com/stokaro/anvil/core/emit"
	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/taxonomy"
	"github.com/stokaro/anvil/prompt"
	"github.com/stokaro/anvil/scaffold"
)

var makeCmd = &cobra.Command{
	Use:   "make [crud|api|model|migration|frontend]",
	Short: "Generate entity artifacts from a field specification",
	Long: `Generate Laravel and SPA artifacts for one entity.

Fields are declared in the compact text syntax ("name:string,price:decimal:8,2"),
loaded from a YAML field file with --file, or collected interactively when
neither is given and --no-input is not set.

Available subcommands:
  crud       - Full stack: backend artifacts plus SPA components
  api        - Backend artifacts only (model through feature test)
  model      - Model and migration
  migration  - Migration only
  frontend   - SPA form and list components plus router registration

Examples:
  anvil make crud Product "name:string,price:decimal:8,2,category_id:foreignId"
  anvil make api Order --file order.yaml --no-input
  anvil make frontend Product "name:string" --frontend react`,
}

// Flag names shared by every make subcommand.
const (
	fieldsFlag       = "fields"
	fileFlag         = "file"
	projectFlag      = "project"
	noInputFlag      = "no-input"
	forceFlag        = "force"
	noTimestampsFlag = "no-timestamps"
	softDeletesFlag  = "soft-deletes"
	apiVersionFlag   = "api-version"
	frontendFlag     = "frontend"
	migrateFlag      = "migrate"
)

var makeFlags = map[string]cobraflags.Flag{
	fieldsFlag: &cobraflags.StringFlag{
		Name:  fieldsFlag,
		Value: "",
		Usage: "Field specification (\"name:string,price:decimal:8,2\"); the second positional argument is an alias",
	},
	fileFlag: &cobraflags.StringFlag{
		Name:  fileFlag,
		Value: "",
		Usage: "YAML field file; takes precedence over --fields",
	},
	projectFlag: &cobraflags.StringFlag{
		Name:  projectFlag,
		Value: ".",
		Usage: "Laravel project root the artifacts are written into",
	},
	noInputFlag: &cobraflags.BoolFlag{
		Name:  noInputFlag,
		Value: false,
		Usage: "Never prompt; missing answers fail instead of asking",
	},
	forceFlag: &cobraflags.BoolFlag{
		Name:  forceFlag,
		Value: false,
		Usage: "Overwrite existing artifact files without confirmation",
	},
	noTimestampsFlag: &cobraflags.BoolFlag{
		Name:  noTimestampsFlag,
		Value: false,
		Usage: "Omit the created_at/updated_at column pair",
	},
	softDeletesFlag: &cobraflags.BoolFlag{
		Name:  softDeletesFlag,
		Value: false,
		Usage: "Add a softDeletes column and the SoftDeletes model trait",
	},
	apiVersionFlag: &cobraflags.StringFlag{
		Name:  apiVersionFlag,
		Value: "",
		Usage: "API route version segment; defaults to the project config (v1)",
	},
	frontendFlag: &cobraflags.StringFlag{
		Name:  frontendFlag,
		Value: "",
		Usage: "SPA framework (vue, react); defaults to the project config",
	},
	migrateFlag: &cobraflags.BoolFlag{
		Name:  migrateFlag,
		Value: false,
		Usage: "Run \"artisan migrate\" after the files are written",
	},
}

// NewMakeCommand assembles the make command tree.
func NewMakeCommand() *cobra.Command {
	makeCmd.AddCommand(
		newArtifactCommand("crud", "Generate the full CRUD stack for an entity", scaffold.AllArtifacts()),
		newArtifactCommand("api", "Generate the backend artifacts for an entity", scaffold.BackendArtifacts()),
		newArtifactCommand("model", "Generate the model and migration for an entity",
			[]scaffold.Artifact{scaffold.ArtifactModel, scaffold.ArtifactMigration}),
		newArtifactCommand("migration", "Generate the migration for an entity",
			[]scaffold.Artifact{scaffold.ArtifactMigration}),
		newArtifactCommand("frontend", "Generate the SPA components for an entity",
			[]scaffold.Artifact{scaffold.ArtifactUIComponents}),
	)
	return makeCmd
}

func newArtifactCommand(use, short string, artifacts []scaffold.Artifact) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " [entity] [fields]",
		Short: short,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args, artifacts)
		},
	}
	cobraflags.RegisterMap(cmd, makeFlags)
	return cmd
}

// runGenerate resolves the entity declaration from flags, file, arguments or
// the interactive wizard, then hands it to the scaffold coordinator.
func runGenerate(args []string, artifacts []scaffold.Artifact) error {
	cfg, err := config.Load(makeFlags[projectFlag].GetString())
	if err != nil {
		return err
	}

	reg := taxonomy.New()

	var prompter prompt.Prompter
	if !makeFlags[noInputFlag].GetBool() {
		prompter = prompt.NewInteractive()
	}

	entity, err := resolveEntity(args, reg, cfg, prompter)
	if err != nil {
		return err
	}

	coordinator := scaffold.New(cfg, emit.New(reg), &artisan.Exec{Binary: cfg.PHPBinary, Dir: cfg.ProjectRoot})
	if prompter != nil {
		coordinator = coordinator.WithPrompter(prompter)
	}

	result, err := coordinator.Generate(context.Background(), entity, scaffold.Options{
		Artifacts: artifacts,
		Migrate:   makeFlags[migrateFlag].GetBool(),
	})
	if err != nil {
		return err
	}

	printResult(result)
	if len(result.Failures) > 0 {
		return fmt.Errorf("%d artifact step(s) failed", len(result.Failures))
	}
	return nil
}

// resolveEntity builds the entity descriptor. Precedence for fields: the
// YAML field file, then the --fields flag or second positional argument,
// then the interactive wizard. The entity name comes from the first
// positional argument, the field file, or the wizard, in that order.
func resolveEntity(args []string, reg *taxonomy.Registry, cfg *config.Config, prompter prompt.Prompter) (fieldspec.EntityDescriptor, error) {
	entity := fieldspec.EntityDescriptor{
		Options: fieldspec.Options{
			NoTimestamps: makeFlags[noTimestampsFlag].GetBool(),
			SoftDeletes:  makeFlags[softDeletesFlag].GetBool(),
			APIVersion:   makeFlags[apiVersionFlag].GetString(),
			Frontend:     makeFlags[frontendFlag].GetString(),
			Force:        makeFlags[forceFlag].GetBool(),
		},
	}
	if entity.Options.APIVersion == "" {
		entity.Options.APIVersion = cfg.APIVersion
	}

	if len(args) > 0 {
		entity.CanonicalName = args[0]
	}

	specText := makeFlags[fieldsFlag].GetString()
	if specText == "" && len(args) > 1 {
		specText = args[1]
	}

	switch {
	case makeFlags[fileFlag].GetString() != "":
		name, fields, err := fieldspec.LoadFile(makeFlags[fileFlag].GetString(), reg)
		if err != nil {
			return entity, err
		}
		if entity.CanonicalName == "" {
			entity.CanonicalName = name
		}
		entity.Fields = fields

	case specText != "":
		entity.Fields = fieldspec.Parse(specText, reg)

	case prompter != nil:
		if entity.CanonicalName == "" {
			name, err := prompt.CollectEntity(prompter)
			if err != nil {
				return entity, err
			}
			entity.CanonicalName = name
		}
		fields, err := prompt.CollectFields(prompter, reg)
		if err != nil {
			return entity, err
		}
		entity.Fields = fields
	}

	return entity, nil
}

var (
	writtenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// printResult summarizes one generation run on stdout.
func printResult(result *scaffold.Result) {
	for _, path := range result.Written {
		fmt.Println(writtenStyle.Render("  created ") + path)
	}
	for _, path := range result.Registered {
		fmt.Println(writtenStyle.Render("  registered ") + path)
	}
	for _, path := range result.Skipped {
		fmt.Println(skippedStyle.Render("  skipped ") + path)
	}
	for _, failure := range result.Failures {
		fmt.Println(failedStyle.Render("  failed ") + failure.Error())
	}
}
