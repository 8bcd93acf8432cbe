// Package scaffold coordinates artifact generation for one entity: it runs
// the emitters, renders every requested artifact, computes output paths from
// the derived names, and writes the files.
//
// Generation is staged: every artifact text is rendered in memory first, and
// nothing is written if any rendering step fails. Writes themselves are
// independent: one failed write is reported for that artifact and does not
// stop, or roll back, the others. There is deliberately no transactional
// cleanup of files already written.
//
// Appends to shared registration files (the API route file, the frontend
// router) are guarded by a marker-presence check; repeating a generation for
// the same entity never duplicates registration lines. Per-entity artifact
// files carry no such guard: a second run overwrites, after confirmation
// when a prompter is attached, and never silently merges.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/stokaro/anvil/artisan"
	"github.com/stokaro/anvil/config"
	"github.com/stokaro/anvil/core/emit"
	"github.com/stokaro/anvil/core/fieldspec"
	"github.com/stokaro/anvil/core/naming"
	"github.com/stokaro/anvil/prompt"
)

// Artifact identifies one generated output unit.
type Artifact string

// The artifact kinds a generation request may include.
const (
	ArtifactModel        Artifact = "model"
	ArtifactMigration    Artifact = "migration"
	ArtifactController   Artifact = "controller"
	ArtifactResource     Artifact = "resource"
	ArtifactRequests     Artifact = "requests"
	ArtifactUIComponents Artifact = "ui-components"
	ArtifactRoutes       Artifact = "routes"
	ArtifactTests        Artifact = "tests"
	ArtifactPolicy       Artifact = "policy"
)

// AllArtifacts returns every artifact kind in generation order.
func AllArtifacts() []Artifact {
	return []Artifact{
		ArtifactModel, ArtifactMigration, ArtifactController,
		ArtifactResource, ArtifactRequests, ArtifactUIComponents,
		ArtifactRoutes, ArtifactTests, ArtifactPolicy,
	}
}

// BackendArtifacts returns the artifact set of the API generator: everything
// except the frontend components.
func BackendArtifacts() []Artifact {
	return []Artifact{
		ArtifactModel, ArtifactMigration, ArtifactController,
		ArtifactResource, ArtifactRequests, ArtifactRoutes,
		ArtifactTests, ArtifactPolicy,
	}
}

// Options configures one generation run.
type Options struct {
	// Artifacts is the requested artifact subset; empty means AllArtifacts.
	Artifacts []Artifact
	// Migrate runs "artisan migrate" after the files are written.
	Migrate bool
}

// StepError is one failed artifact step. Independent artifacts already
// written stay in place.
type StepError struct {
	Artifact Artifact
	Path     string
	Err      error
}

// Error implements the error interface.
func (e StepError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Artifact, e.Path, e.Err)
}

// Result reports what one generation run did.
type Result struct {
	// Written lists every file created or overwritten.
	Written []string
	// Registered lists shared files that received a new registration line.
	Registered []string
	// Skipped lists files left untouched: registrations already present and
	// overwrites the user declined.
	Skipped []string
	// Failures lists per-artifact errors; the run continued past them.
	Failures []StepError
}

// Coordinator generates the artifact file set for entities.
type Coordinator struct {
	cfg      *config.Config
	emitter  *emit.Emitter
	runner   artisan.Runner
	prompter prompt.Prompter
	now      func() time.Time
}

// New creates a coordinator. The runner may be nil when no artisan steps are
// requested.
func New(cfg *config.Config, emitter *emit.Emitter, runner artisan.Runner) *Coordinator {
	return &Coordinator{
		cfg:     cfg,
		emitter: emitter,
		runner:  runner,
		now:     time.Now,
	}
}

// WithPrompter attaches a prompter used to confirm overwrites of existing
// per-entity files. Without one, existing files are overwritten.
func (c *Coordinator) WithPrompter(p prompt.Prompter) *Coordinator {
	c.prompter = p
	return c
}

// WithClock replaces the migration-timestamp clock, for deterministic tests.
func (c *Coordinator) WithClock(now func() time.Time) *Coordinator {
	c.now = now
	return c
}

// Generate runs one staged generation for the entity.
//
// An empty entity name is a cancelled operation: nothing is written, no
// artisan command is issued, and prompt.ErrCancelled is returned. A failure
// while staging (rendering) also writes nothing. Failures while writing are
// collected per artifact in the result.
func (c *Coordinator) Generate(ctx context.Context, entity fieldspec.EntityDescriptor, opts Options) (*Result, error) {
	if entity.CanonicalName == "" {
		return nil, prompt.ErrCancelled
	}
	entity.CanonicalName = naming.Pascal(entity.CanonicalName)

	artifacts := opts.Artifacts
	if len(artifacts) == 0 {
		artifacts = AllArtifacts()
	}

	files, registrations, err := c.stage(entity, artifacts)
	if err != nil {
		return nil, fmt.Errorf("staging artifacts for %s: %w", entity.CanonicalName, err)
	}
	slog.Debug("staged artifacts", "entity", entity.CanonicalName, "files", len(files), "registrations", len(registrations))

	result := &Result{}
	for _, file := range files {
		c.writeFile(file, entity.Options.Force, result)
	}
	for _, reg := range registrations {
		c.register(reg, result)
	}

	if opts.Migrate && c.runner != nil {
		if err := c.runner.Run(ctx, "migrate"); err != nil {
			result.Failures = append(result.Failures, StepError{Artifact: ArtifactMigration, Err: err})
		}
	}

	return result, nil
}

// writeFile creates the parent directory and writes one staged file,
// asking for overwrite confirmation when a prompter is attached and the
// file already exists.
func (c *Coordinator) writeFile(file stagedFile, force bool, result *Result) {
	fail := func(err error) {
		result.Failures = append(result.Failures, StepError{Artifact: file.artifact, Path: file.path, Err: err})
	}

	if err := os.MkdirAll(filepath.Dir(file.path), 0o755); err != nil {
		fail(fmt.Errorf("failed to create output directory: %w", err))
		return
	}

	if !force && c.prompter != nil {
		if _, err := os.Stat(file.path); err == nil {
			ok, confirmErr := c.prompter.Confirm(fmt.Sprintf("Overwrite %s?", filepath.Base(file.path)))
			if errors.Is(confirmErr, prompt.ErrCancelled) || (confirmErr == nil && !ok) {
				result.Skipped = append(result.Skipped, file.path)
				return
			}
			if confirmErr != nil {
				fail(confirmErr)
				return
			}
		}
	}

	if err := os.WriteFile(file.path, []byte(file.content), 0o644); err != nil { //nolint:gosec // generated source files
		fail(fmt.Errorf("failed to write file: %w", err))
		return
	}
	result.Written = append(result.Written, file.path)
}
