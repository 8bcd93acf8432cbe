package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Skeletons created when a shared registration file does not exist yet.
const (
	routesSkeleton = "<?php\n\nuse Illuminate\\Support\\Facades\\Route;\n\n"
	routerSkeleton = "export const routes = [\n]\n"
)

// register appends one registration line to a shared file unless the marker
// text is already present. This presence check is the only idempotence
// guarantee in the system: running the same generation twice must leave
// exactly one registration block.
func (c *Coordinator) register(reg registration, result *Result) {
	fail := func(err error) {
		result.Failures = append(result.Failures, StepError{Artifact: reg.artifact, Path: reg.path, Err: err})
	}

	data, err := os.ReadFile(reg.path)
	switch {
	case err == nil:
		content := string(data)
		if strings.Contains(content, reg.marker) {
			result.Skipped = append(result.Skipped, reg.path)
			return
		}
		content = insertRegistration(content, reg)
		if err := os.WriteFile(reg.path, []byte(content), 0o644); err != nil { //nolint:gosec // generated source files
			fail(fmt.Errorf("failed to update registration file: %w", err))
			return
		}
	case os.IsNotExist(err):
		if mkErr := os.MkdirAll(filepath.Dir(reg.path), 0o755); mkErr != nil {
			fail(fmt.Errorf("failed to create registration directory: %w", mkErr))
			return
		}
		content := insertRegistration(skeletonFor(reg.kind), reg)
		if err := os.WriteFile(reg.path, []byte(content), 0o644); err != nil { //nolint:gosec // generated source files
			fail(fmt.Errorf("failed to create registration file: %w", err))
			return
		}
	default:
		fail(fmt.Errorf("failed to read registration file: %w", err))
		return
	}

	result.Registered = append(result.Registered, reg.path)
}

// skeletonFor returns the initial content of a missing registration file.
func skeletonFor(kind registrationKind) string {
	if kind == registrationJSRouter {
		return routerSkeleton
	}
	return routesSkeleton
}

// insertRegistration splices the marker line into the file content. PHP
// route files are append-only; the JS router inserts inside the routes
// array when its closing bracket can be found, appending otherwise.
func insertRegistration(content string, reg registration) string {
	if reg.kind == registrationJSRouter {
		if idx := strings.LastIndex(content, "]"); idx >= 0 {
			return content[:idx] + "    " + reg.marker + "\n" + content[idx:]
		}
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + reg.marker + "\n"
}
