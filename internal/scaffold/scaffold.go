// Package scaffold renders the starting point for a new day's solver.
package scaffold

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

// Solver contains the template of a new solver package.
//
//go:embed solver.go.tmpl
var Solver string

// ErrInvalidName is returned for a module name that cannot become a Go package.
var ErrInvalidName = errors.New("invalid module name")

var moduleName = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// PackageName derives the Go package name from a module name such as "tuning_trouble".
func PackageName(module string) (string, error) {
	if !moduleName.MatchString(module) {
		return "", fmt.Errorf("%w %q: use lower_snake_case", ErrInvalidName, module)
	}

	return strings.ReplaceAll(module, "_", ""), nil
}

// Render renders the solver template for module, registered as day.
func Render(module string, day int) (string, error) {
	pkg, err := PackageName(module)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("solver").Parse(Solver)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"Package": pkg,
		"Day":     day,
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
