package bootstrap

import (
	// Import linters for registration side-effects.
	// Each linter's register.go file contains an init() function
	// that registers the linter with the global registry.
	_ "github.com/pylens-dev/pylens/internal/linter/flake8"
	_ "github.com/pylens-dev/pylens/internal/linter/pycodestyle"
	_ "github.com/pylens-dev/pylens/internal/linter/pyflakes"
)

// This package only imports linter packages for their init() side-effects.
// Import this package from main.go to ensure all linters are registered.
