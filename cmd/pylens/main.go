package main

import (
	"github.com/pylens-dev/pylens/internal/cmd"

	// Bootstrap: register all linters
	_ "github.com/pylens-dev/pylens/internal/bootstrap"
)

// Version is set by build -ldflags "-X main.Version=x.y.z"
var Version = "dev"

func main() {
	// Set version for version command
	cmd.SetVersion(Version)

	cmd.Execute()
}
