package pycodestyle

import (
	"github.com/pylens-dev/pylens/internal/linter"
)

func init() {
	_ = linter.Global().Register(New(linter.DefaultToolsDir()))
}
