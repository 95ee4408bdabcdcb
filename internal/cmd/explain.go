package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/pylens-dev/pylens/internal/ui"
)

var checkCode = regexp.MustCompile(`^[EWFC]\d{1,4}$`)

var explainCmd = &cobra.Command{
	Use:   "explain CODE",
	Short: "Open the documentation for a check code",
	Long: `Opens the documentation page for a check code (e.g. E501, W291, F401,
C901) in the default browser. Prints the URL when no browser is available.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	code := strings.ToUpper(args[0])
	if !checkCode.MatchString(code) {
		return fmt.Errorf("not a check code: %s (expected E###, W###, F### or C###)", args[0])
	}

	url := docURL(code)
	if err := browser.OpenURL(url); err != nil {
		fmt.Println(ui.Info(fmt.Sprintf("could not open a browser, see %s", url)))
	}
	return nil
}

// docURL maps a check code prefix to its upstream documentation.
func docURL(code string) string {
	switch code[0] {
	case 'F':
		return "https://flake8.pycqa.org/en/latest/user/error-codes.html"
	case 'C':
		return "https://pypi.org/project/mccabe/"
	default: // E and W codes belong to pycodestyle
		return "https://pycodestyle.pycqa.org/en/latest/intro.html#error-codes"
	}
}
