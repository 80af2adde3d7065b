package cmd

import (
	"fmt"
	"strings"

	"github.com/huanfeng/pacview/internal/errors"
	"github.com/huanfeng/pacview/pkg/pacconf"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <Directive>...",
	Short: "Print the value of global directives",
	Long: `Print the resolved values of one or more [options] directives,
one value per line. Directive names are case-sensitive, e.g. CacheDir.`,
	Example: "  pacview get DBPath CacheDir\n  pacview -o json get ParallelDownloads",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		result := make(map[string][]string, len(args))
		var lines []string
		for _, directive := range args {
			values, ok := pacconf.LookupOption(&cfg.Options, directive)
			if !ok {
				return errors.NewNotFoundError("UNKNOWN_DIRECTIVE",
					fmt.Sprintf("unknown directive %s", directive)).
					WithContext("directive", directive).
					WithSuggestion("Known directives: " + strings.Join(pacconf.OptionDirectives(), ", "))
			}
			result[directive] = values
			lines = append(lines, values...)
		}

		if settings.Format == "text" {
			return writeLines(cmd.OutOrStdout(), lines)
		}
		return writeStructured(cmd.OutOrStdout(), settings.Format, result)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
