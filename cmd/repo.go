package cmd

import (
	"fmt"

	"github.com/huanfeng/pacview/internal/errors"
	"github.com/huanfeng/pacview/pkg/pacconf"
	"github.com/spf13/cobra"
)

// repoCmd represents the repo command
var repoCmd = &cobra.Command{
	Use:   "repo <name> [Directive]",
	Short: "Print a single repository",
	Long: `Print one repository, or a single directive of it
(Server, SigLevel, Usage or CacheServer).`,
	Example: "  pacview repo core\n  pacview repo extra Server",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		name := args[0]
		repo := cfg.Repository(name)
		if repo == nil {
			return errors.NewNotFoundError("UNKNOWN_REPOSITORY",
				fmt.Sprintf("repository %s not found", name)).
				WithContext("repository", name).
				WithSuggestion("Run 'pacview repos' to list the configured repositories")
		}

		if len(args) == 1 {
			if settings.Format == "text" {
				return pacconf.RenderRepository(cmd.OutOrStdout(), repo)
			}
			return writeStructured(cmd.OutOrStdout(), settings.Format, repo)
		}

		directive := args[1]
		values, ok := pacconf.LookupRepository(repo, directive)
		if !ok {
			return errors.NewNotFoundError("UNKNOWN_DIRECTIVE",
				fmt.Sprintf("unknown repository directive %s", directive)).
				WithContext("directive", directive)
		}
		if settings.Format == "text" {
			return writeLines(cmd.OutOrStdout(), values)
		}
		return writeStructured(cmd.OutOrStdout(), settings.Format, map[string][]string{
			directive: values,
		})
	},
}

func init() {
	rootCmd.AddCommand(repoCmd)
}
