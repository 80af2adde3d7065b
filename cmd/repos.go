package cmd

import (
	"fmt"

	"github.com/huanfeng/pacview/internal/i18n"
	"github.com/huanfeng/pacview/pkg/pacconf"
	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List configured repositories",
	Long:  `List repository names in the order they appear in the configuration.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		names := pacconf.RepositoryNames(cfg)
		if settings.Format != "text" {
			return writeStructured(cmd.OutOrStdout(), settings.Format, map[string][]string{
				"repositories": names,
			})
		}

		if len(names) == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("repos.none"))
			return nil
		}
		return writeLines(cmd.OutOrStdout(), names)
	},
}

func init() {
	rootCmd.AddCommand(reposCmd)
}
