package cmd

import (
	"fmt"

	"github.com/huanfeng/pacview/internal/errors"
	"github.com/huanfeng/pacview/internal/i18n"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configuration",
	Long:  `Resolve the configuration and report the first problem found, if any.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settings.ConfigPath

		cfg, err := loadConfiguration()
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("check.failed", map[string]interface{}{
				"Path": path,
			}))
			if cfgErr, ok := errors.As(err); ok {
				fmt.Fprintln(cmd.ErrOrStderr(), cfgErr.FormatDetailed())
			}
			return &reportedError{err: err}
		}

		fmt.Fprintln(cmd.OutOrStdout(), i18n.T("check.ok", map[string]interface{}{
			"Path":  path,
			"Count": len(cfg.Repositories),
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
