package cmd

import (
	"github.com/huanfeng/pacview/pkg/pacconf"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Long: `Print every global option and repository after defaults are applied
and mirrorlists are expanded. The text format is valid pacman.conf syntax.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}

		if settings.Format == "text" {
			return pacconf.Render(cmd.OutOrStdout(), cfg)
		}
		return writeStructured(cmd.OutOrStdout(), settings.Format, cfg)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
