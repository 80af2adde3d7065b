package cmd

import "github.com/huanfeng/pacview/internal/i18n"

// applyCommandLocalization updates command and flag descriptions after i18n is initialized.
func applyCommandLocalization() {
	rootCmd.Short = i18n.T("cmd.root.short")
	rootCmd.Long = i18n.T("cmd.root.long")

	for name, id := range map[string]string{
		"settings":   "flags.settings",
		"config":     "flags.config",
		"format":     "flags.format",
		"verbose":    "flags.verbose",
		"debug":      "flags.debug",
		"log-file":   "flags.logFile",
		"log-format": "flags.logFormat",
		"no-color":   "flags.noColor",
		"lang":       "flags.lang",
	} {
		if flag := rootCmd.PersistentFlags().Lookup(name); flag != nil {
			flag.Usage = i18n.T(id)
		}
	}

	showCmd.Short = i18n.T("cmd.show.short")
	showCmd.Long = i18n.T("cmd.show.long")

	getCmd.Short = i18n.T("cmd.get.short")
	getCmd.Long = i18n.T("cmd.get.long")

	reposCmd.Short = i18n.T("cmd.repos.short")
	reposCmd.Long = i18n.T("cmd.repos.long")

	repoCmd.Short = i18n.T("cmd.repo.short")
	repoCmd.Long = i18n.T("cmd.repo.long")

	checkCmd.Short = i18n.T("cmd.check.short")
	checkCmd.Long = i18n.T("cmd.check.long")

	versionCmd.Short = i18n.T("cmd.version.short")
	versionCmd.Long = i18n.T("cmd.version.long")
}
