package cmd

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/huanfeng/pacview/internal/config"
	"github.com/huanfeng/pacview/internal/errors"
	"github.com/huanfeng/pacview/internal/i18n"
	"github.com/huanfeng/pacview/internal/version"
	"github.com/huanfeng/pacview/pkg/models"
	"github.com/huanfeng/pacview/pkg/pacconf"
	"github.com/huanfeng/pacview/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	settingsFile string
	pacmanConf   string
	outputFormat string
	verbose      bool
	debug        bool
	logFile      string
	logFormat    string
	noColor      bool
	lang         string

	settings *models.Settings
)

var rootCmd = &cobra.Command{
	Use:   "pacview",
	Short: "pacview - inspect pacman configuration",
	Long: `pacview reads a pacman.conf file, expands repository Include
mirrorlists and prints the resolved configuration.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// reportedError marks an error a command has already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the root command and exits on failure
func Execute() {
	if err := i18n.Init(langFromArgs(os.Args[1:])); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	applyCommandLocalization()

	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs rootCmd, reports its error and releases the logger whether
// or not the command succeeded.
func execute() error {
	defer closeLogger()

	err := rootCmd.Execute()
	if err != nil {
		errors.Handle(err)
		var reported *reportedError
		if !stderrors.As(err, &reported) {
			fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}
	return err
}

func closeLogger() {
	errors.InitGlobalErrorHandler(nil)
	if err := utils.CloseGlobalLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
	}
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&settingsFile, "settings", "", "pacview settings file")
	flags.StringVarP(&pacmanConf, "config", "c", "", "path to pacman.conf")
	flags.StringVarP(&outputFormat, "format", "o", "", "output format: text, json, yaml or toml")
	flags.BoolVar(&verbose, "verbose", false, "enable info logging")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	flags.StringVar(&logFile, "log-file", "", "also write logs to this file")
	flags.StringVar(&logFormat, "log-format", "", "log format: text or json")
	flags.BoolVar(&noColor, "no-color", false, "disable colored log output")
	flags.StringVar(&lang, "lang", "", "interface language (en, zh)")
}

// setup loads settings, applies flag overrides and creates the logger.
func setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	for key, name := range map[string]string{
		"config_path": "config",
		"format":      "format",
		"log_file":    "log-file",
		"log_format":  "log-format",
		"lang":        "lang",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}

	s, err := config.Load(settingsFile)
	if err != nil {
		return errors.WrapError(err, errors.KindConfiguration, "SETTINGS", "failed to load settings")
	}
	if noColor {
		s.Color = false
	}
	switch {
	case debug:
		s.LogLevel = "debug"
	case verbose:
		s.LogLevel = "info"
	}
	settings = s

	if s.Lang != "" && s.Lang != i18n.CurrentLanguage().String() {
		if err := i18n.Init(s.Lang); err != nil {
			return err
		}
		applyCommandLocalization()
	}

	level, err := utils.ParseLogLevel(s.LogLevel)
	if err != nil {
		return errors.NewConfigurationError("LOG_LEVEL", err.Error())
	}
	format, err := utils.ParseLogFormat(s.LogFormat)
	if err != nil {
		return errors.NewConfigurationError("LOG_FORMAT", err.Error())
	}
	closeLogger()
	l, err := utils.InitGlobalLogger(&utils.LoggerConfig{
		Level:       level,
		Format:      format,
		Output:      cmd.ErrOrStderr(),
		FilePath:    s.LogFile,
		EnableColor: s.Color,
	})
	if err != nil {
		return err
	}
	errors.InitGlobalErrorHandler(l)

	utils.Debug("settings: config=%s format=%s", s.ConfigPath, s.Format)
	return nil
}

// loadConfiguration resolves the pacman.conf selected by settings and flags.
func loadConfiguration() (*models.Configuration, error) {
	resolver := pacconf.NewResolver(pacconf.WithLogger(utils.GetGlobalLogger()))
	cfg, err := resolver.Parse(settings.ConfigPath)
	if err != nil {
		return nil, err
	}
	utils.Info("loaded %s: %d repositories", settings.ConfigPath, len(cfg.Repositories))
	return cfg, nil
}

// langFromArgs finds --lang before cobra parses flags, so help text can be
// localized too.
func langFromArgs(args []string) string {
	for i, arg := range args {
		if v, ok := strings.CutPrefix(arg, "--lang="); ok {
			return v
		}
		if arg == "--lang" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
