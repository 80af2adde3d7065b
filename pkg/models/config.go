package models

// Settings represents the pacview tool settings
type Settings struct {
	ConfigPath string `mapstructure:"config_path" json:"config_path"`
	Format     string `mapstructure:"format" json:"format"` // "text", "json", "yaml", "toml"
	Color      bool   `mapstructure:"color" json:"color"`
	Lang       string `mapstructure:"lang" json:"lang"`
	LogLevel   string `mapstructure:"log_level" json:"log_level"` // "debug", "info", "warn", "error"
	LogFile    string `mapstructure:"log_file" json:"log_file"`
	LogFormat  string `mapstructure:"log_format" json:"log_format"` // "text", "json"
}

// Configuration is a fully resolved pacman configuration
type Configuration struct {
	Options      Options      `json:"options" yaml:"options" toml:"options"`
	Repositories []Repository `json:"repositories" yaml:"repositories" toml:"repositories"`
}

// Repository returns the repository with the given name, or nil
func (c *Configuration) Repository(name string) *Repository {
	for i := range c.Repositories {
		if c.Repositories[i].Name == name {
			return &c.Repositories[i]
		}
	}
	return nil
}

// Options holds the global settings from the [options] section
type Options struct {
	RootDir                string       `json:"root_dir" yaml:"root_dir" toml:"root_dir"`
	DBPath                 string       `json:"db_path" yaml:"db_path" toml:"db_path"`
	CacheDirs              []string     `json:"cache_dirs" yaml:"cache_dirs" toml:"cache_dirs"`
	HookDirs               []string     `json:"hook_dirs" yaml:"hook_dirs" toml:"hook_dirs"`
	GPGDir                 string       `json:"gpg_dir" yaml:"gpg_dir" toml:"gpg_dir"`
	LogFile                string       `json:"log_file" yaml:"log_file" toml:"log_file"`
	HoldPkg                []string     `json:"hold_pkg" yaml:"hold_pkg" toml:"hold_pkg"`
	IgnorePkg              []string     `json:"ignore_pkg" yaml:"ignore_pkg" toml:"ignore_pkg"`
	IgnoreGroup            []string     `json:"ignore_group" yaml:"ignore_group" toml:"ignore_group"`
	Includes               []string     `json:"includes" yaml:"includes" toml:"includes"`
	Architecture           Architecture `json:"architecture" yaml:"architecture" toml:"architecture"`
	XferCommand            string       `json:"xfer_command" yaml:"xfer_command" toml:"xfer_command"`
	NoUpgrade              []string     `json:"no_upgrade" yaml:"no_upgrade" toml:"no_upgrade"`
	NoExtract              []string     `json:"no_extract" yaml:"no_extract" toml:"no_extract"`
	CleanMethod            CleanMethod  `json:"clean_method" yaml:"clean_method" toml:"clean_method"`
	SigLevel               string       `json:"sig_level" yaml:"sig_level" toml:"sig_level"`
	LocalFileSigLevel      string       `json:"local_file_sig_level" yaml:"local_file_sig_level" toml:"local_file_sig_level"`
	RemoteFileSigLevel     string       `json:"remote_file_sig_level" yaml:"remote_file_sig_level" toml:"remote_file_sig_level"`
	UseSyslog              bool         `json:"use_syslog" yaml:"use_syslog" toml:"use_syslog"`
	Color                  bool         `json:"color" yaml:"color" toml:"color"`
	NoProgressBar          bool         `json:"no_progress_bar" yaml:"no_progress_bar" toml:"no_progress_bar"`
	CheckSpace             bool         `json:"check_space" yaml:"check_space" toml:"check_space"`
	VerbosePkgLists        bool         `json:"verbose_pkg_lists" yaml:"verbose_pkg_lists" toml:"verbose_pkg_lists"`
	DisableDownloadTimeout bool         `json:"disable_download_timeout" yaml:"disable_download_timeout" toml:"disable_download_timeout"`
	ParallelDownloads      uint32       `json:"parallel_downloads" yaml:"parallel_downloads" toml:"parallel_downloads"`
	DownloadUser           string       `json:"download_user" yaml:"download_user" toml:"download_user"`
	DisableSandbox         bool         `json:"disable_sandbox" yaml:"disable_sandbox" toml:"disable_sandbox"`
}

// DefaultSigLevel is used for [options] and for every repository that does
// not set its own SigLevel.
const DefaultSigLevel = "Required DatabaseOptional"

// DefaultOptions returns Options populated with pacman's defaults
func DefaultOptions() Options {
	return Options{
		RootDir:            "/",
		DBPath:             "/var/lib/pacman/",
		CacheDirs:          []string{"/var/cache/pacman/pkg/"},
		HookDirs:           []string{"/etc/pacman.d/hooks"},
		GPGDir:             "/etc/pacman.d/gnupg",
		LogFile:            "/var/log/pacman.log",
		HoldPkg:            []string{},
		IgnorePkg:          []string{},
		IgnoreGroup:        []string{},
		Includes:           []string{},
		Architecture:       ArchitectureAuto,
		NoUpgrade:          []string{},
		NoExtract:          []string{},
		CleanMethod:        CleanMethodKeepInstalled,
		SigLevel:           DefaultSigLevel,
		LocalFileSigLevel:  "MD5SUM",
		RemoteFileSigLevel: "MD5SUM",
		Color:              true,
		ParallelDownloads:  5,
		DownloadUser:       "nobody",
	}
}
