package pacconf

import (
	"strconv"
	"strings"

	"github.com/huanfeng/pacview/internal/errors"
	"github.com/huanfeng/pacview/pkg/models"
)

// policy decides which occurrences of a directive are used.
type policy int

const (
	// firstWins keeps only the earliest value in the section.
	firstWins policy = iota
	// accumulate keeps every value in file order.
	accumulate
)

// fieldKind controls how a directive is rendered back to pacman.conf.
type fieldKind int

const (
	kindString fieldKind = iota
	kindList
	kindBool
)

// optionField binds one [options] directive to an Options field.
type optionField struct {
	key    string
	policy policy
	kind   fieldKind
	// set receives the first value for firstWins fields and every value for
	// accumulate fields.
	set func(o *models.Options, values []string) error
	get func(o *models.Options) []string
}

func stringField(key string, ptr func(o *models.Options) *string) optionField {
	return optionField{
		key:    key,
		policy: firstWins,
		kind:   kindString,
		set: func(o *models.Options, values []string) error {
			*ptr(o) = values[0]
			return nil
		},
		get: func(o *models.Options) []string { return []string{*ptr(o)} },
	}
}

func listField(key string, ptr func(o *models.Options) *[]string) optionField {
	return optionField{
		key:    key,
		policy: accumulate,
		kind:   kindList,
		set: func(o *models.Options, values []string) error {
			*ptr(o) = append([]string(nil), values...)
			return nil
		},
		get: func(o *models.Options) []string { return *ptr(o) },
	}
}

func boolField(key string, ptr func(o *models.Options) *bool) optionField {
	return optionField{
		key:    key,
		policy: firstWins,
		kind:   kindBool,
		set: func(o *models.Options, values []string) error {
			b, err := parseBool(key, values[0])
			if err != nil {
				return err
			}
			*ptr(o) = b
			return nil
		},
		get: func(o *models.Options) []string {
			if *ptr(o) {
				return []string{"yes"}
			}
			return []string{"no"}
		},
	}
}

// optionFields lists every recognized global directive. Its order is the
// order used when rendering.
var optionFields = []optionField{
	stringField("RootDir", func(o *models.Options) *string { return &o.RootDir }),
	stringField("DBPath", func(o *models.Options) *string { return &o.DBPath }),
	listField("CacheDir", func(o *models.Options) *[]string { return &o.CacheDirs }),
	listField("HookDir", func(o *models.Options) *[]string { return &o.HookDirs }),
	stringField("GPGDir", func(o *models.Options) *string { return &o.GPGDir }),
	stringField("LogFile", func(o *models.Options) *string { return &o.LogFile }),
	listField("HoldPkg", func(o *models.Options) *[]string { return &o.HoldPkg }),
	listField("IgnorePkg", func(o *models.Options) *[]string { return &o.IgnorePkg }),
	listField("IgnoreGroup", func(o *models.Options) *[]string { return &o.IgnoreGroup }),
	listField("Include", func(o *models.Options) *[]string { return &o.Includes }),
	{
		key:    "Architecture",
		policy: firstWins,
		kind:   kindString,
		set: func(o *models.Options, values []string) error {
			arch, err := models.ParseArchitecture(values[0])
			if err != nil {
				return errors.NewInvalidValueError("Architecture", values[0], nil)
			}
			o.Architecture = arch
			return nil
		},
		get: func(o *models.Options) []string { return []string{o.Architecture.String()} },
	},
	stringField("XferCommand", func(o *models.Options) *string { return &o.XferCommand }),
	listField("NoUpgrade", func(o *models.Options) *[]string { return &o.NoUpgrade }),
	listField("NoExtract", func(o *models.Options) *[]string { return &o.NoExtract }),
	{
		key:    "CleanMethod",
		policy: firstWins,
		kind:   kindString,
		set: func(o *models.Options, values []string) error {
			method, err := models.ParseCleanMethod(values[0])
			if err != nil {
				return errors.NewInvalidValueError("CleanMethod", values[0], nil)
			}
			o.CleanMethod = method
			return nil
		},
		get: func(o *models.Options) []string { return []string{o.CleanMethod.String()} },
	},
	stringField("SigLevel", func(o *models.Options) *string { return &o.SigLevel }),
	stringField("LocalFileSigLevel", func(o *models.Options) *string { return &o.LocalFileSigLevel }),
	stringField("RemoteFileSigLevel", func(o *models.Options) *string { return &o.RemoteFileSigLevel }),
	boolField("UseSyslog", func(o *models.Options) *bool { return &o.UseSyslog }),
	boolField("Color", func(o *models.Options) *bool { return &o.Color }),
	boolField("NoProgressBar", func(o *models.Options) *bool { return &o.NoProgressBar }),
	boolField("CheckSpace", func(o *models.Options) *bool { return &o.CheckSpace }),
	boolField("VerbosePkgLists", func(o *models.Options) *bool { return &o.VerbosePkgLists }),
	boolField("DisableDownloadTimeout", func(o *models.Options) *bool { return &o.DisableDownloadTimeout }),
	{
		key:    "ParallelDownloads",
		policy: firstWins,
		kind:   kindString,
		set: func(o *models.Options, values []string) error {
			n, err := strconv.ParseUint(values[0], 10, 32)
			if err != nil {
				return errors.NewInvalidValueError("ParallelDownloads", values[0], err)
			}
			o.ParallelDownloads = uint32(n)
			return nil
		},
		get: func(o *models.Options) []string {
			return []string{strconv.FormatUint(uint64(o.ParallelDownloads), 10)}
		},
	},
	stringField("DownloadUser", func(o *models.Options) *string { return &o.DownloadUser }),
	boolField("DisableSandbox", func(o *models.Options) *bool { return &o.DisableSandbox }),
}

// repoField binds one first-wins repository directive. Include and Server
// are handled by the resolver because their order depends on each other.
type repoField struct {
	key string
	set func(r *models.Repository, value string) error
	get func(r *models.Repository) []string
}

var repoFields = []repoField{
	{
		key: "SigLevel",
		set: func(r *models.Repository, value string) error {
			r.SigLevel = value
			return nil
		},
		get: func(r *models.Repository) []string { return []string{r.SigLevel} },
	},
	{
		key: "Usage",
		set: func(r *models.Repository, value string) error {
			usage, err := models.ParseUsage(value)
			if err != nil {
				return errors.NewInvalidValueError("Usage", value, nil)
			}
			r.Usage = usage
			return nil
		},
		get: func(r *models.Repository) []string { return []string{r.Usage.String()} },
	},
	{
		key: "CacheServer",
		set: func(r *models.Repository, value string) error {
			v := value
			r.CacheServer = &v
			return nil
		},
		get: func(r *models.Repository) []string {
			if r.CacheServer == nil {
				return nil
			}
			return []string{*r.CacheServer}
		},
	},
}

// parseBool accepts yes and no in any case.
func parseBool(field, value string) (bool, error) {
	switch strings.ToLower(value) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, errors.NewInvalidValueError(field, value, nil)
	}
}
