package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	bundle          *goi18n.Bundle
	localizer       *goi18n.Localizer
	currentLanguage = language.English
	supported       = []language.Tag{language.English, language.Chinese}
	matcher         = language.NewMatcher(supported)
)

//go:embed locales/*.toml
var localeFS embed.FS

// Init loads the embedded locales and picks a language from, in order:
//  1. langOverride (from --lang or settings)
//  2. PACVIEW_LANG
//  3. LC_ALL / LC_MESSAGES / LANG
//  4. platform locales (Windows only)
//
// English is used when nothing matches.
func Init(langOverride string) error {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, tag := range supported {
		file := fmt.Sprintf("locales/active.%s.toml", tag.String())
		if _, err := b.LoadMessageFileFS(localeFS, file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	chosen := selectLanguage(langOverride)
	bundle = b
	localizer = goi18n.NewLocalizer(bundle, chosen.String(), language.English.String())
	currentLanguage = chosen
	return nil
}

// T translates a message by ID. The ID itself is returned when no
// translation exists.
func T(id string, data ...map[string]interface{}) string {
	if localizer == nil {
		if err := Init(""); err != nil {
			fmt.Fprintf(os.Stderr, "i18n init failed: %v\n", err)
			return id
		}
	}

	var templateData map[string]interface{}
	if len(data) > 0 {
		templateData = data[0]
	}

	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:      id,
		TemplateData:   templateData,
		PluralCount:    templateData["Count"],
		DefaultMessage: &goi18n.Message{ID: id, Other: id},
	})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// CurrentLanguage returns the chosen language tag
func CurrentLanguage() language.Tag {
	return currentLanguage
}

func selectLanguage(langOverride string) language.Tag {
	var candidates []string
	if langOverride != "" {
		candidates = append(candidates, langOverride)
	}
	for _, key := range []string{"PACVIEW_LANG", "LC_ALL", "LC_MESSAGES", "LANG"} {
		if val := strings.TrimSpace(os.Getenv(key)); val != "" {
			candidates = append(candidates, val)
		}
	}
	if len(candidates) == 0 {
		candidates = getPlatformLocales()
	}

	// The first usable candidate wins
	for _, cand := range candidates {
		// zh_CN.UTF-8 -> zh-CN
		clean, _, _ := strings.Cut(strings.TrimSpace(cand), ".")
		clean = strings.ReplaceAll(clean, "_", "-")
		if clean == "" || strings.EqualFold(clean, "C") || strings.EqualFold(clean, "POSIX") {
			continue
		}
		// zh-TW and zh-HK should still get the Chinese catalog
		if strings.HasPrefix(strings.ToLower(clean), "zh") {
			return language.Chinese
		}
		tag, err := language.Parse(clean)
		if err != nil {
			continue
		}
		if _, idx, conf := matcher.Match(tag); conf != language.No {
			return supported[idx]
		}
	}
	return language.English
}
