package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func clearLocaleEnv(t *testing.T) {
	for _, key := range []string{"PACVIEW_LANG", "LC_ALL", "LC_MESSAGES", "LANG"} {
		t.Setenv(key, "")
	}
}

func TestSelectLanguage(t *testing.T) {
	clearLocaleEnv(t)

	assert.Equal(t, language.Chinese, selectLanguage("zh_CN.UTF-8"))
	assert.Equal(t, language.English, selectLanguage("en_US"))
	assert.Equal(t, language.English, selectLanguage("C"))

	t.Setenv("LANG", "zh_TW.UTF-8")
	assert.Equal(t, language.Chinese, selectLanguage(""))
}

func TestTranslate(t *testing.T) {
	clearLocaleEnv(t)

	require.NoError(t, Init("en"))
	assert.Equal(t, language.English, CurrentLanguage())
	assert.Equal(t, "List configured repositories", T("cmd.repos.short"))
	assert.Equal(t, "/etc/pacman.conf: OK (1 repository)", T("check.ok", map[string]interface{}{"Path": "/etc/pacman.conf", "Count": 1}))
	assert.Equal(t, "/etc/pacman.conf: OK (3 repositories)", T("check.ok", map[string]interface{}{"Path": "/etc/pacman.conf", "Count": 3}))
	assert.Equal(t, "no.such.message", T("no.such.message"))

	require.NoError(t, Init("zh"))
	assert.Equal(t, "列出已配置的仓库", T("cmd.repos.short"))
}
