//go:build !windows

package i18n

// getPlatformLocales is empty outside Windows; LANG and friends are enough.
func getPlatformLocales() []string {
	return nil
}
