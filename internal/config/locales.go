package config

const (
	LangEN = "en"
	LangPL = "pl"
)

// SupportedLanguages lists the languages shipped with embedded catalogs.
func SupportedLanguages() []string {
	return []string{LangEN, LangPL}
}

func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages() {
		if l == lang {
			return true
		}
	}
	return false
}
