package constants

// Language
const (
	EnglishLanguage = "en"
)
