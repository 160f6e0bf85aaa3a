package domain

// Settings holds user preferences, persisted in their own snapshot namespace.
type Settings struct {
	Name        string
	PhoneNumber string
	// HourlyRate is the default rate offered when adding a category.
	HourlyRate float64
	Currency   string // ISO 4217 code, e.g. "USD"
	Language   string // BCP 47 tag, e.g. "en"
}

// DefaultSettings returns the settings used when nothing has been persisted
// yet, or when the persisted blob cannot be read.
func DefaultSettings() Settings {
	return Settings{Currency: "USD", Language: "en"}
}
