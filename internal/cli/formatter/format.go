package formatter

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatSeconds renders whole seconds as zero-padded HH:MM:SS, the display
// format used everywhere durations appear.
func FormatSeconds(sec int64) string {
	if sec < 0 {
		sec = 0
	}
	h := sec / 3600
	m := sec % 3600 / 60
	s := sec % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Money renders an amount in the given ISO 4217 currency, localized for the
// given BCP 47 language tag. Unknown codes or tags fall back to USD/English
// rather than failing a render.
func Money(amount float64, currencyCode, lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		unit = currency.USD
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.NarrowSymbol(unit.Amount(amount)))
}

// Timestamp renders an absolute timestamp for report listings.
func Timestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
