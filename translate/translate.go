// Package translate renders user-facing message strings in the host's
// locale. Error messages across the repo route their formats through From,
// so a future message catalog can localize them without touching call sites.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hrm: locale: %v", err)
	}

	if len(locales) == 0 {
		// No detectable host locale; messages stay in en-US.
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
