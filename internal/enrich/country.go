package enrich

import (
	"github.com/yt-prospector/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CountryName maps a 2-letter country code to its English name. Absent or
// unrecognised codes map to the NotAvailable sentinel, never to an error.
func CountryName(code string) string {
	if code == "" {
		return models.NotAvailable
	}
	region, err := language.ParseRegion(code)
	if err != nil {
		return models.NotAvailable
	}
	name := display.English.Regions().Name(region)
	if name == "" {
		return models.NotAvailable
	}
	return name
}
