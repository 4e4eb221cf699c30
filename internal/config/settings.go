package config

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/ytget/spotify-streamer/internal/catalog"
)

// ErrInvalidCountry is returned for a country that is not an ISO 3166-1
// alpha-2 code.
var ErrInvalidCountry = errors.New("invalid country code")

// Settings keys for Fyne preferences
const (
	KeyCountry  = "pref_country"
	KeyLanguage = "app_language"
)

// Default values
const (
	DefaultCountry  = catalog.DefaultMarket
	DefaultLanguage = "system"
)

// countryOptions are the markets offered in the settings dialog
var countryOptions = []string{
	"US", "GB", "CA", "AU", "DE", "FR", "ES", "IT",
	"NL", "SE", "PT", "BR", "MX", "JP", "RU",
}

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetCountry returns the market used for top-tracks lookups
func (s *Settings) GetCountry() string {
	country := s.app.Preferences().String(KeyCountry)
	if country == "" {
		s.app.Preferences().SetString(KeyCountry, DefaultCountry)
		return DefaultCountry
	}
	return country
}

// SetCountry validates and stores the market. The stored value is the
// canonical upper case code.
func (s *Settings) SetCountry(country string) error {
	code, err := NormalizeCountry(country)
	if err != nil {
		return err
	}
	s.app.Preferences().SetString(KeyCountry, code)
	return nil
}

// NormalizeCountry returns the upper case form of an ISO 3166-1 alpha-2 code
func NormalizeCountry(country string) (string, error) {
	country = strings.TrimSpace(country)
	if len(country) != 2 || !isLetter(country[0]) || !isLetter(country[1]) {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountry, country)
	}

	region, err := language.ParseRegion(country)
	if err != nil || !region.IsCountry() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountry, country)
	}
	return region.String(), nil
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// GetCountryOptions returns the selectable markets in display order
func (s *Settings) GetCountryOptions() []string {
	out := make([]string, len(countryOptions))
	copy(out, countryOptions)
	return out
}

// CountryName returns the English display name of a market, or the code
// itself when it has none.
func CountryName(code string) string {
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}
	if name := display.English.Regions().Name(region); name != "" {
		return name
	}
	return code
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
