package ui

import (
	"errors"
	"log"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/spotify-streamer/internal/config"
)

// SettingsDialog edits the country and language preferences
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(countryChanged, languageChanged bool)

	// UI components
	countrySelect  *widget.Select
	languageSelect *widget.Select

	// display label <-> code
	countryCodes  map[string]string
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(countryChanged, languageChanged bool)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		countryCodes:  make(map[string]string),
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func countryLabel(code string) string {
	return config.CountryName(code) + " (" + code + ")"
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	countryOptions := []string{}
	for _, code := range sd.settings.GetCountryOptions() {
		label := countryLabel(code)
		sd.countryCodes[label] = code
		countryOptions = append(countryOptions, label)
	}
	sd.countrySelect = widget.NewSelect(countryOptions, nil)

	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyCountry)+":"),
		sd.countrySelect,
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.countrySelect.SetSelected(countryLabel(sd.settings.GetCountry()))

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
}

// apply stores the selected values and reports what changed
func (sd *SettingsDialog) apply() {
	countryChanged, languageChanged := false, false

	if code, ok := sd.countryCodes[sd.countrySelect.Selected]; ok && code != sd.settings.GetCountry() {
		if err := sd.settings.SetCountry(code); err != nil {
			log.Printf("Settings: %v", err)
			dialog.ShowError(errors.New(sd.localization.GetText(KeyInvalidCountry)), sd.window)
			return
		}
		countryChanged = true
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok && code != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(code)
		languageChanged = true
	}

	log.Printf("Settings saved: country=%s language=%s", sd.settings.GetCountry(), sd.settings.GetLanguage())
	if sd.onSaved != nil {
		sd.onSaved(countryChanged, languageChanged)
	}
}
