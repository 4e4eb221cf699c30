package ui

import (
	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeySearchHint      = "search_hint"
	KeyTopTracksTitle  = "top_tracks_title"
	KeyLoading         = "loading"
	KeyNoArtists       = "no_artists"
	KeyNoTracks        = "no_tracks"
	KeySettings        = "settings"
	KeyCountry         = "country"
	KeyLanguage        = "language"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeySettingsSaved   = "settings_saved"
	KeyInvalidCountry  = "invalid_country"
	KeyNoPreview       = "no_preview"
	KeyNowPlayingTrack = "now_playing_track"
)

// supportedLanguages lists translations in matcher preference order
var supportedLanguages = []language.Tag{language.English, language.Russian, language.Portuguese}

var languageMatcher = language.NewMatcher(supportedLanguages)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the closest
// translation to the device locale.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// systemLanguage maps the device locale onto a supported language
func systemLanguage() string {
	return matchLanguage(string(lang.SystemLocale()))
}

// matchLanguage returns the supported base language closest to a BCP 47
// locale such as "pt-BR", falling back to English.
func matchLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return "en"
	}
	base, _ := supportedLanguages[idx].Base()
	return base.String()
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Spotify Streamer",
		KeySearchHint:      "Search for an artist",
		KeyTopTracksTitle:  "Top 10 Tracks",
		KeyLoading:         "Loading...",
		KeyNoArtists:       "No artists found. Please refine your search.",
		KeyNoTracks:        "No tracks found for this artist.",
		KeySettings:        "Settings",
		KeyCountry:         "Country",
		KeyLanguage:        "Language",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeySettingsSaved:   "Settings saved",
		KeyInvalidCountry:  "Invalid country code",
		KeyNoPreview:       "No preview available",
		KeyNowPlayingTrack: "Selected: %s",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Spotify Streamer",
		KeySearchHint:      "Найти исполнителя",
		KeyTopTracksTitle:  "Топ 10 треков",
		KeyLoading:         "Загрузка...",
		KeyNoArtists:       "Исполнители не найдены. Уточните запрос.",
		KeyNoTracks:        "У этого исполнителя нет треков.",
		KeySettings:        "Настройки",
		KeyCountry:         "Страна",
		KeyLanguage:        "Язык",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeySettingsSaved:   "Настройки сохранены",
		KeyInvalidCountry:  "Неверный код страны",
		KeyNoPreview:       "Превью недоступно",
		KeyNowPlayingTrack: "Выбрано: %s",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Spotify Streamer",
		KeySearchHint:      "Pesquisar um artista",
		KeyTopTracksTitle:  "Top 10 Faixas",
		KeyLoading:         "Carregando...",
		KeyNoArtists:       "Nenhum artista encontrado. Refine sua pesquisa.",
		KeyNoTracks:        "Nenhuma faixa encontrada para este artista.",
		KeySettings:        "Configurações",
		KeyCountry:         "País",
		KeyLanguage:        "Idioma",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeySettingsSaved:   "Configurações salvas",
		KeyInvalidCountry:  "Código de país inválido",
		KeyNoPreview:       "Prévia indisponível",
		KeyNowPlayingTrack: "Selecionada: %s",
	}
}
