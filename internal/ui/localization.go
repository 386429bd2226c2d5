package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyLibraryTitle     = "library_title"
	KeyListen           = "listen"
	KeyPauseAction      = "pause_action"
	KeyRestart          = "restart"
	KeyBackToLibrary    = "back_to_library"
	KeyAddAudiobook     = "add_audiobook"
	KeyRefresh          = "refresh"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyLibraryDirectory = "library_directory"
	KeyTickInterval     = "tick_interval"
	KeyResumePlayback   = "resume_playback"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyNoAudiobooks     = "no_audiobooks"
	KeyScanFailed       = "scan_failed"
	KeyAudiobookAdded   = "audiobook_added"
	KeyAddFailed        = "add_failed"
	KeyLoadFailed       = "load_failed"
	KeyRevealFailed     = "reveal_failed"
	KeyUnknownAuthor    = "unknown_author"
	KeyVolume           = "volume"
	KeyQuit             = "quit"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
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
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Audrey",
		KeyLibraryTitle:     "Available Audiobooks",
		KeyListen:           "Listen",
		KeyPauseAction:      "Pause",
		KeyRestart:          "Restart",
		KeyBackToLibrary:    "Back to Library",
		KeyAddAudiobook:     "Add Audiobook",
		KeyRefresh:          "Refresh",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyLibraryDirectory: "Library Directory",
		KeyTickInterval:     "Update Interval (ms)",
		KeyResumePlayback:   "Resume where I left off",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyNoAudiobooks:     "No audiobooks found",
		KeyScanFailed:       "Could not read the library directory",
		KeyAudiobookAdded:   "Audiobook added successfully!",
		KeyAddFailed:        "Failed to add audiobook",
		KeyLoadFailed:       "Could not open audiobook",
		KeyRevealFailed:     "Error opening file",
		KeyUnknownAuthor:    "Unknown author",
		KeyVolume:           "Volume",
		KeyQuit:             "Quit",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Audrey",
		KeyLibraryTitle:     "Livros Disponíveis",
		KeyListen:           "Ouvir",
		KeyPauseAction:      "Pausar",
		KeyRestart:          "Reiniciar",
		KeyBackToLibrary:    "Voltar para Biblioteca",
		KeyAddAudiobook:     "Adicionar Audiolivro",
		KeyRefresh:          "Atualizar",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyLibraryDirectory: "Diretório da Biblioteca",
		KeyTickInterval:     "Intervalo de Atualização (ms)",
		KeyResumePlayback:   "Continuar de onde parei",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyNoAudiobooks:     "Nenhum audiolivro encontrado",
		KeyScanFailed:       "Não foi possível ler o diretório da biblioteca",
		KeyAudiobookAdded:   "Audiolivro adicionado com sucesso!",
		KeyAddFailed:        "Falha ao adicionar audiolivro",
		KeyLoadFailed:       "Não foi possível abrir o audiolivro",
		KeyRevealFailed:     "Erro ao abrir arquivo",
		KeyUnknownAuthor:    "Autor desconhecido",
		KeyVolume:           "Volume",
		KeyQuit:             "Sair",
	}
}
