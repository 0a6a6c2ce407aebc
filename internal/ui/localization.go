package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeySelectFile           = "select_file"
	KeyNoFileSelected       = "no_file_selected"
	KeyBrowse               = "browse"
	KeySelectFormat         = "select_format"
	KeySelectVersion        = "select_version"
	KeyConvert              = "convert"
	KeyCancel               = "cancel"
	KeySettings             = "settings"
	KeyFile                 = "file"
	KeyLanguage             = "language"
	KeySave                 = "save"
	KeyError                = "error"
	KeySuccess              = "success"
	KeyCancelled            = "cancelled"
	KeyPleaseSelectFile     = "please_select_file"
	KeyPleaseSelectVersion  = "please_select_version"
	KeyUnsupportedFile      = "unsupported_file"
	KeyFileNotFound         = "file_not_found"
	KeyInvalidVersion       = "invalid_version"
	KeyConverting           = "converting"
	KeyConversionSucceeded  = "conversion_succeeded"
	KeyConversionFailed     = "conversion_failed"
	KeyConversionCancelled  = "conversion_cancelled"
	KeyAlreadyConverting    = "already_converting"
	KeyConverterPath        = "converter_path"
	KeyConverterPlaceholder = "converter_placeholder"
	KeyAutoReveal           = "auto_reveal"
	KeyNativeDialog         = "native_dialog"
	KeySettingsSaved        = "settings_saved"
	KeyErrorOpeningFile     = "error_opening_file"
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
	if lang == "system" || lang == "" {
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
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:             "VegasCon",
		KeySelectFile:           "Select .veg or .vf file:",
		KeyNoFileSelected:       "No file selected",
		KeyBrowse:               "Browse",
		KeySelectFormat:         "Select format to convert to:",
		KeySelectVersion:        "Select target version:",
		KeyConvert:              "Convert",
		KeyCancel:               "Cancel",
		KeySettings:             "Settings",
		KeyFile:                 "File",
		KeyLanguage:             "Language",
		KeySave:                 "Save",
		KeyError:                "Error",
		KeySuccess:              "Success",
		KeyCancelled:            "Cancelled",
		KeyPleaseSelectFile:     "Please select a .veg or .vf file.",
		KeyPleaseSelectVersion:  "Please select a target version.",
		KeyUnsupportedFile:      "Only .veg and .vf files are supported.",
		KeyFileNotFound:         "The selected file no longer exists.",
		KeyInvalidVersion:       "The selected version is not supported for this format.",
		KeyConverting:           "Converting...",
		KeyConversionSucceeded:  "File converted successfully.",
		KeyConversionFailed:     "Conversion failed.",
		KeyConversionCancelled:  "Conversion cancelled.",
		KeyAlreadyConverting:    "A conversion is already running.",
		KeyConverterPath:        "Converter executable",
		KeyConverterPlaceholder: "Detect automatically (msvpvf.exe)",
		KeyAutoReveal:           "Reveal converted file when done",
		KeyNativeDialog:         "Use the system file dialog",
		KeySettingsSaved:        "Settings saved successfully!",
		KeyErrorOpeningFile:     "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:             "VegasCon",
		KeySelectFile:           "Выберите файл .veg или .vf:",
		KeyNoFileSelected:       "Файл не выбран",
		KeyBrowse:               "Обзор",
		KeySelectFormat:         "Выберите формат для конвертации:",
		KeySelectVersion:        "Выберите целевую версию:",
		KeyConvert:              "Конвертировать",
		KeyCancel:               "Отмена",
		KeySettings:             "Настройки",
		KeyFile:                 "Файл",
		KeyLanguage:             "Язык",
		KeySave:                 "Сохранить",
		KeyError:                "Ошибка",
		KeySuccess:              "Готово",
		KeyCancelled:            "Отменено",
		KeyPleaseSelectFile:     "Пожалуйста, выберите файл .veg или .vf.",
		KeyPleaseSelectVersion:  "Пожалуйста, выберите целевую версию.",
		KeyUnsupportedFile:      "Поддерживаются только файлы .veg и .vf.",
		KeyFileNotFound:         "Выбранный файл больше не существует.",
		KeyInvalidVersion:       "Выбранная версия не поддерживается для этого формата.",
		KeyConverting:           "Конвертация...",
		KeyConversionSucceeded:  "Файл успешно сконвертирован.",
		KeyConversionFailed:     "Ошибка конвертации.",
		KeyConversionCancelled:  "Конвертация отменена.",
		KeyAlreadyConverting:    "Конвертация уже выполняется.",
		KeyConverterPath:        "Исполняемый файл конвертера",
		KeyConverterPlaceholder: "Определить автоматически (msvpvf.exe)",
		KeyAutoReveal:           "Показать файл после конвертации",
		KeyNativeDialog:         "Использовать системный диалог выбора файла",
		KeySettingsSaved:        "Настройки успешно сохранены!",
		KeyErrorOpeningFile:     "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:             "VegasCon",
		KeySelectFile:           "Selecione um arquivo .veg ou .vf:",
		KeyNoFileSelected:       "Nenhum arquivo selecionado",
		KeyBrowse:               "Navegar",
		KeySelectFormat:         "Selecione o formato de destino:",
		KeySelectVersion:        "Selecione a versão de destino:",
		KeyConvert:              "Converter",
		KeyCancel:               "Cancelar",
		KeySettings:             "Configurações",
		KeyFile:                 "Arquivo",
		KeyLanguage:             "Idioma",
		KeySave:                 "Salvar",
		KeyError:                "Erro",
		KeySuccess:              "Sucesso",
		KeyCancelled:            "Cancelado",
		KeyPleaseSelectFile:     "Por favor, selecione um arquivo .veg ou .vf.",
		KeyPleaseSelectVersion:  "Por favor, selecione uma versão de destino.",
		KeyUnsupportedFile:      "Somente arquivos .veg e .vf são suportados.",
		KeyFileNotFound:         "O arquivo selecionado não existe mais.",
		KeyInvalidVersion:       "A versão selecionada não é suportada para este formato.",
		KeyConverting:           "Convertendo...",
		KeyConversionSucceeded:  "Arquivo convertido com sucesso.",
		KeyConversionFailed:     "Falha na conversão.",
		KeyConversionCancelled:  "Conversão cancelada.",
		KeyAlreadyConverting:    "Uma conversão já está em andamento.",
		KeyConverterPath:        "Executável do conversor",
		KeyConverterPlaceholder: "Detectar automaticamente (msvpvf.exe)",
		KeyAutoReveal:           "Mostrar arquivo convertido ao concluir",
		KeyNativeDialog:         "Usar o diálogo de arquivos do sistema",
		KeySettingsSaved:        "Configurações salvas com sucesso!",
		KeyErrorOpeningFile:     "Erro ao abrir arquivo",
	}
}
