package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyEnterURL        = "enter_url"
	KeyGetInfo         = "get_info"
	KeyDownload        = "download"
	KeySave            = "save"
	KeyOpen            = "open"
	KeyReveal          = "reveal"
	KeySettings        = "settings"
	KeyLanguage        = "language"
	KeyCancel          = "cancel"
	KeyPleaseEnterURL  = "please_enter_url"
	KeyInvalidURL      = "invalid_url"
	KeyFetchingInfo    = "fetching_info"
	KeyInfoFetched     = "info_fetched"
	KeyFetchFailed     = "fetch_failed"
	KeyDownloading     = "downloading"
	KeyDownloadFailed  = "download_failed"
	KeyNoFormats       = "no_formats"
	KeyVideoAudio      = "video_audio"
	KeyAudioOnly       = "audio_only"
	KeyFormatBucket    = "format_bucket"
	KeySelectQuality   = "select_quality"
	KeySelectedFormat  = "selected_format"
	KeyTitle           = "title"
	KeyUploader        = "uploader"
	KeyDuration        = "duration"
	KeyViews           = "views"
	KeyUploadDate      = "upload_date"
	KeyDownloadedFiles = "downloaded_files"
	KeyFileSaved       = "file_saved"
	KeyKeepScratch     = "keep_scratch"
	KeyDefaultBucket   = "default_bucket"
	KeySettingsSaved   = "settings_saved"
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

// initializeTexts populates the translation tables
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Ytube Buddy",
		KeyEnterURL:        "Enter video URL...",
		KeyGetInfo:         "Get Video Info",
		KeyDownload:        "Download",
		KeySave:            "Save…",
		KeyOpen:            "Open",
		KeyReveal:          "Reveal",
		KeySettings:        "Settings",
		KeyLanguage:        "Language",
		KeyCancel:          "Cancel",
		KeyPleaseEnterURL:  "Please enter a video URL",
		KeyInvalidURL:      "Please enter a valid video URL",
		KeyFetchingInfo:    "Fetching video information...",
		KeyInfoFetched:     "Video information fetched successfully",
		KeyFetchFailed:     "Error fetching video info",
		KeyDownloading:     "Downloading... Please wait...",
		KeyDownloadFailed:  "Download failed",
		KeyNoFormats:       "No formats available for the selected type",
		KeyVideoAudio:      "Video + Audio",
		KeyAudioOnly:       "Audio Only",
		KeyFormatBucket:    "Choose format type",
		KeySelectQuality:   "Select quality",
		KeySelectedFormat:  "Selected format",
		KeyTitle:           "Title",
		KeyUploader:        "Uploader",
		KeyDuration:        "Duration",
		KeyViews:           "Views",
		KeyUploadDate:      "Upload date",
		KeyDownloadedFiles: "Downloaded files",
		KeyFileSaved:       "File saved",
		KeyKeepScratch:     "Keep staged files after saving",
		KeyDefaultBucket:   "Default format type",
		KeySettingsSaved:   "Settings saved successfully!",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Ytube Buddy",
		KeyEnterURL:        "Введите URL видео...",
		KeyGetInfo:         "Получить информацию",
		KeyDownload:        "Скачать",
		KeySave:            "Сохранить…",
		KeyOpen:            "Открыть",
		KeyReveal:          "Показать",
		KeySettings:        "Настройки",
		KeyLanguage:        "Язык",
		KeyCancel:          "Отмена",
		KeyPleaseEnterURL:  "Введите URL видео",
		KeyInvalidURL:      "Введите корректный URL видео",
		KeyFetchingInfo:    "Получение информации о видео...",
		KeyInfoFetched:     "Информация о видео получена",
		KeyFetchFailed:     "Ошибка получения информации",
		KeyDownloading:     "Загрузка... Подождите...",
		KeyDownloadFailed:  "Ошибка загрузки",
		KeyNoFormats:       "Нет форматов для выбранного типа",
		KeyVideoAudio:      "Видео + Аудио",
		KeyAudioOnly:       "Только аудио",
		KeyFormatBucket:    "Тип формата",
		KeySelectQuality:   "Выберите качество",
		KeySelectedFormat:  "Выбранный формат",
		KeyTitle:           "Название",
		KeyUploader:        "Автор",
		KeyDuration:        "Длительность",
		KeyViews:           "Просмотры",
		KeyUploadDate:      "Дата загрузки",
		KeyDownloadedFiles: "Скачанные файлы",
		KeyFileSaved:       "Файл сохранён",
		KeyKeepScratch:     "Хранить файлы после сохранения",
		KeyDefaultBucket:   "Тип формата по умолчанию",
		KeySettingsSaved:   "Настройки сохранены!",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "Ytube Buddy",
		KeyEnterURL:        "Digite a URL do vídeo...",
		KeyGetInfo:         "Obter informações",
		KeyDownload:        "Baixar",
		KeySave:            "Salvar…",
		KeyOpen:            "Abrir",
		KeyReveal:          "Mostrar",
		KeySettings:        "Configurações",
		KeyLanguage:        "Idioma",
		KeyCancel:          "Cancelar",
		KeyPleaseEnterURL:  "Digite a URL de um vídeo",
		KeyInvalidURL:      "Digite uma URL de vídeo válida",
		KeyFetchingInfo:    "Buscando informações do vídeo...",
		KeyInfoFetched:     "Informações do vídeo obtidas",
		KeyFetchFailed:     "Erro ao buscar informações",
		KeyDownloading:     "Baixando... Aguarde...",
		KeyDownloadFailed:  "Falha no download",
		KeyNoFormats:       "Nenhum formato disponível para o tipo selecionado",
		KeyVideoAudio:      "Vídeo + Áudio",
		KeyAudioOnly:       "Somente áudio",
		KeyFormatBucket:    "Tipo de formato",
		KeySelectQuality:   "Selecione a qualidade",
		KeySelectedFormat:  "Formato selecionado",
		KeyTitle:           "Título",
		KeyUploader:        "Canal",
		KeyDuration:        "Duração",
		KeyViews:           "Visualizações",
		KeyUploadDate:      "Data de envio",
		KeyDownloadedFiles: "Arquivos baixados",
		KeyFileSaved:       "Arquivo salvo",
		KeyKeepScratch:     "Manter arquivos após salvar",
		KeyDefaultBucket:   "Tipo de formato padrão",
		KeySettingsSaved:   "Configurações salvas!",
	}
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}
