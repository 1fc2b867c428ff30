package ui

import (
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/gosimple/slug"

	"github.com/ytget/ytbuddy/internal/config"
	"github.com/ytget/ytbuddy/internal/download"
	"github.com/ytget/ytbuddy/internal/fetch"
	"github.com/ytget/ytbuddy/internal/input"
	"github.com/ytget/ytbuddy/internal/model"
	"github.com/ytget/ytbuddy/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	fetchSvc     *fetch.Service
	downloadSvc  download.Downloader
	thumbnails   *ThumbnailLoader

	state *session

	urlEntry    *widget.Entry
	fetchBtn    *widget.Button
	downloadBtn *widget.Button

	// Metadata card
	infoPanel      *fyne.Container
	titleLabel     *widget.Label
	uploaderLabel  *widget.Label
	durationLabel  *widget.Label
	viewsLabel     *widget.Label
	dateLabel      *widget.Label
	thumbnailImage *canvas.Image

	// Format picker
	optionsPanel *fyne.Container
	bucketRadio  *widget.RadioGroup
	formatSelect *widget.Select
	detailsLabel *widget.Label

	// Hand-off panel
	resultsPanel *fyne.Container

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, fetchSvc *fetch.Service, downloadSvc download.Downloader) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		fetchSvc:     fetchSvc,
		downloadSvc:  downloadSvc,
		thumbnails:   NewThumbnailLoader(),
		state:        newSession(),
	}
	ui.state.setBucket(settings.GetDefaultBucket())

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.downloadSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// URL entry
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onFetchClick()
	}
	// A format list is only valid for the URL it was fetched with; any edit
	// disables the download action until the next fetch completes.
	ui.urlEntry.OnChanged = func(text string) {
		if strings.TrimSpace(text) != ui.state.url {
			ui.downloadBtn.Disable()
		} else if ui.state.fetched() {
			ui.downloadBtn.Enable()
		}
	}

	ui.fetchBtn = widget.NewButton(ui.localization.GetText(KeyGetInfo), ui.onFetchClick)
	ui.fetchBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn, ui.fetchBtn, ui.urlEntry)

	// Notification panel under URL input (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, nil, nil,
		container.NewVBox(ui.notificationSpinner, ui.notificationLabel))
	ui.notificationContainer.Hide()

	ui.buildInfoPanel()
	ui.buildOptionsPanel()

	ui.resultsPanel = container.NewVBox()
	ui.resultsPanel.Hide()

	content := container.NewVBox(
		topPanel,
		ui.notificationContainer,
		ui.infoPanel,
		ui.optionsPanel,
		ui.resultsPanel,
	)

	ui.window.SetContent(container.NewVScroll(content))
}

// buildInfoPanel creates the metadata card, hidden until the first fetch.
func (ui *RootUI) buildInfoPanel() {
	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Wrapping = fyne.TextWrapWord
	ui.uploaderLabel = widget.NewLabel("")
	ui.durationLabel = widget.NewLabel("")
	ui.viewsLabel = widget.NewLabel("")
	ui.dateLabel = widget.NewLabel("")

	ui.thumbnailImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	ui.thumbnailImage.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	ui.thumbnailImage.Hide()

	details := container.NewVBox(
		ui.titleLabel,
		ui.uploaderLabel,
		ui.durationLabel,
		ui.viewsLabel,
		ui.dateLabel,
	)

	ui.infoPanel = container.NewBorder(nil, nil, nil, ui.thumbnailImage, details)
	ui.infoPanel.Hide()
}

// buildOptionsPanel creates the bucket radio and quality picker, hidden
// until the first fetch.
func (ui *RootUI) buildOptionsPanel() {
	ui.bucketRadio = widget.NewRadioGroup([]string{
		ui.localization.GetText(KeyVideoAudio),
		ui.localization.GetText(KeyAudioOnly),
	}, ui.onBucketChanged)
	ui.bucketRadio.Horizontal = true

	ui.formatSelect = widget.NewSelect(nil, nil)
	ui.formatSelect.PlaceHolder = ui.localization.GetText(KeySelectQuality)
	ui.formatSelect.OnChanged = func(string) {
		ui.onFormatSelected(ui.formatSelect.SelectedIndex())
	}

	ui.detailsLabel = widget.NewLabel("")
	ui.detailsLabel.Wrapping = fyne.TextWrapWord

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.downloadBtn.Disable()

	ui.optionsPanel = container.NewVBox(
		widget.NewSeparator(),
		widget.NewLabel(ui.localization.GetText(KeyFormatBucket)+LabelSeparator),
		ui.bucketRadio,
		ui.formatSelect,
		ui.detailsLabel,
		ui.downloadBtn,
	)
	ui.optionsPanel.Hide()
}

// validateURL is the inline entry validator; no network access happens here.
func (ui *RootUI) validateURL(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New(ui.localization.GetText(KeyPleaseEnterURL))
	}
	if !input.IsVideoURL(text) {
		return errors.New(ui.localization.GetText(KeyInvalidURL))
	}
	return nil
}

// onFetchClick fetches metadata for the entered URL
func (ui *RootUI) onFetchClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)

	if err := ui.validateURL(urlText); err != nil {
		ui.showNotification(err.Error(), false)
		return
	}

	log.Printf("Fetching info for URL: %s", urlText)

	ui.setBusy(true)
	ui.showNotification(ui.localization.GetText(KeyFetchingInfo), true)

	go func() {
		info, formats, err := ui.fetchSvc.Fetch(context.Background(), urlText)

		fyne.Do(func() {
			ui.applyFetchResult(urlText, info, formats, err)
		})
	}()
}

// applyFetchResult installs a completed fetch into the session and re-renders.
// A failed fetch leaves the previous records untouched; a successful one
// replaces them wholesale and disposes of the previous scratch directory.
// Runs on the UI thread.
func (ui *RootUI) applyFetchResult(urlText string, info *model.VideoInfo, formats []model.FormatOption, err error) {
	ui.setBusy(false)

	if err != nil {
		log.Printf("Fetch failed for %s: %v", urlText, err)
		ui.showNotification(ui.localization.GetText(KeyFetchFailed)+LabelSeparator+err.Error(), false)
		return
	}

	ui.state.dropScratch(ui.settings.GetKeepScratchFiles())
	ui.state.apply(urlText, info, formats)
	ui.renderInfo(info)
	ui.renderBuckets()
	ui.resultsPanel.Hide()
	ui.downloadBtn.Enable()
	ui.showNotification(ui.localization.GetText(KeyInfoFetched), false)
}

// renderInfo fills the metadata card and starts the thumbnail fetch.
func (ui *RootUI) renderInfo(info *model.VideoInfo) {
	loc := ui.localization
	ui.titleLabel.SetText(info.Title)
	ui.uploaderLabel.SetText(loc.GetText(KeyUploader) + LabelSeparator + info.Uploader)
	ui.durationLabel.SetText(loc.GetText(KeyDuration) + LabelSeparator + model.FormatDuration(info.Duration))
	ui.viewsLabel.SetText(loc.GetText(KeyViews) + LabelSeparator + model.FormatViewCount(info.ViewCount))
	if info.UploadDate != "" {
		ui.dateLabel.SetText(loc.GetText(KeyUploadDate) + LabelSeparator + info.UploadDate)
		ui.dateLabel.Show()
	} else {
		ui.dateLabel.Hide()
	}

	ui.thumbnailImage.Hide()
	if info.Thumbnail != "" {
		go ui.loadThumbnail(info.Thumbnail)
	}

	ui.infoPanel.Show()
	ui.infoPanel.Refresh()
}

// loadThumbnail fetches the thumbnail off the UI thread. A failed fetch
// just leaves the image hidden.
func (ui *RootUI) loadThumbnail(url string) {
	resource, err := ui.thumbnails.Load(url)
	if err != nil {
		log.Printf("Thumbnail load failed: %v", err)
		return
	}

	fyne.Do(func() {
		ui.thumbnailImage.Resource = resource
		ui.thumbnailImage.Show()
		ui.thumbnailImage.Refresh()
	})
}

// renderBuckets resets the bucket radio to the configured default and
// repopulates the quality picker.
func (ui *RootUI) renderBuckets() {
	ui.state.setBucket(ui.settings.GetDefaultBucket())
	if ui.state.bucket == model.KindAudioOnly {
		ui.bucketRadio.SetSelected(ui.localization.GetText(KeyAudioOnly))
	} else {
		ui.bucketRadio.SetSelected(ui.localization.GetText(KeyVideoAudio))
	}
	ui.refreshFormatOptions()
	ui.optionsPanel.Show()
	ui.optionsPanel.Refresh()
}

// onBucketChanged switches the active bucket
func (ui *RootUI) onBucketChanged(selected string) {
	if selected == ui.localization.GetText(KeyAudioOnly) {
		ui.state.setBucket(model.KindAudioOnly)
	} else {
		ui.state.setBucket(model.KindVideoAudio)
	}
	ui.refreshFormatOptions()
}

// refreshFormatOptions rebuilds the quality picker from the active bucket.
// An empty bucket is a warning, not an error: there is nothing to select.
func (ui *RootUI) refreshFormatOptions() {
	formats := ui.state.activeFormats()

	options := make([]string, 0, len(formats))
	for _, f := range formats {
		options = append(options, f.Label())
	}
	ui.formatSelect.ClearSelected()
	ui.formatSelect.SetOptions(options)
	ui.detailsLabel.SetText("")

	if len(options) == 0 {
		ui.formatSelect.Disable()
		ui.detailsLabel.SetText(ui.localization.GetText(KeyNoFormats))
	} else {
		ui.formatSelect.Enable()
	}
}

// onFormatSelected records the chosen option and shows its details line.
func (ui *RootUI) onFormatSelected(index int) {
	ui.state.selected = index
	if opt, ok := ui.state.selectedOption(); ok {
		ui.detailsLabel.SetText(ui.localization.GetText(KeySelectedFormat) + LabelSeparator + opt.Label())
	}
}

// onDownloadClick downloads the selected rendition into a fresh scratch dir.
func (ui *RootUI) onDownloadClick() {
	if !ui.state.fetched() {
		return
	}

	opt, ok := ui.state.selectedOption()
	if !ok {
		ui.showNotification(ui.localization.GetText(KeyNoFormats), false)
		return
	}

	scratch, err := ui.state.replaceScratch(ui.settings.GetKeepScratchFiles())
	if err != nil {
		ui.showNotification(err.Error(), false)
		return
	}

	log.Printf("Starting download: url=%s format=%s", ui.state.url, opt.ID)

	ui.setBusy(true)
	ui.resultsPanel.Hide()
	ui.showNotification(ui.localization.GetText(KeyDownloading), true)

	if _, err := ui.downloadSvc.Start(ui.state.url, opt, scratch); err != nil {
		ui.setBusy(false)
		ui.showNotification(err.Error(), false)
	}
}

// onTaskUpdate receives download task updates from the service goroutine.
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	if !task.Status.IsFinished() {
		return
	}

	fyne.Do(func() {
		ui.setBusy(false)

		result := task.Result
		if result == nil {
			return
		}
		ui.state.result = result

		if result.OK {
			ui.showNotification(result.Message, false)
			ui.renderResults(result)
		} else {
			ui.showNotification(ui.localization.GetText(KeyDownloadFailed)+LabelSeparator+result.Message, false)
		}
	})
}

// renderResults lists every produced file with save and reveal actions.
func (ui *RootUI) renderResults(result *model.DownloadResult) {
	header := widget.NewLabel(ui.localization.GetText(KeyDownloadedFiles) + LabelSeparator)
	header.TextStyle = fyne.TextStyle{Bold: true}

	rows := []fyne.CanvasObject{widget.NewSeparator(), header}
	for _, file := range result.Files {
		entry := file // captured by the button callbacks

		nameLabel := widget.NewLabel(IconFile + " " + entry.Name + " (" + model.FormatFileSize(entry.Size) + ")")
		nameLabel.Wrapping = fyne.TextWrapWord

		saveBtn := widget.NewButton(ui.localization.GetText(KeySave), func() {
			ui.onSaveFile(entry)
		})
		openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
			if err := platform.OpenWithDefaultApp(entry.Path); err != nil {
				ui.showNotification(err.Error(), false)
			}
		})
		revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
			if err := platform.RevealInManager(entry.Path); err != nil {
				ui.showNotification(err.Error(), false)
			}
		})

		rows = append(rows, container.NewBorder(nil, nil, nil, container.NewHBox(saveBtn, openBtn, revealBtn), nameLabel))
	}

	ui.resultsPanel.Objects = rows
	ui.resultsPanel.Show()
	ui.resultsPanel.Refresh()
}

// onSaveFile hands one staged file off through a save dialog. The content is
// read fully into memory, which bounds file size to available memory; fine
// for a single-user interactive tool.
func (ui *RootUI) onSaveFile(entry model.FileEntry) {
	if ui.state.scratch == nil {
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		data, rerr := ui.state.scratch.ReadFile(entry.Name)
		if rerr != nil {
			ui.showNotification(rerr.Error(), false)
			return
		}
		if _, werr := writer.Write(data); werr != nil {
			ui.showNotification(werr.Error(), false)
			return
		}
		ui.showNotification(ui.localization.GetText(KeyFileSaved)+LabelSeparator+entry.Name, false)
	}, ui.window)

	saveDialog.SetFileName(suggestedFileName(entry.Name))
	saveDialog.Show()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}

// setBusy toggles the interactive controls around a blocking operation.
// One operation runs at a time; the controls enforce it.
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.fetchBtn.Disable()
		ui.downloadBtn.Disable()
		ui.bucketRadio.Disable()
		ui.formatSelect.Disable()
		return
	}

	ui.fetchBtn.Enable()
	ui.bucketRadio.Enable()
	if len(ui.state.activeFormats()) > 0 {
		ui.formatSelect.Enable()
	}
	if ui.state.fetched() && strings.TrimSpace(ui.urlEntry.Text) == ui.state.url {
		ui.downloadBtn.Enable()
	}
}

// showNotification displays a message in the notification panel under the
// URL input. When spinning is true, a spinner indicates background activity.
// Must be called from the UI thread; goroutines go through fyne.Do first.
func (ui *RootUI) showNotification(message string, spinning bool) {
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// Dispose releases session resources; wired to the window close hook.
func (ui *RootUI) Dispose() {
	ui.state.dropScratch(ui.settings.GetKeepScratchFiles())
}

// suggestedFileName slugs the staged name for the save dialog, keeping the
// extension intact.
func suggestedFileName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if slugged := slug.Make(base); slugged != "" {
		return slugged + ext
	}
	return name
}
