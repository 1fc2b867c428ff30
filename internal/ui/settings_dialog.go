package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/ytbuddy/internal/config"
	"github.com/ytget/ytbuddy/internal/model"
)

// SettingsDialog edits the persisted preferences: language, staged-file
// retention and the default format bucket. Changes apply on confirm;
// language changes take effect after a restart.
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	parent       fyne.Window

	languageSelect *widget.Select
	keepCheck      *widget.Check
	bucketSelect   *widget.Select

	languageCodes []string
}

// NewSettingsDialog creates the settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, parent fyne.Window) *SettingsDialog {
	return &SettingsDialog{
		settings:     settings,
		localization: localization,
		parent:       parent,
	}
}

// Show builds and displays the dialog
func (d *SettingsDialog) Show() {
	loc := d.localization

	options := d.settings.GetLanguageOptions()
	d.languageCodes = make([]string, 0, len(options))
	for code := range options {
		d.languageCodes = append(d.languageCodes, code)
	}
	// Keep "system" first, the rest alphabetical by code.
	sort.Slice(d.languageCodes, func(i, j int) bool {
		if d.languageCodes[i] == "system" {
			return true
		}
		if d.languageCodes[j] == "system" {
			return false
		}
		return d.languageCodes[i] < d.languageCodes[j]
	})

	labels := make([]string, len(d.languageCodes))
	for i, code := range d.languageCodes {
		labels[i] = options[code]
	}

	d.languageSelect = widget.NewSelect(labels, nil)
	current := d.settings.GetLanguage()
	for i, code := range d.languageCodes {
		if code == current {
			d.languageSelect.SetSelectedIndex(i)
			break
		}
	}

	d.keepCheck = widget.NewCheck(loc.GetText(KeyKeepScratch), nil)
	d.keepCheck.SetChecked(d.settings.GetKeepScratchFiles())

	bucketLabels := []string{loc.GetText(KeyVideoAudio), loc.GetText(KeyAudioOnly)}
	d.bucketSelect = widget.NewSelect(bucketLabels, nil)
	if d.settings.GetDefaultBucket() == model.KindAudioOnly {
		d.bucketSelect.SetSelectedIndex(1)
	} else {
		d.bucketSelect.SetSelectedIndex(0)
	}

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyLanguage)+LabelSeparator),
		d.languageSelect,
		widget.NewSeparator(),
		d.keepCheck,
		widget.NewSeparator(),
		widget.NewLabel(loc.GetText(KeyDefaultBucket)+LabelSeparator),
		d.bucketSelect,
	)

	confirm := dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		func(save bool) {
			if !save {
				return
			}
			d.applyChanges()
		},
		d.parent,
	)
	confirm.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
	confirm.Show()
}

// applyChanges persists the dialog state to preferences.
func (d *SettingsDialog) applyChanges() {
	if idx := d.languageSelect.SelectedIndex(); idx >= 0 && idx < len(d.languageCodes) {
		d.settings.SetLanguage(d.languageCodes[idx])
	}

	d.settings.SetKeepScratchFiles(d.keepCheck.Checked)

	if d.bucketSelect.SelectedIndex() == 1 {
		d.settings.SetDefaultBucket(model.KindAudioOnly)
	} else {
		d.settings.SetDefaultBucket(model.KindVideoAudio)
	}

	dialog.ShowInformation(
		d.localization.GetText(KeySettings),
		d.localization.GetText(KeySettingsSaved),
		d.parent,
	)
}
