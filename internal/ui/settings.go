package ui

import (
	"strings"

	"github.com/hailam/circularchess/internal/geometry"
	"github.com/hailam/circularchess/internal/storage"
	"github.com/hajimehoshi/ebiten/v2"
)

// Settings modal dimensions
const (
	SettingsWidth  = 380
	SettingsHeight = 380
	SettingsPadX   = 24
	SettingsPadY   = 20
)

// SettingsModal is the settings configuration screen.
type SettingsModal struct {
	visible bool

	// Position (centered on screen)
	x, y int

	themeBtns     *ButtonGroup
	soundCheckbox *Checkbox
	coordCheckbox *Checkbox
	refreshBtn    *ModalButton
	saveBtn       *ModalButton
	cancelBtn     *ModalButton

	onSave    func(prefs *storage.UserPreferences)
	onCancel  func()
	onRefresh func()

	// Fields the modal does not edit are carried through on save.
	original storage.UserPreferences
}

// NewSettingsModal creates a new settings modal.
func NewSettingsModal() *SettingsModal {
	sm := &SettingsModal{
		x: (ScreenWidth - SettingsWidth) / 2,
		y: (ScreenHeight - SettingsHeight) / 2,
	}
	sm.createWidgets()
	return sm
}

// createWidgets initializes all settings widgets.
func (sm *SettingsModal) createWidgets() {
	contentX := sm.x + SettingsPadX
	contentW := SettingsWidth - SettingsPadX*2

	names := make([]string, len(geometry.Themes))
	for i, t := range geometry.Themes {
		names[i] = t.Name
	}
	themeY := sm.y + 80
	sm.themeBtns = NewButtonGroup(contentX, themeY, names, 0, contentW/len(names), 34)

	checkY := themeY + 34 + 50
	sm.soundCheckbox = NewCheckbox(contentX, checkY, "Sound Effects", true)
	sm.coordCheckbox = NewCheckbox(contentX, checkY+36, "Show Coordinates", true)

	sm.refreshBtn = NewModalButton(contentX, checkY+80, 180, 30, "Re-download Pieces", false, func() {
		if sm.onRefresh != nil {
			sm.onRefresh()
		}
	})

	btnW, btnH := 100, 38
	btnY := sm.y + SettingsHeight - SettingsPadY - btnH
	sm.cancelBtn = NewModalButton(sm.x+SettingsWidth-SettingsPadX-btnW*2-12, btnY, btnW, btnH, "Cancel", false, sm.handleCancel)
	sm.saveBtn = NewModalButton(sm.x+SettingsWidth-SettingsPadX-btnW, btnY, btnW, btnH, "Save", true, sm.handleSave)
}

// Show displays the settings modal with the given preferences.
func (sm *SettingsModal) Show(prefs *storage.UserPreferences, onSave func(*storage.UserPreferences), onCancel func()) {
	sm.visible = true
	sm.onSave = onSave
	sm.onCancel = onCancel
	sm.original = *prefs

	sm.themeBtns.Selected = 0
	for i, t := range geometry.Themes {
		if strings.EqualFold(t.Name, prefs.Theme) {
			sm.themeBtns.Selected = i
		}
	}
	sm.soundCheckbox.Checked = prefs.SoundEnabled
	sm.coordCheckbox.Checked = prefs.ShowCoordinates
}

// SetRefreshHandler sets the action of the re-download button.
func (sm *SettingsModal) SetRefreshHandler(f func()) {
	sm.onRefresh = f
}

// Hide closes the settings modal.
func (sm *SettingsModal) Hide() {
	sm.visible = false
}

// IsVisible returns true if the modal is visible.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

func (sm *SettingsModal) handleSave() {
	prefs := sm.original
	prefs.Theme = geometry.Themes[sm.themeBtns.Selected].Name
	prefs.SoundEnabled = sm.soundCheckbox.Checked
	prefs.ShowCoordinates = sm.coordCheckbox.Checked

	if sm.onSave != nil {
		sm.onSave(&prefs)
	}
	sm.Hide()
}

func (sm *SettingsModal) handleCancel() {
	if sm.onCancel != nil {
		sm.onCancel()
	}
	sm.Hide()
}

// Update handles input for the settings modal.
func (sm *SettingsModal) Update(input *InputHandler) bool {
	if !sm.visible {
		return false
	}

	if input.Action() == ActionCancel {
		sm.handleCancel()
		return true
	}
	if isEnterJustPressed() {
		sm.handleSave()
		return true
	}

	sm.themeBtns.Update(input)
	sm.soundCheckbox.Update(input)
	sm.coordCheckbox.Update(input)
	_ = sm.refreshBtn.Update(input) || sm.saveBtn.Update(input) || sm.cancelBtn.Update(input)

	// Modal consumes all input
	return true
}

// AnyButtonHovered returns true if any button in the modal is hovered.
func (sm *SettingsModal) AnyButtonHovered() bool {
	if !sm.visible {
		return false
	}
	return sm.saveBtn.IsHovered() || sm.cancelBtn.IsHovered() || sm.refreshBtn.IsHovered() ||
		sm.themeBtns.hovered >= 0 || sm.soundCheckbox.hovered || sm.coordCheckbox.hovered
}

// Draw renders the settings modal.
func (sm *SettingsModal) Draw(screen *ebiten.Image) {
	if !sm.visible {
		return
	}

	drawModalFrame(screen, sm.x, sm.y, SettingsWidth, SettingsHeight, "Settings")

	contentX := sm.x + SettingsPadX
	DrawSectionHeader(screen, "Board Theme", contentX, sm.themeBtns.Y-26)
	DrawSectionHeader(screen, "Display & Audio", contentX, sm.soundCheckbox.Y-28)

	sm.themeBtns.Draw(screen)
	sm.soundCheckbox.Draw(screen)
	sm.coordCheckbox.Draw(screen)
	sm.refreshBtn.Draw(screen)
	sm.saveBtn.Draw(screen)
	sm.cancelBtn.Draw(screen)
}
