package view

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/soocke/leetsnap-go/config"
	"github.com/soocke/leetsnap-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// galleryLimit is how many gallery cells stay on screen.
const galleryLimit = 3

// Handlers are the main window callbacks, invoked on the Tk thread.
type Handlers struct {
	Upload   func()
	Paste    func()
	Reset    func()
	Download func()
	Crop     func()
	Exit     func()
	Apply    func(*config.Config)
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Session     SessionStats
	ConfigPanel ConfigPanel
	Gallery     Gallery

	// Widgets
	StatusLabel *TLabelWidget
	downloadBtn *TButtonWidget
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout: action buttons, stats and settings on top,
// the gallery below.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(0), Columnspan(2), Sticky("nw"), Padx("0.3m"), Pady("0.3m"))
	col := 0
	addBtn := func(b Widget) {
		Grid(b, In(btnFrame), Row(0), Column(col), Sticky("we"), Padx("0.5m"), Pady("0.2m"))
		col++
	}
	addBtn(TButton(Style(theme.StylePrimaryButton), Txt("Upload Images"), Command(h.Upload)))
	addBtn(TButton(Style(theme.StylePrimaryButton), Txt("Paste from Clipboard"), Command(h.Paste)))
	addBtn(TButton(Style(theme.StyleDangerButton), Txt("Reset"), Command(h.Reset)))
	rv.downloadBtn = TButton(Style(theme.StylePrimaryButton), Txt("Download All Resized Images"), Command(h.Download))
	rv.downloadBtn.Configure(State("disabled"))
	addBtn(rv.downloadBtn)
	addBtn(TButton(Style(theme.StylePrimaryButton), Txt("Partial Screenshot"), Command(h.Crop)))
	addBtn(TButton(Txt("Exit"), Command(h.Exit)))

	shortcuts := Label(Txt(ShortcutText(rv.cfg)), Justify("right"))
	Grid(shortcuts, Row(0), Column(2), Sticky("ne"), Padx("0.4m"), Pady("0.3m"))

	statsFrame := Frame()
	Grid(statsFrame, Row(1), Column(0), Sticky("nw"), Padx("0.3m"))
	rv.Session = NewSessionStats(statsFrame, 0, 0)
	rv.StatusLabel = TLabel(Style(theme.StyleStateLabel), Txt("Ready"))
	Grid(rv.StatusLabel, In(statsFrame), Row(1), Column(0), Columnspan(3), Sticky("we"), Padx("0.2m"), Pady("0.3m"))

	settings := Frame(Borderwidth(1), Relief("ridge"))
	Grid(settings, Row(1), Column(1), Columnspan(2), Sticky("ne"), Padx("0.4m"), Pady("0.3m"))
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, h.Apply)
	rv.ConfigPanel.Build(settings, 0)

	maxSide := 600
	if rv.cfg != nil {
		maxSide = rv.cfg.PreviewMaxSide
	}
	rv.Gallery = NewGallery(2, maxSide, galleryLimit)
	GridRowConfigure(App, 2, Weight(1))
	GridColumnConfigure(App, 0, Weight(1))
}

// ShortcutText renders the hotkey hint shown in the top-right corner.
func ShortcutText(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	return fmt.Sprintf("Full Screenshot: %s\nPartial Screenshot: %s",
		strings.ToUpper(cfg.FullScreenshotHotkey), strings.ToUpper(cfg.CropHotkey))
}

// SetStatus updates the status label text.
func (rv *RootView) SetStatus(text string) {
	if rv == nil || rv.StatusLabel == nil {
		return
	}
	if text == "" {
		text = "Ready"
	}
	rv.StatusLabel.Configure(Txt(text))
}

// SetDownloadEnabled toggles the download button.
func (rv *RootView) SetDownloadEnabled(enabled bool) {
	if rv == nil || rv.downloadBtn == nil {
		return
	}
	state := "disabled"
	if enabled {
		state = "normal"
	}
	rv.downloadBtn.Configure(State(state))
}

// Hide withdraws the main window so it stays out of a full screenshot.
func (rv *RootView) Hide() { WmWithdraw(App) }

// Show restores the main window after a screenshot.
func (rv *RootView) Show() { WmDeiconify(App) }

// SetSession updates both session and total crop durations.
func (rv *RootView) SetSession(session, total time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total)
}

func (rv *RootView) SetCounts(sessions, crops int) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetCounts(sessions, crops)
}
