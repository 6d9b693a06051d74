package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/soocke/leetsnap-go/app/hotkey"
	"github.com/soocke/leetsnap-go/app/hotkey/system"
	"github.com/soocke/leetsnap-go/config"
	"github.com/soocke/leetsnap-go/domain/capture"
	"github.com/soocke/leetsnap-go/domain/storage"
	"github.com/soocke/leetsnap-go/ui/model"
	"github.com/soocke/leetsnap-go/ui/presenter"
	"github.com/soocke/leetsnap-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config  *config.Config
	CfgPath string
	Logger  *slog.Logger

	Source  *model.SourceModel
	Results *model.ResultsModel
	Session *model.SessionModel

	CaptureSvc *capture.Service
	Storage    *storage.Storage
	Hotkeys    *hotkey.Manager

	RootView *view.RootView
	Surface  *view.CropSurface
	Dialogs  view.Dialogs

	// Presenters
	CropPresenter    *presenter.CropPresenter
	SourcePresenter  *presenter.SourcePresenter
	SessionPresenter *presenter.SessionPresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs the components that do not need Tk widgets.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}
	c.Source = &model.SourceModel{}
	c.Results = &model.ResultsModel{}
	c.Session = model.NewSessionModel()
	c.CaptureSvc = capture.NewService(logger)
	c.Storage = storage.NewStorage(cfg.OutputDir, cfg.OutputFormat, cfg.JPEGQuality)
	c.Hotkeys = hotkey.NewManager(system.Registrar{}, logger)
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.Surface = view.NewCropSurface(logger)
	c.Dialogs = view.Dialogs{Logger: logger}
	return c
}

// Wire creates the presenters. Call after RootView.Build so the gallery exists.
func (c *AppContainer) Wire(ctx context.Context, schedule func()) {
	c.CropPresenter = presenter.NewCropPresenter(presenter.CropDeps{
		Source:   c.Source,
		Results:  c.Results,
		Stats:    c.Session,
		Saver:    c.Storage,
		Surface:  c.Surface,
		Gallery:  c.RootView.Gallery,
		Dialogs:  c.Dialogs,
		Controls: c.RootView,
		Screen:   capture.ScreenBounds,
	}, c.Config.MinSelection, c.Logger)
	c.SourcePresenter = presenter.NewSourcePresenter(ctx, presenter.SourceDeps{
		Source:   c.Source,
		Results:  c.Results,
		Capturer: c.CaptureSvc,
		Store:    c.Storage,
		Window:   c.RootView,
		Gallery:  c.RootView.Gallery,
		Dialogs:  c.Dialogs,
		Controls: c.RootView,
	}, c.screenshotDelay(), c.Logger)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.CropPresenter, c.RootView)
	c.Loop = presenter.NewLoop(c.SessionPresenter, c.CropPresenter, c.SourcePresenter, c.Hotkeys.Actions(), schedule)
}

// ApplyConfig pushes live-tunable settings into the presenters.
func (c *AppContainer) ApplyConfig(cfg *config.Config) {
	c.CropPresenter.SetMinSelection(cfg.MinSelection)
	c.SourcePresenter.SetDelay(c.screenshotDelay())
	if c.Logger != nil {
		c.Logger.Info("settings applied", "min_selection", cfg.MinSelection, "screenshot_delay_ms", cfg.ScreenshotDelayMillis)
	}
}

func (c *AppContainer) screenshotDelay() time.Duration {
	return time.Duration(c.Config.ScreenshotDelayMillis) * time.Millisecond
}

// RegisterHotkeys binds the configured global shortcuts. Failures are
// logged; the buttons keep working without them.
func (c *AppContainer) RegisterHotkeys() {
	for _, b := range []struct {
		spec   string
		action hotkey.Action
	}{
		{c.Config.FullScreenshotHotkey, hotkey.ActionFullScreenshot},
		{c.Config.CropHotkey, hotkey.ActionCrop},
	} {
		if b.spec == "" {
			continue
		}
		if err := c.Hotkeys.Register(b.spec, b.action); err != nil && c.Logger != nil {
			c.Logger.Warn("hotkey unavailable", "hotkey", b.spec, "error", err)
		}
	}
}
