package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/leetsnap-go/config"
	"github.com/soocke/leetsnap-go/debug"
	"github.com/soocke/leetsnap-go/ui/theme"
	"github.com/soocke/leetsnap-go/ui/view"
)

const (
	tick             = 100 * time.Millisecond
	runtimeLogPeriod = 30 * time.Second
)

type app struct {
	c       *AppContainer
	logger  *slog.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	afterID string
}

func init() { enableDPIAwareness() }

// NewApp prepares the main window. Start builds the layout and blocks in the
// Tk event loop until the window is closed.
func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{logger: logger}
	a.ctx, a.cancel = context.WithCancel(context.Background())
	a.c = BuildContainer(cfg, cfgPath, logger)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

func (a *app) Start() {
	c := a.c
	theme.InitStyles(c.Config.DarkMode)
	if err := c.Storage.EnsureDir(); err != nil && a.logger != nil {
		a.logger.Error("output dir", "error", err)
	}
	c.RootView.Build(view.Handlers{
		Upload:   func() { c.SourcePresenter.Upload(c.Dialogs.ChooseImages()) },
		Paste:    func() { c.SourcePresenter.Paste() },
		Reset:    func() { c.SourcePresenter.Reset() },
		Download: func() { c.SourcePresenter.DownloadAll() },
		Crop:     func() { _ = c.CropPresenter.Start() },
		Exit:     a.exitHandler,
		Apply:    c.ApplyConfig,
	})
	c.Wire(a.ctx, a.scheduleUpdate)
	c.RegisterHotkeys()

	if c.Config.Debug {
		debug.StartRuntimeLogger(a.ctx, runtimeLogPeriod, a.logger, a.captureProbe)
	}
	if a.logger != nil {
		a.logger.Info("app started", "output_dir", c.Storage.Directory(), "format", c.Storage.Format())
	}

	// Kick off update loop.
	a.scheduleUpdate()

	App.Wait()
}

// captureProbe adds capture counters to the runtime log line.
func (a *app) captureProbe() []slog.Attr {
	st := a.c.CaptureSvc.Stats()
	return []slog.Attr{
		slog.Uint64("captures", st.Captures),
		slog.Uint64("capture_failures", st.Failures),
		slog.Duration("capture_avg", st.AvgCapture),
	}
}

func (a *app) exitHandler() {
	a.cancel()
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.c.Hotkeys.Close()
	Destroy(App)
}

// scheduleUpdate queues the next loop tick on Tk's event loop thread.
func (a *app) scheduleUpdate() {
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}
