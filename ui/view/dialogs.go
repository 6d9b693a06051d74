package view

import (
	"log/slog"

	"github.com/soocke/leetsnap-go/domain/capture"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Dialogs shows Tk message boxes and file choosers.
type Dialogs struct {
	Logger *slog.Logger
}

func (d Dialogs) Info(title, msg string)  { d.show("info", title, msg) }
func (d Dialogs) Warn(title, msg string)  { d.show("warning", title, msg) }
func (d Dialogs) Error(title, msg string) { d.show("error", title, msg) }

func (d Dialogs) show(icon, title, msg string) {
	if d.Logger != nil {
		d.Logger.Debug("dialog", "icon", icon, "title", title, "message", msg)
	}
	MessageBox(Icon(icon), Msg(msg), Title(title))
}

// ChooseImages opens a multi-select dialog limited to supported images.
func (d Dialogs) ChooseImages() []string {
	exts := make([]string, len(capture.SupportedExtensions))
	copy(exts, capture.SupportedExtensions)
	return GetOpenFile(
		Title("Select images"),
		Multiple(true),
		Filetypes([]FileType{{TypeName: "Image files", Extensions: exts}}),
	)
}
