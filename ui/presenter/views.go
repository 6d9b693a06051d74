package presenter

import "image"

// GalleryView shows the Original / Resized pairs of the main window.
type GalleryView interface {
	AddPair(original, resized image.Image)
	AddSingle(caption string, img image.Image)
	Clear()
}

// Dialogs surfaces short messages to the user.
type Dialogs interface {
	Info(title, msg string)
	Warn(title, msg string)
	Error(title, msg string)
}

// ControlsView toggles the state of the main window buttons.
type ControlsView interface {
	SetDownloadEnabled(bool)
	SetStatus(text string)
}

// CropSurface is the full-screen window a crop session draws on. Pointer
// coordinates passed to the handlers are in displayed pixels.
type CropSurface interface {
	Open(img image.Image, h SurfaceHandlers)
	Show(img image.Image)
	Close()
}

// SurfaceHandlers are the callbacks a CropSurface invokes from the Tk thread.
type SurfaceHandlers struct {
	Press   func(x, y int)
	Move    func(x, y int)
	Release func(x, y int)
	Done    func()
}
