//go:build windows

package app

import "golang.org/x/sys/windows"

// enableDPIAwareness makes the process per-monitor DPI aware so screen
// captures and the crop surface use physical pixels. Newer APIs are tried first.
func enableDPIAwareness() {
	user32 := windows.NewLazySystemDLL("user32.dll")
	if ctx := user32.NewProc("SetProcessDpiAwarenessContext"); ctx.Find() == nil {
		// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 (-4), then V1 (-3)
		if r, _, _ := ctx.Call(^uintptr(3)); r != 0 {
			return
		}
		if r, _, _ := ctx.Call(^uintptr(2)); r != 0 {
			return
		}
	}
	shcore := windows.NewLazySystemDLL("shcore.dll")
	if awareness := shcore.NewProc("SetProcessDpiAwareness"); awareness.Find() == nil {
		if r, _, _ := awareness.Call(2); r == 0 { // PROCESS_PER_MONITOR_DPI_AWARE
			return
		}
		_, _, _ = awareness.Call(1)
		return
	}
	_, _, _ = user32.NewProc("SetProcessDPIAware").Call()
}
