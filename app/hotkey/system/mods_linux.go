//go:build linux

package system

import "golang.design/x/hotkey"

const (
	modAlt   = hotkey.Mod1
	modSuper = hotkey.Mod4
)
