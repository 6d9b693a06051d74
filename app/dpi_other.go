//go:build !windows

package app

func enableDPIAwareness() {}
