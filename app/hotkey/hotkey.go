// Package hotkey parses accelerator strings such as "ctrl+shift+s" and
// forwards global key presses to the UI loop as actions. The OS binding
// lives in hotkey/system so this package stays free of native init code.
package hotkey

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Action identifies what a hotkey triggers.
type Action int

const (
	ActionFullScreenshot Action = iota + 1
	ActionCrop
)

func (a Action) String() string {
	switch a {
	case ActionFullScreenshot:
		return "full_screenshot"
	case ActionCrop:
		return "crop"
	default:
		return "unknown"
	}
}

// Modifier is a platform-neutral modifier key.
type Modifier int

const (
	ModCtrl Modifier = iota + 1
	ModShift
	ModAlt
	ModSuper
)

// Binding is a parsed accelerator. Key is a canonical key name from Keys.
type Binding struct {
	Spec string
	Mods []Modifier
	Key  string
}

// Keys lists the canonical key names a Binding may carry.
var Keys = func() map[string]bool {
	m := map[string]bool{
		"space": true, "tab": true, "return": true,
		"up": true, "down": true, "left": true, "right": true,
	}
	for c := 'a'; c <= 'z'; c++ {
		m[string(c)] = true
	}
	for c := '0'; c <= '9'; c++ {
		m[string(c)] = true
	}
	for i := 1; i <= 12; i++ {
		m[fmt.Sprintf("f%d", i)] = true
	}
	return m
}()

var keyAliases = map[string]string{"enter": "return"}

// Parse reads "mod+mod+key". Modifiers are ctrl, shift, alt (option) and
// super (win, cmd). Exactly one non-modifier key is required.
func Parse(spec string) (Binding, error) {
	b := Binding{Spec: spec}
	parts := strings.Split(strings.ToLower(strings.ReplaceAll(spec, " ", "")), "+")
	var keyName string
	for _, p := range parts {
		switch p {
		case "":
			return Binding{}, fmt.Errorf("hotkey %q: empty component", spec)
		case "ctrl", "control":
			b.Mods = append(b.Mods, ModCtrl)
		case "shift":
			b.Mods = append(b.Mods, ModShift)
		case "alt", "option":
			b.Mods = append(b.Mods, ModAlt)
		case "super", "win", "cmd", "command":
			b.Mods = append(b.Mods, ModSuper)
		default:
			if keyName != "" {
				return Binding{}, fmt.Errorf("hotkey %q: more than one key", spec)
			}
			keyName = p
		}
	}
	if alias, ok := keyAliases[keyName]; ok {
		keyName = alias
	}
	if !Keys[keyName] {
		return Binding{}, fmt.Errorf("hotkey %q: unknown key %q", spec, keyName)
	}
	b.Key = keyName
	return b, nil
}

// Registrar binds a parsed accelerator to the OS. fire is called from a
// background goroutine on every key-down.
type Registrar interface {
	Register(b Binding, fire func()) (unregister func() error, err error)
}

// Manager owns the registered hotkeys and funnels their key-down events into
// a single channel drained by the UI tick.
type Manager struct {
	logger   *slog.Logger
	reg      Registrar
	actions  chan Action
	debounce time.Duration
	now      func() time.Time

	mu         sync.Mutex
	lastFired  map[Action]time.Time
	unregister []func() error
}

func NewManager(reg Registrar, logger *slog.Logger) *Manager {
	return &Manager{
		logger:    logger,
		reg:       reg,
		actions:   make(chan Action, 8),
		debounce:  200 * time.Millisecond,
		now:       time.Now,
		lastFired: make(map[Action]time.Time),
	}
}

// Actions delivers triggered actions. Sends never block; presses arriving
// while the buffer is full are dropped.
func (m *Manager) Actions() <-chan Action { return m.actions }

// Register parses spec and listens for it.
func (m *Manager) Register(spec string, action Action) error {
	b, err := Parse(spec)
	if err != nil {
		return err
	}
	if m.reg == nil {
		return fmt.Errorf("register hotkey %s: no registrar", spec)
	}
	unregister, err := m.reg.Register(b, func() { m.fire(action) })
	if err != nil {
		return fmt.Errorf("register hotkey %s: %w", spec, err)
	}
	m.mu.Lock()
	m.unregister = append(m.unregister, unregister)
	m.mu.Unlock()
	if m.logger != nil {
		m.logger.Info("hotkey registered", "hotkey", spec, "action", action.String())
	}
	return nil
}

// fire emits a unless the same action fired within the debounce window.
func (m *Manager) fire(a Action) {
	now := m.now()
	m.mu.Lock()
	last, seen := m.lastFired[a]
	if seen && now.Sub(last) < m.debounce {
		m.mu.Unlock()
		return
	}
	m.lastFired[a] = now
	m.mu.Unlock()
	m.emit(a)
}

func (m *Manager) emit(a Action) {
	select {
	case m.actions <- a:
	default:
		if m.logger != nil {
			m.logger.Debug("hotkey dropped", "action", a.String())
		}
	}
}

// Close unregisters every hotkey.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, un := range m.unregister {
		if err := un(); err != nil && m.logger != nil {
			m.logger.Warn("hotkey unregister", "error", err)
		}
	}
	m.unregister = nil
}
