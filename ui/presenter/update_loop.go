package presenter

import (
	"time"

	"github.com/soocke/leetsnap-go/app/hotkey"
)

// Loop aggregates feature presenters and drives periodic updates.
//
// It drains pending hotkey actions, calls Tick on the sub-presenters and
// invokes a scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	Crop     *CropPresenter
	Source   *SourcePresenter
	Actions  <-chan hotkey.Action
	Schedule func()
}

func NewLoop(sess *SessionPresenter, crop *CropPresenter, source *SourcePresenter, actions <-chan hotkey.Action, schedule func()) *Loop {
	return &Loop{Session: sess, Crop: crop, Source: source, Actions: actions, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	l.drainActions()
	// Screenshots land before the crop presenter checks its source generation.
	if l.Source != nil {
		l.Source.Tick()
	}
	if l.Crop != nil {
		l.Crop.Tick()
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}

func (l *Loop) drainActions() {
	if l.Actions == nil {
		return
	}
	for {
		select {
		case a, ok := <-l.Actions:
			if !ok {
				l.Actions = nil
				return
			}
			l.Dispatch(a)
		default:
			return
		}
	}
}

// Dispatch runs the presenter operation bound to a hotkey action.
func (l *Loop) Dispatch(a hotkey.Action) {
	if l == nil {
		return
	}
	switch a {
	case hotkey.ActionFullScreenshot:
		l.Source.Screenshot()
	case hotkey.ActionCrop:
		if l.Source.Busy() {
			return
		}
		_ = l.Crop.Start()
	}
}
