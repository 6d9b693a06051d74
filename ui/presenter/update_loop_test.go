package presenter

import (
	"image"
	"testing"
	"time"

	"github.com/soocke/leetsnap-go/app/hotkey"
	"github.com/soocke/leetsnap-go/ui/model"
)

type mockSessionView struct {
	session, total  time.Duration
	sessions, crops int
	calls           int
}

func (v *mockSessionView) SetSession(s, t time.Duration) { v.session, v.total = s, t; v.calls++ }
func (v *mockSessionView) SetCounts(s, c int)            { v.sessions, v.crops = s, c }

func TestLoop_DispatchesHotkeysAndTicks(t *testing.T) {
	cf := newCropFixture(image.Rect(0, 0, 100, 100))
	cf.source.Set(solid(100, 100), "")
	view := &mockSessionView{}
	sess := NewSessionPresenter(cf.stats, cf.p, view)

	actions := make(chan hotkey.Action, 2)
	scheduled := 0
	l := NewLoop(sess, cf.p, nil, actions, func() { scheduled++ })

	actions <- hotkey.ActionCrop
	l.Tick()
	if !cf.p.Cropping() || scheduled != 1 {
		t.Fatalf("crop hotkey not dispatched: cropping=%v scheduled=%d", cf.p.Cropping(), scheduled)
	}
	if view.calls != 1 || view.sessions != 1 {
		t.Fatalf("session view not updated: %+v", view)
	}

	cf.source.Clear()
	l.Tick()
	if cf.p.Cropping() {
		t.Fatalf("session should close after source cleared")
	}
}

func TestLoop_ClosedActionsChannel(t *testing.T) {
	actions := make(chan hotkey.Action)
	close(actions)
	l := &Loop{Actions: actions}
	l.Tick()
	if l.Actions != nil {
		t.Fatalf("closed channel should be dropped")
	}
}

func TestLoop_NilSafe(t *testing.T) {
	var l *Loop
	l.Tick()
	(&Loop{}).Dispatch(hotkey.ActionFullScreenshot)
}

func TestSessionPresenter_Tick(t *testing.T) {
	m := model.NewSessionModel()
	view := &mockSessionView{}
	crop := &CropPresenter{}
	p := NewSessionPresenter(m, crop, view)
	p.Tick(time.Unix(10, 0))
	if view.calls != 1 || view.sessions != 0 {
		t.Fatalf("unexpected view state %+v", view)
	}
}
