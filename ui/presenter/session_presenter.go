package presenter

import (
	"time"

	"github.com/soocke/leetsnap-go/ui/model"
)

// CroppingModel reports whether a crop session is open.
type CroppingModel interface{ Cropping() bool }

// SessionView displays formatted session and total durations plus counters.
type SessionView interface {
	SetSession(session, total time.Duration)
	SetCounts(sessions, crops int)
}

// SessionPresenter formats session durations and crop counts from the model to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	crop CroppingModel
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, crop CroppingModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, crop: crop, view: view}
}

// Tick updates the presenter: advance the session model and push values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.crop == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.crop.Cropping(), now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)
	p.view.SetCounts(p.sess.Counts())
}
