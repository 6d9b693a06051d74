package model

import "time"

// span is one crop session, open or finished.
type span struct {
	start time.Time
	end   time.Time
}

func (s span) duration() time.Duration { return s.end.Sub(s.start) }

// SessionModel records crop sessions for the stats panel: the open session,
// the finished ones and the number of crops produced. Presenters feed it from
// the UI tick and poll Values/Counts. The zero value is ready to use.
type SessionModel struct {
	open     *span
	finished []span
	crops    int
}

func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick opens a session when cropping starts, extends it while cropping
// continues and finishes it at the first tick that reports false.
func (m *SessionModel) OnTick(cropping bool, now time.Time) {
	if m == nil {
		return
	}
	switch {
	case cropping && m.open == nil:
		m.open = &span{start: now, end: now}
	case cropping:
		m.open.end = now
	case m.open != nil:
		m.open.end = now
		m.finished = append(m.finished, *m.open)
		m.open = nil
	}
}

// AddCrop counts one completed crop.
func (m *SessionModel) AddCrop() {
	if m == nil {
		return
	}
	m.crops++
}

// Values returns the length of the open session (or of the last finished
// one) and the time spent in all sessions so far.
func (m *SessionModel) Values() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	for _, s := range m.finished {
		total += s.duration()
	}
	switch {
	case m.open != nil:
		session = m.open.duration()
		total += session
	case len(m.finished) > 0:
		session = m.finished[len(m.finished)-1].duration()
	}
	return session, total
}

// Counts returns the number of sessions opened and crops produced.
func (m *SessionModel) Counts() (sessions, crops int) {
	if m == nil {
		return 0, 0
	}
	sessions = len(m.finished)
	if m.open != nil {
		sessions++
	}
	return sessions, m.crops
}
