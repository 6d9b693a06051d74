package model

import (
	"testing"
	"time"
)

func TestSessionModel_Durations(t *testing.T) {
	m := NewSessionModel()
	t0 := time.Unix(1000, 0)
	at := func(s int) time.Time { return t0.Add(time.Duration(s) * time.Second) }

	steps := []struct {
		cropping       bool
		sec            int
		session, total time.Duration
	}{
		{true, 0, 0, 0},
		{true, 5, 5 * time.Second, 5 * time.Second},
		{false, 6, 6 * time.Second, 6 * time.Second},
		{false, 9, 6 * time.Second, 6 * time.Second}, // idle ticks change nothing
		{true, 10, 0, 6 * time.Second},
		{true, 13, 3 * time.Second, 9 * time.Second},
		{false, 14, 4 * time.Second, 10 * time.Second},
	}
	for i, s := range steps {
		m.OnTick(s.cropping, at(s.sec))
		session, total := m.Values()
		if session != s.session || total != s.total {
			t.Fatalf("step %d: got session=%v total=%v want session=%v total=%v", i, session, total, s.session, s.total)
		}
	}
}

func TestSessionModel_Counts(t *testing.T) {
	m := NewSessionModel()
	t0 := time.Unix(0, 0)
	m.AddCrop() // outside a session
	m.OnTick(true, t0)
	m.AddCrop()
	m.AddCrop()
	m.OnTick(false, t0.Add(time.Second))
	m.OnTick(true, t0.Add(2*time.Second))
	m.AddCrop()
	m.OnTick(false, t0.Add(3*time.Second))

	sessions, crops := m.Counts()
	if sessions != 2 || crops != 4 {
		t.Fatalf("expected 2 sessions and 4 crops; got %d and %d", sessions, crops)
	}
}

func TestSessionModel_NilSafe(t *testing.T) {
	var m *SessionModel
	m.OnTick(true, time.Now())
	m.AddCrop()
	if s, tot := m.Values(); s != 0 || tot != 0 {
		t.Fatalf("nil model should report zero durations")
	}
	if s, c := m.Counts(); s != 0 || c != 0 {
		t.Fatalf("nil model should report zero counts")
	}
}
