package leetcode

import "net/http"

// UserAgentTransport wraps an http.RoundTripper and sets a fixed User-Agent
// and Referer on every request. LeetCode rejects bare clients.
type UserAgentTransport struct {
	http.RoundTripper
	UserAgent string
	Referer   string
}

func (t *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.RoundTripper
	if next == nil {
		next = http.DefaultTransport
	}
	cloned := req.Clone(req.Context())
	if t.UserAgent != "" {
		cloned.Header.Set("User-Agent", t.UserAgent)
	}
	if t.Referer != "" {
		cloned.Header.Set("Referer", t.Referer)
	}
	return next.RoundTrip(cloned)
}
