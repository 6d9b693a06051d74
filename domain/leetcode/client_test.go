package leetcode

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dailyJSON = `{
  "data": {
    "activeDailyCodingChallengeQuestion": {
      "date": "2025-03-14",
      "userStatus": "NotStart",
      "question": {
        "questionId": "1",
        "questionFrontendId": "1",
        "title": "Two Sum",
        "titleSlug": "two-sum",
        "difficulty": "Easy",
        "topicTags": [{"name": "Array"}, {"name": "Hash Table"}]
      }
    }
  }
}`

func TestFetchDaily_ParsesResponse(t *testing.T) {
	var gotUA, gotCT string
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotUA = r.Header.Get("User-Agent")
		gotCT = r.Header.Get("Content-Type")
		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotQuery = req.Query
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(dailyJSON))
	}))
	defer server.Close()

	c := NewClient(server.Client(), server.URL, "leetsnap-test", nil)
	p, err := c.FetchDaily(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "leetsnap-test", gotUA)
	assert.Equal(t, "application/json", gotCT)
	assert.True(t, strings.Contains(gotQuery, "activeDailyCodingChallengeQuestion"))

	assert.Equal(t, "1", p.Number)
	assert.Equal(t, "Two Sum", p.Title)
	assert.Equal(t, "two-sum", p.Slug)
	assert.Equal(t, "Easy", p.Difficulty)
	assert.Equal(t, []string{"Array", "Hash Table"}, p.Tags)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), p.Date)
	assert.Equal(t, "1. Two Sum", p.Name())
	assert.Equal(t, "Array, Hash Table", p.TagList())
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", p.URL())
}

func TestFetchDaily_MissingBlock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"activeDailyCodingChallengeQuestion":null},"errors":[{"message":"rate limited"}]}`))
	}))
	defer server.Close()

	_, err := NewClient(server.Client(), server.URL, "", nil).FetchDaily(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDailyChallenge))
	assert.Contains(t, err.Error(), "rate limited")
}

func TestFetchDaily_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	_, err := NewClient(server.Client(), server.URL, "", nil).FetchDaily(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusForbidden, se.StatusCode)
	assert.Equal(t, "forbidden", se.Body)
}

func TestFetchDaily_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	_, err := NewClient(server.Client(), server.URL, "", nil).FetchDaily(context.Background())
	assert.Error(t, err)
}

func TestFetchDaily_ContextTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := NewClient(server.Client(), server.URL, "", nil).FetchDaily(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetchDaily_BadDateFallsBackToClock(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Replace(dailyJSON, "2025-03-14", "soon", 1)))
	}))
	defer server.Close()

	c := NewClient(server.Client(), server.URL, "", nil)
	now := time.Date(2024, 12, 31, 8, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	p, err := c.FetchDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, now, p.Date)
}

func TestNumberFromName(t *testing.T) {
	assert.Equal(t, "1", NumberFromName("1. Two Sum"))
	assert.Equal(t, "2415", NumberFromName(" 2415 . Reverse Odd Levels"))
	assert.Equal(t, "Custom", NumberFromName("Custom"))
}

func TestUserAgentTransport_DoesNotMutateRequest(t *testing.T) {
	var seen string
	tr := &UserAgentTransport{
		RoundTripper: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			seen = r.Header.Get("User-Agent")
			return &http.Response{StatusCode: 200, Body: http.NoBody, Request: r}, nil
		}),
		UserAgent: "ua",
	}
	req := httptest.NewRequest(http.MethodGet, "http://example.invalid", nil)
	_, err := tr.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, "ua", seen)
	assert.Empty(t, req.Header.Get("User-Agent"))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
