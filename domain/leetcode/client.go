// Package leetcode fetches the daily coding challenge from the LeetCode
// GraphQL API.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultURL       = "https://leetcode.com/graphql"
	DefaultUserAgent = "Mozilla/5.0 (compatible; leetsnap/1.0)"
	DefaultTimeout   = 15 * time.Second
)

// ErrNoDailyChallenge is returned when the response carries no daily question.
var ErrNoDailyChallenge = errors.New("leetcode: no daily challenge in response")

const dailyQuery = `query questionOfToday {
  activeDailyCodingChallengeQuestion {
    date
    userStatus
    question {
      questionId
      questionFrontendId
      title
      titleSlug
      difficulty
      topicTags {
        name
      }
    }
  }
}`

type graphQLRequest struct {
	Query string `json:"query"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type dailyResponse struct {
	Data struct {
		Active *struct {
			Date       string `json:"date"`
			UserStatus string `json:"userStatus"`
			Question   *struct {
				QuestionID         string `json:"questionId"`
				QuestionFrontendID string `json:"questionFrontendId"`
				Title              string `json:"title"`
				TitleSlug          string `json:"titleSlug"`
				Difficulty         string `json:"difficulty"`
				TopicTags          []struct {
					Name string `json:"name"`
				} `json:"topicTags"`
			} `json:"question"`
		} `json:"activeDailyCodingChallengeQuestion"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("leetcode: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Client talks to the GraphQL endpoint.
type Client struct {
	httpClient *http.Client
	url        string
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient builds a Client. An empty url uses DefaultURL; a nil httpClient
// gets one with DefaultTimeout. The client's transport is wrapped so every
// request carries userAgent.
func NewClient(httpClient *http.Client, url, userAgent string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if url == "" {
		url = DefaultURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	wrapped := *httpClient
	wrapped.Transport = &UserAgentTransport{
		RoundTripper: httpClient.Transport,
		UserAgent:    userAgent,
		Referer:      "https://leetcode.com/problemset/",
	}
	return &Client{httpClient: &wrapped, url: url, logger: logger, now: time.Now}
}

// FetchDaily returns today's challenge.
func (c *Client) FetchDaily(ctx context.Context) (Problem, error) {
	body, err := json.Marshal(graphQLRequest{Query: dailyQuery})
	if err != nil {
		return Problem{}, fmt.Errorf("encode query: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Problem{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := c.now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Problem{}, fmt.Errorf("fetch daily challenge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Problem{}, &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(snippet))}
	}

	var out dailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Problem{}, fmt.Errorf("decode daily challenge: %w", err)
	}
	p, err := c.toProblem(out)
	if err != nil {
		return Problem{}, err
	}
	if c.logger != nil {
		c.logger.Info("daily challenge fetched",
			"number", p.Number,
			"title", p.Title,
			"difficulty", p.Difficulty,
			"tags", len(p.Tags),
			"elapsed", c.now().Sub(start),
		)
	}
	return p, nil
}

func (c *Client) toProblem(out dailyResponse) (Problem, error) {
	active := out.Data.Active
	if active == nil || active.Question == nil {
		if len(out.Errors) > 0 {
			return Problem{}, fmt.Errorf("%w: %s", ErrNoDailyChallenge, out.Errors[0].Message)
		}
		return Problem{}, ErrNoDailyChallenge
	}
	q := active.Question
	tags := make([]string, 0, len(q.TopicTags))
	for _, t := range q.TopicTags {
		tags = append(tags, t.Name)
	}
	date, err := time.Parse(DateLayout, active.Date)
	if err != nil {
		date = c.now()
	}
	return Problem{
		Number:     q.QuestionFrontendID,
		Title:      q.Title,
		Slug:       q.TitleSlug,
		Difficulty: q.Difficulty,
		Tags:       tags,
		Date:       date,
	}, nil
}
