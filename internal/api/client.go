package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/skillpath/internal/quiz"
	"github.com/abhisek/skillpath/internal/roadmap"
)

// Client talks to the JobAlign backend. All endpoints are JSON POSTs
// under one base path; responses are schema-validated and converted to
// typed domain values here, so the stringly-keyed wire conventions
// never leak past this package.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Client with the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// FetchRoadmap loads the roadmap tree for the user. The service wraps
// the tree in an array; element 0 is the user-scoped record, and an
// empty array means no roadmap exists for this user.
func (c *Client) FetchRoadmap(ctx context.Context, userID string) (*roadmap.Roadmap, error) {
	raw, err := c.postJSON(ctx, "/getRoadMap", map[string]string{"userId": userID}, roadmapSchema)
	if err != nil {
		return nil, err
	}

	var payload []wireRoadmap
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &ErrInvalidPayload{Content: raw, Err: err}
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("no roadmap found for this user")
	}

	return payload[0].toDomain(), nil
}

// FetchQuestions loads the question set for a topic. Each wire element
// is a single-key object {"question-<n>": "<text>"}; the key is parsed
// into a typed Question exactly once, here.
func (c *Client) FetchQuestions(ctx context.Context, topic, description string) ([]quiz.Question, error) {
	body := map[string]string{"topic": topic, "description": description}
	raw, err := c.postJSON(ctx, "/getTopicQuestions", body, questionsSchema)
	if err != nil {
		return nil, err
	}

	var payload []map[string]string
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &ErrInvalidPayload{Content: raw, Err: err}
	}

	questions := make([]quiz.Question, 0, len(payload))
	for _, item := range payload {
		for key, text := range item {
			ord, err := questionOrd(key)
			if err != nil {
				return nil, &ErrInvalidPayload{Content: raw, Err: err}
			}
			questions = append(questions, quiz.Question{Key: key, Ord: ord, Text: text})
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].Ord < questions[j].Ord })
	return questions, nil
}

// SubmitAnswers sends the ordered answer set for scoring and returns
// the typed verdict.
func (c *Client) SubmitAnswers(ctx context.Context, sub *quiz.Submission) (*quiz.Result, error) {
	answers := make([]map[string]string, 0, len(sub.Answers))
	for _, rec := range sub.Answers {
		answers = append(answers, map[string]string{
			rec.QuestionKey: rec.QuestionText,
			rec.AnswerKey:   rec.AnswerText,
		})
	}

	body := map[string]any{
		"userId":        sub.UserID,
		"roadMapId":     sub.RoadmapID,
		"skillId":       sub.SkillID,
		"topicId":       sub.TopicID,
		"answersObject": answers,
	}

	raw, err := c.postJSON(ctx, "/checkTestAnswers", body, verdictSchema)
	if err != nil {
		return nil, err
	}

	var payload wireVerdict
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &ErrInvalidPayload{Content: raw, Err: err}
	}
	return payload.toDomain(), nil
}

// postJSON issues one POST, maps non-2xx responses to *ErrRemote with
// the service's own message when present, and schema-validates the
// body before returning it.
func (c *Client) postJSON(ctx context.Context, path string, body any, schema *Schema) (json.RawMessage, error) {
	buf, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrRemote{Status: resp.StatusCode, Message: remoteMessage(data)}
	}

	if err := validatePayload(schema, data); err != nil {
		return nil, err
	}
	return data, nil
}

// remoteMessage extracts the service's {"message": ...} error text from
// an error body, "" when absent.
func remoteMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Message
}

func questionOrd(key string) (int, error) {
	suffix, ok := strings.CutPrefix(key, "question-")
	if !ok {
		return 0, fmt.Errorf("unexpected question key %q", key)
	}
	ord, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, fmt.Errorf("unexpected question key %q", key)
	}
	return ord, nil
}
