package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
)

// Action names accepted by the estimator endpoint.
const (
	actionAnalyze          = "analyzeImageOrText"
	actionRefine           = "refineAnalyzedLogs"
	actionEstimateExercise = "estimateExerciseCalories"
	actionAdvice           = "getPersonalizedAdvice"
	actionInstantFeedback  = "getInstantFeedback"
	actionChat             = "chatWithNutritionist"
)

// APIError is a failure reported by the estimator endpoint. Status carries
// the HTTP status code; Message is the remote error string, or the raw body
// when the failure response was not JSON.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("estimator request failed with status %d", e.Status)
	}
	return fmt.Sprintf("estimator request failed with status %d: %s", e.Status, e.Message)
}

// Client talks to the single estimator endpoint: POST {action, payload},
// JSON body back on success, JSON body with an "error" string on failure.
type Client struct {
	BaseURL     string
	APIKey      string
	HTTPClient  *http.Client
	MaxAttempts int
}

type FoodAnalysis struct {
	Items    []model.FoodItem `json:"items"`
	Question string           `json:"question,omitempty"`
	Message  string           `json:"message,omitempty"`
}

type ExerciseEstimate struct {
	Calories float64 `json:"calories"`
	Note     string  `json:"note,omitempty"`
}

// AnalyzeFood submits a meal description (and optional image data URL) and
// returns the estimated food items plus an optional clarification question.
func (c *Client) AnalyzeFood(ctx context.Context, text, imageDataURL string) (FoodAnalysis, error) {
	payload := map[string]any{"text": text}
	if imageDataURL != "" {
		payload["image"] = imageDataURL
	}
	body, err := c.call(ctx, actionAnalyze, payload)
	if err != nil {
		return FoodAnalysis{}, err
	}
	return parseFoodAnalysis(body)
}

// RefineFood sends the current item list and a correction instruction and
// returns the updated list plus the assistant's message.
func (c *Client) RefineFood(ctx context.Context, items []model.FoodItem, instruction string) (FoodAnalysis, error) {
	body, err := c.call(ctx, actionRefine, map[string]any{
		"items":       items,
		"instruction": instruction,
	})
	if err != nil {
		return FoodAnalysis{}, err
	}
	return parseFoodAnalysis(body)
}

// EstimateExercise asks the remote estimator for a calorie burn estimate.
func (c *Client) EstimateExercise(ctx context.Context, name string, durationMinutes int, intensity model.Intensity, profile model.Profile) (ExerciseEstimate, error) {
	body, err := c.call(ctx, actionEstimateExercise, map[string]any{
		"name":            name,
		"durationMinutes": durationMinutes,
		"intensity":       intensity,
		"profile":         profile,
	})
	if err != nil {
		return ExerciseEstimate{}, err
	}
	var raw struct {
		Calories any    `json:"calories"`
		Note     string `json:"note"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return ExerciseEstimate{}, &APIError{Message: "malformed exercise estimate response"}
	}
	return ExerciseEstimate{Calories: coerceNumber(raw.Calories), Note: raw.Note}, nil
}

// Advice requests personalized advice text for the profile and day summary.
func (c *Client) Advice(ctx context.Context, profile model.Profile, summary any) (string, error) {
	return c.textCall(ctx, actionAdvice, map[string]any{
		"profile": profile,
		"summary": summary,
	})
}

// InstantFeedback requests a one-line reaction to a just-logged meal.
func (c *Client) InstantFeedback(ctx context.Context, items []model.FoodItem, profile model.Profile) (string, error) {
	return c.textCall(ctx, actionInstantFeedback, map[string]any{
		"items":   items,
		"profile": profile,
	})
}

// Chat sends the transcript, the new message, and local context (profile and
// day summary, never images) and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, history []model.ChatMessage, message string, context any) (string, error) {
	return c.textCall(ctx, actionChat, map[string]any{
		"history": history,
		"message": message,
		"context": context,
	})
}

func (c *Client) textCall(ctx context.Context, action string, payload map[string]any) (string, error) {
	body, err := c.call(ctx, action, payload)
	if err != nil {
		return "", err
	}
	var raw struct {
		Text     string `json:"text"`
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", &APIError{Message: "malformed response body"}
	}
	if raw.Text != "" {
		return raw.Text, nil
	}
	return raw.Response, nil
}

func (c *Client) call(ctx context.Context, action string, payload map[string]any) ([]byte, error) {
	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	var body []byte
	err := withRetry(ctx, attempts, func() error {
		var err error
		body, err = c.post(ctx, action, payload)
		return err
	})
	return body, err
}

func (c *Client) post(ctx context.Context, action string, payload map[string]any) ([]byte, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("missing estimator URL")
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	reqBody, err := json.Marshal(map[string]any{
		"action":  action,
		"payload": payload,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(c.APIKey) != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute %s request: %w", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", action, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Message: remoteErrorMessage(body)}
	}
	var failure struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
		return nil, &APIError{Status: resp.StatusCode, Message: failure.Error}
	}
	return body, nil
}

// remoteErrorMessage extracts the "error" string from a JSON failure body;
// a non-JSON body is treated as an opaque error message.
func remoteErrorMessage(body []byte) string {
	var failure struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
		return failure.Error
	}
	return strings.TrimSpace(string(body))
}

func parseFoodAnalysis(body []byte) (FoodAnalysis, error) {
	var raw struct {
		Items    []json.RawMessage `json:"items"`
		Question string            `json:"question"`
		Message  string            `json:"message"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return FoodAnalysis{}, &APIError{Message: "malformed analysis response"}
	}
	out := FoodAnalysis{Question: raw.Question, Message: raw.Message}
	for _, rawItem := range raw.Items {
		out.Items = append(out.Items, NormalizeFoodItem(rawItem))
	}
	return out, nil
}
