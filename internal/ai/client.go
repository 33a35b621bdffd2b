package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	chatTimeout   = 60 * time.Second
	streamTimeout = 120 * time.Second
)

// ErrUnavailable is returned whenever the proxy endpoint cannot be reached
// or answers with a non-OK status; handlers map it to 503.
var ErrUnavailable = errors.New("ai provider unavailable")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	baseURL string
	model   string
	token   string
	client  *http.Client
}

func New(baseURL, model, token string) *Client {
	return &Client{
		baseURL: baseURL,
		model:   model,
		token:   token,
		client:  &http.Client{},
	}
}

func (c *Client) newRequest(ctx context.Context, msgs []Message, stream bool) (*http.Request, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: msgs,
		Stream:   stream,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	return req, nil
}

// Chat performs a non-streaming completion.
func (c *Client) Chat(ctx context.Context, msgs []Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, msgs, false)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("ai proxy request failed", zap.Error(err))
		return "", ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Error("ai proxy returned unexpected status", zap.Int("status", resp.StatusCode))
		return "", ErrUnavailable
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("can't decode ai response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrUnavailable
	}
	return parsed.Choices[0].Message.Content, nil
}

// Stream relays the provider's SSE chunks line by line into out, flushing
// after every event so clients see tokens as they arrive.
func (c *Client) Stream(ctx context.Context, msgs []Message, out io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, streamTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, msgs, true)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Error("ai proxy stream request failed", zap.Error(err))
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Error("ai proxy returned unexpected status", zap.Int("status", resp.StatusCode))
		return ErrUnavailable
	}

	flusher, _ := out.(http.Flusher)
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if _, err := fmt.Fprintf(out, "%s\n", scanner.Text()); err != nil {
			return err
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
	return scanner.Err()
}
