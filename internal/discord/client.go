// Package discord is a small REST client for the parts of the Discord bot API
// this service uses: posting channel messages and reading guild member roles.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Discord REST API root.
const DefaultBaseURL = "https://discord.com/api/v10"

// Attachment is a file sent along with a message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Client talks to the Discord REST API as a bot.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client authenticated with a bot token. An empty baseURL
// uses DefaultBaseURL.
func NewClient(baseURL, token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("discord bot token is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		// Discord allows 5 messages per 5 seconds per channel.
		limiter: rate.NewLimiter(rate.Every(time.Second), 5),
	}, nil
}

type allowedMentions struct {
	Parse []string `json:"parse"`
}

type attachmentRef struct {
	ID       int    `json:"id"`
	Filename string `json:"filename"`
}

type messagePayload struct {
	Content         string          `json:"content"`
	AllowedMentions allowedMentions `json:"allowed_mentions"`
	Attachments     []attachmentRef `json:"attachments,omitempty"`
}

// SendMessage posts content to a channel, with optional file attachments.
func (c *Client) SendMessage(ctx context.Context, channelID, content string, files ...Attachment) error {
	if channelID == "" {
		return fmt.Errorf("discord channel id is required")
	}

	payload := messagePayload{
		Content:         content,
		AllowedMentions: allowedMentions{Parse: []string{"users"}},
	}
	for i, f := range files {
		payload.Attachments = append(payload.Attachments, attachmentRef{ID: i, Filename: f.Filename})
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling message: %w", err)
	}

	body := bytes.NewBuffer(jsonData)
	contentType := "application/json"
	if len(files) > 0 {
		body, contentType, err = multipartBody(jsonData, files)
		if err != nil {
			return err
		}
	}

	resp, err := c.do(ctx, http.MethodPost, "/channels/"+channelID+"/messages", body, contentType)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func multipartBody(payloadJSON []byte, files []Attachment) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="payload_json"`)
	h.Set("Content-Type", "application/json")
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("creating payload part: %w", err)
	}
	if _, err := part.Write(payloadJSON); err != nil {
		return nil, "", fmt.Errorf("writing payload part: %w", err)
	}

	for i, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files[%d]"; filename=%q`, i, f.Filename))
		ct := f.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("creating file part: %w", err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, "", fmt.Errorf("writing file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

// do sends an authenticated request and returns the response for any 2xx
// status. Other statuses are turned into errors carrying the response body.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+c.token)
	req.Header.Set("User-Agent", "DiscordBot (https://github.com/zombor/patrol-reports, 1.0)")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling discord API: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return resp, nil
}

// APIError is a non-2xx response from Discord.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("discord API error (status %d): %s", e.StatusCode, e.Body)
}
