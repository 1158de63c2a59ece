package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dorotad/contacts-backend/internal/logger"
)

// Client is the transactional mail collaborator. Only the v3 mail/send
// surface this backend needs is exposed.
type Client interface {
	Send(ctx context.Context, req SendEmailRequest) (*SendEmailResult, error)
}

type Config struct {
	APIKey     string
	BaseURL    string
	FromEmail  string
	FromName   string
	Timeout    time.Duration
	MaxRetries int
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("missing SENDGRID_API_KEY")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://api.sendgrid.com"
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 4
	}

	return &client{
		log:        log.With("client", "SendGridClient"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

type EmailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type SendEmailRequest struct {
	From    EmailAddress
	To      []EmailAddress
	Subject string
	Text    string
	HTML    string
}

type SendEmailResult struct {
	StatusCode int
	MessageID  string
}

// SendGrid mail/send wire types.
type mailSendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             EmailAddress      `json:"from"`
	Subject          string            `json:"subject,omitempty"`
	Content          []mailContent     `json:"content,omitempty"`
}

type personalization struct {
	To []EmailAddress `json:"to"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

func (c *client) Send(ctx context.Context, req SendEmailRequest) (*SendEmailResult, error) {
	if c == nil || c.httpClient == nil {
		return nil, fmt.Errorf("sendgrid client unavailable")
	}

	if strings.TrimSpace(req.From.Email) == "" {
		req.From.Email = c.cfg.FromEmail
		if strings.TrimSpace(req.From.Name) == "" {
			req.From.Name = c.cfg.FromName
		}
	}
	if strings.TrimSpace(req.From.Email) == "" {
		return nil, fmt.Errorf("sendgrid: From.Email required (or set SENDGRID_FROM_EMAIL)")
	}
	if len(req.To) == 0 {
		return nil, fmt.Errorf("sendgrid: To required")
	}
	if strings.TrimSpace(req.Subject) == "" {
		return nil, fmt.Errorf("sendgrid: Subject required")
	}

	contents := []mailContent{}
	if t := strings.TrimSpace(req.Text); t != "" {
		contents = append(contents, mailContent{Type: "text/plain", Value: t})
	}
	if h := strings.TrimSpace(req.HTML); h != "" {
		contents = append(contents, mailContent{Type: "text/html", Value: h})
	}
	if len(contents) == 0 {
		return nil, fmt.Errorf("sendgrid: Text or HTML content required")
	}

	wire := mailSendRequest{
		Personalizations: []personalization{{To: req.To}},
		From:             req.From,
		Subject:          strings.TrimSpace(req.Subject),
		Content:          contents,
	}

	resp, err := c.do(ctx, http.MethodPost, "/v3/mail/send", wire)
	if err != nil {
		return nil, err
	}

	return &SendEmailResult{
		StatusCode: resp.StatusCode,
		MessageID:  strings.TrimSpace(resp.Header.Get("X-Message-Id")),
	}, nil
}

type errorItem struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Errors []errorItem `json:"errors"`
}

type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "sendgrid: <nil error>"
	}
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = "<empty body>"
	}
	return fmt.Sprintf("sendgrid http %d: %s", e.StatusCode, msg)
}

func retryable(err error) bool {
	if he, ok := err.(*HTTPError); ok {
		return he.StatusCode == http.StatusTooManyRequests || he.StatusCode >= 500
	}
	// Transport-level failures get retried too.
	return err != nil
}

func (c *client) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	backoff := 1 * time.Second

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		resp, err := c.doOnce(ctx, method, path, body)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) || attempt == c.cfg.MaxRetries {
			return nil, err
		}

		c.log.Warn("Sendgrid request retrying",
			"path", path,
			"attempt", attempt+1,
			"max_retries", c.cfg.MaxRetries,
			"sleep", backoff.String(),
			"error", err.Error(),
		)

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff *= 2
	}

	return nil, lastErr
}

func (c *client) doOnce(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		he := &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
		var er errorResponse
		if json.Unmarshal(raw, &er) == nil && len(er.Errors) > 0 && strings.TrimSpace(er.Errors[0].Message) != "" {
			he.Body = er.Errors[0].Message
		}
		return nil, he
	}

	return resp, nil
}
