package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/deusflow/fieldbrief/internal/digest"
	"github.com/deusflow/fieldbrief/internal/logger"
	"github.com/deusflow/fieldbrief/internal/retry"
)

const (
	defaultAPIBase = "https://api.telegram.org"
	// Telegram rejects messages longer than 4096 characters.
	maxMessageRunes = 4000
)

type Publisher struct {
	token   string
	chatID  string
	apiBase string
	client  *http.Client
	retry   retry.RetryConfig
}

type Option func(*Publisher)

// WithAPIBase points the publisher at a different Bot API host.
func WithAPIBase(base string) Option {
	return func(p *Publisher) { p.apiBase = strings.TrimRight(base, "/") }
}

func WithRetry(cfg retry.RetryConfig) Option {
	return func(p *Publisher) { p.retry = cfg }
}

func NewPublisher(token, chatID string, opts ...Option) *Publisher {
	p := &Publisher{
		token:   token,
		chatID:  chatID,
		apiBase: defaultAPIBase,
		client:  &http.Client{Timeout: 30 * time.Second},
		retry:   retry.RetryConfig{MaxAttempts: 3, Delay: 2 * time.Second, Backoff: true},
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// PublishDigest posts the daily digest as one HTML message.
func (p *Publisher) PublishDigest(ctx context.Context, payload digest.Payload) error {
	return p.SendMessage(ctx, FormatDigest(payload))
}

// SendMessage sends an HTML message, retrying transient failures.
// 4xx responses other than 429 are not retried.
func (p *Publisher) SendMessage(ctx context.Context, text string) error {
	attempt := 0
	return retry.WithRetry(ctx, p.retry, func() error {
		attempt++
		err := p.sendOnce(ctx, text)
		if err != nil {
			logger.Warn("Error sending to Telegram", "attempt", attempt, "error", err)
			return err
		}
		logger.Info("Message sent to Telegram", "attempt", attempt)
		return nil
	})
}

func (p *Publisher) sendOnce(ctx context.Context, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", p.apiBase, p.token)

	body, err := json.Marshal(map[string]interface{}{
		"chat_id":                  p.chatID,
		"text":                     text,
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	})
	if err != nil {
		return retry.Permanent(fmt.Errorf("error make JSON: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return retry.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("error HTTP request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusOK {
		return nil
	}
	err = fmt.Errorf("telegram API error: status %d", resp.StatusCode)
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return retry.Permanent(err)
	}
	return err
}

// FormatDigest renders the daily digest as Telegram HTML. All article text
// is escaped. Articles that would push the message past the size limit are
// left out.
func FormatDigest(p digest.Payload) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>Daily brief</b> · %s\n", p.GeneratedAt.UTC().Format("2 Jan 2006"))
	fmt.Fprintf(&b, "%d articles · %d/%d min\n\n", len(p.Daily.Articles), p.Daily.TotalMinutes, p.Daily.MinutesBudget)

	if p.Briefing != "" {
		fmt.Fprintf(&b, "<i>%s</i>\n\n", html.EscapeString(p.Briefing))
	}

	used := len([]rune(b.String()))
	for i, a := range p.Daily.Articles {
		entry := formatArticle(i+1, a)
		n := len([]rune(entry))
		if used+n > maxMessageRunes {
			break
		}
		b.WriteString(entry)
		used += n
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatArticle(pos int, a digest.Article) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d. <a href=\"%s\">%s</a>\n", pos, html.EscapeString(a.URL), html.EscapeString(a.Title))

	meta := []string{html.EscapeString(a.SourceName), fmt.Sprintf("%d min", a.EstimatedReadingMinutes)}
	if a.MatchedIndustry != nil {
		meta = append(meta, html.EscapeString(a.MatchedIndustry.Industry))
	}
	if a.MatchedClient != nil {
		meta = append(meta, "client: "+html.EscapeString(a.MatchedClient.Name))
	}
	fmt.Fprintf(&b, "<i>%s</i>\n\n", strings.Join(meta, " · "))
	return b.String()
}
