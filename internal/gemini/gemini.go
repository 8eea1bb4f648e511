package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/deusflow/fieldbrief/internal/digest"
)

const (
	maxPromptArticles = 12
	maxSnippetRunes   = 400
	maxBriefingRunes  = 1200
)

type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// Brief asks the model for a one-paragraph executive briefing of the given
// digest articles.
func (c *Client) Brief(ctx context.Context, articles []digest.Article) (string, error) {
	if len(articles) == 0 {
		return "", fmt.Errorf("no articles to brief")
	}

	model := c.client.GenerativeModel(c.model)
	resp, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(articles)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	briefing := CleanBriefing(b.String())
	if briefing == "" {
		return "", fmt.Errorf("empty briefing from Gemini")
	}
	return briefing, nil
}

// BuildPrompt lists up to maxPromptArticles articles with trimmed snippets.
func BuildPrompt(articles []digest.Article) string {
	var b strings.Builder
	b.WriteString(`You brief a technology field leader before client meetings.
Write ONE paragraph (at most 5 sentences) covering the most important developments below.
Name companies exactly as written. No preamble, no bullet points, no markdown.

ARTICLES:
`)
	for i, a := range articles {
		if i >= maxPromptArticles {
			break
		}
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, a.SourceName, a.Title)
		if s := trimRunes(collapse(a.Summary), maxSnippetRunes); s != "" {
			fmt.Fprintf(&b, "   %s\n", s)
		}
	}
	return b.String()
}

var (
	preambleRe = regexp.MustCompile(`(?i)^(here is|here's|sure[,!]?|briefing:|summary:)[^\n]*?(:\s*|\n)`)
	markdownRe = regexp.MustCompile("[*_#`]+")
)

// CleanBriefing strips common model preambles and markdown, collapses
// whitespace and caps the length.
func CleanBriefing(s string) string {
	s = strings.TrimSpace(s)
	s = preambleRe.ReplaceAllString(s, "")
	s = markdownRe.ReplaceAllString(s, "")
	return trimRunes(collapse(s), maxBriefingRunes)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// trimRunes cuts on a rune boundary, preferring the last sentence end.
func trimRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	trimmed := string([]rune(s)[:n])
	if idx := strings.LastIndex(trimmed, ". "); idx > n/3 {
		return trimmed[:idx+1]
	}
	return trimmed + "…"
}
