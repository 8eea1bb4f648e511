// Package preview renders a short terminal view of a digest snapshot.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/deusflow/fieldbrief/internal/digest"
)

// Render shows the digest header and the first n daily articles.
func Render(p digest.Payload, n int) string {
	var b strings.Builder

	header := fmt.Sprintf("Daily digest · %d/%d min · %d daily · %d weekly · %d scored",
		p.Daily.TotalMinutes, p.Daily.MinutesBudget, p.Totals.Daily, p.Totals.Weekly, p.Totals.All)
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if p.Briefing != "" {
		b.WriteString(boxStyle.Render(p.Briefing))
		b.WriteString("\n")
	}

	articles := p.Daily.Articles
	if n < len(articles) {
		articles = articles[:max(0, n)]
	}
	for i, a := range articles {
		b.WriteString(boxStyle.Render(card(i+1, a)))
		b.WriteString("\n")
	}

	if len(p.CrossReferences) > 0 {
		topics := make([]string, 0, len(p.CrossReferences))
		for _, c := range p.CrossReferences {
			topics = append(topics, fmt.Sprintf("%s (%d)", c.Topic, c.SourceCount))
		}
		b.WriteString(dimStyle.Render("Cross-referenced: " + strings.Join(topics, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}

// Print writes Render output to w.
func Print(w io.Writer, p digest.Payload, n int) error {
	_, err := io.WriteString(w, Render(p, n))
	return err
}

func card(pos int, a digest.Article) string {
	meta := []string{
		sourceStyle.Render(a.SourceName),
		scoreStyle.Render(fmt.Sprintf("%.2f", a.RelevanceScore)),
		dimStyle.Render(fmt.Sprintf("%d min", a.EstimatedReadingMinutes)),
	}
	if a.MatchedIndustry != nil {
		meta = append(meta, tagStyle.Render(a.MatchedIndustry.Industry))
	}
	if a.MatchedClient != nil {
		meta = append(meta, tagStyle.Render("client: "+a.MatchedClient.Name))
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%d. %s", pos, a.Title)),
		strings.Join(meta, dimStyle.Render(" · ")),
	}
	if a.Summary != "" {
		lines = append(lines, a.Summary)
	}
	lines = append(lines, linkStyle.Render(a.URL))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
