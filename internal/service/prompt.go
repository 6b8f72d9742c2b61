package service

import (
	"fmt"
	"strings"

	"github.com/JdarlingGT/PortfolioJdbuild/internal/portfolio"
)

// BuildSystemPrompt interpolates the static portfolio facts into the fixed
// instruction text prepended to every chat request. The template constrains
// the model to the portfolio owner's professional facts; it carries no
// request-specific state, so the result is identical for every call.
func BuildSystemPrompt(data *portfolio.Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s's marketing portfolio AI assistant. Answer questions professionally and concisely using the following information:\n\n", data.Owner)

	b.WriteString("### Current Employment\n")
	for i, e := range data.Employment {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "**%s** at **%s** (%s):\n", e.Role, e.Company, e.Years)
		for j, h := range e.Highlights {
			if j > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "• %s", h)
		}
	}

	b.WriteString("\n\n### Bearcave Marketing Projects\n")
	for i, p := range data.AgencyProjects {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "**%s** (%s):\n", p.Client, p.Website)
		fmt.Fprintf(&b, "Services: %s\n", strings.Join(p.Services, ", "))
		fmt.Fprintf(&b, "Outcome: %s", p.Outcome)
	}

	b.WriteString("\n\n### Core Capabilities\n")
	b.WriteString(strings.Join(data.Capabilities, "\n• "))

	b.WriteString("\n\n### Technical Skills\n")
	b.WriteString(strings.Join(data.Technologies, "\n• "))

	fmt.Fprintf(&b, `

Guidelines:
- Keep responses concise but informative
- Focus on %[1]s's unique hybrid skillset combining marketing strategy with technical implementation
- Highlight measurable results when available (like "70%% reduction in support tickets" or "250%% increase in qualified leads")
- Be professional but conversational
- If asked about specific projects, provide details from the portfolio data
- Always emphasize %[1]s's ability to both strategize and execute technically
`, data.Owner)

	return b.String()
}
