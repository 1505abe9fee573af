package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vitalog/internal/app"
	"github.com/alexanderramin/vitalog/internal/domain"
)

// FormatAdvice renders per-domain advice. Urgent guardrail warnings always
// come first and cannot be filtered out by any flag.
func FormatAdvice(a *domain.Advice) string {
	var b strings.Builder

	for _, w := range a.Urgent {
		fmt.Fprintf(&b, "%s\n\n", Urgent(w))
	}

	b.WriteString(Header(a.Domain.Title() + " advice"))
	b.WriteString("\n\n")
	b.WriteString(a.Narrative)
	b.WriteString("\n")

	if len(a.Actions) > 0 {
		b.WriteString("\n")
		for _, action := range a.Actions {
			fmt.Fprintf(&b, "  • %s\n", action)
		}
	}

	if a.Source == domain.AdviceFallback {
		b.WriteString("\n")
		b.WriteString(Dim("(deterministic summary; narrative generator unavailable or disabled)"))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatGlobalAdvice renders the aggregate advise output.
func FormatGlobalAdvice(g *app.GlobalAdvice) string {
	var b strings.Builder

	b.WriteString(Header("Overall advice"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  %s  %s\n\n",
		RenderGauge(g.WHI.Score, gaugeWidth, g.WHI.Level),
		RiskIndicator(g.WHI.Level))

	b.WriteString(g.Narrative)
	b.WriteString("\n")

	if len(g.Patterns) > 0 {
		b.WriteString("\n")
		for _, p := range g.Patterns {
			fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("▲"), p.Description)
		}
	}
	if len(g.Actions) > 0 {
		b.WriteString("\n")
		for _, action := range g.Actions {
			fmt.Fprintf(&b, "  • %s\n", action)
		}
	}

	if g.Source == domain.AdviceFallback {
		b.WriteString("\n")
		b.WriteString(Dim("(deterministic summary; narrative generator unavailable or disabled)"))
		b.WriteString("\n")
	}
	return b.String()
}
