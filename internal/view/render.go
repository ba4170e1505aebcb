package view

import (
	"strings"

	"botdash/internal/format"

	"github.com/charmbracelet/lipgloss"
)

// MinWidth is the narrowest layout Render produces.
const MinWidth = 40

// wideWidth is where paired sections and counter tiles go side by side.
const wideWidth = 110

// Render draws the page at the given terminal width.
func (p Page) Render(width int) string {
	if width < MinWidth {
		width = MinWidth
	}
	if p.Loading {
		return Styles.Muted.Render(LoadingText)
	}

	blocks := []string{
		p.renderHeader(width),
		renderActions(p.Actions, width),
		renderCounters(p.Counters, width),
		renderTabs(p.Tabs, width),
		renderBody(p.Body, width),
		renderInstructions(p.Instructions, width),
		Styles.Button.Render(p.RefreshHint) + Styles.Hint.Render(" (r)"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (p Page) renderHeader(width int) string {
	title := Styles.Title.Render(format.FitWidth(p.Title, width))
	sub := Styles.Subtitle.Render(format.FitWidth(p.Subtitle, width))
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(title + "\n" + sub)
}

// frame splits an outer width for style into the value passed to Width
// (which includes padding but not border) and the usable content width.
func frame(style lipgloss.Style, outer int) (styleWidth, content int) {
	styleWidth = outer - style.GetHorizontalBorderSize() - style.GetHorizontalMargins()
	content = styleWidth - style.GetHorizontalPadding()
	if content < 1 {
		content = 1
		styleWidth = content + style.GetHorizontalPadding()
	}
	return styleWidth, content
}

func renderActions(panels []ActionPanel, width int) string {
	if len(panels) == 0 {
		return ""
	}
	if width >= wideWidth {
		colW := width / len(panels)
		rendered := make([]string, len(panels))
		for i, p := range panels {
			rendered[i] = renderAction(p, colW)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}
	rendered := make([]string, len(panels))
	for i, p := range panels {
		rendered[i] = renderAction(p, width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func renderAction(p ActionPanel, width int) string {
	sw, inner := frame(Styles.Box, width)
	lines := []string{
		Styles.Section.Render(format.FitWidth(p.Title, inner)),
		Styles.Muted.Render(p.Description),
	}

	button := "[ " + p.Button + " ]"
	if p.Pending {
		lines = append(lines, Styles.ButtonBusy.Render(button))
	} else {
		lines = append(lines, Styles.Button.Render(button)+Styles.Hint.Render(" ("+p.Key+")"))
	}

	if p.Result != nil {
		style := Styles.ResultFail
		if p.Result.OK {
			style = Styles.ResultOK
		}
		content := append([]string{Styles.Value.Render(p.Result.Headline)}, p.Result.Lines...)
		rw, _ := frame(style, inner)
		lines = append(lines, style.Width(rw).Render(strings.Join(content, "\n")))
	}
	return Styles.Box.Width(sw).Render(strings.Join(lines, "\n"))
}

func renderCounters(counters []Counter, width int) string {
	if len(counters) == 0 {
		return ""
	}
	if width >= wideWidth {
		colW := width / len(counters)
		tiles := make([]string, len(counters))
		for i, c := range counters {
			body := Styles.Muted.Render(c.Label) + "\n" + Styles.Value.Render(c.Value) + " " + c.Icon
			tw, _ := frame(Styles.Tile, colW)
			tiles[i] = Styles.Tile.Width(tw).Render(body)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
	}
	lines := make([]string, len(counters))
	for i, c := range counters {
		lines[i] = c.Icon + " " + Styles.Muted.Render(c.Label+": ") + Styles.Value.Render(c.Value)
	}
	tw, _ := frame(Styles.Tile, width)
	return Styles.Tile.Width(tw).Render(strings.Join(lines, "\n"))
}

func renderTabs(tabs []TabItem, width int) string {
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		label := t.Key + " " + t.Label
		if t.Active {
			parts[i] = Styles.TabActive.Render(label)
		} else {
			parts[i] = Styles.TabInactive.Render(label)
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, "  "))
}

func renderBody(sections []Section, width int) string {
	if len(sections) == 2 && width >= wideWidth {
		colW := width / 2
		return lipgloss.JoinHorizontal(lipgloss.Top,
			renderSection(sections[0], colW),
			renderSection(sections[1], colW),
		)
	}
	rendered := make([]string, len(sections))
	for i, s := range sections {
		rendered[i] = renderSection(s, width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func renderSection(s Section, width int) string {
	sw, inner := frame(Styles.Box, width)
	lines := []string{Styles.Section.Render(format.FitWidth(s.Title, inner))}
	if len(s.Cards) == 0 {
		lines = append(lines, Styles.Empty.Render(s.Placeholder))
	}
	for _, c := range s.Cards {
		lines = append(lines, renderCard(c, inner))
	}
	return Styles.Box.Width(sw).Render(strings.Join(lines, "\n"))
}

func renderCard(c Card, width int) string {
	cw, _ := frame(Styles.Card, width)

	head := Styles.Normal.Bold(true).Render(c.Title)
	for _, b := range c.Badges {
		head += "  " + toneStyles[b.Tone].Render("["+b.Text+"]")
	}
	lines := []string{head}
	if c.Value != "" {
		lines = append(lines, Styles.Value.Render(c.Value))
	}
	for _, l := range c.Lines {
		lines = append(lines, Styles.Normal.Render(l))
	}
	if c.Code != "" {
		lines = append(lines, Styles.Code.Render(c.Code))
	}
	if len(c.Metrics) > 0 {
		parts := make([]string, len(c.Metrics))
		for i, m := range c.Metrics {
			v := m.Value
			if m.Code {
				v = Styles.Code.Render(v)
			}
			parts[i] = Styles.Muted.Render(m.Label+": ") + v
		}
		lines = append(lines, strings.Join(parts, "  "))
	}
	if c.Footer != "" {
		lines = append(lines, Styles.Muted.Render(c.Footer))
	}
	return Styles.Card.Width(cw).Render(strings.Join(lines, "\n"))
}

func renderInstructions(groups []InstructionGroup, width int) string {
	sw, _ := frame(Styles.Box, width)
	lines := []string{Styles.Section.Render("📖 Как использовать бота")}
	for _, g := range groups {
		lines = append(lines, Styles.Title.Render(g.Title))
		for _, it := range g.Items {
			if it.Code == "" {
				lines = append(lines, "• "+it.Text)
				continue
			}
			lines = append(lines, "• "+Styles.Code.Render(it.Code)+" - "+it.Text)
		}
	}
	return Styles.Box.Width(sw).Render(strings.Join(lines, "\n"))
}
