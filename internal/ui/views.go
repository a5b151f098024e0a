package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cellar/internal/controller"
	"cellar/internal/model"
)

// View renders the current screen.
func (m Model) View() string {
	if m.showWelcome {
		return m.viewWelcome()
	}

	var body string
	switch m.screen {
	case screenChat:
		body = m.viewChat()
	case screenDetail:
		body = m.viewDetail()
	default:
		body = m.viewBrowse()
	}

	var status string
	switch {
	case m.error != "":
		status = ErrorStyle.Render(m.error)
	case m.info != "":
		status = SuccessStyle.Render(m.info)
	}
	if status != "" {
		body += "\n" + status
	}
	return body
}

func (m Model) viewBrowse() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Top 100 Wines"))
	b.WriteString("\n")
	b.WriteString(m.viewFilterBar())
	b.WriteString("\n\n")

	page := m.ctrl.CurrentPage()
	if len(page) == 0 {
		b.WriteString(MutedStyle.Render("No wines match the current filters."))
	} else if m.ctrl.ViewMode() == controller.ModeCondensed {
		for i, w := range page {
			b.WriteString(m.viewCondensedRow(w, i == m.cursor))
			b.WriteString("\n")
		}
	} else {
		for i, w := range page {
			b.WriteString(m.viewCard(w, i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.viewSummary())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewFilterBar() string {
	f := m.ctrl.Filter()

	search := f.Search
	if m.searching {
		search = m.searchInput.View()
	} else if search == "" {
		search = MutedStyle.Render("(/ to search)")
	}

	chip := func(label, value string) string {
		if value == "All" {
			return ChipStyle.Render(label + ": All")
		}
		return ChipActiveStyle.Render(label + ": " + value)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		"Search: "+search+"  ",
		chip("Type", f.Type)+" ",
		chip("Country", f.Country),
	)
}

func (m Model) viewCard(w model.Wine, selected bool) string {
	style := CardStyle
	if selected {
		style = CardSelectedStyle
	}

	var lines []string
	lines = append(lines,
		RankStyle.Render(fmt.Sprintf("#%d", w.Rank))+" "+HeaderStyle.Render(w.Name))
	lines = append(lines, MutedStyle.Render(w.Winery))
	lines = append(lines,
		MutedStyle.Render(fmt.Sprintf("%s · %s · %s, %s", w.Vintage, w.Type, w.Region, w.Country)))
	lines = append(lines,
		fmt.Sprintf("%s  %s  %s",
			AccentStyle.Render(fmt.Sprintf("$%.0f", w.Price)),
			fmt.Sprintf("%d pts", w.Score),
			m.viewStatusMark(w.ID)))
	return style.Render(strings.Join(lines, "\n"))
}

func (m Model) viewCondensedRow(w model.Wine, selected bool) string {
	marker := "  "
	if selected {
		marker = AccentStyle.Render("> ")
	}
	return fmt.Sprintf("%s%s %-38s %-24s %3d pts  %s %s",
		marker,
		RankStyle.Render(fmt.Sprintf("%3d", w.Rank)),
		truncate(w.Name, 38),
		MutedStyle.Render(truncate(w.Winery, 24)),
		w.Score,
		AccentStyle.Render(fmt.Sprintf("$%.0f", w.Price)),
		m.viewStatusMark(w.ID))
}

func (m Model) viewStatusMark(wineID int) string {
	switch m.ctrl.Ledger().Status(wineID) {
	case model.StatusTasted:
		return SuccessStyle.Render("[tasted]")
	case model.StatusWant:
		return RankStyle.Render("[want]")
	default:
		return ""
	}
}

func (m Model) viewSummary() string {
	tasted, want := m.ctrl.Counts()
	summary := fmt.Sprintf("Tasted: %d / Want to Taste: %d", tasted, want)
	if m.ctrl.CanExport() {
		summary += MutedStyle.Render("  (E: export csv, J: export json)")
	}
	return HeaderStyle.Render(summary)
}

func (m Model) viewFooter() string {
	total := m.ctrl.TotalPages()
	var parts []string
	if total > 1 {
		parts = append(parts, fmt.Sprintf("Page %d/%d", m.ctrl.PageNumber(), total))
	}
	parts = append(parts, fmt.Sprintf("%d wines", len(m.ctrl.Filtered())))
	if m.showHelp {
		parts = append(parts, m.helpLine())
	} else {
		parts = append(parts, "? for help")
	}
	return FooterStyle.Render(strings.Join(parts, " · "))
}

func (m Model) helpLine() string {
	bindings := []string{
		"j/k move", "h/l page", "enter details", "/ search", "t type", "c country",
		"v view", "x tasted", "w want", "a sommelier", "q quit",
	}
	return strings.Join(bindings, "  ")
}

func (m Model) viewDetail() string {
	w, ok := m.ctrl.Selected()
	if !ok {
		return m.viewBrowse()
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("#%d  %s", w.Rank, w.Name)))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf("%s · %s", w.Winery, w.Vintage)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s · %s · %s\n", w.Country, w.Region, w.Type))
	b.WriteString(fmt.Sprintf("Varietal: %s\n\n", w.Varietal))
	b.WriteString(HeaderStyle.Render("Tasting Note"))
	b.WriteString("\n")
	b.WriteString(wrap(w.Description, max(40, m.width-4)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s   %d Points   %s\n",
		AccentStyle.Render(fmt.Sprintf("$%.0f", w.Price)),
		w.Score,
		m.viewStatusMark(w.ID)))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("x: tasted · w: want to taste · esc: back"))
	return OverlayStyle.Render(b.String())
}

// refreshChat rebuilds the transcript viewport and pins it to the newest
// message.
func (m *Model) refreshChat() {
	var b strings.Builder
	width := max(40, m.chatView.Width)
	for _, msg := range m.ctrl.Transcript() {
		if msg.Role == model.RoleUser {
			b.WriteString(UserMsgStyle.Render("You: "))
			b.WriteString(wrap(msg.Content, width))
		} else {
			b.WriteString(AccentStyle.Render("Dr. Vinny: "))
			b.WriteString(AssistantMsgStyle.Render(wrap(msg.Content, width)))
		}
		b.WriteString("\n\n")
	}
	m.chatView.SetContent(b.String())
	m.chatView.GotoBottom()
}

func (m Model) viewChat() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Dr. Vinny, AI Sommelier"))
	b.WriteString("\n\n")
	b.WriteString(m.chatView.View())
	b.WriteString("\n")

	if m.ctrl.Awaiting() {
		b.WriteString(m.typing.View())
		b.WriteString(MutedStyle.Render(" Dr. Vinny is thinking..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.chatInput.View())
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render("enter: send · pgup/pgdn: scroll · esc: back"))
	return b.String()
}

func (m Model) viewWelcome() string {
	checkbox := "[ ]"
	if m.welcomeOptOut {
		checkbox = "[x]"
	}

	text := `Each year the editors select the most exciting wines reviewed
during the course of the year. The selection prioritizes quality,
value, and availability among wines rated outstanding on the
100-point scale.

The Top 100 is not a shopping list, but a guide to wineries to
watch: a reflection of the producers and wines our editors become
particularly passionate about in each new year.`

	var b strings.Builder
	b.WriteString(TitleStyle.Render("About The Top 100"))
	b.WriteString("\n\n")
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s Don't show me again (d to toggle)\n", checkbox))
	b.WriteString(MutedStyle.Render("enter: continue"))
	return OverlayStyle.Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// wrap breaks text at word boundaries to fit the given width.
func wrap(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteString("\n")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
