package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"treasury/internal/engine"
)

// Monster Treasury theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconCoin    = "🪙"
	IconFlame   = "🔥"
	IconBook    = "📖"
	IconMic     = "🎤"
	IconGift    = "🎁"
	IconLock    = "🔒"
	IconCheck   = "✅"
	IconClock   = "⏳"
	IconCross   = "❌"
	IconSparkle = "✨"
	IconUp      = "📈"
	IconDown    = "📉"
	IconError   = "🧨"
	IconMonster = "👾"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeBonus = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("STREAK BONUS")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Yuan renders an amount with the currency sign ("¥125.00").
func Yuan(c engine.Cents) string {
	if c < 0 {
		return "-¥" + c.Abs().String()
	}
	return "¥" + c.String()
}

func StatusText(status engine.TaskStatus) string {
	switch status {
	case engine.StatusApproved:
		return Good.Render("approved")
	case engine.StatusPending:
		return Warn.Render("pending")
	case engine.StatusRejected:
		return Bad.Render("rejected")
	default:
		return Muted.Render(string(status))
	}
}

func KindIcon(kind engine.TaskKind) string {
	switch kind {
	case engine.KindReading:
		return IconBook
	case engine.KindEnglish:
		return IconMic
	default:
		return IconMonster
	}
}

// ProgressBar renders a fixed-width bar for a done/total ratio.
func ProgressBar(done, total, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if total > 0 {
		filled = done * width / total
	}
	if filled > width {
		filled = width
	}
	bar := Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
	pct := 0
	if total > 0 {
		pct = done * 100 / total
	}
	return fmt.Sprintf("%s %3d%%", bar, pct)
}
