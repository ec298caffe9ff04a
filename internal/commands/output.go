package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	amountStyle  = lipgloss.NewStyle().Bold(true)
)

func success(format string, args ...any) {
	fmt.Print(successStyle.Render("✓ "))
	fmt.Printf(format+"\n", args...)
}

func warn(format string, args ...any) {
	fmt.Print(warnStyle.Render("⚠ "))
	fmt.Printf(format+"\n", args...)
}

func muted(format string, args ...any) {
	fmt.Println(mutedStyle.Render(fmt.Sprintf(format, args...)))
}

func header(title string) {
	fmt.Println()
	fmt.Println(headerStyle.Render(title))
}

func field(label, value string) {
	fmt.Printf("  %-22s %s\n", label, amountStyle.Render(value))
}
