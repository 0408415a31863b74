package output

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const bannerWidth = 59

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// ColorEnabled reports whether styled output should be rendered. Colors are
// off when stdout is not a terminal, when NO_COLOR is set, or when the
// terminal advertises no color support.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}

func render(style lipgloss.Style, text string) string {
	if !ColorEnabled() {
		return text
	}
	return style.Render(text)
}

// RenderBanner renders a section header framed by horizontal rules
func RenderBanner(text string) string {
	rule := strings.Repeat("-", bannerWidth)
	return render(bannerStyle, rule+"\n"+text+"\n"+rule)
}

// RenderCommand renders an echoed command line
func RenderCommand(text string) string {
	return render(commandStyle, text)
}

// RenderError renders an error classification line
func RenderError(text string) string {
	return render(errorStyle, text)
}

// RenderBranchName renders a branch name
func RenderBranchName(name string) string {
	return render(branchStyle, name)
}
