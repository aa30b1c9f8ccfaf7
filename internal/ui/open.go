package ui

import (
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
)

// openLinkCmd hands the link to the desktop opener. Failures are silent; the
// terminal stays in the alt screen either way.
func openLinkCmd(link string) tea.Cmd {
	return func() tea.Msg {
		var c *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			c = exec.Command("open", link)
		case "windows":
			c = exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
		default:
			c = exec.Command("xdg-open", link)
		}
		_ = c.Start()
		return nil
	}
}
