package cmd

import (
	"github.com/blueset/calc-sub004/internal/replui"
	tea "github.com/charmbracelet/bubbletea"
)

func runREPL() error {
	_, err := tea.NewProgram(replui.New()).Run()
	return err
}
