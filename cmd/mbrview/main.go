package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gombr/internal/config"
	"gombr/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	var m tea.Model
	if len(os.Args) > 1 {
		m = tui.NewWithPath(cfg, os.Args[1:]...)
	} else {
		m = tui.New(cfg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
