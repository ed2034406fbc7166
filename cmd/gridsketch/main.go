package main

import (
	"context"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gridsketch/internal/config"
	"gridsketch/internal/store"
	"gridsketch/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if len(os.Args) > 1 {
		cfg.DBPath = os.Args[1]
	}

	if cfg.LogPath != "" {
		f, err := tea.LogToFile(cfg.LogPath, "gridsketch")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer st.Close()
	if err := st.Init(context.Background()); err != nil {
		log.Fatalf("init db: %v", err)
	}

	m := tui.New(*cfg, st)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
