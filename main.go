package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tannerbraithwaite/nightlog/internal/config"
	"github.com/Tannerbraithwaite/nightlog/internal/git"
	"github.com/Tannerbraithwaite/nightlog/internal/logger"
	"github.com/Tannerbraithwaite/nightlog/internal/store"
	"github.com/Tannerbraithwaite/nightlog/internal/tui"
)

var version = "dev"

func main() {
	cfg := config.New()
	cfg.LoadFromEnvironment()
	if err := cfg.ParseFlags(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if cfg.Version {
		fmt.Printf("nightlog %s\n", version)
		return
	}
	if err := cfg.Finalize(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Debug, cfg.LogFile)
	defer log.Close()

	s := store.Load(cfg.DataFile)
	repo := git.NewRepository(cfg.RepoPath, log)
	committer := git.NewCommitter(repo, log, cfg.Interval())

	app := tui.NewApp(s, committer)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
