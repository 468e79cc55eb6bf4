package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gccma/gccma/internal/app"
	"github.com/gccma/gccma/internal/applog"
	"github.com/gccma/gccma/internal/auth"
	"github.com/gccma/gccma/internal/config"
	"github.com/gccma/gccma/internal/icons"
	"github.com/gccma/gccma/internal/notify"
	"github.com/gccma/gccma/internal/screens"
	"github.com/gccma/gccma/internal/state"
	"github.com/gccma/gccma/internal/ui/styles"
)

func initialModel() (app.Model, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return app.Model{}, nil, err
	}

	logger, logFile, err := applog.Open(cfg.Log.File, cfg.GetLogLevel())
	if err != nil {
		return app.Model{}, nil, err
	}

	// Open state manager
	stateMgr, err := state.Open()
	if err != nil {
		closeQuietly(logFile)
		return app.Model{}, nil, err
	}

	desktop, err := notify.New()
	if err != nil {
		logger.Warn("desktop notifications unavailable", "err", err)
	}

	icons.Init(cfg.Icons)
	styles.Init(cfg.Theme)

	deps := screens.Deps{
		Church:  cfg.GetChurchConfig(),
		Session: auth.NewSession(),
		State:   stateMgr,
		Log:     logger,
		Desktop: desktop,
	}
	logger.Info("starting", "church", deps.Church.ShortName, "icons", cfg.Icons)

	cleanup := func() {
		if err := stateMgr.Close(); err != nil {
			logger.Error("close state", "err", err)
		}
		closeQuietly(logFile)
	}
	return app.New(cfg, deps), cleanup, nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}

func main() {
	m, cleanup, err := initialModel()
	if err != nil {
		fmt.Printf("Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	cleanup()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
