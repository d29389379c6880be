package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/showcase/internal/clipboard"
	"github.com/alexisbeaulieu97/showcase/internal/content"
	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	"github.com/alexisbeaulieu97/showcase/internal/tui/site"
)

func runSite(ctx context.Context, s settings) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, closeLog, err := s.newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	c, err := content.Load(s.content)
	if err != nil {
		log.Error(err, "content load failed")
		return err
	}

	model, err := site.New(site.Options{
		Content:     c,
		ContentPath: s.content,
		Watch:       s.watch,
		Theme:       s.theme,
		Clipboard: clipboard.New(clipboard.Options{
			Mode:     s.clipboard,
			Terminal: os.Stdout,
			Logger:   log,
		}),
		Scheduler: gallery.SystemScheduler{},
		AckWindow: s.ackWindow,
		Width:     s.width,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	log.WithFields(map[string]any{
		"theme":   string(s.theme.Name),
		"content": s.content,
		"watch":   s.watch,
	}).Info("starting site")

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := program.Run(); err != nil {
		log.Error(err, "site exited with error")
		return fmt.Errorf("run site: %w", err)
	}
	log.Info("site closed")
	return nil
}
