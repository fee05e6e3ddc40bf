package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Dicklesworthstone/cats_viewer/pkg/loader"
	"github.com/Dicklesworthstone/cats_viewer/pkg/model"
	"github.com/Dicklesworthstone/cats_viewer/pkg/ui"
	"github.com/Dicklesworthstone/cats_viewer/pkg/watcher"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// runView shows the page, or prints a snapshot when stdout is not a terminal.
func runView(cmd *cobra.Command, args []string) error {
	content, err := loader.Resolve(cfg.ContentPath)
	if err != nil {
		return fmt.Errorf("cannot show page: %w", err)
	}

	out := cmd.OutOrStdout()
	if snapshot || !isTerminal(out) {
		return printSnapshot(out, content)
	}

	theme := ui.ThemeFor(cfg.Theme, lipgloss.NewRenderer(out))
	m, err := ui.NewModel(content, ui.Options{
		Theme:        theme,
		TickInterval: cfg.TickInterval,
		AckDelay:     cfg.AckDelay,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runProgram(ctx, m)
}

// runProgram runs the page and, when watching, the content watcher. Either
// side ending stops the other.
func runProgram(ctx context.Context, m *ui.Model) error {
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.Watch && cfg.ContentPath != "" {
		w, err := watcher.NewContentWatcher(cfg.ContentPath, func(c model.Content, err error) {
			p.Send(ui.ContentReloadedMsg{Content: c, Err: err})
		}, watcher.WithLogger(logger))
		if err != nil {
			return err
		}
		g.Go(func() error {
			return w.Run(ctx)
		})
		logger.Info("watching content", zap.String("path", w.Path()))
	}

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	return g.Wait()
}

func printSnapshot(out io.Writer, content model.Content) error {
	w := width
	if w <= 0 {
		w = terminalWidth(out)
	}
	theme := ui.ThemeFor(cfg.Theme, lipgloss.NewRenderer(out))
	page, err := ui.Snapshot(content, theme, w)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, page)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or the default page width when w
// is not a terminal.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return ui.DefaultWidth
}
