package main

import (
	"context"
	"errors"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/itacentury/sudoku/sudoku"
)

var (
	serveHost string
	servePort string
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over SSH",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Address to listen on")
	serveCmd.Flags().StringVar(&servePort, "port", "23234", "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(serveHost, servePort)),
		wish.WithHostKeyPath(".ssh/term_info_ed25519"),
		wish.WithMiddleware(
			bm.Middleware(teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return err
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "host", serveHost, "port", servePort)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("could not start server", "error", err)
			done <- nil
		}
	}()

	<-done
	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// forceColorWriter is a custom writer that forces color output
type forceColorWriter struct {
	w io.Writer
}

func (fcw forceColorWriter) Write(p []byte) (n int, err error) {
	return fcw.w.Write(p)
}

func teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := s.Pty()

	// Force color output
	lipgloss.SetColorProfile(termenv.ANSI256)

	return NewMenuModel(pty.Window.Width, pty.Window.Height, sudoku.Medium), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithOutput(forceColorWriter{s}),
	}
}
