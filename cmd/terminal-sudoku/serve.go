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

	"github.com/dnellessen/terminal-sudoku/internal/ui"
)

var (
	hostFlag    string
	portFlag    string
	hostKeyFlag string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host the game over SSH",
	Long:  "Start an SSH server that gives every connecting client its own game session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := wish.NewServer(
			wish.WithAddress(net.JoinHostPort(hostFlag, portFlag)),
			wish.WithHostKeyPath(hostKeyFlag),
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
		log.Info("Starting SSH server", "host", hostFlag, "port", portFlag)

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
	},
}

func init() {
	serveCmd.Flags().StringVar(&hostFlag, "host", "localhost", "address to listen on")
	serveCmd.Flags().StringVar(&portFlag, "port", "23234", "port to listen on")
	serveCmd.Flags().StringVar(&hostKeyFlag, "host-key", ".ssh/terminal_sudoku_ed25519", "SSH host key path")
	rootCmd.AddCommand(serveCmd)
}

// forceColorWriter keeps color output on even though the session is not a
// local tty.
type forceColorWriter struct {
	w io.Writer
}

func (fcw forceColorWriter) Write(p []byte) (n int, err error) {
	return fcw.w.Write(p)
}

// teaHandler starts one independent game session per SSH connection. Each
// session gets its own generator so concurrent clients never share a
// random source.
func teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := s.Pty()

	lipgloss.SetColorProfile(termenv.ANSI256)

	return ui.NewMenuModel(pty.Window.Width, pty.Window.Height, newGenerator()), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithOutput(forceColorWriter{s}),
	}
}
