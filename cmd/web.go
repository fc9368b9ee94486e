package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ibarra/shelfr/internal/web"
)

var (
	webHost      string
	webPort      int
	webNoBrowser bool
)

func init() {
	rootCmd.AddCommand(webCmd)

	webCmd.Flags().StringVar(&webHost, "host", "127.0.0.1", "Address to bind the web server to")
	webCmd.Flags().IntVarP(&webPort, "port", "p", 8080, "Port to run the web server on")
	webCmd.Flags().BoolVar(&webNoBrowser, "no-browser", false, "Don't automatically open the browser")
}

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the web interface",
	Long: `Start a local web server with a browser-based interface for the
library: list, add, edit, search and statistics pages plus a small JSON API.

The web server runs on localhost only (127.0.0.1) by default.

Examples:
  shelfr web                    # Start on default port 8080
  shelfr web --port 9000        # Start on custom port
  shelfr web --no-browser       # Don't auto-open browser`,
	RunE: runWeb,
}

func runWeb(cmd *cobra.Command, _ []string) error {
	config := appConfig.Web
	if cmd.Flags().Changed("host") {
		config.Host = webHost
	}

	if cmd.Flags().Changed("port") {
		config.Port = webPort
	}

	if webNoBrowser {
		config.OpenBrowser = false
	}

	mgr, cleanup, err := openManager()
	if err != nil {
		return err
	}
	defer cleanup()

	server, err := web.New(mgr, config)
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}

	// Create context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		_, _ = fmt.Fprintln(os.Stdout, "\nShutting down...")
		cancel()
	}()

	_, _ = fmt.Fprintf(os.Stdout, "Starting web server on http://%s:%d\n", config.Host, config.Port)

	if config.OpenBrowser {
		_, _ = fmt.Fprintln(os.Stdout, "Opening browser...")
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Open http://%s:%d in your browser\n", config.Host, config.Port)
	}

	_, _ = fmt.Fprintln(os.Stdout, "Press Ctrl+C to stop")

	return server.Start(ctx)
}
