package cmd

import (
	"context"
	"fmt"

	"github.com/kardianos/service"
	"github.com/spf13/cobra"

	"github.com/ibarra/shelfr/internal/web"
)

var (
	serviceRun       bool
	serviceStart     bool
	serviceStop      bool
	serviceInstall   bool
	serviceUninstall bool
	serviceStatus    bool
	servicePort      int
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Run the web interface as a system service",
	Long: `Install, uninstall, start, stop, or check the status of the shelfr
web interface as a system service.

On Windows, this creates/manages a Windows Service.
On Linux/macOS, this creates/manages a systemd/launchd service.`,
	RunE: runService,
}

func init() {
	rootCmd.AddCommand(serviceCmd)
	serviceCmd.Flags().BoolVar(&serviceRun, "run", false, "Run the service process (used by the service manager)")
	serviceCmd.Flags().BoolVar(&serviceStart, "start", false, "Start the shelfr web service")
	serviceCmd.Flags().BoolVar(&serviceStop, "stop", false, "Stop the shelfr web service")
	serviceCmd.Flags().BoolVar(&serviceInstall, "install", false, "Install shelfr web as a system service")
	serviceCmd.Flags().BoolVar(&serviceUninstall, "uninstall", false, "Uninstall the shelfr web system service")
	serviceCmd.Flags().BoolVar(&serviceStatus, "status", false, "Check shelfr web service status")
	serviceCmd.Flags().IntVarP(&servicePort, "port", "p", 8080, "Port for the web server to listen on")

	_ = serviceCmd.Flags().MarkHidden("run")
}

// program implements the service.Interface by hosting the web server
// in-process.
type program struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (p *program) Start(_ service.Service) error {
	// Start should not block. Do the actual work async.
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(ctx)

	return nil
}

func (p *program) run(ctx context.Context) {
	defer close(p.done)

	mgr, cleanup, err := openManager()
	if err != nil {
		_ = service.ConsoleLogger.Errorf("Failed to open library: %v", err)
		return
	}
	defer cleanup()

	config := appConfig.Web
	config.Port = servicePort
	// A service has no desktop session to open a browser in.
	config.OpenBrowser = false

	server, err := web.New(mgr, config)
	if err != nil {
		_ = service.ConsoleLogger.Errorf("Failed to create web server: %v", err)
		return
	}

	if err := server.Start(ctx); err != nil {
		_ = service.ConsoleLogger.Errorf("Web server exited with error: %v", err)
	}
}

func (p *program) Stop(_ service.Service) error {
	// Stop should return within a few seconds. The server shuts down
	// gracefully once its context is cancelled.
	if p.cancel != nil {
		p.cancel()
	}

	if p.done != nil {
		<-p.done
	}

	return nil
}

func runService(cmd *cobra.Command, args []string) error {
	// Count how many flags are set
	flagCount := 0
	if serviceRun {
		flagCount++
	}
	if serviceStart {
		flagCount++
	}
	if serviceStop {
		flagCount++
	}
	if serviceInstall {
		flagCount++
	}
	if serviceUninstall {
		flagCount++
	}
	if serviceStatus {
		flagCount++
	}

	if flagCount == 0 {
		return fmt.Errorf("please specify one of: --start, --stop, --install, --uninstall, --status")
	}

	if flagCount > 1 {
		return fmt.Errorf("please specify only one operation at a time")
	}

	// Setup service configuration
	svcConfig := &service.Config{
		Name:        "ShelfrWeb",
		DisplayName: "Shelfr Library Web Interface",
		Description: "Serves the shelfr personal book library web interface.",
		Arguments:   []string{"service", "--run", "--port", fmt.Sprintf("%d", servicePort)},
	}

	prg := &program{}
	s, err := service.New(prg, svcConfig)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	// Handle the requested operation
	switch {
	case serviceRun:
		return s.Run()
	case serviceInstall:
		return installService(s)
	case serviceUninstall:
		return uninstallService(s)
	case serviceStart:
		return startService(s)
	case serviceStop:
		return stopService(s)
	case serviceStatus:
		return statusService(s)
	}

	return nil
}

func installService(s service.Service) error {
	fmt.Printf("Installing shelfr web service...\n")
	fmt.Printf("Port: %d\n", servicePort)

	err := s.Install()
	if err != nil {
		return fmt.Errorf("failed to install service: %w", err)
	}

	fmt.Println("✓ Service installed successfully!")
	fmt.Println("\nTo start the service, run:")
	fmt.Println("  shelfr service --start")
	fmt.Println("\nOr use your system's service manager:")
	fmt.Printf("  Windows: sc start ShelfrWeb\n")
	fmt.Printf("  Linux:   sudo systemctl start shelfr-web\n")

	return nil
}

func uninstallService(s service.Service) error {
	fmt.Println("Uninstalling shelfr web service...")

	// Try to stop first
	_ = s.Stop()

	err := s.Uninstall()
	if err != nil {
		return fmt.Errorf("failed to uninstall service: %w", err)
	}

	fmt.Println("✓ Service uninstalled successfully!")
	return nil
}

func startService(s service.Service) error {
	fmt.Println("Starting shelfr web service...")

	err := s.Start()
	if err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}

	fmt.Println("✓ Service started successfully!")
	fmt.Printf("\nThe library is available on http://127.0.0.1:%d\n", servicePort)

	return nil
}

func stopService(s service.Service) error {
	fmt.Println("Stopping shelfr web service...")

	err := s.Stop()
	if err != nil {
		return fmt.Errorf("failed to stop service: %w", err)
	}

	fmt.Println("✓ Service stopped successfully!")
	return nil
}

func statusService(s service.Service) error {
	status, err := s.Status()
	if err != nil {
		return fmt.Errorf("failed to get service status: %w", err)
	}

	fmt.Printf("Service Status: ")
	switch status {
	case service.StatusRunning:
		fmt.Println("Running ✓")
	case service.StatusStopped:
		fmt.Println("Stopped")
	case service.StatusUnknown:
		fmt.Println("Unknown")
	default:
		fmt.Printf("%v\n", status)
	}

	return nil
}
