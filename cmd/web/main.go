// Web server for the go-bonita demo page
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/go-while/go-bonita/internal/config"
	"github.com/go-while/go-bonita/internal/web"
	prof "github.com/go-while/go-cpu-mem-profiler"
)

var (
	// command-line flags
	webport     int
	webssl      bool
	webcertFile string
	webkeyFile  string
	pprofWeb    string
)

var Prof *prof.Profiler

var appVersion = "-unset-"

func main() {
	config.AppVersion = appVersion

	flag.IntVar(&webport, "webport", 0, "Web server port (default: 80)")
	flag.BoolVar(&webssl, "webssl", false, "Enable SSL")
	flag.StringVar(&webcertFile, "websslcert", "", "SSL certificate file (/path/to/fullchain.pem)")
	flag.StringVar(&webkeyFile, "websslkey", "", "SSL key file (/path/to/privkey.pem)")
	flag.StringVar(&pprofWeb, "pprofweb", "", "Serve pprof on this address (e.g. :51111, default: off)")
	flag.Parse()

	log.Printf("Starting go-bonita web server (version: %s)", appVersion)

	webConfig := config.NewDefaultWebConfig()

	// Override config with command-line flags if provided
	if webport > 0 {
		webConfig.ListenPort = webport
		log.Printf("[WEB]: Overriding listen port with command-line flag: %d", webConfig.ListenPort)
	} else {
		log.Printf("[WEB]: No port flag provided, using default: %d", webConfig.ListenPort)
	}
	if webssl {
		webConfig.SSL = true
		log.Printf("[WEB]: SSL enabled via command-line flag")
	}
	if webcertFile != "" {
		webConfig.CertFile = webcertFile
		log.Printf("[WEB]: SSL cert file set: %s", webConfig.CertFile)
	}
	if webkeyFile != "" {
		webConfig.KeyFile = webkeyFile
		log.Printf("[WEB]: SSL key file set: %s", webConfig.KeyFile)
	}

	// Validate port
	if webConfig.ListenPort < 1 || webConfig.ListenPort > 65535 {
		log.Fatalf("[WEB]: Invalid port number: %d (must be between 1 and 65535)", webConfig.ListenPort)
	}

	if pprofWeb != "" {
		Prof = prof.NewProf()
		go Prof.PprofWeb(pprofWeb)
		log.Printf("[WEB]: pprof web server listening on %s", pprofWeb)
	}

	protocol := "http"
	if webConfig.SSL {
		protocol = "https"
	}
	log.Printf("[WEB]: Starting go-bonita web server on %s://localhost:%d", protocol, webConfig.ListenPort)

	server := web.NewServer(webConfig)

	// Set up cross-platform signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt) // Cross-platform (Ctrl+C on both Windows and Linux)

	// Start web server in goroutine to make it non-blocking
	webServerErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			webServerErrChan <- err
		}
	}()

	log.Printf("[WEB]: Server started successfully. Press Ctrl+C to gracefully shutdown...")

	// Wait for either shutdown signal or server error
	select {
	case <-sigChan:
		log.Printf("[WEB]: Received shutdown signal, initiating graceful shutdown...")
	case err := <-webServerErrChan:
		log.Fatalf("[WEB]: Failed to start web server: %v", err)
	}

	log.Printf("[WEB]: Graceful shutdown completed")
} // end main
