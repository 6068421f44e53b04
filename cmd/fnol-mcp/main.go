package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/clearclaim/fnol-triage/internal/claims"
	"github.com/clearclaim/fnol-triage/internal/config"
	"github.com/clearclaim/fnol-triage/internal/document"
	"github.com/clearclaim/fnol-triage/internal/mcp"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging redirects logging away from stdout, which carries the MCP protocol
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	if !cfg.IsDebug() {
		log.SetOutput(os.NewFile(0, os.DevNull))
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	// Load configuration from flags first
	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	// Create the document service and processing pipeline
	documents, err := document.NewService(cfg.MaxFileSize, cfg.ClaimsDirectory)
	if err != nil {
		log.Fatalf("Failed to create document service: %v", err)
	}

	processor, err := claims.NewProcessor(cfg.ClaimsConfig())
	if err != nil {
		log.Fatalf("Failed to create claim processor: %v", err)
	}

	// Create MCP server
	server, err := mcp.NewServer(cfg, documents, processor)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The parent process controls our lifecycle in stdio mode; exit
	// cleanly when stdin closes.
	if err := server.Run(ctx); err != nil {
		if os.Getenv("DEBUG") != "" {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("FNOL Triage MCP Server\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
