package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mailpilot/mailpilot-tui/internal/api"
	"github.com/mailpilot/mailpilot-tui/internal/config"
	"github.com/mailpilot/mailpilot-tui/internal/tui"
	"github.com/mailpilot/mailpilot-tui/internal/version"
)

func main() {
	configPathFlag := flag.String("config", "", "Path to YAML configuration file (default: ~/.config/mailpilot/config.yaml)")
	apiURLFlag := flag.String("api-url", "", "MailPilot backend base URL (overrides config)")
	versionFlag := flag.Bool("version", false, "Show version information and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n\n", version.GetVersionString())
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # Run with default configuration\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --api-url http://localhost:8000  # Point at a local backend\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --config custom.yaml             # Use custom configuration\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  MAILPILOT_CONFIG   Override default config file path\n")
		fmt.Fprintf(os.Stderr, "  MAILPILOT_API_URL  Override backend base URL\n")
	}

	flag.Parse()

	if *versionFlag {
		fmt.Println(version.GetDetailedVersionString())
		return
	}

	configPath := getConfigPath(*configPathFlag)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: could not load configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	if baseURL := getAPIURL(*apiURLFlag, cfg.API.BaseURL); baseURL != "" {
		cfg.API.BaseURL = baseURL
	}

	client := api.NewClient(cfg.API.BaseURL)

	app := tui.NewApp(client, cfg)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// getConfigPath returns the configuration file path using the following priority:
// 1. CLI flag
// 2. Environment variable MAILPILOT_CONFIG
// 3. Default path ~/.config/mailpilot/config.yaml
func getConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if envPath := os.Getenv("MAILPILOT_CONFIG"); envPath != "" {
		return expandPath(envPath)
	}

	return config.DefaultConfigPath()
}

// getAPIURL returns the backend base URL using the following priority:
// 1. CLI flag
// 2. Environment variable MAILPILOT_API_URL
// 3. Config file setting
func getAPIURL(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if envURL := os.Getenv("MAILPILOT_API_URL"); envURL != "" {
		return envURL
	}

	return configValue
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}
