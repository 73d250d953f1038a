package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/restforge/internal/builder"
	"github.com/unkn0wn-root/restforge/internal/config"
	"github.com/unkn0wn-root/restforge/internal/exportcfg"
	"github.com/unkn0wn-root/restforge/internal/httpclient"
	"github.com/unkn0wn-root/restforge/internal/theme"
	"github.com/unkn0wn-root/restforge/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	var (
		startURL    string
		startMethod string
		configPath  string
		exportDir   string
		timeout     time.Duration
		insecure    bool
		follow      bool
		proxyURL    string
		showVersion bool
	)

	flag.StringVar(&startURL, "url", "", "Initial request URL")
	flag.StringVar(&startMethod, "method", "", "Initial HTTP method")
	flag.StringVar(&configPath, "config", "", "Path to an exported api-config.json to load")
	flag.StringVar(&exportDir, "export-dir", "", "Directory for exported configurations")
	flag.DurationVar(&timeout, "timeout", 0, "Request timeout (overrides settings)")
	flag.BoolVar(&insecure, "insecure", false, "Skip TLS certificate verification")
	flag.BoolVar(&follow, "follow", true, "Follow redirects")
	flag.StringVar(&proxyURL, "proxy", "", "HTTP proxy URL")
	flag.BoolVar(&showVersion, "version", false, "Show restforge version")
	flag.Parse()

	if showVersion {
		fmt.Printf("restforge %s (commit %s, built %s)\n", version, commit, date)
		os.Exit(0)
	}

	settings, settingsHandle, err := config.LoadSettings()
	if err != nil {
		log.Printf("settings load error: %v", err)
		settings = config.DefaultSettings()
		settingsHandle = config.SettingsHandle{
			Path:   filepath.Join(config.Dir(), "settings.toml"),
			Format: config.SettingsFormatTOML,
		}
	}

	setFlags := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	options := httpclient.Options{
		Timeout:            settings.RequestTimeout(),
		FollowRedirects:    settings.Follow(),
		InsecureSkipVerify: settings.Request.Insecure,
		ProxyURL:           settings.Request.ProxyURL,
	}
	if setFlags["timeout"] && timeout > 0 {
		options.Timeout = timeout
	}
	if setFlags["follow"] {
		options.FollowRedirects = follow
	}
	if setFlags["insecure"] {
		options.InsecureSkipVerify = insecure
	}
	if setFlags["proxy"] {
		options.ProxyURL = proxyURL
	}

	initial := loadInitialState(configPath, startURL, startMethod)

	th := theme.DefaultTheme()
	model := ui.New(ui.Config{
		Settings:       settings,
		SettingsHandle: settingsHandle,
		Client:         httpclient.NewClient(),
		Theme:          &th,
		HTTPOptions:    options,
		Initial:        initial,
		ExportDir:      exportDir,
		Version:        version,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadInitialState builds the starting request from an optional exported
// config, then lets -url/-method override it. Returns nil when nothing was
// requested so the UI starts from its default state.
func loadInitialState(configPath, startURL, startMethod string) *builder.State {
	var state builder.State
	loaded := false

	if configPath != "" {
		imported, err := exportcfg.Load(expandPath(configPath), nil)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		state = imported
		loaded = true
	}

	if startURL != "" {
		if !loaded {
			state = builder.NewState(nil)
			loaded = true
		}
		state.BaseURL = startURL
	}

	if startMethod != "" {
		if !loaded {
			state = builder.NewState(nil)
			loaded = true
		}
		method, ok := builder.ParseMethod(strings.ToUpper(strings.TrimSpace(startMethod)))
		if !ok {
			log.Fatalf("unsupported method %q", startMethod)
		}
		state.Method = method
	}

	if !loaded {
		return nil
	}
	return &state
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
