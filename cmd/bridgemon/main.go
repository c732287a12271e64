package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"bridgemon/internal/config"
	"bridgemon/internal/gateway"
	"bridgemon/internal/tui/dashboard"
	"bridgemon/internal/watcher"
)

var (
	configPath string
	gatewayURL string
	tokenFlag  string
	jsonFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "bridgemon",
	Short: "Live status dashboard for messaging gateway channels",
	Long: `Bridgemon monitors a multi-channel messaging gateway: WhatsApp,
Telegram, Discord, Slack, Signal, iMessage, Google Chat, Nostr, and any
extension channels the gateway exposes.

Run without arguments for the interactive dashboard:
  - one row per channel with its status class and account count
  - expand a channel for status, accounts, config, and actions
  - probe connections and drive WhatsApp QR login without leaving the TUI`,
	RunE: runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ~/.config/bridgemon/config.toml)")
	rootCmd.PersistentFlags().StringVar(&gatewayURL, "url", "", "gateway admin API base URL")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "gateway bearer token")
}

// loadSetup loads the config, extensions, and gateway client shared by all
// commands. Flags override the config file.
func loadSetup() (*config.Config, []config.Extension, *gateway.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	exts, err := config.LoadExtensions(cfg.ExtensionsPath(configPath))
	if err != nil {
		return nil, nil, nil, err
	}

	var opts []gateway.Option
	if cfg.Gateway.URL != "" {
		opts = append(opts, gateway.WithBaseURL(cfg.Gateway.URL))
	}
	if cfg.Gateway.Token != "" {
		opts = append(opts, gateway.WithToken(cfg.Gateway.Token))
	}
	opts = append(opts, gateway.WithTimeout(cfg.GatewayTimeout()))
	if gatewayURL != "" {
		opts = append(opts, gateway.WithBaseURL(gatewayURL))
	}
	if tokenFlag != "" {
		opts = append(opts, gateway.WithToken(tokenFlag))
	}

	return cfg, exts, gateway.NewClient(opts...), nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, exts, client, err := loadSetup()
	if err != nil {
		return err
	}

	m := dashboard.New(client, cfg, exts)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Reload the dashboard when the config or extensions file changes.
	w, err := watcher.New(func([]string) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return
		}
		exts, err := config.LoadExtensions(cfg.ExtensionsPath(configPath))
		if err != nil {
			return
		}
		p.Send(dashboard.ConfigReloadedMsg{Cfg: cfg, Exts: exts})
	})
	if err == nil {
		defer w.Close()
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		_ = w.Watch(path)
		_ = w.Watch(cfg.ExtensionsPath(configPath))
	}

	_, err = p.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
