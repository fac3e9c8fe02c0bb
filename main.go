package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lollo21x/willpro-doot-inc/account"
	"github.com/lollo21x/willpro-doot-inc/chat"
	"github.com/lollo21x/willpro-doot-inc/config"
	"github.com/lollo21x/willpro-doot-inc/imagegen"
	"github.com/lollo21x/willpro-doot-inc/provider"
	"github.com/lollo21x/willpro-doot-inc/storage"
	"github.com/lollo21x/willpro-doot-inc/title"
	"github.com/lollo21x/willpro-doot-inc/ui"
)

const Version = "v0.1.0"

func main() {
	// Validate environment variables first: either all are set or none
	if config.HasAnyEnvVar() && !config.HasAllEnvVars() {
		fmt.Fprintf(os.Stderr, "Missing environment variable: %s\n\n"+
			"When using environment variables, all 3 must be set:\n"+
			"  - WILLPRO_API_KEY\n"+
			"  - WILLPRO_MODEL\n"+
			"  - WILLPRO_DATA_DIR\n\n"+
			"Set the missing variable(s) before launching willpro.\n",
			config.GetMissingEnvVar())
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog(cfg.DataDir())

	store, err := storage.NewFileStore(cfg.DataDir())
	if err != nil {
		fmt.Printf("Failed to initialize storage: %v\n", err)
		os.Exit(1)
	}

	// Single-instance enforcement: two instances would clobber each other's
	// conversation saves.
	isLocked, runningPID, err := store.CheckInstanceLock()
	if err != nil {
		fmt.Printf("Failed to check instance lock: %v\n", err)
		os.Exit(1)
	}
	if isLocked {
		fmt.Fprintf(os.Stderr, "Another willpro instance is already running (PID %d).\n"+
			"Close it first, or point WILLPRO_DATA_DIR at a different data directory.\n",
			runningPID)
		os.Exit(1)
	}
	if err := store.LockInstance(); err != nil {
		fmt.Printf("Failed to acquire instance lock: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.UnlockInstance(); err != nil && config.DebugLog != nil {
			config.DebugLog.Printf("Warning: failed to release instance lock: %v", err)
		}
	}()

	client, err := provider.NewClient(provider.Config{
		Type:    provider.ClientType(cfg.DefaultProvider),
		BaseURL: providerBaseURL(cfg),
		APIKey:  providerAPIKey(cfg),
		Host:    cfg.OllamaHost,
	})
	if err != nil {
		fmt.Printf("Failed to initialize provider: %v\n", err)
		os.Exit(1)
	}

	// Usage tracking is optional; a broken database only disables the stats
	// view.
	usageStore, err := storage.NewUsageStore(cfg.DataDir())
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("Warning: usage tracking disabled: %v", err)
		}
		usageStore = nil
	} else {
		defer usageStore.Close()
	}

	manager := chat.NewManager(store, client)
	manager.SetTitleGenerator(title.NewGenerator(client))
	manager.SetImageGenerator(imagegen.NewGenerator(client))
	if usageStore != nil {
		manager.SetUsageRecorder(usageStore)
	}
	manager.SetLogger(config.DebugLog)
	manager.Init()

	// Avatar uploads are optional; a broken uploads directory only disables
	// the /avatar command.
	var blobs account.BlobStore
	if fileBlobs, err := account.NewFileBlobStore(cfg.DataDir()); err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("Warning: avatar uploads disabled: %v", err)
		}
	} else {
		blobs = fileBlobs
	}

	view := ui.NewAppView(manager, usageStore, account.NewLocalIdentity(cfg.DataDir()), blobs, cfg.DefaultModel)

	// Picking a model in the UI becomes the default for future launches.
	view.SetModelPersister(func(modelID string) error {
		userCfg, err := config.LoadUserConfig(cfg.DataDir())
		if err != nil {
			return err
		}
		userCfg.OpenRouter.DefaultModel = modelID
		return config.SaveUserConfig(userCfg, cfg.DataDir())
	})

	p := tea.NewProgram(view, tea.WithAltScreen())

	// Background title generation lands outside the update loop; poke the
	// program so it re-renders.
	manager.SetNotify(func() {
		p.Send(ui.RefreshMsg{})
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func providerBaseURL(cfg *config.Config) string {
	if cfg.DefaultProvider == string(provider.ClientTypeAnthropic) {
		return cfg.AnthropicBaseURL
	}
	return cfg.OpenRouterBaseURL
}

func providerAPIKey(cfg *config.Config) string {
	if cfg.DefaultProvider == string(provider.ClientTypeAnthropic) {
		return cfg.AnthropicAPIKey
	}
	return cfg.OpenRouterAPIKey
}
