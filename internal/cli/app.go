package cli

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"org-tasks-sync/config"
	"org-tasks-sync/internal/sync"
	gtasksRepo "org-tasks-sync/internal/sync/repository/gtasks"
	snapshotRepo "org-tasks-sync/internal/sync/repository/snapshot"
	"org-tasks-sync/internal/sync/usecase"
	"org-tasks-sync/pkg/gtasks"
	"org-tasks-sync/pkg/log"
)

// app is what every command needs once configuration is loaded.
type app struct {
	cfg *config.Config
	l   log.Logger
	uc  sync.UseCase
}

// newUseCase wires the Google Tasks client, the repositories and the sync
// use case.
var newUseCase = func(ctx context.Context, cfg *config.Config, l log.Logger) (sync.UseCase, error) {
	client, err := gtasks.NewClientFromCredentialsFile(ctx, cfg.Google.CredentialsPath, cfg.Google.TokenPath, gtasks.Options{
		RequestsPerSecond: cfg.Remote.RequestsPerSecond,
		Burst:             cfg.Remote.Burst,
		PageSize:          cfg.Remote.PageSize,
		ListCacheSize:     cfg.Remote.ListCacheSize,
		ListCacheTTL:      cfg.Remote.ListCacheTTL,
	})
	if err != nil {
		return nil, err
	}

	remote := gtasksRepo.New(client, l)
	snapshots := snapshotRepo.New(cfg.Snapshot.Dir, l)
	return usecase.New(l, remote, snapshots, cfg.Remote.PullRetryBudget), nil
}

func (o *rootOptions) loadConfig() (*config.Config, log.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Logger.Level
	if o.verbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return cfg, l, nil
}

// bootstrap loads configuration and builds the use case. The returned
// context carries a fresh trace id.
func (o *rootOptions) bootstrap(cmd *cobra.Command) (context.Context, *app, error) {
	cfg, l, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	ctx := log.SetTraceID(cmd.Context(), uuid.NewString())
	uc, err := newUseCase(ctx, cfg, l)
	if err != nil {
		l.Errorf(ctx, "cli: failed to initialize: %v", err)
		return nil, nil, err
	}
	return ctx, &app{cfg: cfg, l: l, uc: uc}, nil
}

// list returns the list selected by --listname or the configured default.
func (o *rootOptions) list(cfg *config.Config) string {
	if o.listName != "" {
		return o.listName
	}
	return cfg.Sync.DefaultList
}
