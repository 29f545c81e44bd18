package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/llehouerou/encore/internal/app"
	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/config"
	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/logging"
	"github.com/llehouerou/encore/internal/mpris"
	"github.com/llehouerou/encore/internal/notify"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/player"
	"github.com/llehouerou/encore/internal/playlists"
	"github.com/llehouerou/encore/internal/state"
	"github.com/llehouerou/encore/internal/stderr"
)

func runPlayer(ctx context.Context, _ *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logFile, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	// Audio libraries write to stderr, which would corrupt the TUI.
	if err := stderr.Start(logging.Stderr(logger)); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	}
	defer stderr.Stop()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	logger.Info("catalog loaded", "tracks", len(cat.Tracks()), "playlists", len(cat.Playlists()))

	var stateMgr *state.Manager
	storeOpts := []playlists.Option{playlists.WithLogger(logger)}
	if cfg.PersistEnabled() {
		stateMgr, err = state.Open()
		if err != nil {
			return fmt.Errorf("open state: %w", err)
		}
		defer func() {
			if err := stateMgr.Close(); err != nil {
				logger.Error(errmsg.Format(errmsg.OpSessionSave, err))
			}
		}()
		stateMgr.OnSaveError(func(err error) {
			logger.Error(errmsg.Format(errmsg.OpSessionSave, err))
		})
		storeOpts = append(storeOpts, playlists.WithRepository(playlists.NewSQLRepository(stateMgr.DB())))
	}

	store := playlists.NewStore(cat.Playlists(), storeOpts...)
	defer store.Close()
	if err := store.Restore(ctx, cat.Resolve); err != nil {
		logger.Error(errmsg.Format(errmsg.OpPlaylistLoad, err))
	}

	initial, restored := restoreState(stateMgr, cat, logger)
	if v, ok := cfg.InitialVolume(); ok && !restored {
		initial.Volume = v
	}

	ctrl := playback.NewController(player.New(cfg.MusicDir),
		playback.WithState(initial),
		playback.WithLogger(logger),
	)
	defer ctrl.Close()

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(ctrl, cfg.MusicDir)
		if err != nil {
			logger.Warn("mpris unavailable", "err", err)
		} else {
			defer adapter.Close()
		}
	}

	deps := app.Deps{
		Catalog:   cat,
		Playback:  ctrl,
		Playlists: store,
		ArtRoot:   cfg.MusicDir,
		Logger:    logger,
	}
	if stateMgr != nil {
		deps.Session = stateMgr
	}
	if cfg.NotifyEnabled() {
		if deps.Notifier, err = notify.New(); err != nil {
			logger.Warn("notifications unavailable", "err", err)
		}
	}

	p := tea.NewProgram(app.New(deps), tea.WithAltScreen(), tea.WithContext(ctx))
	_, runErr := p.Run()

	if stateMgr != nil {
		stateMgr.SaveSession(app.SessionFromState(ctrl.State()))
	}
	return runErr
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog == "" {
		return catalog.Default()
	}
	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errmsg.OpCatalogLoad, err)
	}
	return cat, nil
}

// restoreState rebuilds the last saved session. It reports false and a
// fresh state when there is none.
func restoreState(m *state.Manager, cat *catalog.Catalog, logger *log.Logger) (playback.State, bool) {
	if m == nil {
		return playback.NewState(), false
	}
	sess, err := m.GetSession()
	if err != nil {
		logger.Error(errmsg.Format(errmsg.OpSessionLoad, err))
		return playback.NewState(), false
	}
	if sess == nil {
		return playback.NewState(), false
	}
	return app.StateFromSession(sess, cat), true
}
