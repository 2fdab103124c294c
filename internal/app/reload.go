package app

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dshills/gridmouse/internal/config"
	"github.com/dshills/gridmouse/internal/config/layer"
	"github.com/dshills/gridmouse/internal/config/watcher"
	"github.com/dshills/gridmouse/internal/input"
)

// watchConfig starts the file watcher and returns a channel signalled on
// every debounced change. It returns nil when reload is not configured
// or the watcher cannot start.
func (a *Application) watchConfig() <-chan struct{} {
	if a.opts.Reload == nil || a.opts.ConfigPath == "" {
		return nil
	}
	log := a.component("config")

	w, err := watcher.New(watcher.WithLogger(log))
	if err != nil {
		log.WithError(err).Warn("config reload disabled")
		return nil
	}
	if err := w.Watch(a.opts.ConfigPath); err != nil {
		w.Stop()
		log.WithError(err).WithField("path", a.opts.ConfigPath).Warn("config reload disabled")
		return nil
	}

	changes := make(chan struct{}, 1)
	w.OnChange(func(ev watcher.Event) {
		log.WithFields(logrus.Fields{"path": ev.Path, "op": ev.Op.String()}).Debug("config changed")
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	if err := w.Start(); err != nil {
		w.Stop()
		log.WithError(err).Warn("config reload disabled")
		return nil
	}
	a.watcher = w
	return changes
}

// relayReloads loads the configuration after each change and hands the
// newest result to the dispatcher. A file that fails to load keeps the
// current configuration.
func (a *Application) relayReloads(ctx context.Context, changes <-chan struct{}, out chan *config.Config) {
	log := a.component("config")
	var prev map[string]any
	for {
		select {
		case <-ctx.Done():
			return
		case <-changes:
		}

		res, err := a.opts.Reload()
		if err != nil {
			log.WithError(err).Warn("config reload failed, keeping current settings")
			continue
		}
		for _, w := range res.Warnings {
			log.WithField("setting", w.Path).Warn(w.Message)
		}
		if res.Layers != nil {
			merged := res.Merged()
			if prev != nil {
				added, modified, removed := layer.DiffMaps(prev, merged)
				log.WithFields(logrus.Fields{
					"added":    added,
					"modified": modified,
					"removed":  removed,
				}).Debug("config diff")
			}
			prev = merged
		}

		cfg := res.Config
		select {
		case <-out:
		default:
		}
		select {
		case out <- &cfg:
		case <-ctx.Done():
			return
		}
	}
}

// applyPending swaps in a reloaded configuration once the handler is
// Hidden.
func (a *Application) applyPending() {
	if a.pending == nil {
		return
	}
	cfg := *a.pending
	maps := a.buildMaps(cfg)
	if err := a.handler.Apply(cfg.Input(), maps); err != nil {
		if errors.Is(err, input.ErrOverlayActive) {
			a.log.Debug("config reload deferred until overlay is hidden")
			return
		}
		a.log.WithError(err).Warn("config reload rejected")
		a.pending = nil
		return
	}

	a.pending = nil
	a.cfg = cfg
	a.exec.SetMaps(maps)
	a.exec.SetSettle(cfg.Timing.ClickSettle)
	a.applyStyle(cfg)
	a.log.WithFields(logrus.Fields{
		"toggle": cfg.Keys.OverlayToggle,
		"coarse": keymapSize(maps.Coarse),
		"fine":   keymapSize(maps.Fine),
	}).Info("configuration reloaded")
}
