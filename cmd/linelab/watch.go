// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"cogentcore.org/linelab/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchSettle is how long to wait for more file events before re-running.
const watchSettle = 200 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <lab.toml>",
	Short: "Re-run animate whenever the lab config or its dataset changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return watch(ctx, args[0], !noPace)
	},
}

func init() {
	watchCmd.Flags().BoolVar(&noPace, "no-pace", false, "do not pause between frames")
}

// watch runs the animation of the given config file, then runs it
// again each time the config or its data file is written, until the
// context is done. Errors in a run are logged and watching continues.
func watch(ctx context.Context, filename string, pace bool) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	watched := map[string]bool{}
	run := func() {
		cfg, err := OpenConfig(abs)
		if errors.Log(err) != nil {
			watchFiles(w, watched, abs)
			return
		}
		watchFiles(w, watched, abs, cfg.Path(cfg.Data))
		if _, err := runAnimation(ctx, cfg, pace); err != nil && ctx.Err() == nil {
			errors.Log(err)
		}
	}
	run()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(ev.Name)] || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			slog.Debug("file changed", "file", ev.Name, "op", ev.Op.String())
			settle = time.After(watchSettle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		case <-settle:
			settle = nil
			slog.Info("re-running", "config", abs)
			run()
		}
	}
}

// watchFiles watches the directories of the given files, which
// catches editors that replace files rather than writing them.
func watchFiles(w *fsnotify.Watcher, watched map[string]bool, files ...string) {
	for _, f := range files {
		f = filepath.Clean(f)
		if watched[f] {
			continue
		}
		watched[f] = true
		dir := filepath.Dir(f)
		if err := w.Add(dir); err != nil {
			errors.Log(err)
		}
	}
}
