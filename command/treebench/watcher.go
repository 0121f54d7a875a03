// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const watcherLoggerPrefix = "file-watcher"

// fileWatcher - signals changes to the configuration file so the
// workload can be run again
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Start - deliver events until the context is cancelled or the file
// is removed
func (w *fileWatcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(w.filePath); nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go func() {
		defer w.watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Warnf("watcher error: %s", err)

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.log.Debugf("file event: %v", event)

				if isRemove(event) {
					w.log.Warnf("file: %s removed, stop watching", w.filePath)
					send(w.remove)
					return
				}
				if filepath.Base(event.Name) != filepath.Base(w.filePath) {
					continue
				}
				if isChange(event) {
					w.log.Info("configuration changed")
					send(w.change)
				}
			}
		}
	}()

	return nil
}

// Changed - receives once for each burst of changes
func (w *fileWatcher) Changed() <-chan struct{} {
	return w.change
}

// Removed - receives when the file is removed
func (w *fileWatcher) Removed() <-chan struct{} {
	return w.remove
}

// non-blocking, a pending event already covers this one
func send(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func isRemove(event fsnotify.Event) bool {
	return "" == event.Name || 0 != event.Op&(fsnotify.Remove|fsnotify.Rename)
}

func isChange(event fsnotify.Event) bool {
	return 0 != event.Op&(fsnotify.Write|fsnotify.Create)
}
