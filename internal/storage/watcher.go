// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// DATA FILE WATCHER
// =============================================================================

// ChangeEvent reports that one of the persisted data files was rewritten.
type ChangeEvent struct {
	// File is the base name of the changed file (ChatHistoryFile or
	// SavedRecipesFile).
	File string
}

// Watcher observes the data directory for external rewrites of the two JSON
// files. Sessions in other processes share the same backing files with no
// locking; the watcher lets this session reload instead of silently serving
// stale state until its next write.
//
// Events are debounced: editors and atomic renames produce several fsnotify
// events per logical change, and the consumer only needs one.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dataDir  string
	debounce time.Duration
	events   chan ChangeEvent

	mu          sync.Mutex
	pending     map[string]time.Time // File base name -> last change time
	localWrites map[string]time.Time // File base name -> last write by this process

	ctx    context.Context
	cancel context.CancelFunc
}

// NewWatcher creates a watcher for the data directory. Call Watch to start
// it and Close to release resources.
func NewWatcher(dataDir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("storage: creating watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		watcher:  fsw,
		dataDir:  dataDir,
		debounce: 250 * time.Millisecond,
		events:      make(chan ChangeEvent, 8),
		pending:     make(map[string]time.Time),
		localWrites: make(map[string]time.Time),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Events returns the channel on which debounced change events arrive.
func (w *Watcher) Events() <-chan ChangeEvent {
	return w.events
}

// MarkLocalWrite records that this process just rewrote the named data file.
// The resulting fsnotify events are swallowed instead of being reported as an
// external change, so a session's own saves do not trigger a reload.
func (w *Watcher) MarkLocalWrite(name string) {
	w.mu.Lock()
	w.localWrites[name] = time.Now()
	w.mu.Unlock()
}

// Watch starts watching the data directory. The directory is created first
// if needed - fsnotify cannot watch a path that does not exist yet.
func (w *Watcher) Watch() error {
	if err := os.MkdirAll(w.dataDir, 0755); err != nil {
		return fmt.Errorf("storage: creating data directory: %w", err)
	}
	if err := w.watcher.Add(w.dataDir); err != nil {
		return fmt.Errorf("storage: watching %s: %w", w.dataDir, err)
	}

	go w.processEvents()
	go w.processPending()

	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

// processEvents filters raw fsnotify events down to the two data files and
// records them as pending.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Base(event.Name)
			if name != ChatHistoryFile && name != SavedRecipesFile {
				continue
			}
			w.mu.Lock()
			// One local save fans out into several fsnotify events, so the
			// mark stays until its window expires rather than being consumed
			// by the first event.
			if at, ok := w.localWrites[name]; ok {
				if time.Since(at) < 2*w.debounce {
					w.mu.Unlock()
					continue
				}
				delete(w.localWrites, name)
			}
			w.pending[name] = time.Now()
			w.mu.Unlock()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal to the session; the next explicit
			// load still reads the file directly.
		}
	}
}

// processPending flushes pending changes once they have been quiet for the
// debounce interval.
func (w *Watcher) processPending() {
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case now := <-ticker.C:
			w.mu.Lock()
			var ready []string
			for name, at := range w.pending {
				if now.Sub(at) >= w.debounce {
					ready = append(ready, name)
					delete(w.pending, name)
				}
			}
			w.mu.Unlock()

			for _, name := range ready {
				select {
				case w.events <- ChangeEvent{File: name}:
				default:
					// Consumer is behind; drop rather than block the loop.
				}
			}
		}
	}
}
