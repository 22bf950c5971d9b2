package localfolder

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/peopleops-labs/pir-analyzer/internal/core/domain"
)

// debounceWindow coalesces rapid event bursts (editors write in several
// syscalls) into a single notification.
const debounceWindow = 2 * time.Second

// Watch observes the docs folder and invokes onChange after supported
// files are created, written, renamed or removed. It blocks until ctx
// is cancelled or the watcher fails.
func (s *Source) Watch(ctx context.Context, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return err
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			// Reset the debounce window on every relevant event.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// relevantEvent reports whether an fsnotify event concerns a supported
// document and an operation that changes folder contents.
func relevantEvent(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~$") {
		return false
	}
	return domain.IsSupportedFile(name)
}
