// Package watch backs the CLI's --watch flag: it re-runs a pipeline stage
// every time the watched source file changes.
package watch

import (
	"bufio"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/saibing/gors/internal/config"
)

// Run starts watching filename and returns without blocking. A background
// goroutine calls rerun once, then again after every write or create event,
// until the returned stop function is called or the watcher's channels are
// closed. Watcher errors are logged and do not end the loop.
//
// If cfg.DenylistPath names a file, filename is checked against the paths
// it lists; a denylisted filename is never watched or rerun at all.
func Run(cfg config.Config, filename string, rerun func()) (stop func(), err error) {
	denylisted, err := isDenylisted(cfg.DenylistPath, filename)
	if err != nil {
		return nil, err
	}
	if denylisted {
		log.Printf("watch: %s is denylisted, skipping", filename)
		return func() {}, nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filename); err != nil {
		w.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		rerun()
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					log.Printf("watch: %s changed, rerunning", event.Name)
					rerun()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("watch: error: %v", err)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		w.Close()
	}, nil
}

// isDenylisted reports whether filename appears, one path per line, in the
// file named by denylistPath. An empty denylistPath means no denylist.
func isDenylisted(denylistPath, filename string) (bool, error) {
	if denylistPath == "" {
		return false, nil
	}
	f, err := os.Open(denylistPath)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if scanner.Text() == filename {
			return true, nil
		}
	}
	return false, scanner.Err()
}
