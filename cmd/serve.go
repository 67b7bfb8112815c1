package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/Bitlatte/shadowlight/internal/site"
)

const debounceDuration = 500 * time.Millisecond

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and watches for changes",
	Long: `The serve command performs an initial build of your site, then starts a local
web server to serve your output directory. It also watches your content, layouts,
and static directories for changes and automatically rebuilds the site.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		builder := newBuilder()

		logger.Info("performing initial build")
		if _, err := builder.Build(ctx); err != nil {
			return fmt.Errorf("initial build failed: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer watcher.Close()

		rb := &rebuilder{build: func(ctx context.Context) error {
			_, err := builder.Build(ctx)
			return err
		}}
		go watch(ctx, watcher, rb)

		for _, root := range []string{site.ContentDir, site.LayoutsDir, site.StaticDir} {
			addWatch(watcher, root)
		}

		addr := fmt.Sprintf(":%d", serverPort)
		logger.Info("serving site", "dir", appConfig.OutputDir, "url", "http://localhost"+addr)

		srv := &http.Server{Addr: addr, Handler: devHandler(appConfig.OutputDir)}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start HTTP server: %w", err)
		}
		return nil
	},
}

// watch rebuilds the site once changes have settled for debounceDuration.
func watch(ctx context.Context, watcher *fsnotify.Watcher, rb *rebuilder) {
	var buildTimer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", "path", event.Name, "op", event.Op.String())

			// New subdirectories are not watched automatically.
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				addWatch(watcher, event.Name)
			}

			if buildTimer != nil {
				buildTimer.Stop()
			}
			buildTimer = time.AfterFunc(debounceDuration, func() { rb.run(ctx) })
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watcher error", "err", err)
		}
	}
}

// rebuilder runs one build at a time. A build requested while another is
// running waits for it, so builds never share the output directory.
type rebuilder struct {
	mu    sync.Mutex
	build func(ctx context.Context) error
}

func (r *rebuilder) run(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	logger.Info("rebuilding site")
	if err := r.build(ctx); err != nil {
		logger.Error("rebuild failed", "err", err)
	}
}

func addWatch(watcher *fsnotify.Watcher, root string) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		logger.Debug("not watching missing path", "path", root)
		return
	}
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			logger.Warn("error walking path", "path", p, "err", err)
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(p); err != nil {
				logger.Warn("failed to watch path", "path", p, "err", err)
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn("error setting up watch", "path", root, "err", err)
	}
}

// devHandler serves dir without caching or directory listings and resolves
// clean URLs to their .html files.
func devHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if strings.HasSuffix(p, "/") {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(p), "index.html")); os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}
		} else if path.Ext(p) == "" {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(p)+".html")); err == nil {
				r.URL.Path = p + ".html"
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		files.ServeHTTP(w, r)
	})
}

func isDir(p string) bool {
	fileInfo, err := os.Stat(p)
	if err != nil {
		return false
	}
	return fileInfo.IsDir()
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
