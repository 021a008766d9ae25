package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath returns ~/.config/dome/config.yaml.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "dome", "config.yaml"), nil
}

// Load reads and resolves the configuration at the standard location.
// A missing file yields DefaultConfig rather than an error.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads and resolves the configuration at path.
func LoadFromPath(path string) (*Config, error) {
	raw, err := loadRaw(path)
	if err != nil {
		return nil, err
	}
	return BuildEffectiveConfig(raw)
}

func loadRaw(path string) (RawConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return RawConfig{}, nil
	}
	if err != nil {
		return RawConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var raw RawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return RawConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return RawConfig{}.merge(raw), nil
}

// Watcher reloads the config file on write and delivers the resolved
// Config on Changes. cmd/dome answers each delivery by calling the
// daemon's Reload, which re-reads the file itself, supplementing the
// IPC-triggered RELOAD command with an fsnotify-driven one.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	Changes chan *Config
	Errors  chan error
}

// WatchDefault starts watching the standard config path.
func WatchDefault() (*Watcher, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return Watch(path)
}

// Watch starts watching path's parent directory (so the watch survives
// editors that replace the file instead of writing in place) and
// pushes a freshly-resolved Config to Changes on every write or create
// event targeting path.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fw.Close()
		return nil, fmt.Errorf("ensure config directory %s: %w", dir, err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch config directory %s: %w", dir, err)
	}

	w := &Watcher{
		watcher: fw,
		path:    path,
		Changes: make(chan *Config, 1),
		Errors:  make(chan error, 1),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadFromPath(w.path)
			if err != nil {
				w.Errors <- err
				continue
			}
			w.Changes <- cfg
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
