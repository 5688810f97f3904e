package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/glpong/engine/assets/loaders"
	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

// FnOnAssetChanged is called from the watcher goroutine with the asset name
// (relative to the asset directory) of a file that was created or written.
type FnOnAssetChanged func(name string, resourceType metadata.ResourceType)

/**
 * @brief Indexes an asset directory, keeps the index current with fsnotify and
 * loads assets through one loader per resource type. Safe for concurrent use.
 */
type AssetManager struct {
	root    string
	assets  map[string]AssetInfo
	loaders map[metadata.ResourceType]Loader

	mutex sync.RWMutex

	listeners []FnOnAssetChanged

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	started  bool
	isClosed bool
}

func NewAssetManager() (*AssetManager, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &AssetManager{
		assets:   make(map[string]AssetInfo),
		loaders:  make(map[metadata.ResourceType]Loader),
		fsnotify: fsWatch,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}, nil
}

func (am *AssetManager) Initialize(assetsDir string) error {
	root, err := filepath.Abs(assetsDir)
	if err != nil {
		return err
	}
	am.root = root

	if err := am.addRecursive(root); err != nil {
		return err
	}

	// Register loaders
	am.registerLoader(metadata.ResourceTypeShader, &loaders.ShaderLoader{})
	am.registerLoader(metadata.ResourceTypeImage, &loaders.ImageLoader{})
	am.registerLoader(metadata.ResourceTypeBitmapFont, &loaders.BitmapFontLoader{})

	am.started = true
	go am.start()

	core.LogInfo("asset manager watching %s (%d assets indexed)", root, am.Count())
	return nil
}

// Shutdown stops the watcher. Loading keeps working on the last known index.
func (am *AssetManager) Shutdown() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return nil
	}
	am.isClosed = true
	started := am.started
	am.mutex.Unlock()

	if !started {
		return am.fsnotify.Close()
	}
	close(am.done)
	<-am.stopped
	return nil
}

// OnChange registers a listener for created or modified assets.
func (am *AssetManager) OnChange(fn FnOnAssetChanged) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.listeners = append(am.listeners, fn)
}

// AddRecursive starts watching the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	if am.isClosed {
		return errors.New("asset watcher already closed")
	}
	return am.watchRecursive(name, false)
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.loaders[assetType] = loader
}

// Count returns the number of indexed assets.
func (am *AssetManager) Count() int {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return len(am.assets)
}

// Lookup returns the index entry of an asset name relative to the asset directory.
func (am *AssetManager) Lookup(name string) (AssetInfo, bool) {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[filepath.ToSlash(filepath.Clean(name))]
	return info, ok
}

/**
 * @brief Loads an asset by its name relative to the asset directory, using the
 * loader registered for resourceType. Files missing from the index are checked on
 * disk once, since watcher events may still be in flight.
 */
func (am *AssetManager) LoadAsset(name string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	key := filepath.ToSlash(filepath.Clean(name))

	am.mutex.RLock()
	asset, exists := am.assets[key]
	loader, loaderExists := am.loaders[resourceType]
	am.mutex.RUnlock()

	if !exists {
		if _, err := os.Stat(am.fullPath(key)); err != nil {
			return nil, fmt.Errorf("asset %s: %w", name, core.ErrAssetNotFound)
		}
		am.handleFileEvent(am.fullPath(key))
		asset = AssetInfo{Path: key, Type: resourceType}
	}
	if !loaderExists {
		return nil, fmt.Errorf("no loader for %s asset %s: %w", resourceType, name, core.ErrUnknownResource)
	}

	res, err := loader.Load(am.fullPath(key), resourceType, params)
	if err != nil {
		return nil, err
	}
	res.Name = key

	am.mutex.Lock()
	asset.LastLoaded = time.Now()
	am.assets[key] = asset
	am.mutex.Unlock()

	return res, nil
}

func (am *AssetManager) UnloadAsset(resource *metadata.Resource, resourceType metadata.ResourceType) error {
	am.mutex.RLock()
	loader, ok := am.loaders[resourceType]
	am.mutex.RUnlock()
	if !ok {
		return fmt.Errorf("no loader for %s: %w", resourceType, core.ErrUnknownResource)
	}
	return loader.Unload(resource)
}

func (am *AssetManager) fullPath(key string) string {
	return filepath.Join(am.root, filepath.FromSlash(key))
}

func (am *AssetManager) relative(path string) string {
	rel, err := filepath.Rel(am.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Has(fsnotify.Create) {
					am.watchRecursive(e.Name, false)
				}
				continue
			}
			// Handle create or modify events
			if e.Has(fsnotify.Create) || e.Has(fsnotify.Write) {
				if t := am.handleFileEvent(e.Name); t != metadata.ResourceTypeNone {
					am.notify(am.relative(e.Name), t)
				}
			}
			// Can't stat a deleted path, so drop it from the index and the watch list either way.
			if e.Has(fsnotify.Remove) || e.Has(fsnotify.Rename) {
				am.removeAsset(e.Name)
				am.fsnotify.Remove(e.Name)
			}

		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err)

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

func (am *AssetManager) notify(name string, t metadata.ResourceType) {
	am.mutex.RLock()
	listeners := append([]FnOnAssetChanged(nil), am.listeners...)
	am.mutex.RUnlock()

	core.LogDebug("asset changed: %s (%s)", name, t)
	for _, fn := range listeners {
		fn(name, t)
	}
}

// watchRecursive adds all directories under the given one to the watch list and
// indexes every file found.
func (am *AssetManager) watchRecursive(path string, unWatch bool) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if unWatch {
				return am.fsnotify.Remove(walkPath)
			}
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

// Handle the creation or modification of a file. Returns the detected type.
func (am *AssetManager) handleFileEvent(path string) metadata.ResourceType {
	assetType := DetermineAssetType(path)
	if assetType == metadata.ResourceTypeNone {
		return assetType
	}

	key := am.relative(path)
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.assets[key] = AssetInfo{
		Path: key,
		Type: assetType,
	}
	return assetType
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, am.relative(path))
}

func DetermineAssetType(path string) metadata.ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glsl", ".vert", ".frag", ".vs", ".fs":
		return metadata.ResourceTypeShader
	case ".png", ".jpg", ".jpeg", ".bmp", ".webp":
		return metadata.ResourceTypeImage
	case ".fnt":
		return metadata.ResourceTypeBitmapFont
	default:
		return metadata.ResourceTypeNone
	}
}
