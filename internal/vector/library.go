package vector

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"sync"
)

type entry struct {
	image *Image
	refs  int
}

// Library loads SVG resources relative to a root directory and shares one
// Image per path. Every Load retains the image; Release drops the reference
// and the library forgets the path once nothing holds it.
type Library struct {
	mu      sync.Mutex
	root    string
	entries map[string]*entry
}

// NewLibrary creates a library rooted at dir.
func NewLibrary(dir string) *Library {
	return &Library{
		root:    dir,
		entries: make(map[string]*entry),
	}
}

// Load returns the shared image for a path relative to the library root.
func (lib *Library) Load(path string) (*Image, error) {
	key := lib.resolve(path)

	lib.mu.Lock()
	defer lib.mu.Unlock()

	if e, ok := lib.entries[key]; ok {
		e.refs++
		return e.image, nil
	}

	img, err := Load(key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	lib.entries[key] = &entry{image: img, refs: 1}
	return img, nil
}

// MustLoad is Load for resources that ship with the binary; a missing
// resource is logged and nil is returned, which widgets draw as nothing.
func (lib *Library) MustLoad(path string) *Image {
	img, err := lib.Load(path)
	if err != nil {
		log.Printf("vector: %v", err)
		return nil
	}
	return img
}

// Release drops one reference to img.
func (lib *Library) Release(img *Image) {
	if img == nil {
		return
	}
	lib.mu.Lock()
	defer lib.mu.Unlock()

	for key, e := range lib.entries {
		if e.image != img {
			continue
		}
		e.refs--
		if e.refs <= 0 {
			delete(lib.entries, key)
		}
		return
	}
}

// Refs returns the reference count held for path.
func (lib *Library) Refs(path string) int {
	key := lib.resolve(path)
	lib.mu.Lock()
	defer lib.mu.Unlock()
	if e, ok := lib.entries[key]; ok {
		return e.refs
	}
	return 0
}

// Paths returns the currently loaded paths, sorted.
func (lib *Library) Paths() []string {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	paths := make([]string, 0, len(lib.entries))
	for key := range lib.entries {
		paths = append(paths, key)
	}
	sort.Strings(paths)
	return paths
}

func (lib *Library) resolve(path string) string {
	if filepath.IsAbs(path) || lib.root == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(lib.root, path)
}
