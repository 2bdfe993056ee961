// internal/embed/document.go
package embed

import (
	"path/filepath"
	"sort"
	"sync"
)

// Container is a mount point a widget binds to. Its ID stays stable for the
// lifetime of the card that rendered it.
type Container struct {
	ID string
	// Dir is a per-container scratch directory for the provider (the mpv
	// backend keeps its IPC socket there). It is not created by Mount.
	Dir string
}

// Document tracks the containers currently mounted.
type Document struct {
	root string

	mu         sync.RWMutex
	containers map[string]Container
}

// NewDocument creates an empty document whose containers keep their scratch
// directories under root.
func NewDocument(root string) *Document {
	return &Document{
		root:       root,
		containers: make(map[string]Container),
	}
}

// Mount registers a container. Mounting an id that is already mounted
// returns the existing container unchanged.
func (d *Document) Mount(id string) Container {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok := d.containers[id]; ok {
		return c
	}
	c := Container{ID: id, Dir: filepath.Join(d.root, id)}
	d.containers[id] = c
	return c
}

// Unmount removes a container. Unknown ids are ignored.
func (d *Document) Unmount(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.containers, id)
}

// Lookup returns the mounted container with the given id.
func (d *Document) Lookup(id string) (Container, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.containers[id]
	return c, ok
}

// IDs returns the mounted container ids in sorted order.
func (d *Document) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ids := make([]string, 0, len(d.containers))
	for id := range d.containers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
