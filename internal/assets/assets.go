// Package assets loads meshes for the playground and caches parsed files.
package assets

import (
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/gregoryw3/open-cv-imgui/internal/engine/model"
	"github.com/gregoryw3/open-cv-imgui/internal/logger"
	"github.com/gregoryw3/open-cv-imgui/pkg/formats"
)

// CubeName is the name reported for the built-in cube.
const CubeName = "cube"

// Manager loads meshes from STL files or the built-in cube.
type Manager struct {
	cache *Cache
	log   *zap.Logger
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
		log:   logger.Named("assets"),
	}
}

// Triangles returns the triangle soup at path, or the unit cube when
// path is empty. Parsed files are cached by absolute path.
func (m *Manager) Triangles(path string) ([]model.Triangle, error) {
	if path == "" {
		return model.Cube(), nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if tris, ok := m.cache.Get(abs); ok {
		return tris, nil
	}

	stl, err := formats.ParseSTLFile(abs)
	if err != nil {
		return nil, fmt.Errorf("loading mesh %s: %w", path, err)
	}
	tris := make([]model.Triangle, len(stl.Facets))
	for i, f := range stl.Facets {
		tris[i] = f.Vertices
	}
	m.cache.Set(abs, tris)

	m.log.Debug("parsed STL",
		zap.String("path", abs),
		zap.String("name", stl.Name),
		zap.Bool("binary", stl.Binary),
		zap.Int("facets", len(stl.Facets)),
	)
	return tris, nil
}

// Mesh loads path (or the cube) and builds an indexed mesh with normals.
func (m *Manager) Mesh(path string, keyer model.VertexKeyer, mat model.Material) (*model.Mesh, error) {
	tris, err := m.Triangles(path)
	if err != nil {
		return nil, err
	}
	mesh, err := model.FromTriangles(tris, keyer, mat)
	if err != nil {
		return nil, fmt.Errorf("building mesh %s: %w", displayName(path), err)
	}

	m.log.Info("mesh loaded",
		zap.String("source", displayName(path)),
		zap.Int("triangles", len(tris)),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("faces", mesh.FaceCount()),
		zap.Int("degenerate", mesh.Degenerate),
	)
	return mesh, nil
}

// Close drops cached files.
func (m *Manager) Close() {
	m.cache.Clear()
}

func displayName(path string) string {
	if path == "" {
		return CubeName
	}
	return path
}

// Cache is a simple in-memory cache of parsed triangle soups.
type Cache struct {
	data map[string][]model.Triangle
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]model.Triangle),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]model.Triangle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []model.Triangle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]model.Triangle)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
