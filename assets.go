package holo

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type AssetId string

// Resources is the host resource lookup for built-in assets.
type Resources interface {
	BuiltinMesh(name string) (*Mesh, error)
}

const BuiltinCylinder = "Cylinder"

// AssetServer keeps meshes by id and by name.
type AssetServer struct {
	mu     sync.RWMutex
	meshes map[AssetId]*Mesh
	names  map[string]AssetId
}

// NewAssetServer returns a server with the built-in meshes registered.
func NewAssetServer() *AssetServer {
	server := &AssetServer{
		meshes: make(map[AssetId]*Mesh),
		names:  make(map[string]AssetId),
	}
	server.RegisterMesh(BuiltinCylinder, CylinderMesh())
	return server
}

// RegisterMesh stores mesh under a fresh id. A later registration with the
// same name replaces the name binding; the older id stays valid.
func (server *AssetServer) RegisterMesh(name string, mesh *Mesh) AssetId {
	id := makeAssetId()

	server.mu.Lock()
	defer server.mu.Unlock()
	server.meshes[id] = mesh
	if name != "" {
		server.names[name] = id
	}
	return id
}

func (server *AssetServer) Mesh(id AssetId) (*Mesh, error) {
	server.mu.RLock()
	defer server.mu.RUnlock()
	mesh, ok := server.meshes[id]
	if !ok {
		return nil, fmt.Errorf("mesh %s: %w", id, ErrAssetNotFound)
	}
	return mesh, nil
}

func (server *AssetServer) BuiltinMesh(name string) (*Mesh, error) {
	server.mu.RLock()
	id, ok := server.names[name]
	server.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("builtin mesh %q: %w", name, ErrAssetNotFound)
	}
	return server.Mesh(id)
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
