package holo

import "errors"

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrNilMesh       = errors.New("mesh is nil")
	ErrNoPoints      = errors.New("no points to draw")
	ErrNameCount     = errors.New("fewer point names than points")
)
