package core

import (
	"errors"
)

var (
	ErrMalformedGeometry = errors.New("malformed geometry")
	ErrRendererNotReady  = errors.New("renderer not ready")
	ErrShaderCompile     = errors.New("shader compilation failed")
	ErrAssetNotFound     = errors.New("asset not found")
	ErrUnknownResource   = errors.New("unknown resource type")
	ErrNoWorkers         = errors.New("attempting to create worker pool with less than 1 worker")
	ErrInvalidConfig     = errors.New("invalid configuration")
)
