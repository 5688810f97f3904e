package systems

import (
	"fmt"
	"path"
	"sync"
	"sync/atomic"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

// AssetLoader is the part of the asset manager the systems load through.
type AssetLoader interface {
	LoadAsset(name string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error)
}

/**
 * @brief Loads the vertex and fragment sources of the program on the job pool and
 * hands them to the render thread through a one-slot completion channel. A newer
 * delivery replaces one that has not been picked up yet.
 */
type ShaderSystem struct {
	jobs   *JobSystem
	loader AssetLoader

	vertexName   string
	fragmentName string

	generation atomic.Uint32
	mutex      sync.Mutex
	completed  chan *metadata.ShaderSource
}

func NewShaderSystem(jobs *JobSystem, loader AssetLoader, vertexName, fragmentName string) (*ShaderSystem, error) {
	if jobs == nil || loader == nil {
		return nil, fmt.Errorf("shader system needs a job system and an asset loader")
	}
	if vertexName == "" {
		vertexName = metadata.DEFAULT_VERTEX_SHADER
	}
	if fragmentName == "" {
		fragmentName = metadata.DEFAULT_FRAGMENT_SHADER
	}
	return &ShaderSystem{
		jobs:         jobs,
		loader:       loader,
		vertexName:   vertexName,
		fragmentName: fragmentName,
		completed:    make(chan *metadata.ShaderSource, 1),
	}, nil
}

/**
 * @brief Queues a load of both sources. Failures are logged and leave whatever
 * program the renderer already has in place.
 */
func (ss *ShaderSystem) Load() bool {
	return ss.jobs.Submit(metadata.JobTask{
		Priority: metadata.JOB_PRIORITY_HIGH,
		OnStart:  ss.loadJobStart,
		OnComplete: func(result interface{}) {
			if src, ok := result.(*metadata.ShaderSource); ok {
				ss.deliver(src)
			}
		},
		OnFailure: func(err error) {
			core.LogError("shader sources %s, %s not loaded: %s", ss.vertexName, ss.fragmentName, err)
		},
	})
}

func (ss *ShaderSystem) loadJobStart(_ interface{}, out chan<- interface{}) error {
	vertex, err := ss.loadSource(ss.vertexName)
	if err != nil {
		return err
	}
	fragment, err := ss.loadSource(ss.fragmentName)
	if err != nil {
		return err
	}
	src := &metadata.ShaderSource{
		Vertex:     vertex,
		Fragment:   fragment,
		Generation: ss.generation.Add(1),
	}
	core.LogDebug("shader sources loaded (generation %d)", src.Generation)
	out <- src
	return nil
}

func (ss *ShaderSystem) loadSource(name string) (string, error) {
	res, err := ss.loader.LoadAsset(name, metadata.ResourceTypeShader, nil)
	if err != nil {
		return "", err
	}
	text, ok := res.Data.(string)
	if !ok {
		return "", fmt.Errorf("shader %s: unexpected resource data %T", name, res.Data)
	}
	return text, nil
}

func (ss *ShaderSystem) deliver(src *metadata.ShaderSource) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()
	select {
	case old := <-ss.completed:
		if old.Generation > src.Generation {
			src = old
		}
	default:
	}
	ss.completed <- src
}

// Poll returns the newest delivered sources without blocking.
func (ss *ShaderSystem) Poll() (*metadata.ShaderSource, bool) {
	select {
	case src := <-ss.completed:
		return src, true
	default:
		return nil, false
	}
}

// OnAssetChanged reloads the program when one of its source files changes.
func (ss *ShaderSystem) OnAssetChanged(name string, resourceType metadata.ResourceType) {
	if resourceType != metadata.ResourceTypeShader {
		return
	}
	name = path.Clean(name)
	if name == path.Clean(ss.vertexName) || name == path.Clean(ss.fragmentName) {
		core.LogInfo("shader %s changed, reloading", name)
		ss.Load()
	}
}
