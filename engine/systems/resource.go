package systems

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/renderer"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

type decodedImage struct {
	source string
	image  *metadata.ImageResourceData
	err    error
}

/**
 * @brief Maps texture sources to GPU textures. Entries are created on first
 * request and never evicted. The handle is usable at once; the pixels arrive
 * once the decode job finishes and Update uploads them.
 *
 * Everything except the decode jobs runs on the render thread, so the cache
 * itself needs no lock.
 */
type ResourceManager struct {
	backend renderer.RendererBackend
	jobs    *JobSystem
	loader  AssetLoader
	params  metadata.TextureUploadParams

	textures map[string]*metadata.Texture
	decoded  chan decodedImage
	done     chan struct{}
	// sources whose decode did not fit in the job queue, retried by Update
	unqueued []string
}

func NewResourceManager(backend renderer.RendererBackend, jobs *JobSystem, loader AssetLoader) (*ResourceManager, error) {
	if backend == nil || jobs == nil || loader == nil {
		return nil, fmt.Errorf("resource manager needs a backend, a job system and an asset loader")
	}
	return &ResourceManager{
		backend:  backend,
		jobs:     jobs,
		loader:   loader,
		params:   metadata.DefaultTextureUploadParams(),
		textures: make(map[string]*metadata.Texture),
		decoded:  make(chan decodedImage, 16),
		done:     make(chan struct{}),
	}, nil
}

/**
 * @brief Returns the texture for source, creating it and queueing its decode on
 * first request. A second request before the decode finishes reuses the entry.
 */
func (rm *ResourceManager) GetTexture(source string) metadata.TextureHandle {
	if t, ok := rm.textures[source]; ok {
		return t.Handle
	}

	t := &metadata.Texture{
		Handle: rm.backend.CreateTexture(),
		Source: source,
		State:  metadata.TEXTURE_STATE_PENDING,
	}
	rm.textures[source] = t
	rm.queueDecode(t)

	return t.Handle
}

// queueDecode hands the decode of t to the job system without blocking. A full
// queue leaves t pending and retries on the next Update.
func (rm *ResourceManager) queueDecode(t *metadata.Texture) {
	source := t.Source
	err := rm.jobs.TrySubmit(metadata.JobTask{
		Priority:    metadata.JOB_PRIORITY_NORMAL,
		InputParams: source,
		OnStart:     rm.decodeJobStart,
		OnComplete: func(result interface{}) {
			img, _ := result.(*metadata.ImageResourceData)
			rm.deliver(decodedImage{source: source, image: img})
		},
		OnFailure: func(err error) {
			rm.deliver(decodedImage{source: source, err: err})
		},
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrJobQueueFull):
		rm.unqueued = append(rm.unqueued, source)
	default:
		t.State = metadata.TEXTURE_STATE_FAILED
		core.LogError("texture %s not queued: %s", source, err)
	}
}

// Preload requests every source so their decodes start before the first draw.
func (rm *ResourceManager) Preload(sources ...string) {
	for _, src := range sources {
		rm.GetTexture(src)
	}
}

// State reports the load state of source. Unknown sources report false.
func (rm *ResourceManager) State(source string) (metadata.TextureState, bool) {
	t, ok := rm.textures[source]
	if !ok {
		return metadata.TEXTURE_STATE_PENDING, false
	}
	return t.State, true
}

// Texture returns the cache entry of source.
func (rm *ResourceManager) Texture(source string) (*metadata.Texture, bool) {
	t, ok := rm.textures[source]
	return t, ok
}

func (rm *ResourceManager) decodeJobStart(params interface{}, out chan<- interface{}) error {
	source, _ := params.(string)
	res, err := rm.loader.LoadAsset(source, metadata.ResourceTypeImage, &metadata.ImageResourceParams{FlipY: true})
	if err != nil {
		return err
	}
	img, ok := res.Data.(*metadata.ImageResourceData)
	if !ok {
		return fmt.Errorf("texture %s: unexpected resource data %T", source, res.Data)
	}
	if !img.Valid() {
		return fmt.Errorf("texture %s: pixel data does not match %dx%d", source, img.Width, img.Height)
	}
	out <- img
	return nil
}

func (rm *ResourceManager) deliver(d decodedImage) {
	select {
	case rm.decoded <- d:
	case <-rm.done:
	}
}

/**
 * @brief Uploads every image decoded since the last call, then retries decodes
 * that did not fit in the job queue. Must run on the render thread; never blocks.
 */
func (rm *ResourceManager) Update() {
	for drained := false; !drained; {
		select {
		case d := <-rm.decoded:
			rm.upload(d)
		default:
			drained = true
		}
	}

	retry := rm.unqueued
	rm.unqueued = nil
	for _, source := range retry {
		if t, ok := rm.textures[source]; ok {
			rm.queueDecode(t)
		}
	}
}

func (rm *ResourceManager) upload(d decodedImage) {
	t, ok := rm.textures[d.source]
	if !ok {
		return
	}
	if d.err != nil || d.image == nil {
		t.State = metadata.TEXTURE_STATE_FAILED
		core.LogError("texture %s failed to load: %v", d.source, d.err)
		return
	}

	rm.backend.UploadTexture(t.Handle, d.image, rm.params)
	t.Width = d.image.Width
	t.Height = d.image.Height
	t.State = metadata.TEXTURE_STATE_READY
	t.Generation++
	core.LogDebug("texture %s uploaded (%dx%d)", d.source, t.Width, t.Height)
}

// Shutdown releases decode jobs still waiting to hand over their result.
func (rm *ResourceManager) Shutdown() error {
	select {
	case <-rm.done:
	default:
		close(rm.done)
	}
	return nil
}
