package systems

import (
	"github.com/spaghettifunk/glpong/engine/assets"
	"github.com/spaghettifunk/glpong/engine/renderer"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

type SystemManagerConfig struct {
	Workers        int
	QueueSize      int
	VertexShader   string
	FragmentShader string
	Renderer       *metadata.RendererBackendConfig
}

/**
 * @brief Builds the systems in dependency order and tears them down in reverse.
 */
type SystemManager struct {
	JobSystem       *JobSystem
	ShaderSystem    *ShaderSystem
	ResourceManager *ResourceManager
	FontSystem      *FontSystem
	RendererSystem  *RendererSystem

	assetManager *assets.AssetManager
}

func NewSystemManager(backend renderer.RendererBackend, am *assets.AssetManager, config SystemManagerConfig) (*SystemManager, error) {
	if config.Workers <= 0 {
		config.Workers = 2
	}
	if config.QueueSize <= 0 {
		config.QueueSize = 32
	}

	js, err := NewJobSystem(config.Workers, config.QueueSize)
	if err != nil {
		return nil, err
	}
	ss, err := NewShaderSystem(js, am, config.VertexShader, config.FragmentShader)
	if err != nil {
		js.Shutdown()
		return nil, err
	}
	rm, err := NewResourceManager(backend, js, am)
	if err != nil {
		js.Shutdown()
		return nil, err
	}
	rs, err := NewRendererSystem(backend, ss, rm, config.Renderer)
	if err != nil {
		js.Shutdown()
		return nil, err
	}
	return &SystemManager{
		JobSystem:       js,
		ShaderSystem:    ss,
		ResourceManager: rm,
		FontSystem:      NewFontSystem(am, rm),
		RendererSystem:  rs,
		assetManager:    am,
	}, nil
}

/**
 * @brief Initializes the backend and queues the first shader load. Changes to the
 * shader files on disk queue a reload.
 */
func (sm *SystemManager) Initialize() error {
	if err := sm.RendererSystem.Initialize(); err != nil {
		return err
	}
	sm.assetManager.OnChange(sm.ShaderSystem.OnAssetChanged)
	sm.ShaderSystem.Load()
	return nil
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.ResourceManager.Shutdown(); err != nil {
		return err
	}
	if err := sm.JobSystem.Shutdown(); err != nil {
		return err
	}
	return sm.RendererSystem.Shutdown()
}
