package systems

import (
	"testing"

	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
)

func newShaderFixture(t *testing.T) (*ShaderSystem, *memoryLoader, *JobSystem) {
	t.Helper()
	js, err := NewJobSystem(1, 4)
	if err != nil {
		t.Fatal(err)
	}
	loader := newMemoryLoader()
	loader.shaders[metadata.DEFAULT_VERTEX_SHADER] = "vertex source"
	loader.shaders[metadata.DEFAULT_FRAGMENT_SHADER] = "fragment source"
	ss, err := NewShaderSystem(js, loader, "", "")
	if err != nil {
		t.Fatal(err)
	}
	return ss, loader, js
}

func TestShaderSystemDeliversSources(t *testing.T) {
	ss, _, js := newShaderFixture(t)

	if _, ok := ss.Poll(); ok {
		t.Fatalf("sources delivered before load")
	}
	if !ss.Load() {
		t.Fatalf("load not queued")
	}
	js.Shutdown()

	src, ok := ss.Poll()
	if !ok {
		t.Fatalf("no sources after load finished")
	}
	if src.Vertex != "vertex source" || src.Fragment != "fragment source" || src.Generation != 1 {
		t.Fatalf("sources = %+v", src)
	}
	if _, ok := ss.Poll(); ok {
		t.Fatalf("sources delivered twice")
	}
}

func TestShaderSystemKeepsNewestDelivery(t *testing.T) {
	ss, _, js := newShaderFixture(t)
	ss.Load()
	ss.Load()
	js.Shutdown()

	src, ok := ss.Poll()
	if !ok || src.Generation != 2 {
		t.Fatalf("got %+v, want generation 2", src)
	}
	if _, ok := ss.Poll(); ok {
		t.Fatalf("stale generation still queued")
	}
}

func TestShaderSystemLoadFailure(t *testing.T) {
	ss, loader, js := newShaderFixture(t)
	delete(loader.shaders, metadata.DEFAULT_FRAGMENT_SHADER)
	ss.Load()
	js.Shutdown()

	if _, ok := ss.Poll(); ok {
		t.Fatalf("sources delivered despite missing fragment shader")
	}
}

func TestShaderSystemReloadsOnChange(t *testing.T) {
	ss, loader, js := newShaderFixture(t)

	ss.OnAssetChanged("textures/checker.png", metadata.ResourceTypeImage)
	ss.OnAssetChanged("shaders/other.glsl", metadata.ResourceTypeShader)
	ss.OnAssetChanged(metadata.DEFAULT_FRAGMENT_SHADER, metadata.ResourceTypeShader)
	js.Shutdown()

	if n := loader.loadCount(metadata.DEFAULT_VERTEX_SHADER); n != 1 {
		t.Fatalf("vertex loaded %d times, want 1", n)
	}
	if _, ok := ss.Poll(); !ok {
		t.Fatalf("change to the fragment shader did not reload")
	}
}
