package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/math"
	"github.com/spaghettifunk/glpong/engine/renderer/metadata"
	"github.com/spaghettifunk/glpong/engine/systems"
)

const (
	GAME_PONG  = "pong"
	GAME_CUBES = "cubes"

	PONG_MODE_AI_VS_AI       = "ai-vs-ai"
	PONG_MODE_HUMAN_VS_AI    = "human-vs-ai"
	PONG_MODE_HUMAN_VS_HUMAN = "human-vs-human"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"width"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"height"`
	// The application name used in windowing, if applicable.
	Name     string `toml:"name"`
	LogLevel string `toml:"log_level"`
	// Which game to run: "pong" or "cubes".
	Game string `toml:"game"`
	// Directory holding shaders, textures and fonts.
	AssetsDir string `toml:"assets_dir"`

	Renderer RendererConfig `toml:"renderer"`
	Pong     PongConfig     `toml:"pong"`
}

type RendererConfig struct {
	ClearColour    [4]float32 `toml:"clear_colour"`
	DepthTest      bool       `toml:"depth_test"`
	VertexShader   string     `toml:"vertex_shader"`
	FragmentShader string     `toml:"fragment_shader"`
	// Worker goroutines for image decodes and shader loads.
	Workers int `toml:"workers"`
}

// PongConfig holds the tunables of the Pong game. Speeds are in units per second.
type PongConfig struct {
	Mode            string  `toml:"mode"`
	BallRadius      float32 `toml:"ball_radius"`
	BallSpeed       float32 `toml:"ball_speed"`
	SpeedMultiplier float32 `toml:"speed_multiplier"`
	// Zero leaves the ball speed unbounded.
	MaxSpeed      float32 `toml:"max_speed"`
	SpreadDegrees float32 `toml:"spread_degrees"`
	PaddleWidth   float32 `toml:"paddle_width"`
	PaddleHeight  float32 `toml:"paddle_height"`
	PaddleSpeed   float32 `toml:"paddle_speed"`
	ServeDelayMS  float64 `toml:"serve_delay_ms"`
	// Bitmap font for the score board. Empty disables it.
	Font string `toml:"font"`
}

func DefaultConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  800,
		StartHeight: 600,
		Name:        "glpong",
		LogLevel:    "info",
		Game:        GAME_PONG,
		AssetsDir:   "assets",
		Renderer: RendererConfig{
			ClearColour:    [4]float32{0, 0, 0, 1},
			DepthTest:      false,
			VertexShader:   metadata.DEFAULT_VERTEX_SHADER,
			FragmentShader: metadata.DEFAULT_FRAGMENT_SHADER,
			Workers:        2,
		},
		Pong: PongConfig{
			Mode:            PONG_MODE_AI_VS_AI,
			BallRadius:      10,
			BallSpeed:       300,
			SpeedMultiplier: 1.1,
			MaxSpeed:        0,
			SpreadDegrees:   10,
			PaddleWidth:     20,
			PaddleHeight:    100,
			PaddleSpeed:     400,
			ServeDelayMS:    core.SECOND,
			Font:            "fonts/score.fnt",
		},
	}
}

/**
 * @brief Reads the TOML file at path on top of the defaults. A missing file yields
 * the defaults. The result is validated.
 */
func LoadConfig(path string) (*ApplicationConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		core.LogInfo("no config at %s, using defaults", path)
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %v: %w", path, err, core.ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *ApplicationConfig) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), core.ErrInvalidConfig)
	}

	if c.StartWidth == 0 || c.StartHeight == 0 {
		return invalid("window size %dx%d", c.StartWidth, c.StartHeight)
	}
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Game {
	case GAME_PONG, GAME_CUBES:
	default:
		return invalid("unknown game %q", c.Game)
	}
	if c.Renderer.Workers < 0 {
		return invalid("negative worker count %d", c.Renderer.Workers)
	}

	p := c.Pong
	switch p.Mode {
	case PONG_MODE_AI_VS_AI, PONG_MODE_HUMAN_VS_AI, PONG_MODE_HUMAN_VS_HUMAN:
	default:
		return invalid("unknown pong mode %q", p.Mode)
	}
	if p.BallRadius <= 0 || p.BallSpeed <= 0 || p.PaddleWidth <= 0 || p.PaddleHeight <= 0 || p.PaddleSpeed <= 0 {
		return invalid("pong sizes and speeds must be positive")
	}
	if p.SpeedMultiplier < 1 {
		return invalid("speed multiplier %v below 1", p.SpeedMultiplier)
	}
	if p.MaxSpeed < 0 || p.SpreadDegrees < 0 || p.ServeDelayMS < 0 {
		return invalid("negative max speed, spread or serve delay")
	}
	return nil
}

func (c *ApplicationConfig) Level() core.LogLevel {
	level, _ := core.ParseLogLevel(c.LogLevel)
	return level
}

// Marshal encodes the config as TOML.
func (c *ApplicationConfig) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

func (c *ApplicationConfig) BackendConfig() *metadata.RendererBackendConfig {
	cc := c.Renderer.ClearColour
	return &metadata.RendererBackendConfig{
		ApplicationName: c.Name,
		ClearColour:     math.NewVec4(cc[0], cc[1], cc[2], cc[3]),
		DepthTest:       c.Renderer.DepthTest,
	}
}

func (c *ApplicationConfig) SystemsConfig() systems.SystemManagerConfig {
	return systems.SystemManagerConfig{
		Workers:        c.Renderer.Workers,
		VertexShader:   c.Renderer.VertexShader,
		FragmentShader: c.Renderer.FragmentShader,
		Renderer:       c.BackendConfig(),
	}
}
