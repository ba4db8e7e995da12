// Package config loads cubeview settings from defaults, an optional YAML
// file, CUBEVIEW_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. CUBEVIEW_WINDOW_WIDTH.
const EnvPrefix = "CUBEVIEW"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Material modes.
const (
	MaterialShader    = "shader"
	MaterialStandard  = "standard"
	MaterialWireframe = "wireframe"
)

// Config holds all settings.
type Config struct {
	Log struct {
		Level string `mapstructure:"level"`
		// Format is "console" or "json".
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	Window struct {
		Width     int    `mapstructure:"width"`
		Height    int    `mapstructure:"height"`
		Title     string `mapstructure:"title"`
		Resizable bool   `mapstructure:"resizable"`
	} `mapstructure:"window"`

	Headless struct {
		Enabled bool `mapstructure:"enabled"`
		Hz      int  `mapstructure:"hz"`
		// Frames stops the loop after N frames; 0 runs until interrupted.
		Frames   uint64 `mapstructure:"frames"`
		Snapshot string `mapstructure:"snapshot"`
	} `mapstructure:"headless"`

	Scene struct {
		Background string `mapstructure:"background"`
		Helpers    bool   `mapstructure:"helpers"`
	} `mapstructure:"scene"`

	Camera struct {
		FOV      float64   `mapstructure:"fov"`
		Near     float64   `mapstructure:"near"`
		Far      float64   `mapstructure:"far"`
		Position []float64 `mapstructure:"position"`
	} `mapstructure:"camera"`

	Material struct {
		Mode        string `mapstructure:"mode"`
		Color       string `mapstructure:"color"`
		VertexURL   string `mapstructure:"vertex_url"`
		FragmentURL string `mapstructure:"fragment_url"`
		Watch       bool   `mapstructure:"watch"`
	} `mapstructure:"material"`

	Loader struct {
		Root    string        `mapstructure:"root"`
		Retries int           `mapstructure:"retries"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"loader"`

	Renderer struct {
		GammaFactor             float64 `mapstructure:"gamma_factor"`
		GammaOutput             bool    `mapstructure:"gamma_output"`
		PhysicallyCorrectLights bool    `mapstructure:"physically_correct_lights"`
	} `mapstructure:"renderer"`

	HUD bool `mapstructure:"hud"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "cubeview")
	v.SetDefault("window.resizable", true)

	v.SetDefault("headless.enabled", false)
	v.SetDefault("headless.hz", 60)
	v.SetDefault("headless.frames", 0)
	v.SetDefault("headless.snapshot", "")

	v.SetDefault("scene.background", "skyblue")
	v.SetDefault("scene.helpers", true)

	v.SetDefault("camera.fov", 35)
	v.SetDefault("camera.near", 0.1)
	v.SetDefault("camera.far", 1000)
	v.SetDefault("camera.position", []float64{2, 1, 5})

	v.SetDefault("material.mode", MaterialShader)
	v.SetDefault("material.color", "#ff0000")
	v.SetDefault("material.vertex_url", "embed:shader/vertex.expr")
	v.SetDefault("material.fragment_url", "embed:shader/fragment.expr")
	v.SetDefault("material.watch", false)

	v.SetDefault("loader.root", ".")
	v.SetDefault("loader.retries", 0)
	v.SetDefault("loader.timeout", time.Duration(0))

	v.SetDefault("renderer.gamma_factor", 2.2)
	v.SetDefault("renderer.gamma_output", true)
	v.SetDefault("renderer.physically_correct_lights", true)

	v.SetDefault("hud", false)
}

// Load reads file (if not empty) on top of the defaults, applies environment
// overrides and validates the result. Flags must already be bound to v.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Headless.Hz <= 0 {
		errs = append(errs, fmt.Errorf("headless.hz must be positive, got %d", c.Headless.Hz))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov must be in (0, 180), got %v", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes must satisfy 0 < near < far, got %v, %v", c.Camera.Near, c.Camera.Far))
	}
	if len(c.Camera.Position) != 3 {
		errs = append(errs, fmt.Errorf("camera.position must have 3 components, got %d", len(c.Camera.Position)))
	}
	switch c.Material.Mode {
	case MaterialShader:
		if c.Material.VertexURL == "" || c.Material.FragmentURL == "" {
			errs = append(errs, errors.New("material.vertex_url and material.fragment_url are required in shader mode"))
		}
	case MaterialStandard, MaterialWireframe:
	default:
		errs = append(errs, fmt.Errorf("unknown material.mode %q", c.Material.Mode))
	}
	if c.Loader.Retries < 0 {
		errs = append(errs, fmt.Errorf("loader.retries must not be negative, got %d", c.Loader.Retries))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log.format %q", c.Log.Format))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}
