package config

import (
	"os"
	"strconv"

	"github.com/jsphweid/engrave/constants"
	"github.com/jsphweid/engrave/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the process configuration. Engrave settings that shape the
// page live in model.Engrave and are loaded separately.
type Config struct {
	Port          string
	LogLevel      string
	EngravePath   string  // optional YAML file overriding model.DefaultEngrave
	PxPerMM       float64 // output resolution
	RenderWorkers int     // flows rendered in parallel
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EngravePath:   getEnv("ENGRAVE_PATH", ""),
		PxPerMM:       getEnvFloat("PX_PER_MM", constants.PxPerMM),
		RenderWorkers: int(getEnvFloat("RENDER_WORKERS", 4)),
	}
}

// LoadEngrave reads a YAML engrave file on top of the defaults. An empty
// path returns the defaults.
func LoadEngrave(path string) (model.Engrave, error) {
	engrave := model.DefaultEngrave()
	if path == "" {
		return engrave, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return engrave, errors.Wrapf(err, "could not read engrave settings %v", path)
	}
	if err := yaml.Unmarshal(data, &engrave); err != nil {
		return engrave, errors.Wrapf(err, "could not parse engrave settings %v", path)
	}
	return engrave, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 {
		return defaultValue
	}
	return f
}
