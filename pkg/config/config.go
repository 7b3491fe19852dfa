// Package config loads process configuration from the environment.
// Database settings live in pkg/database; everything else is here.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration for the control-plane process.
type Config struct {
	Server     ServerConfig
	LLM        LLMConfig
	Supervisor SupervisorConfig
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string
	Port int
}

// Addr returns host:port for net/http.
func (c ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// LLMConfig configures the model used by agents and the semantic judge.
type LLMConfig struct {
	APIKey string
	Model  string
}

// SupervisorConfig tunes the supervision loop.
type SupervisorConfig struct {
	Interval time.Duration
}

// RunnerConfig configures the fleet-runner process.
type RunnerConfig struct {
	Name            string
	WorkingDir      string
	ControlPlaneURL string
	PollInterval    time.Duration
}

// Load reads the control-plane configuration from the environment.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		LLM: LLMConfig{
			APIKey: os.Getenv("ANTHROPIC_API_KEY"),
			Model:  getEnv("LLM_MODEL", "claude-sonnet-4-5"),
		},
		Supervisor: SupervisorConfig{
			Interval: getEnvDuration("SUPERVISOR_INTERVAL", 30*time.Second),
		},
	}
}

// LoadRunner reads the runner configuration from the environment.
func LoadRunner() *RunnerConfig {
	wd, _ := os.Getwd()
	host, _ := os.Hostname()
	return &RunnerConfig{
		Name:            getEnv("RUNNER_NAME", host),
		WorkingDir:      getEnv("RUNNER_WORKING_DIR", wd),
		ControlPlaneURL: getEnv("CONTROL_PLANE_URL", "http://localhost:8080"),
		PollInterval:    getEnvDuration("RUNNER_POLL_INTERVAL", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
