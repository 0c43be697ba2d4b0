package cli

import (
	"io"
	"strconv"

	"github.com/spf13/afero"
)

// Env is everything a command touches outside the process.
type Env struct {
	Fs        afero.Fs
	Stdout    io.Writer
	Stderr    io.Writer
	LookupEnv func(key string) (string, bool)
}

// Config holds the settings that are not transformations.
type Config struct {
	Debug    bool
	DryRun   bool
	Quality  int
	Size     int
	Progress bool

	// AutoOrient applies the EXIF orientation of JPEG input on load.
	AutoOrient bool
}

func (e Env) env(key, fallback string) string {
	if e.LookupEnv == nil {
		return fallback
	}
	value, ok := e.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func (e Env) envInt(key string, fallback int) int {
	value := e.env(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (e Env) envBool(key string, fallback bool) bool {
	value := e.env(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
