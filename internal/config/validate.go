package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate reports the first setting that cannot produce a usable scene.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: graphics size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	case c.Scene.Slices < 3:
		return fmt.Errorf("%w: scene.slices %d, need at least 3", ErrInvalid, c.Scene.Slices)
	case c.Scene.Stacks < 1:
		return fmt.Errorf("%w: scene.stacks %d, need at least 1", ErrInvalid, c.Scene.Stacks)
	case !(c.Camera.Radius > 0):
		return fmt.Errorf("%w: camera.radius %v must be positive", ErrInvalid, c.Camera.Radius)
	}

	level := strings.ToLower(c.Logging.Level)
	for _, l := range logLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
}
