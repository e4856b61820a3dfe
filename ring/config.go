// File: ring/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Declarative ring configuration loadable from YAML.

package ring

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-ring/api"
)

// Config describes a ring buffer in configuration files.
type Config struct {
	Capacity        int  `yaml:"capacity" json:"capacity"`
	ThreadSafe      bool `yaml:"thread_safe" json:"thread_safe"`
	OverwriteOnFull bool `yaml:"overwrite_on_full" json:"overwrite_on_full"`
}

// LoadConfig decodes a YAML document into a validated Config.
// Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("empty document")
		}
		return Config{}, api.ErrInvalidConfig.Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks capacity and mode compatibility.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return api.ErrInvalidConfig.Wrap(api.ErrInvalidCapacity.WithContext("capacity", c.Capacity))
	}
	if c.ThreadSafe && c.OverwriteOnFull {
		return api.ErrInvalidConfig.Wrap(api.ErrIncompatibleOptions)
	}
	return nil
}

// Options converts the mode flags into constructor options.
func Options[T any](c Config) []Option[T] {
	var opts []Option[T]
	if c.ThreadSafe {
		opts = append(opts, WithThreadSafe[T]())
	}
	if c.OverwriteOnFull {
		opts = append(opts, WithOverwrite[T]())
	}
	return opts
}

// NewFromConfig validates cfg and builds the buffer it describes.
// Extra options are applied after the ones derived from cfg.
func NewFromConfig[T any](cfg Config, extra ...Option[T]) (*RingBuffer[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New[T](cfg.Capacity, append(Options[T](cfg), extra...)...)
}
