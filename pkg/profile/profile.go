// Package profile loads scoring options from YAML files and keeps them
// current while the file changes.
//
// A profile only needs the keys it changes; everything else keeps the value
// from meta.DefaultOptions:
//
//	tide:
//	  min: 3.5
//	  max: 7.5
//	weights:
//	  tide: 0.4
//	  current: 0.3
//	  wind: 0.2
//	  ferry: 0.1
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/spencer-p/kayakdash/pkg/meta"
)

// Load reads the profile at path over the default options and validates the
// result.
func Load(path string) (meta.Options, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return meta.Options{}, fmt.Errorf("read profile: %w", err)
	}
	return Parse(buf)
}

// Parse decodes a profile over the default options. Unknown keys are errors.
func Parse(buf []byte) (meta.Options, error) {
	opts := meta.DefaultOptions()

	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return meta.Options{}, fmt.Errorf("parse profile: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return meta.Options{}, fmt.Errorf("invalid profile: %w", err)
	}
	return opts, nil
}

// Holder shares the active options between the watcher and request handlers.
type Holder struct {
	opts atomic.Pointer[meta.Options]
}

// NewHolder starts out holding opts.
func NewHolder(opts meta.Options) *Holder {
	h := &Holder{}
	h.Set(opts)
	return h
}

// Options returns a copy of the active options.
func (h *Holder) Options() meta.Options {
	return *h.opts.Load()
}

// Set replaces the active options.
func (h *Holder) Set(opts meta.Options) {
	h.opts.Store(&opts)
}
