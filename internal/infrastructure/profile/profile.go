package profile

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/lunchbook/internal/domain/booking"
)

//go:embed inline.yaml
var defaultProfile []byte

// Default returns the embedded profile for the inline.app lunch page.
func Default() booking.SiteProfile {
	p, err := Parse(defaultProfile)
	if err != nil {
		panic(fmt.Sprintf("embedded profile: %v", err))
	}
	return p
}

// Load reads a profile from path, or returns Default when path is empty.
func Load(path string) (booking.SiteProfile, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return booking.SiteProfile{}, fmt.Errorf("read profile: %w", err)
	}
	p, err := Parse(b)
	if err != nil {
		return booking.SiteProfile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func Parse(b []byte) (booking.SiteProfile, error) {
	var p booking.SiteProfile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return booking.SiteProfile{}, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return booking.SiteProfile{}, fmt.Errorf("invalid profile: %w", err)
	}
	return p, nil
}

// Marshal renders p in the same format Load accepts.
func Marshal(p booking.SiteProfile) ([]byte, error) {
	return yaml.Marshal(p)
}
