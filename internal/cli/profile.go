package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pageza/nutriplan/backend/internal/types"
)

// LoadProfile reads a YAML profile. Fields the file leaves out keep their
// default form values; unknown fields are an error.
func LoadProfile(path string) (types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.UserProfile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes a YAML profile on top of the default form values.
func ParseProfile(data []byte) (types.UserProfile, error) {
	profile := types.DefaultProfile()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&profile); err != nil && !errors.Is(err, io.EOF) {
		return types.UserProfile{}, fmt.Errorf("invalid profile: %w", err)
	}
	return profile, nil
}
