package image

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

type manifest struct {
	Images []Definition `yaml:"images"`
}

// LoadManifest reads image definitions from a YAML manifest
func LoadManifest(fs afero.Fs, path string) ([]Definition, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image manifest: %w", err)
	}

	var m manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse image manifest: %w", err)
	}

	if len(m.Images) == 0 {
		return nil, fmt.Errorf("image manifest %s contains no images", path)
	}

	for _, def := range m.Images {
		if err := def.Validate(); err != nil {
			return nil, err
		}
	}
	return m.Images, nil
}
