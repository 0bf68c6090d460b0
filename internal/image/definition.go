package image

import (
	"errors"
	"fmt"
)

// CopyStep copies a path from the build context into the image
type CopyStep struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// EnvVar is an environment variable baked into the image
type EnvVar struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Definition is a declarative image build recipe: an ordered set of
// build steps with no conditionals and no build arguments
type Definition struct {
	Name           string     `yaml:"name"`
	Tag            string     `yaml:"tag"`
	BaseImage      string     `yaml:"base_image"`
	WorkDir        string     `yaml:"workdir,omitempty"`
	SystemPackages []string   `yaml:"system_packages,omitempty"`
	Requirements   string     `yaml:"requirements,omitempty"`
	Copy           []CopyStep `yaml:"copy,omitempty"`
	Env            []EnvVar   `yaml:"env,omitempty"`
	Expose         int        `yaml:"expose,omitempty"`
	Command        []string   `yaml:"command,omitempty"`

	// BuildUser/RuntimeUser cover base images that run as an
	// unprivileged user: system packages install as BuildUser and the
	// image is switched back to RuntimeUser afterwards
	BuildUser   string `yaml:"build_user,omitempty"`
	RuntimeUser string `yaml:"runtime_user,omitempty"`
}

// set of definition validation errors
var (
	ErrMissingName      = errors.New("an image definition must be named")
	ErrMissingBaseImage = errors.New("an image definition must specify a base image")
)

// Validate checks the definition for missing or malformed inputs
func (def Definition) Validate() error {
	if def.Name == "" {
		return ErrMissingName
	}
	if def.BaseImage == "" {
		return fmt.Errorf("%s: %w", def.Name, ErrMissingBaseImage)
	}
	if def.Expose < 0 || def.Expose > 65535 {
		return fmt.Errorf("%s: invalid exposed port %d", def.Name, def.Expose)
	}
	for _, step := range def.Copy {
		if step.Source == "" || step.Target == "" {
			return fmt.Errorf("%s: copy steps require both a source and a target", def.Name)
		}
	}
	return nil
}

// ImageTag returns the tag to build the image with,
// prefixed with the registry when one is configured
func (def Definition) ImageTag(registry string) string {
	tag := def.Tag
	if tag == "" {
		tag = def.Name + ":latest"
	}
	if registry == "" {
		return tag
	}
	return registry + "/" + tag
}

// DockerfileName returns the name of the rendered Dockerfile
// for this definition within a build context
func (def Definition) DockerfileName() string {
	return "Dockerfile." + def.Name
}
