package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	envPrefix   = "fxprov"
	profileType = "yaml"
)

// Profile is the CLI profile
type Profile struct {
	Name string

	dir string
	fs  afero.Fs
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := homeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %s", dirErr)
	}

	return &Profile{
		Name: name,
		dir:  dir,
		fs:   afero.NewOsFs(),
	}, nil
}

// Clear clears the specified CLI profile property
func (p Profile) Clear(name string) {
	p.SetString(name, "")
}

// SetString sets the specified CLI profile property
func (p Profile) SetString(name, value string) {
	viper.Set(p.propertyKey(name), value)
}

// GetString gets the specified CLI profile property
func (p Profile) GetString(name string) string {
	return viper.GetString(p.propertyKey(name))
}

func (p Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Load loads the CLI profile
func (p Profile) Load() error {
	viper.SetConfigName(p.Name)
	viper.AddConfigPath(p.dir)
	viper.SetConfigPermissions(0600)
	viper.SetConfigType(profileType)

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %s", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %s", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %s", err)
		}
	}

	if err := viper.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %s", err)
	}
	return nil
}

// Path returns the CLI profile filepath
func (p Profile) Path() string {
	return fmt.Sprintf("%s/%s.%s", p.dir, p.Name, profileType)
}

// set of supported CLI profile keys
const (
	keyServerURI    = "server_uri"
	keyAuthDatabase = "auth_database"
	keyRegistry     = "registry"
)

// Deployment holds the provisioning targets stored with the CLI profile
type Deployment struct {
	ServerURI    string
	AuthDatabase string
	Registry     string
}

// set of deployment defaults matching the platform's compose environment
const (
	DefaultServerURI    = "mongodb://mongodb:27017"
	DefaultAuthDatabase = "fx_rates"
)

// GetDeployment gets the CLI profile deployment targets,
// falling back to the platform defaults for anything unset
func (p Profile) GetDeployment() Deployment {
	deployment := Deployment{
		ServerURI:    p.GetString(keyServerURI),
		AuthDatabase: p.GetString(keyAuthDatabase),
		Registry:     p.GetString(keyRegistry),
	}

	if deployment.ServerURI == "" {
		deployment.ServerURI = DefaultServerURI
	}
	if deployment.AuthDatabase == "" {
		deployment.AuthDatabase = DefaultAuthDatabase
	}
	return deployment
}

// MergeDeployment stores the non-empty deployment targets with the CLI
// profile, leaving anything unset untouched so the compiled-in defaults
// are never pinned into the profile file
func (p Profile) MergeDeployment(deployment Deployment) {
	if deployment.ServerURI != "" {
		p.SetString(keyServerURI, deployment.ServerURI)
	}
	if deployment.AuthDatabase != "" {
		p.SetString(keyAuthDatabase, deployment.AuthDatabase)
	}
	if deployment.Registry != "" {
		p.SetString(keyRegistry, deployment.Registry)
	}
}

// ClearDeployment clears every deployment target stored with the CLI profile
func (p Profile) ClearDeployment() {
	for _, key := range Keys() {
		p.Clear(key)
	}
}

// Keys returns the set of supported CLI profile keys
func Keys() []string {
	return []string{keyServerURI, keyAuthDatabase, keyRegistry}
}
