package cli

import (
	"os"
	"path/filepath"
)

// Paths locates an app's files under the foam base directory.
type Paths struct {
	// AppName is the application name
	AppName string

	// HomeDir is the user's home directory
	HomeDir string
}

// NewPaths creates a new Paths instance for the given app
func NewPaths(appName string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Paths{
		AppName: appName,
		HomeDir: home,
	}, nil
}

// BaseDir returns the base directory (~/.foam)
func (p *Paths) BaseDir() string {
	return filepath.Join(p.HomeDir, DefaultBaseDir)
}

// AppDir returns the app-specific directory (~/.foam/<app>)
func (p *Paths) AppDir() string {
	return filepath.Join(p.BaseDir(), p.AppName)
}

// ConfigFile returns the config file path (~/.foam/<app>/config.yaml)
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.AppDir(), DefaultConfigFile)
}

// ResultsDir returns the directory for saved run results (~/.foam/<app>/results)
func (p *Paths) ResultsDir() string {
	return filepath.Join(p.AppDir(), "results")
}

// ResultPath returns a path within the results directory
func (p *Paths) ResultPath(name string) string {
	return filepath.Join(p.ResultsDir(), name)
}

// EnsureResultsDir creates the results directory if it doesn't exist
func (p *Paths) EnsureResultsDir() error {
	return os.MkdirAll(p.ResultsDir(), 0755)
}
