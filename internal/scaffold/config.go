package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyModuleName is returned when the module name is blank.
var ErrEmptyModuleName = errors.New("module name must not be empty")

// Config describes one generation run.
type Config struct {
	UserName    string
	ProjectName string
	Copyright   string // empty means "use UserName"
	ModuleName  string

	LocalDataManager  bool
	RemoteDataManager bool

	Platform Platform
}

// CopyrightHolder returns the copyright holder, falling back to the user
// name when none was given.
func (c Config) CopyrightHolder() string {
	if c.Copyright != "" {
		return c.Copyright
	}
	return c.UserName
}

// NeedsDataManager reports whether either data manager layer is requested.
func (c Config) NeedsDataManager() bool {
	return c.LocalDataManager || c.RemoteDataManager
}

// InvalidModuleNameError is returned when the module name cannot be used as
// a single directory name.
type InvalidModuleNameError struct {
	Name string
}

func (e *InvalidModuleNameError) Error() string {
	return fmt.Sprintf("invalid module name %q: must be a single path component", e.Name)
}

// Validate checks that the module name can name the output directory.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ModuleName) == "" {
		return ErrEmptyModuleName
	}
	if c.ModuleName == "." || c.ModuleName == ".." || strings.ContainsAny(c.ModuleName, `/\`) {
		return &InvalidModuleNameError{Name: c.ModuleName}
	}
	return nil
}
