package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"text/template"
	"time"
)

//go:embed templates/viper/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/viper/*.tmpl"))

// DataManager describes one optional data manager layer as seen by the
// templates.
type DataManager struct {
	Field    string // property name on the interactor
	Protocol string
	Type     string
}

// Data holds all template variables available to module templates.
type Data struct {
	FileName        string // set per rendered file
	Project         string
	User            string
	CopyrightHolder string
	Module          string
	Year            string
	Month           string // zero padded
	Day             string // zero padded
	UI              Vocabulary

	// DataManagers is ordered local first, then remote. Templates range
	// over it to add stored references and builder wiring.
	DataManagers []DataManager
}

// File is a generated file: its slash-separated path relative to the
// output root and its content.
type File struct {
	Path    string
	Content string
}

// NewData derives template data from cfg, stamped with the date of now.
func NewData(cfg Config, now time.Time) *Data {
	d := &Data{
		Project:         cfg.ProjectName,
		User:            cfg.UserName,
		CopyrightHolder: cfg.CopyrightHolder(),
		Module:          cfg.ModuleName,
		Year:            fmt.Sprintf("%d", now.Year()),
		Month:           fmt.Sprintf("%02d", int(now.Month())),
		Day:             fmt.Sprintf("%02d", now.Day()),
		UI:              cfg.Platform.Vocabulary(),
	}

	if cfg.LocalDataManager {
		d.DataManagers = append(d.DataManagers, newDataManager(cfg.ModuleName, "local", "Local"))
	}
	if cfg.RemoteDataManager {
		d.DataManagers = append(d.DataManagers, newDataManager(cfg.ModuleName, "remote", "Remote"))
	}
	return d
}

func newDataManager(module, field, kind string) DataManager {
	return DataManager{
		Field:    field + "DataManager",
		Protocol: module + kind + "DataManagerProtocol",
		Type:     module + kind + "DataManager",
	}
}

// Render produces every file cfg asks for, in write order. It touches no
// filesystem state.
func Render(cfg Config, now time.Time) ([]File, error) {
	data := NewData(cfg, now)

	var files []File
	for _, spec := range fileSpecs {
		if !spec.when(cfg) {
			continue
		}

		fd := *data
		fd.FileName = FileName(cfg.ModuleName, spec.role)

		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, spec.template, &fd); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", spec.template, err)
		}

		files = append(files, File{
			Path:    path.Join(cfg.ModuleName, spec.dir, fd.FileName),
			Content: buf.String(),
		})
	}
	return files, nil
}
