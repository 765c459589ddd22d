package scaffold

import "path"

// SourceExtension is the extension of every generated file.
const SourceExtension = "swift"

// Subdirectories of the module root.
const (
	DirBuilder     = "Builder"
	DirDataManager = "DataManager"
	DirInteractor  = "Interactor"
	DirPresenter   = "Presenter"
	DirProtocols   = "Protocols"
	DirRouter      = "Router"
	DirView        = "View"
)

type dirSpec struct {
	name string
	when func(Config) bool
}

type fileSpec struct {
	dir      string
	role     string // appended to the module name
	template string
	when     func(Config) bool
}

func always(Config) bool { return true }

func withLocal(c Config) bool { return c.LocalDataManager }

func withRemote(c Config) bool { return c.RemoteDataManager }

var dirSpecs = []dirSpec{
	{DirBuilder, always},
	{DirDataManager, Config.NeedsDataManager},
	{DirInteractor, always},
	{DirPresenter, always},
	{DirProtocols, always},
	{DirRouter, always},
	{DirView, always},
}

// fileSpecs is in write order: protocols first, then implementations.
var fileSpecs = []fileSpec{
	{DirProtocols, "InteractorProtocol", "interactor_protocol.swift.tmpl", always},
	{DirProtocols, "LocalDataManagerProtocol", "local_data_manager_protocol.swift.tmpl", withLocal},
	{DirProtocols, "PresenterProtocol", "presenter_protocol.swift.tmpl", always},
	{DirProtocols, "RemoteDataManagerProtocol", "remote_data_manager_protocol.swift.tmpl", withRemote},
	{DirProtocols, "RouterProtocol", "router_protocol.swift.tmpl", always},
	{DirProtocols, "ViewControllerProtocol", "view_controller_protocol.swift.tmpl", always},

	{DirBuilder, "Builder", "builder.swift.tmpl", always},
	{DirDataManager, "LocalDataManager", "local_data_manager.swift.tmpl", withLocal},
	{DirDataManager, "RemoteDataManager", "remote_data_manager.swift.tmpl", withRemote},
	{DirInteractor, "Interactor", "interactor.swift.tmpl", always},
	{DirPresenter, "Presenter", "presenter.swift.tmpl", always},
	{DirRouter, "Router", "router.swift.tmpl", always},
	{DirView, "ViewController", "view_controller.swift.tmpl", always},
}

// Directories returns the slash-separated directories to create for cfg,
// relative to the output root, starting with the module root itself.
func Directories(cfg Config) []string {
	dirs := []string{cfg.ModuleName}
	for _, d := range dirSpecs {
		if d.when(cfg) {
			dirs = append(dirs, path.Join(cfg.ModuleName, d.name))
		}
	}
	return dirs
}

// FileName returns the name of the file generated for role, e.g.
// "LoginInteractorProtocol.swift".
func FileName(module, role string) string {
	return module + role + "." + SourceExtension
}
