// Package scaffold generates the source files of a VIPER module from
// embedded templates. A Config names the module and selects the optional
// data manager layers; Generate lays out the module directory tree under
// an output root and writes one file per role (builder, interactor,
// presenter, router, view controller, data managers, and their protocols).
package scaffold
