// Package cli defines the Cobra command tree for the genviper CLI. The root
// command is the generator itself and reads its own single-dash flags; the
// version and config subcommands handle build info and user settings.
// Commands only deal with argument handling and I/O and delegate to
// internal packages for the work.
package cli
