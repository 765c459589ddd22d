// Package console writes status, usage, and error text for the CLI.
package console

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Channel selects the stream a message is written to.
type Channel int

const (
	// ChannelStandard writes to standard output.
	ChannelStandard Channel = iota
	// ChannelError writes highlighted text to the error stream.
	ChannelError
)

// Reporter writes user-facing messages. The zero value is not usable; use
// New or Default.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	program string
	errText *color.Color
}

// New returns a Reporter writing to out and errOut. program is the name
// shown in usage examples; only its base name is used.
func New(out, errOut io.Writer, program string) *Reporter {
	return &Reporter{
		out:     out,
		errOut:  errOut,
		program: filepath.Base(program),
		errText: color.New(color.FgRed),
	}
}

// Default returns a Reporter bound to the process streams.
func Default() *Reporter {
	return New(os.Stdout, os.Stderr, os.Args[0])
}

// Message writes text followed by a newline to the given channel.
func (r *Reporter) Message(text string, ch Channel) {
	switch ch {
	case ChannelError:
		// color appends its own reset sequence when colours are enabled.
		r.errText.Fprint(r.errOut, text)
		fmt.Fprintln(r.errOut)
	default:
		fmt.Fprintln(r.out, text)
	}
}

// Messagef formats according to a format specifier and writes the result
// to the given channel.
func (r *Reporter) Messagef(ch Channel, format string, args ...interface{}) {
	r.Message(fmt.Sprintf(format, args...), ch)
}

// Usage prints the flag summary and usage examples to standard output.
func (r *Reporter) Usage() {
	lines := []string{
		"commands:",
		"-ldm : Generate LocalDataManager layer (optional)",
		"-rdm : Generate RemoteDataManager layer (optional)",
		"-u : User/developer name",
		"-p : Project name",
		"-c : Company name for Copyrights (optional)",
		"-m : Module name",
		"",
		"usage examples:",
		r.program + ` -u "Test Developer" -p TestProject -m TestModule`,
		r.program + ` -u "Test Developer" -p TestProject -c TestCompany -m TestModule`,
		r.program + ` -u TestDeveloper -p TestProject -c TestCompany -m TestModule`,
		r.program + ` -ldm -rdm -u "Test Developer" -p TestProject -m TestModule`,
		r.program + ` -rdm -u "Test Developer" -p TestProject -m TestModule`,
		r.program + ` -ldm -u "Test Developer" -p TestProject -m TestModule`,
	}
	for _, line := range lines {
		r.Message(line, ChannelStandard)
	}
}
