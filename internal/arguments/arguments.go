// Package arguments turns the raw process argument list into a generation
// config. Flags use a single dash and a closed vocabulary; see Option.
package arguments

import (
	"errors"
	"fmt"
	"strings"

	"github.com/losadrian/genviper/internal/scaffold"
)

// MinTokens is the smallest accepted argument count: the program name plus
// three flag/value pairs (-u, -p, -m).
const MinTokens = 7

// ErrInsufficientArguments is returned when fewer than MinTokens tokens
// are given.
var ErrInsufficientArguments = errors.New("insufficient arguments")

// Option is a recognised command-line flag.
type Option int

const (
	OptionUnknown Option = iota
	OptionUserName
	OptionProjectName
	OptionCopyright
	OptionModuleName
	OptionLocalDataManager
	OptionRemoteDataManager
)

var optionFlags = map[Option]string{
	OptionUserName:          "-u",
	OptionProjectName:       "-p",
	OptionCopyright:         "-c",
	OptionModuleName:        "-m",
	OptionLocalDataManager:  "-ldm",
	OptionRemoteDataManager: "-rdm",
}

var optionNames = map[Option]string{
	OptionUserName:          "user name",
	OptionProjectName:       "project name",
	OptionCopyright:         "copyright holder",
	OptionModuleName:        "module name",
	OptionLocalDataManager:  "local data manager",
	OptionRemoteDataManager: "remote data manager",
}

// ParseOption maps a flag token to its Option. Anything else is
// OptionUnknown.
func ParseOption(token string) Option {
	switch token {
	case "-u":
		return OptionUserName
	case "-p":
		return OptionProjectName
	case "-c":
		return OptionCopyright
	case "-m":
		return OptionModuleName
	case "-ldm":
		return OptionLocalDataManager
	case "-rdm":
		return OptionRemoteDataManager
	}
	return OptionUnknown
}

// Flag returns the command-line spelling, e.g. "-u".
func (o Option) Flag() string { return optionFlags[o] }

func (o Option) String() string {
	if name, ok := optionNames[o]; ok {
		return name
	}
	return "unknown"
}

// TakesValue reports whether the flag consumes the following token.
func (o Option) TakesValue() bool {
	switch o {
	case OptionUserName, OptionProjectName, OptionCopyright, OptionModuleName:
		return true
	}
	return false
}

// UnknownOptionError is returned for a dash-prefixed token that is not a
// recognised flag.
type UnknownOptionError struct {
	Token string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("The %q argument is an unknown option", e.Token)
}

// MissingValueError is returned when a value flag has no following token,
// or when a mandatory flag never appeared.
type MissingValueError struct {
	Option Option
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing value for %s (%s)", e.Option, e.Option.Flag())
}

// Values holds the flags seen during parsing. Presence-only flags map to
// the empty string.
type Values map[Option]string

// Has reports whether opt appeared.
func (v Values) Has(opt Option) bool {
	_, ok := v[opt]
	return ok
}

// Get returns the value recorded for opt.
func (v Values) Get(opt Option) (string, bool) {
	s, ok := v[opt]
	return s, ok
}

// Parse scans tokens, skipping tokens[0] (the program name).
//
// Every dash-prefixed token is a flag. A value flag takes the next token as
// its value even when that token looks like a flag; the value token is not
// skipped, so it is examined as a flag in turn. Later occurrences of a flag
// overwrite earlier ones. Parsing stops at the first unknown flag.
func Parse(tokens []string) (Values, error) {
	if len(tokens) < MinTokens {
		return nil, ErrInsufficientArguments
	}

	values := Values{}
	for i := 1; i < len(tokens); i++ {
		token := tokens[i]
		if !strings.HasPrefix(token, "-") {
			continue
		}

		opt := ParseOption(token)
		switch {
		case opt == OptionUnknown:
			return nil, &UnknownOptionError{Token: token}
		case opt.TakesValue():
			if i+1 >= len(tokens) {
				return nil, &MissingValueError{Option: opt}
			}
			values[opt] = tokens[i+1]
		default:
			values[opt] = ""
		}
	}
	return values, nil
}

// Config builds the generation config. -u, -p and -m are mandatory.
func (v Values) Config(platform scaffold.Platform) (scaffold.Config, error) {
	for _, opt := range []Option{OptionUserName, OptionProjectName, OptionModuleName} {
		if !v.Has(opt) {
			return scaffold.Config{}, &MissingValueError{Option: opt}
		}
	}

	return scaffold.Config{
		UserName:          v[OptionUserName],
		ProjectName:       v[OptionProjectName],
		Copyright:         v[OptionCopyright],
		ModuleName:        v[OptionModuleName],
		LocalDataManager:  v.Has(OptionLocalDataManager),
		RemoteDataManager: v.Has(OptionRemoteDataManager),
		Platform:          platform,
	}, nil
}
