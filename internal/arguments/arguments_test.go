package arguments

import (
	"errors"
	"testing"

	"github.com/losadrian/genviper/internal/scaffold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func argv(tokens ...string) []string {
	return append([]string{"genviper"}, tokens...)
}

func TestParse_MandatoryOnly(t *testing.T) {
	values, err := Parse(argv("-u", "A", "-p", "B", "-m", "C"))
	require.NoError(t, err)

	cfg, err := values.Config(scaffold.PlatformUIKit)
	require.NoError(t, err)
	assert.Equal(t, scaffold.Config{
		UserName:    "A",
		ProjectName: "B",
		ModuleName:  "C",
	}, cfg)
	assert.False(t, values.Has(OptionCopyright))
}

func TestParse_AllFlags(t *testing.T) {
	values, err := Parse(argv("-ldm", "-rdm", "-u", "Test Developer", "-p", "Proj", "-c", "Acme", "-m", "Login"))
	require.NoError(t, err)

	cfg, err := values.Config(scaffold.PlatformCocoa)
	require.NoError(t, err)
	assert.Equal(t, "Test Developer", cfg.UserName)
	assert.Equal(t, "Acme", cfg.Copyright)
	assert.Equal(t, "Acme", cfg.CopyrightHolder())
	assert.True(t, cfg.LocalDataManager)
	assert.True(t, cfg.RemoteDataManager)
	assert.Equal(t, scaffold.PlatformCocoa, cfg.Platform)
}

func TestParse_InsufficientArguments(t *testing.T) {
	tests := [][]string{
		nil,
		{"genviper"},
		argv("-u", "A", "-p", "B", "-m"),
		argv("-ldm", "-rdm", "-u", "A", "-m"),
	}
	for _, tokens := range tests {
		_, err := Parse(tokens)
		assert.ErrorIs(t, err, ErrInsufficientArguments, "tokens %v", tokens)
	}
}

func TestParse_UnknownOption(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{"leading", argv("-x", "-u", "A", "-p", "B", "-m", "C")},
		{"middle", argv("-u", "A", "-x", "-p", "B", "-m", "C")},
		{"trailing", argv("-u", "A", "-p", "B", "-m", "C", "-x")},
		{"double dash", argv("-u", "A", "-p", "B", "-m", "C", "--help")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Parse(tt.tokens)
			assert.Nil(t, values)

			var unknown *UnknownOptionError
			require.True(t, errors.As(err, &unknown), "got %v", err)
			assert.Contains(t, err.Error(), unknown.Token)
		})
	}
}

func TestParse_LastWriteWins(t *testing.T) {
	values, err := Parse(argv("-u", "First", "-u", "Second", "-p", "P", "-m", "M"))
	require.NoError(t, err)

	v, ok := values.Get(OptionUserName)
	require.True(t, ok)
	assert.Equal(t, "Second", v)
}

func TestParse_PresenceFlagsTakeNoValue(t *testing.T) {
	values, err := Parse(argv("-ldm", "ignored", "-rdm", "-u", "A", "-p", "B", "-m", "C"))
	require.NoError(t, err)

	cfg, err := values.Config(scaffold.PlatformUIKit)
	require.NoError(t, err)
	assert.True(t, cfg.LocalDataManager)
	assert.True(t, cfg.RemoteDataManager)
	assert.Equal(t, "A", cfg.UserName)

	v, _ := values.Get(OptionLocalDataManager)
	assert.Empty(t, v)
}

func TestParse_FlagAsValue(t *testing.T) {
	// -c swallows "-m" as its value, and "-m" is then read as a flag too.
	values, err := Parse(argv("-u", "A", "-p", "B", "-c", "-m", "Login"))
	require.NoError(t, err)

	c, _ := values.Get(OptionCopyright)
	assert.Equal(t, "-m", c)
	m, _ := values.Get(OptionModuleName)
	assert.Equal(t, "Login", m)
}

func TestParse_DanglingValueFlag(t *testing.T) {
	_, err := Parse(argv("-u", "A", "-p", "B", "-ldm", "-m"))

	var missing *MissingValueError
	require.True(t, errors.As(err, &missing), "got %v", err)
	assert.Equal(t, OptionModuleName, missing.Option)
}

func TestConfig_MissingMandatory(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   Option
	}{
		{"no user", argv("-p", "B", "-m", "C", "-ldm", "-rdm"), OptionUserName},
		{"no project", argv("-u", "A", "-m", "C", "-c", "D"), OptionProjectName},
		{"no module", argv("-u", "A", "-p", "B", "-c", "D"), OptionModuleName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Parse(tt.tokens)
			require.NoError(t, err)

			_, err = values.Config(scaffold.PlatformUIKit)
			var missing *MissingValueError
			require.True(t, errors.As(err, &missing), "got %v", err)
			assert.Equal(t, tt.want, missing.Option)
			assert.Contains(t, err.Error(), tt.want.Flag())
		})
	}
}

func TestParse_IgnoresStrayTokens(t *testing.T) {
	values, err := Parse(argv("stray", "-u", "A", "-p", "B", "-m", "C"))
	require.NoError(t, err)
	assert.Len(t, values, 3)
}

func TestParseOption(t *testing.T) {
	tests := []struct {
		token string
		want  Option
		value bool
	}{
		{"-u", OptionUserName, true},
		{"-p", OptionProjectName, true},
		{"-c", OptionCopyright, true},
		{"-m", OptionModuleName, true},
		{"-ldm", OptionLocalDataManager, false},
		{"-rdm", OptionRemoteDataManager, false},
		{"-U", OptionUnknown, false},
		{"-", OptionUnknown, false},
		{"--u", OptionUnknown, false},
	}
	for _, tt := range tests {
		got := ParseOption(tt.token)
		assert.Equal(t, tt.want, got, "ParseOption(%q)", tt.token)
		assert.Equal(t, tt.value, got.TakesValue(), "TakesValue(%q)", tt.token)
		if got != OptionUnknown {
			assert.Equal(t, tt.token, got.Flag())
		}
	}
}
