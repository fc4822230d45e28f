package log

import (
	"slices"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{" TRACE ", LevelTrace},
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevel_String(t *testing.T) {
	if got := LevelTrace.String(); got != "trace" {
		t.Errorf("expected trace, got %q", got)
	}
	if got := (LevelInfo + 2).String(); got != "INFO+2" {
		t.Errorf("expected INFO+2, got %q", got)
	}
}

func TestLevels(t *testing.T) {
	want := []string{"trace", "debug", "info", "warn", "error"}
	if got := slices.Collect(Levels()); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	for name := range Levels() {
		if ParseLevel(name).String() != name {
			t.Errorf("level %q does not round trip", name)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{" JSON", FormatJSON},
		{"text", FormatText},
		{"yaml", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := Format(99).String(); got != "unknown" {
		t.Errorf("expected unknown, got %q", got)
	}
}

func TestFormats(t *testing.T) {
	want := []string{"text", "json"}
	if got := slices.Collect(Formats()); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestApply_SkipsNilOptions(t *testing.T) {
	c := makeConfig(nil, nil, WithLevel(LevelWarn), nil)

	if c.level != LevelWarn {
		t.Errorf("expected warn, got %v", c.level)
	}
}

func TestWithDefaults_Resets(t *testing.T) {
	c := makeConfig(nil, WithLevel(LevelError), WithFormat(FormatJSON))
	c = apply(c, WithDefaults(nil))

	if c.level != DefaultLevel || c.format != DefaultFormat {
		t.Errorf("expected defaults, got level=%v format=%v", c.level, c.format)
	}
}
