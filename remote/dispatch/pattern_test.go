package dispatch

import (
	"reflect"
	"strings"
	"testing"
)

// TestParsePattern tests pattern parsing and placeholder classification
func TestParsePattern(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		wantErr  bool
		wantArgs int
	}{
		{name: "literal only", pattern: "vget /cameras", wantArgs: 0},
		{name: "single uint", pattern: "vget /camera/[uint]/location", wantArgs: 1},
		{name: "mixed placeholders", pattern: "vset /camera/[uint]/location [float] [float] [float]", wantArgs: 4},
		{name: "str placeholder", pattern: "vset /viewmode [str]", wantArgs: 1},
		{name: "empty pattern", pattern: "   ", wantErr: true},
		{name: "unknown placeholder", pattern: "vget /camera/[int]/location", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePattern(tt.pattern, "")
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParsePattern(%q) should fail", tt.pattern)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePattern(%q) failed: %v", tt.pattern, err)
			}
			if p.NumArgs() != tt.wantArgs {
				t.Errorf("NumArgs() = %d, want %d", p.NumArgs(), tt.wantArgs)
			}
		})
	}
}

// TestPatternMatch tests matching and argument extraction
func TestPatternMatch(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		command  string
		wantOK   bool
		wantArgs []string
	}{
		{
			name:     "exact literal match",
			pattern:  "vget /cameras",
			command:  "vget /cameras",
			wantOK:   true,
			wantArgs: []string{},
		},
		{
			name:    "literal mismatch",
			pattern: "vget /cameras",
			command: "vget /objects",
		},
		{
			name:    "literal is case sensitive",
			pattern: "vget /cameras",
			command: "VGET /cameras",
		},
		{
			name:     "uint extraction",
			pattern:  "vget /camera/[uint]/location",
			command:  "vget /camera/2/location",
			wantOK:   true,
			wantArgs: []string{"2"},
		},
		{
			name:     "float extraction",
			pattern:  "vset /camera/[uint]/location [float] [float] [float]",
			command:  "vset /camera/0/location 10.5 -20 30",
			wantOK:   true,
			wantArgs: []string{"0", "10.5", "-20", "30"},
		},
		{
			name:    "too few tokens",
			pattern: "vset /camera/[uint]/location [float] [float] [float]",
			command: "vset /camera/1/location 10 20",
		},
		{
			name:    "too many tokens",
			pattern: "vget /camera/[uint]/location",
			command: "vget /camera/1/location extra",
		},
		{
			name:    "non-numeric text in uint slot is rejected",
			pattern: "vget /camera/[uint]/location",
			command: "vget /camera/two/location",
		},
		{
			name:    "negative number in uint slot is rejected",
			pattern: "vget /camera/[uint]/location",
			command: "vget /camera/-1/location",
		},
		{
			name:    "non-numeric text in float slot is rejected",
			pattern: "vset /camera/[uint]/fov [float]",
			command: "vset /camera/0/fov wide",
		},
		{
			name:     "str accepts anything",
			pattern:  "vset /viewmode [str]",
			command:  "vset /viewmode depth",
			wantOK:   true,
			wantArgs: []string{"depth"},
		},
		{
			name:     "str embedded in a path",
			pattern:  "vget /object/[str]/location",
			command:  "vget /object/Cube_1/location",
			wantOK:   true,
			wantArgs: []string{"Cube_1"},
		},
		{
			name:     "mixed embedded and standalone placeholders",
			pattern:  "vset /object/[str]/color [uint] [uint] [uint]",
			command:  "vset /object/Cube_1/color 255 128 0",
			wantOK:   true,
			wantArgs: []string{"Cube_1", "255", "128", "0"},
		},
		{
			name:    "too few path pieces",
			pattern: "vget /camera/[uint]/location",
			command: "vget /camera/2",
		},
		{
			name:    "too many path pieces",
			pattern: "vget /camera/[uint]/location",
			command: "vget /camera/2/location/x",
		},
		{
			name:    "placeholder binds a single path piece",
			pattern: "vget /object/[str]/location",
			command: "vget /object/a/b/location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePattern(tt.pattern, "")
			if err != nil {
				t.Fatalf("ParsePattern(%q) failed: %v", tt.pattern, err)
			}

			args, ok := p.Match(strings.Fields(tt.command))
			if ok != tt.wantOK {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.command, ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("Match(%q) args = %v, want %v", tt.command, args, tt.wantArgs)
			}
		})
	}
}

// TestPatternShadows tests the shadow detection used for registration warnings
func TestPatternShadows(t *testing.T) {
	tests := []struct {
		name    string
		earlier string
		later   string
		want    bool
	}{
		{name: "identical patterns", earlier: "vget /cameras", later: "vget /cameras", want: true},
		{name: "str shadows literal", earlier: "vset /viewmode [str]", later: "vset /viewmode lit", want: true},
		{name: "uint shadows numeric literal", earlier: "vget /camera/[uint]/fov", later: "vget /camera/0/fov", want: true},
		{name: "float shadows uint", earlier: "vset /fov [float]", later: "vset /fov [uint]", want: true},
		{name: "uint does not shadow float", earlier: "vset /fov [uint]", later: "vset /fov [float]", want: false},
		{name: "different arity", earlier: "vget /cameras", later: "vget /cameras all", want: false},
		{name: "different literals", earlier: "vget /cameras", later: "vget /objects", want: false},
		{name: "literal does not shadow placeholder", earlier: "vset /viewmode lit", later: "vset /viewmode [str]", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			earlier, err := ParsePattern(tt.earlier, "")
			if err != nil {
				t.Fatalf("ParsePattern(%q) failed: %v", tt.earlier, err)
			}
			later, err := ParsePattern(tt.later, "")
			if err != nil {
				t.Fatalf("ParsePattern(%q) failed: %v", tt.later, err)
			}

			if got := earlier.shadows(later); got != tt.want {
				t.Errorf("shadows(%q, %q) = %v, want %v", tt.earlier, tt.later, got, tt.want)
			}
		})
	}
}
