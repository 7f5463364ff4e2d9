package blocks

import (
	"fmt"
	"strings"
)

// Type is the kind of a block. The zero value is Dirt.
type Type int

const (
	Dirt Type = iota
	Sand
	Stone
	Desk
	Emerald
	Diamond
	Gold
)

// All lists every block type in hotbar order (hotkey 1 is All[0]).
var All = []Type{Dirt, Sand, Stone, Desk, Emerald, Diamond, Gold}

var typeNames = [...]string{
	Dirt:    "dirt",
	Sand:    "sand",
	Stone:   "stone",
	Desk:    "desk",
	Emerald: "emerald",
	Diamond: "diamond",
	Gold:    "gold",
}

// aliases are the asset names the block models ship under.
var aliases = map[string]Type{
	"izumrud": Emerald,
	"almaz":   Diamond,
}

// String returns the lowercase name of t.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("type(%d)", int(t))
	}
	return typeNames[t]
}

// Valid reports whether t is one of the known block types.
func (t Type) Valid() bool {
	return t >= Dirt && t <= Gold
}

// ParseType resolves a block name, case-insensitively. Asset aliases are accepted.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	if t, ok := aliases[name]; ok {
		return t, nil
	}
	return Dirt, fmt.Errorf("unknown block type %q", name)
}

// TypeForHotkey maps the numeric hotkeys 1..7 to a block type.
func TypeForHotkey(n int) (Type, bool) {
	if n < 1 || n > len(All) {
		return Dirt, false
	}
	return All[n-1], true
}

// MarshalText implements encoding.TextMarshaler so types read naturally in YAML.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid block type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
