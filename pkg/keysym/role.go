package keysym

import (
	"fmt"
	"strings"
)

// Role decides how a key is styled.
type Role int

const (
	// RolePlain is an ordinary key.
	RolePlain Role = iota
	// RoleModifier is a shift-like key (shift, control, alt, their locks).
	RoleModifier
)

func (r Role) String() string {
	if r == RoleModifier {
		return "modifier"
	}
	return "plain"
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

const lockSuffix = " LOCK"

var modifierLabels = map[string]bool{
	"SHIFT":     true,
	"ALTGR":     true,
	"CTRL":      true,
	"ALT":       true,
	"SHIFTL":    true,
	"SHIFTR":    true,
	"CTRLR":     true,
	"CTRLL":     true,
	"CAPSSHIFT": true,
}

// RoleOf classifies a key by its main label.
func RoleOf(mainLabel string) Role {
	if mainLabel == "CAPS LOCK" || modifierLabels[strings.TrimSuffix(mainLabel, lockSuffix)] {
		return RoleModifier
	}
	return RolePlain
}

// UnmarshalText decodes a role written by MarshalText.
func (r *Role) UnmarshalText(b []byte) error {
	switch string(b) {
	case "plain":
		*r = RolePlain
	case "modifier":
		*r = RoleModifier
	default:
		return fmt.Errorf("unknown role %q", b)
	}
	return nil
}
