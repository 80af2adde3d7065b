package models

import (
	"fmt"
	"strings"
)

// Architecture is the value of the Architecture directive
type Architecture int

const (
	ArchitectureAuto Architecture = iota
	ArchitectureI686
	ArchitectureX86_64
)

// String returns the pacman.conf spelling of the architecture
func (a Architecture) String() string {
	switch a {
	case ArchitectureI686:
		return "i686"
	case ArchitectureX86_64:
		return "x86_64"
	default:
		return "auto"
	}
}

// MarshalText implements encoding.TextMarshaler
func (a Architecture) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseArchitecture parses an Architecture value, ignoring case
func ParseArchitecture(value string) (Architecture, error) {
	switch strings.ToLower(value) {
	case "auto":
		return ArchitectureAuto, nil
	case "i686":
		return ArchitectureI686, nil
	case "x86_64":
		return ArchitectureX86_64, nil
	default:
		return ArchitectureAuto, fmt.Errorf("invalid architecture: %s", value)
	}
}

// CleanMethod is the value of the CleanMethod directive
type CleanMethod int

const (
	CleanMethodKeepInstalled CleanMethod = iota
	CleanMethodKeepCurrent
)

// String returns the pacman.conf spelling of the clean method
func (c CleanMethod) String() string {
	if c == CleanMethodKeepCurrent {
		return "KeepCurrent"
	}
	return "KeepInstalled"
}

// MarshalText implements encoding.TextMarshaler
func (c CleanMethod) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCleanMethod parses a CleanMethod value, ignoring case
func ParseCleanMethod(value string) (CleanMethod, error) {
	switch strings.ToLower(value) {
	case "keepinstalled":
		return CleanMethodKeepInstalled, nil
	case "keepcurrent":
		return CleanMethodKeepCurrent, nil
	default:
		return CleanMethodKeepInstalled, fmt.Errorf("invalid clean method: %s", value)
	}
}

// Usage is the value of a repository's Usage directive
type Usage int

const (
	UsageSync Usage = iota
	UsageSearch
	UsageInstall
	UsageUpgrade
	UsageAll
)

// String returns the pacman.conf spelling of the usage level
func (u Usage) String() string {
	switch u {
	case UsageSearch:
		return "Search"
	case UsageInstall:
		return "Install"
	case UsageUpgrade:
		return "Upgrade"
	case UsageAll:
		return "All"
	default:
		return "Sync"
	}
}

// MarshalText implements encoding.TextMarshaler
func (u Usage) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// ParseUsage parses a Usage value, ignoring case
func ParseUsage(value string) (Usage, error) {
	switch strings.ToLower(value) {
	case "sync":
		return UsageSync, nil
	case "search":
		return UsageSearch, nil
	case "install":
		return UsageInstall, nil
	case "upgrade":
		return UsageUpgrade, nil
	case "all":
		return UsageAll, nil
	default:
		return UsageSync, fmt.Errorf("invalid usage: %s", value)
	}
}
