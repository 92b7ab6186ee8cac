// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

import (
	"fmt"
	"strings"
)

// Level is one of the fixed precedence levels that attribute values can be
// written at. The numeric order of the constants is the global precedence
// order: a value written at a higher level shadows the same path at every
// lower level.
type Level int

const (
	Default Level = iota
	EnvDefault
	RoleDefault
	ForceDefault
	Normal
	Override
	RoleOverride
	EnvOverride
	ForceOverride
	Automatic
)

const numLevels = int(Automatic) + 1

var levelNames = [numLevels]string{
	Default:       "default",
	EnvDefault:    "env_default",
	RoleDefault:   "role_default",
	ForceDefault:  "force_default",
	Normal:        "normal",
	Override:      "override",
	RoleOverride:  "role_override",
	EnvOverride:   "env_override",
	ForceOverride: "force_override",
	Automatic:     "automatic",
}

func (l Level) String() string {
	if !l.valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

func (l Level) valid() bool {
	return l >= Default && l <= Automatic
}

// ParseLevel returns the level with the given name, as returned by
// Level.String.
func ParseLevel(name string) (Level, error) {
	for i, candidate := range levelNames {
		if candidate == name {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("unknown precedence level %q; must be one of %s", name, strings.Join(levelNames[:], ", "))
}

// Group is a bundle of levels whose arrays are concatenated together when
// merging but never mixed with arrays from any other group.
type Group int

const (
	GroupDefault Group = iota
	GroupNormal
	GroupOverride
	GroupAutomatic
)

func (g Group) String() string {
	switch g {
	case GroupDefault:
		return "default"
	case GroupNormal:
		return "normal"
	case GroupOverride:
		return "override"
	case GroupAutomatic:
		return "automatic"
	default:
		return fmt.Sprintf("Group(%d)", int(g))
	}
}

// Group returns the precedence group the level belongs to.
func (l Level) Group() Group {
	switch {
	case l <= ForceDefault:
		return GroupDefault
	case l == Normal:
		return GroupNormal
	case l <= ForceOverride:
		return GroupOverride
	default:
		return GroupAutomatic
	}
}

// Levels returns every level, lowest precedence first.
func Levels() []Level {
	ret := make([]Level, numLevels)
	for i := range ret {
		ret[i] = Level(i)
	}
	return ret
}

// DefaultLevels returns the members of the default group in group order.
func DefaultLevels() []Level {
	return GroupLevels(GroupDefault)
}

// OverrideLevels returns the members of the override group in group order.
func OverrideLevels() []Level {
	return GroupLevels(GroupOverride)
}

// GroupLevels returns the members of the given group, lowest first.
func GroupLevels(g Group) []Level {
	var ret []Level
	for _, l := range Levels() {
		if l.Group() == g {
			ret = append(ret, l)
		}
	}
	return ret
}

// levelSet is a bitmask of levels, used to restrict which levels a merged
// cell consults.
type levelSet uint16

const allLevels levelSet = 1<<numLevels - 1

func setOf(levels ...Level) levelSet {
	var s levelSet
	for _, l := range levels {
		s |= 1 << l
	}
	return s
}

func (s levelSet) has(l Level) bool {
	return s&(1<<l) != 0
}

func (s levelSet) empty() bool {
	return s == 0
}

// descending returns the members of the set, highest precedence first.
func (s levelSet) descending() []Level {
	ret := make([]Level, 0, numLevels)
	for l := Automatic; l >= Default; l-- {
		if s.has(l) {
			ret = append(ret, l)
		}
	}
	return ret
}

// highest returns the highest level in the set.
func (s levelSet) highest() (Level, bool) {
	for l := Automatic; l >= Default; l-- {
		if s.has(l) {
			return l, true
		}
	}
	return 0, false
}
