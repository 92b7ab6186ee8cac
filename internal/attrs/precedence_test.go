// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLevel(t *testing.T) {
	for _, l := range Levels() {
		t.Run(l.String(), func(t *testing.T) {
			got, err := ParseLevel(l.String())
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if got != l {
				t.Errorf("wrong level %s; want %s", got, l)
			}
		})
	}

	if _, err := ParseLevel("forced_default"); err == nil {
		t.Error("expected error for unknown level name")
	}
}

func TestLevelGroups(t *testing.T) {
	if diff := cmp.Diff([]Level{Default, EnvDefault, RoleDefault, ForceDefault}, DefaultLevels()); diff != "" {
		t.Errorf("wrong default levels\n%s", diff)
	}
	if diff := cmp.Diff([]Level{Override, RoleOverride, EnvOverride, ForceOverride}, OverrideLevels()); diff != "" {
		t.Errorf("wrong override levels\n%s", diff)
	}
	if got := Normal.Group(); got != GroupNormal {
		t.Errorf("normal is in group %s", got)
	}
	if got := Automatic.Group(); got != GroupAutomatic {
		t.Errorf("automatic is in group %s", got)
	}
}

func TestLevelSet(t *testing.T) {
	s := setOf(Default, Normal, ForceOverride)
	if diff := cmp.Diff([]Level{ForceOverride, Normal, Default}, s.descending()); diff != "" {
		t.Errorf("wrong descending order\n%s", diff)
	}
	if top, ok := s.highest(); !ok || top != ForceOverride {
		t.Errorf("wrong highest level %s", top)
	}
	if !levelSet(0).empty() {
		t.Error("zero set is not empty")
	}
	if _, ok := levelSet(0).highest(); ok {
		t.Error("empty set has a highest level")
	}
	if len(allLevels.descending()) != numLevels {
		t.Errorf("allLevels has %d members", len(allLevels.descending()))
	}
}

// A scalar written at a higher level always shadows one written at a lower
// level, for every pair of levels.
func TestPrecedenceOrder(t *testing.T) {
	for _, low := range Levels() {
		for _, high := range Levels() {
			if high <= low {
				continue
			}
			t.Run(low.String()+"<"+high.String(), func(t *testing.T) {
				a := New(Config{})
				a.Write(high, Path{"a"}, high.String())
				a.Write(low, Path{"a"}, low.String())
				if got := a.Read("a"); got != high.String() {
					t.Errorf("read %v; want %s", got, high)
				}
			})
		}
	}
}
