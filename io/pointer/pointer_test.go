// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	for _, tc := range []struct {
		typ Kind
		res string
	}{
		{Cancel, "Cancel"},
		{Press, "Press"},
		{Release, "Release"},
		{Move, "Move"},
		{Press | Release, "Press|Release"},
		{Press | Move, "Press|Move"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, tc.typ.String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
}

func TestTouchActive(t *testing.T) {
	tch := Touch{
		Phase: TouchUpdate,
		Points: []Event{
			{Kind: Move, PointerID: 1},
			{Kind: Release, PointerID: 2},
			{Kind: Press, PointerID: 3},
		},
	}
	active := tch.Active()
	if got, want := len(active), 2; got != want {
		t.Fatalf("got %d active points, want %d", got, want)
	}
	if active[0].PointerID != 1 || active[1].PointerID != 3 {
		t.Errorf("got active points %v, want ids 1 and 3", active)
	}
}
