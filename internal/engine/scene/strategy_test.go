package scene

import "testing"

func TestModeForGrid(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		want Mode
	}{
		{"tiny", 4, 4, ModeWhole},
		{"just under whole limit", 999, 1001, ModeWhole},
		{"at whole limit", 1000, 1000, ModeWholeTested},
		{"mid range", 2000, 2000, ModeWholeTested},
		{"just under chunked limit", 3999, 4000, ModeWholeTested},
		{"at chunked limit", 4000, 4000, ModeChunked},
		{"huge", 10000, 10000, ModeChunked},
		{"narrow but long", 100, 200000, ModeChunked},
	}
	for _, tc := range cases {
		if got := ModeForGrid(tc.w, tc.h); got != tc.want {
			t.Errorf("%s: ModeForGrid(%d, %d) = %v, want %v", tc.name, tc.w, tc.h, got, tc.want)
		}
	}
}

func TestModeString(t *testing.T) {
	if ModeWhole.String() != "whole" || ModeChunked.String() != "chunked" {
		t.Error("unexpected mode names")
	}
	if ModeWholeTested.String() != "whole-tested" {
		t.Errorf("ModeWholeTested.String() = %q", ModeWholeTested.String())
	}
}
