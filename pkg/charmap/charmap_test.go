package charmap

import "testing"

func TestGetWrapsIndex(t *testing.T) {
	if got := string(Get(0)); got != CharsBasic {
		t.Errorf("Get(0) = %q, want %q", got, CharsBasic)
	}
	// An index beyond the table wraps instead of panicking.
	if got := string(Get(255)); got == "" {
		t.Error("Get(255) returned an empty map")
	}
	if got := string(Get(Count())); got != CharsBasic {
		t.Errorf("Get(Count()) = %q, want wrap to %q", got, CharsBasic)
	}
}

func TestNameMatchesMapCount(t *testing.T) {
	if len(names) != len(maps) {
		t.Fatalf("names/maps length mismatch: %d vs %d", len(names), len(maps))
	}
	if Count() != 10 {
		t.Errorf("Count() = %d, want 10", Count())
	}
	for i := 0; i < Count(); i++ {
		if Name(i) == "" {
			t.Errorf("Name(%d) is empty", i)
		}
	}
}

func TestFromLuminance(t *testing.T) {
	m := Get(0)

	if got := FromLuminance(0, m); got != ' ' {
		t.Errorf("FromLuminance(0) = %q, want space", got)
	}
	if got := FromLuminance(255, m); got != '@' {
		t.Errorf("FromLuminance(255) = %q, want '@'", got)
	}

	mid := FromLuminance(128, m)
	if mid == ' ' || mid == '@' {
		t.Errorf("FromLuminance(128) = %q, want an intermediate character", mid)
	}
}

func TestFromLuminanceIndexBounds(t *testing.T) {
	// Every luminance value must land inside every map.
	for i := 0; i < Count(); i++ {
		m := Get(i)
		for lum := 0; lum <= 255; lum++ {
			FromLuminance(uint8(lum), m)
		}
	}
}

func TestFromLuminanceEmptyMap(t *testing.T) {
	if got := FromLuminance(100, nil); got != ' ' {
		t.Errorf("FromLuminance on empty map = %q, want space", got)
	}
}
