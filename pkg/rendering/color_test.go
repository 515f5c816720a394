package rendering

import "testing"

func TestWithAlphaKeepsRGB(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0xFF)
	got := c.WithAlpha(0x44)
	if got != Color(0x44123456) {
		t.Fatalf("WithAlpha = %08X, want 44123456", uint32(got))
	}
	if got.Red() != 0x12 || got.Green() != 0x34 || got.Blue() != 0x56 {
		t.Fatal("WithAlpha changed RGB channels")
	}
}

func TestColorChannels(t *testing.T) {
	c := Color(0x80FF6030)
	if c.Alpha() != 0x80 || c.Red() != 0xFF || c.Green() != 0x60 || c.Blue() != 0x30 {
		t.Fatalf("channels = %02X %02X %02X %02X", c.Alpha(), c.Red(), c.Green(), c.Blue())
	}
}

func TestColorLerp(t *testing.T) {
	a := RGBA(0, 0, 0, 0)
	b := RGBA(200, 100, 50, 200)

	if got := a.Lerp(b, 0); got != a {
		t.Fatalf("Lerp(0) = %08X, want %08X", uint32(got), uint32(a))
	}
	if got := a.Lerp(b, 1); got != b {
		t.Fatalf("Lerp(1) = %08X, want %08X", uint32(got), uint32(b))
	}
	mid := a.Lerp(b, 0.5)
	if mid.Red() != 100 || mid.Alpha() != 100 {
		t.Fatalf("Lerp(0.5) = %08X, want half channels", uint32(mid))
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#FF0000", ColorRed},
		{"ff0000", ColorRed},
		{"#44123456", Color(0x44123456)},
		{" #000000 ", ColorBlack},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseColor(%q) = %08X, want %08X", tc.in, uint32(got), uint32(tc.want))
		}
	}

	for _, bad := range []string{"", "xyz", "#12345", "#123456789"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q) succeeded, want error", bad)
		}
	}
}
