package grove

import "testing"

func TestRotatedSize(t *testing.T) {
	tests := []struct {
		w, h  int
		deg   float64
		wantW int
		wantH int
	}{
		{10, 10, 0, 10, 10},
		{10, 4, 90, 4, 10},
		{10, 4, 180, 10, 4},
		{10, 4, -90, 4, 10},
		{10, 4, 270, 4, 10},
		{10, 10, 45, 15, 15},
		{1, 1, 360, 1, 1},
	}
	for _, tt := range tests {
		w, h := rotatedSize(tt.w, tt.h, tt.deg)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("rotatedSize(%d, %d, %v) = %d, %d, want %d, %d",
				tt.w, tt.h, tt.deg, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestColorOf(t *testing.T) {
	tests := []struct {
		vs   []float64
		want Color
		ok   bool
	}{
		{[]float64{0.5}, Gray(0.5), true},
		{[]float64{1, 1, 0}, Color{1, 1, 0, 1}, true},
		{[]float64{1, 0, 0, 0.5}, Color{1, 0, 0, 0.5}, true},
		{nil, Color{}, false},
		{[]float64{1, 2}, Color{}, false},
	}
	for _, tt := range tests {
		got, err := ColorOf(tt.vs...)
		if (err == nil) != tt.ok {
			t.Errorf("ColorOf(%v) err = %v", tt.vs, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ColorOf(%v) = %v, want %v", tt.vs, got, tt.want)
		}
	}
}

func TestColorRGB255(t *testing.T) {
	if got := (Color{1, 0.5, -1, 1}).RGB255(); got != [3]uint8{255, 127, 0} {
		t.Errorf("RGB255 = %v, want [255 127 0]", got)
	}
	if got := (Color{2, 0, 0, 1}).RGB255(); got[0] != 255 {
		t.Errorf("RGB255 clamps: R = %d, want 255", got[0])
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	c := Color{1, 0.5, 0, 0.5}.toRGBA()
	if c.A != 127 || c.R != 127 || c.G != 63 || c.B != 0 {
		t.Errorf("toRGBA = %+v, want {127 63 0 127}", c)
	}
}
