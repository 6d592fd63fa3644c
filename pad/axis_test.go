package pad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantizeBoundaries(t *testing.T) {
	tests := []struct {
		name string
		raw  int16
		want uint8
	}{
		{"full negative", -32768, 0},
		{"just below center", -1, 127},
		{"center", 0, 128},
		{"full positive", 32767, 255},
		{"xbox trigger low", 200, 128},
		{"xbox trigger engaged", 20000, 206},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quantize(tt.raw))
		})
	}
}

func TestQuantizeExhaustive(t *testing.T) {
	prev := Quantize(-32768)
	for raw := -32768; raw <= 32767; raw++ {
		got := Quantize(int16(raw))
		want := uint8((raw + 32768) >> 8)
		if got != want {
			t.Fatalf("Quantize(%d) = %d, want %d", raw, got, want)
		}
		if got < prev {
			t.Fatalf("Quantize not monotonic at %d: %d < %d", raw, got, prev)
		}
		prev = got
	}
}
