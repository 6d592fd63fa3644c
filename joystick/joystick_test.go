package joystick

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want Event
	}{
		{
			name: "button press",
			raw:  []byte{0x10, 0x27, 0x00, 0x00, 0x01, 0x00, 0x01, 0x06},
			want: Event{Time: 10000, Value: 1, Kind: EventButton, Index: 6},
		},
		{
			name: "axis negative value",
			raw:  []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x02, 0x02},
			want: Event{Time: 0, Value: -32768, Kind: EventAxis, Index: 2},
		},
		{
			name: "synthetic init flag preserved",
			raw:  []byte{0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x81, 0x00},
			want: Event{Time: 0, Value: 1, Kind: 0x81, Index: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeEvent(tt.raw))
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"js0", "js1", "event0", "mouse0", "by-id"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("populate dir: %v", err)
		}
	}

	paths, err := Discover(dir)
	assert.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "js0"),
		filepath.Join(dir, "js1"),
	}, paths)
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
