package pad

import "fmt"

// Direction is an 8-way dpad state in the gadget's hat encoding:
// 0 is up, values advance clockwise, 8 is centered.
type Direction uint8

const (
	DirUp Direction = iota
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
	DirCentered
)

var directionNames = [...]string{
	"Up", "UpRight", "Right", "DownRight",
	"Down", "DownLeft", "Left", "UpLeft",
	"Centered",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// DPadBit is one of the four direction buttons a dpad is synthesized
// from. The value is the bit position inside a DPadMask.
type DPadBit uint8

const (
	DPadUp DPadBit = iota
	DPadRight
	DPadDown
	DPadLeft
)

// DPadMask tracks the pressed state of the four direction buttons of one
// dpad source (an arcade stick, a GPIO pin group, or a hat reported as a
// pair of axes). The zero value means all four released. Each source owns
// its mask exclusively; masks are never shared between sources.
type DPadMask uint8

// With returns the mask with b pressed.
func (m DPadMask) With(b DPadBit) DPadMask {
	return m | 1<<b
}

// Without returns the mask with b released.
func (m DPadMask) Without(b DPadBit) DPadMask {
	return m &^ (1 << b)
}

// dpadDirections resolves every combination of the four direction
// buttons. Index bits: 1=up, 2=right, 4=down, 8=left. Combinations
// holding both buttons of an opposing pair cancel to centered, diagonals
// included, so the gadget never sees a contradictory hat value.
var dpadDirections = [16]Direction{
	DirCentered,  // 0000
	DirUp,        // 0001
	DirRight,     // 0010
	DirUpRight,   // 0011
	DirDown,      // 0100
	DirCentered,  // 0101 up+down
	DirDownRight, // 0110
	DirCentered,  // 0111 up+down
	DirLeft,      // 1000
	DirUpLeft,    // 1001
	DirCentered,  // 1010 left+right
	DirCentered,  // 1011 left+right
	DirDownLeft,  // 1100
	DirCentered,  // 1101 up+down
	DirCentered,  // 1110 left+right
	DirCentered,  // 1111 everything
}

// Direction resolves the mask to the dpad direction it describes.
func (m DPadMask) Direction() Direction {
	return dpadDirections[m&0x0f]
}
