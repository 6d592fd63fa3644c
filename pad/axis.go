package pad

// AxisCenter is the resting value of a quantized stick axis.
const AxisCenter uint8 = 128

// Quantize maps a native signed 16-bit axis sample onto the unsigned
// 8-bit range the gadget expects, keeping 0 at 128. Every profile uses
// this one formula; -32768 maps to 0, 0 to 128, 32767 to 255.
func Quantize(raw int16) uint8 {
	return uint8((int(raw) + 32768) >> 8)
}
