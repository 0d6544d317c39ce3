package hal

// rgbaFromRGB888 expands packed 0xRRGGBB pixels into opaque RGBA bytes.
func rgbaFromRGB888(dst []byte, src []uint32) {
	for i, p := range src {
		j := i * 4
		if j+3 >= len(dst) {
			return
		}
		dst[j+0] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = 0xFF
	}
}
