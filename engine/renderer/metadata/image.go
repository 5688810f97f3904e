package metadata

// ImageResourceData is a decoded image ready for upload: tightly packed rows of
// ChannelCount bytes per pixel. With ImageResourceParams.FlipY the bottom row
// comes first.
type ImageResourceData struct {
	ChannelCount uint8
	Width        uint32
	Height       uint32
	Pixels       []uint8
}

// Valid reports whether Pixels holds exactly Width x Height pixels.
func (d *ImageResourceData) Valid() bool {
	if d == nil || d.Width == 0 || d.Height == 0 || d.ChannelCount == 0 {
		return false
	}
	return len(d.Pixels) == int(d.Width)*int(d.Height)*int(d.ChannelCount)
}

// ImageResourceParams is what the image loader accepts as load parameters.
type ImageResourceParams struct {
	FlipY bool
}
