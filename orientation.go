package ili9341

// reorient returns s rotated to r. Width and height swap when r changes between the
// vertical and horizontal orientations.
func reorient(s state, r Rotation) state {
	r &= 3
	if s.rotation.Horizontal() != r.Horizontal() {
		s.width, s.height = s.height, s.width
	}
	s.rotation = r
	return s
}

// madctl is the memory access control value for a rotation.
func madctl(rotation Rotation) byte {
	switch rotation & 3 {
	case Rotate90:
		return columnAddressOrder | pageAddressOrder | pageColumnOrder | bgrOrder
	case Rotate180:
		return pageAddressOrder | bgrOrder
	case Rotate270:
		return pageColumnOrder | bgrOrder
	default:
		return columnAddressOrder | bgrOrder
	}
}

// SetOrientation changes the rotation. Width and Height follow the new rotation. Nothing
// changes while a transport error is pending.
func (d *Device) SetOrientation(rotation Rotation) {
	rotation &= 3
	value := madctl(rotation)
	logger().Debug("madctl", "rotation", rotation.String(), "value", value)

	d.begin()
	d.command(MADCTL, value)
	d.end()
	if d.err == nil {
		d.state = reorient(d.state, rotation)
	}
}
