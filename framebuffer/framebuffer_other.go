//go:build !linux

package framebuffer

// Open is only supported on Linux.
func Open(_ string) (*Framebuffer, error) {
	return nil, ErrNotSupported
}
