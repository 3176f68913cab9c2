package conn

import (
	"os"
	"path/filepath"
	"testing"
	"unsafe"
)

func TestReadMaxTransfer(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"bufsiz", "65536\n", 65536},
		{"garbage", "lots", DefaultMaxTransfer},
		{"zero", "0", DefaultMaxTransfer},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			name := filepath.Join(dir, test.name)
			if err := os.WriteFile(name, []byte(test.content), 0o644); err != nil {
				it.Fatal(err)
			}
			if v := readMaxTransfer(name); v != test.want {
				it.Errorf("expected %d, got %d", test.want, v)
			}
		})
	}

	if v := readMaxTransfer(filepath.Join(dir, "missing")); v != DefaultMaxTransfer {
		t.Errorf("expected default %d for a missing file, got %d", DefaultMaxTransfer, v)
	}
}

func TestTransferLayout(t *testing.T) {
	// struct spi_ioc_transfer is 32 bytes on every architecture.
	if v := unsafe.Sizeof(spiIOCTransfer{}); v != 32 {
		t.Errorf("expected spi_ioc_transfer to be 32 bytes, got %d", v)
	}
}

func TestTxLimits(t *testing.T) {
	c := &SPI{maxTransfer: 4}
	if err := c.Tx(nil, nil); err != nil {
		t.Errorf("expected empty transfer to succeed, got %v", err)
	}
	if err := c.Tx(make([]byte, 2), make([]byte, 3)); err == nil {
		t.Error("expected mismatched buffers to fail")
	}
	if err := c.Tx(make([]byte, 5), nil); err == nil {
		t.Error("expected oversized transfer to fail")
	}
}
