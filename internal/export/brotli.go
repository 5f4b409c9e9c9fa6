package export

import (
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/brotli"
)

// WriteBrotli stores a brotli-compressed copy of src at dst, for static
// hosts that serve pre-compressed assets.
func WriteBrotli(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("export: open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", dst, err)
	}
	defer out.Close()

	bw := brotli.NewWriterLevel(out, brotli.BestCompression)
	if _, err := io.Copy(bw, in); err != nil {
		return fmt.Errorf("export: compress: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("export: compress: %w", err)
	}
	return out.Close()
}
