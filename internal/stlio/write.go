package stlio

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// WriteBinary writes flat (9 floats per triangle) as a binary STL file.
// Face normals are written as zero vectors; readers (including
// ReadBinary) never trust the stored normal anyway. Used to build test
// fixtures, never by the core pipeline.
func WriteBinary(path string, flat []float32, count int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stlio: create %s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, headerSize)
	if _, err := f.Write(header); err != nil {
		return fmt.Errorf("stlio: write header: %w", err)
	}
	if err := binary.Write(f, binary.LittleEndian, uint32(count)); err != nil {
		return fmt.Errorf("stlio: write triangle count: %w", err)
	}

	zeroNormal := make([]byte, 12)
	attr := make([]byte, 2)
	buf := make([]byte, 4)

	for i := 0; i < count; i++ {
		if _, err := f.Write(zeroNormal); err != nil {
			return fmt.Errorf("stlio: write normal %d: %w", i, err)
		}
		base := i * floatsPerTriangle
		for j := 0; j < floatsPerTriangle; j++ {
			binary.LittleEndian.PutUint32(buf, math.Float32bits(flat[base+j]))
			if _, err := f.Write(buf); err != nil {
				return fmt.Errorf("stlio: write vertex %d.%d: %w", i, j, err)
			}
		}
		if _, err := f.Write(attr); err != nil {
			return fmt.Errorf("stlio: write attribute %d: %w", i, err)
		}
	}

	return nil
}
