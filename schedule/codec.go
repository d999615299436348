package schedule

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/zoompan/limits"
)

const (
	doubleSize = 8
	tripleSize = 3 * doubleSize
)

// validateSize checks that size bytes hold a whole, non-zero number of
// triples.
func validateSize(size int64) error {
	switch {
	case size == 0:
		return fmt.Errorf("%w: expected a positive multiple of %d bytes, got 0", ErrEmpty, tripleSize)
	case size%doubleSize != 0:
		return fmt.Errorf("%w: size %d should be %d (%d trailing bytes)", ErrUnaligned, size, size/doubleSize*doubleSize, size%doubleSize)
	case (size/doubleSize)%3 != 0:
		n := size / doubleSize
		return fmt.Errorf("%w: got %d values, expected a multiple of 3 (%d left over, size should be %d)", ErrPartialTriple, n, n%3, n/3*tripleSize)
	}
	return nil
}

// Decode parses raw native-endian float64 triples (x, y, zoom) in order.
// Values are not range checked.
func Decode(data []byte) (*Table, error) {
	if err := validateSize(int64(len(data))); err != nil {
		return nil, err
	}
	triples := make([]Triple, len(data)/tripleSize)
	for i := range triples {
		b := data[i*tripleSize:]
		triples[i] = Triple{
			X:    math.Float64frombits(binary.NativeEndian.Uint64(b[0:])),
			Y:    math.Float64frombits(binary.NativeEndian.Uint64(b[doubleSize:])),
			Zoom: math.Float64frombits(binary.NativeEndian.Uint64(b[2*doubleSize:])),
		}
	}
	return &Table{triples: triples}, nil
}

// Encode writes triples in the format read by Decode.
func Encode(w io.Writer, triples []Triple) error {
	var buf [tripleSize]byte
	for i, t := range triples {
		binary.NativeEndian.PutUint64(buf[0:], math.Float64bits(t.X))
		binary.NativeEndian.PutUint64(buf[doubleSize:], math.Float64bits(t.Y))
		binary.NativeEndian.PutUint64(buf[2*doubleSize:], math.Float64bits(t.Zoom))
		if _, err := w.Write(buf[:]); err != nil {
			return fmt.Errorf("writing triple %d: %w", i, err)
		}
	}
	return nil
}

// Load reads a trajectory file.
//
// Errors:
//   - ErrOpen when the file cannot be opened or read
//   - ErrEmpty, ErrUnaligned or ErrPartialTriple (all matching ErrInvalid)
//     for a malformed size
//   - limits.ErrBufferTooLarge for files above limits.MaxScheduleBytes
func Load(path string) (*Table, error) {
	logger := logrus.WithFields(logrus.Fields{
		"function": "Load",
		"path":     path,
	})

	f, err := os.Open(path)
	if err != nil {
		logger.WithError(err).Error("Failed to open schedule")
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	size := info.Size()
	if err := limits.ValidateScheduleBytes(size); err != nil {
		return nil, err
	}
	if err := validateSize(size); err != nil {
		logger.WithFields(logrus.Fields{"size": size, "error": err.Error()}).Error("Rejected schedule")
		return nil, err
	}

	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	table, err := Decode(data)
	if err != nil {
		return nil, err
	}

	logger.WithField("triples", table.Len()).Info("Loaded schedule")
	return table, nil
}

// Save writes triples to path, replacing any existing file.
func Save(path string, triples []Triple) error {
	if len(triples) == 0 {
		return fmt.Errorf("%w: nothing to save", ErrEmpty)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpen, err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, triples); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function": "Save",
		"path":     path,
		"triples":  len(triples),
	}).Debug("Saved schedule")
	return nil
}
