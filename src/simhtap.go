package readtape

import (
	"encoding/binary"
	"io"
)

// SIMH .tap sentinel record-length markers (§6.3).
const (
	simhTapMark  = 0x00000000
	simhEOM      = 0xFFFFFFFF
	simhGapMark  = 0xFFFFFFFE
	simhErrFlag  = 0x80000000
)

// SimhTapWriter emits the SIMH magtape container format: each data
// record is bracketed by a 4-byte little-endian length marker before
// and after (with bit 31 set on the trailing marker if the record was
// recovered with errors), odd-length records padded with one zero
// byte, and tapemarks written as a single 4-byte zero marker.
type SimhTapWriter struct {
	w io.Writer
}

func NewSimhTapWriter(w io.Writer) *SimhTapWriter {
	return &SimhTapWriter{w: w}
}

func (s *SimhTapWriter) writeMarker(v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := s.w.Write(buf[:])
	return err
}

// WriteRecord writes one data block. hadError sets the SIMH error flag
// on the trailing length marker (§6.3); it does not change the leading
// marker, matching SIMH's own asymmetric convention.
func (s *SimhTapWriter) WriteRecord(data []byte, hadError bool) error {
	n := uint32(len(data))
	if err := s.writeMarker(n); err != nil {
		return err
	}
	if _, err := s.w.Write(data); err != nil {
		return err
	}
	if len(data)%2 == 1 {
		if _, err := s.w.Write([]byte{0}); err != nil {
			return err
		}
	}
	trailer := n
	if hadError {
		trailer |= simhErrFlag
	}
	return s.writeMarker(trailer)
}

// WriteTapemark writes a single zero-length marker (§6.3).
func (s *SimhTapWriter) WriteTapemark() error {
	return s.writeMarker(simhTapMark)
}

// WriteEndOfMedium writes the end-of-recorded-data sentinel.
func (s *SimhTapWriter) WriteEndOfMedium() error {
	return s.writeMarker(simhEOM)
}

// WriteFromBlockResult writes r.Data as one record (or a tapemark,
// or nothing for Noise/BadBlock/Aborted kinds which carry no usable
// payload), translating an Uncorrected ErrCount into the SIMH error
// flag.
func (s *SimhTapWriter) WriteFromBlockResult(r BlockResult) error {
	switch r.Kind {
	case KindTapemark:
		return s.WriteTapemark()
	case KindBlock:
		return s.WriteRecord(r.Data, r.ErrCount > 0)
	default:
		return nil
	}
}
