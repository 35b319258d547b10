package readtape

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/lestrrat-go/strftime"
)

// tbin is the binary analog sample container of §6.1: a fixed header
// followed by one or more headered data blocks, each a sequence of
// 16-bit signed samples per track in MSB..LSB,P order.
const (
	tbinTag        = "TBINHDR"
	tbinHeaderSize = 240
	tbinFormat     = 1
	tbinSentinel16 = -32768
)

// tbinTimestampFormat is the layout used for a capture's provenance
// times in descriptions and log lines.
const tbinTimestampFormat = "%Y-%m-%d %H:%M:%S"

// FormatTapeTime renders a capture timestamp for logs and descriptions.
func FormatTapeTime(t time.Time) string {
	formatted, err := strftime.Format(tbinTimestampFormat, t)
	if err != nil {
		return t.String()
	}
	return formatted
}

// encodeTbinTime packs t into one of the header's nine-int broken-down
// time fields (§6.1), laid out like a C struct tm: sec, min, hour,
// mday, mon (0-based), year (since 1900), wday, yday (0-based), isdst.
func encodeTbinTime(b []byte, t time.Time) {
	put := func(i int, v int) { binary.LittleEndian.PutUint32(b[4*i:], uint32(int32(v))) }
	put(0, t.Second())
	put(1, t.Minute())
	put(2, t.Hour())
	put(3, t.Day())
	put(4, int(t.Month())-1)
	put(5, t.Year()-1900)
	put(6, int(t.Weekday()))
	put(7, t.YearDay()-1)
	put(8, 0)
}

// decodeTbinTime is encodeTbinTime's inverse; an all-zero field (year
// 1900) decodes as the zero time, meaning "not recorded".
func decodeTbinTime(b []byte) time.Time {
	get := func(i int) int { return int(int32(binary.LittleEndian.Uint32(b[4*i:]))) }
	year := get(5) + 1900
	if year == 1900 {
		return time.Time{}
	}
	return time.Date(year, time.Month(get(4)+1), get(3), get(2), get(1), get(0), 0, time.Local)
}

// TbinSource reads a .tbin file as a SampleSource (§4.1, §6.1).
type TbinSource struct {
	r       io.ReadSeeker
	ntrks   int
	tdelta  float64 // seconds
	maxVolts float32

	timeWritten time.Time

	dataStart int64
	sampleBits int

	pos   int64 // byte offset of the next sample to read
	tNow  float64

	blockStartPos int64   // byte offset of this DAT block's first sample
	blockStartT   float64 // tNow at blockStartPos
}

// OpenTbin parses the fixed header (and optional extension) of a .tbin
// stream and returns a ready-to-use source positioned at the first
// sample.
func OpenTbin(r io.ReadSeeker) (*TbinSource, error) {
	hdr := make([]byte, tbinHeaderSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, &FatalError{Reason: "tbin: truncated header: " + err.Error()}
	}
	if string(trimZero(hdr[0:8])) != tbinTag {
		return nil, &FatalError{Reason: "tbin: missing TBINHDR tag"}
	}
	timeWritten := decodeTbinTime(hdr[96:132])
	flags := binary.LittleEndian.Uint32(hdr[204:208])
	ntrks := int(binary.LittleEndian.Uint32(hdr[208:212]))
	tdeltaNs := binary.LittleEndian.Uint32(hdr[212:216])
	maxVolts := math.Float32frombits(binary.LittleEndian.Uint32(hdr[216:220]))

	dataStart := int64(tbinHeaderSize)
	if flags&0x2 != 0 {
		ext := make([]byte, 9+20)
		if _, err := io.ReadFull(r, ext); err != nil {
			return nil, &FatalError{Reason: "tbin: truncated track-order extension"}
		}
		dataStart += int64(len(ext))
	}

	s := &TbinSource{
		r:           r,
		ntrks:       ntrks,
		tdelta:      float64(tdeltaNs) * 1e-9,
		maxVolts:    maxVolts,
		dataStart:   dataStart,
		timeWritten: timeWritten,
	}
	if err := s.enterBlock(dataStart); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *TbinSource) enterBlock(at int64) error {
	if _, err := s.r.Seek(at, io.SeekStart); err != nil {
		return err
	}
	hdr := make([]byte, 16)
	if _, err := io.ReadFull(s.r, hdr); err != nil {
		if err == io.EOF {
			s.sampleBits = 0
			return nil
		}
		return &FatalError{Reason: "tbin: truncated data-block header"}
	}
	if string(trimZero(hdr[0:4])) != "DAT" {
		return &FatalError{Reason: "tbin: missing DAT tag"}
	}
	s.sampleBits = int(hdr[5])
	if s.sampleBits == 0 {
		s.sampleBits = 16
	}
	if s.sampleBits != 16 {
		return &FatalError{Reason: fmt.Sprintf("tbin: unsupported sample_bits %d", s.sampleBits)}
	}
	tstart := binary.LittleEndian.Uint64(hdr[8:16])
	s.tNow = float64(tstart) * 1e-9
	cur, _ := s.r.Seek(0, io.SeekCurrent)
	s.pos = cur
	s.blockStartPos = cur
	s.blockStartT = s.tNow
	return nil
}

// Next yields the next sample. A DAT block is terminated by the
// sentinel value (§6.1); since a .tbin file may carry "one or more"
// data blocks, reaching a sentinel tries to enter the next DAT header
// immediately following before declaring end of stream.
func (s *TbinSource) Next(ctx context.Context) (Sample, bool, error) {
	if s.sampleBits == 0 {
		return Sample{}, false, nil
	}
	raw := make([]int16, s.ntrks)
	buf := make([]byte, 2)
	v := make([]float32, s.ntrks)
	sawSentinel := true
	for i := 0; i < s.ntrks; i++ {
		if _, err := io.ReadFull(s.r, buf); err != nil {
			if err == io.EOF {
				s.sampleBits = 0
				return Sample{}, false, nil
			}
			return Sample{}, false, &FatalError{Reason: "tbin: truncated sample"}
		}
		raw[i] = int16(binary.LittleEndian.Uint16(buf))
		if raw[i] != tbinSentinel16 {
			sawSentinel = false
		}
		v[i] = float32(raw[i]) / 32767.0 * s.maxVolts
	}
	if sawSentinel {
		s.pos += int64(2 * s.ntrks)
		if err := s.enterBlock(s.pos); err != nil {
			return Sample{}, false, err
		}
		if s.sampleBits == 0 {
			return Sample{}, false, nil
		}
		return s.Next(ctx)
	}
	t := s.tNow
	s.tNow += s.tdelta
	s.pos += int64(2 * s.ntrks)
	return Sample{T: t, V: v}, true, nil
}

func (s *TbinSource) Position() Position { return s.pos }

// Seek rewinds to a byte offset this source previously returned from
// Position, restoring the time cursor consistently: time advances
// linearly with sample count from the enclosing DAT block's tstart
// (§6.1), so it is recomputed from the offset rather than carried
// forward from wherever Next last left it.
func (s *TbinSource) Seek(p Position) error {
	if p < s.blockStartPos {
		// Target predates the current DAT block: rescan block headers
		// from the first one to find the block containing p.
		if err := s.enterBlock(s.dataStart); err != nil {
			return err
		}
		for s.sampleBits != 0 {
			// Find this block's length by scanning for its sentinel.
			end, err := s.scanBlockEnd()
			if err != nil {
				return err
			}
			if p >= s.blockStartPos && p < end {
				break
			}
			if err := s.enterBlock(end); err != nil {
				return err
			}
		}
	}
	if _, err := s.r.Seek(p, io.SeekStart); err != nil {
		return err
	}
	elapsed := (p - s.blockStartPos) / int64(2*s.ntrks)
	s.tNow = s.blockStartT + float64(elapsed)*s.tdelta
	s.pos = p
	s.sampleBits = 16
	return nil
}

// scanBlockEnd finds the byte offset immediately after the current
// DAT block's sentinel frame, without disturbing s.pos/s.tNow (it
// restores the read cursor to its position on entry).
func (s *TbinSource) scanBlockEnd() (int64, error) {
	save := s.blockStartPos
	if _, err := s.r.Seek(save, io.SeekStart); err != nil {
		return 0, err
	}
	buf := make([]byte, 2)
	off := save
	frame := int64(2 * s.ntrks)
	for {
		sentinel := true
		for i := 0; i < s.ntrks; i++ {
			if _, err := io.ReadFull(s.r, buf); err != nil {
				return off, nil // truncated/EOF: treat as block end
			}
			if int16(binary.LittleEndian.Uint16(buf)) != tbinSentinel16 {
				sentinel = false
			}
		}
		off += frame
		if sentinel {
			return off, nil
		}
	}
}

func (s *TbinSource) SampleDeltaT() float64 { return s.tdelta }
func (s *TbinSource) NumHeads() int         { return s.ntrks }

// TimeWritten is the capture's time_written header field, or the zero
// time if the writing program did not record one.
func (s *TbinSource) TimeWritten() time.Time { return s.timeWritten }

func trimZero(b []byte) []byte {
	for i, c := range b {
		if c == 0 {
			return b[:i]
		}
	}
	return b
}

// CsvSource reads the ASCII CSV sample format of §6.2: two header
// lines, then rows of time_seconds, v_track_0, v_track_1, ...
type CsvSource struct {
	lines  []string
	idx    int
	ntrks  int
	tdelta float64
}

// OpenCsv scans the full file into memory (analog capture files this
// module targets are modest; streaming would duplicate the Position
// bookkeeping the binary source already needs). ntrks is inferred from
// the comma count of the first data row.
func OpenCsv(r io.Reader) (*CsvSource, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, &FatalError{Reason: "csv: " + err.Error()}
	}
	if len(lines) < 3 {
		return nil, &FatalError{Reason: "csv: missing data rows"}
	}
	ntrks := countCommas(lines[2])
	s := &CsvSource{lines: lines[2:], ntrks: ntrks}
	if len(s.lines) >= 2 {
		t0 := parseCsvTime(s.lines[0])
		t1 := parseCsvTime(s.lines[1])
		s.tdelta = t1 - t0
	}
	return s, nil
}

func countCommas(line string) int {
	n := 0
	for _, c := range line {
		if c == ',' {
			n++
		}
	}
	return n
}

func parseCsvTime(line string) float64 {
	var t float64
	fmt.Sscanf(line, "%g", &t)
	return t
}

func (s *CsvSource) Next(ctx context.Context) (Sample, bool, error) {
	if s.idx >= len(s.lines) {
		return Sample{}, false, nil
	}
	line := s.lines[s.idx]
	s.idx++
	fields := splitCsv(line)
	if len(fields) < 1+s.ntrks {
		return Sample{}, false, &FatalError{Reason: "csv: short row"}
	}
	t := parseCsvTime(fields[0])
	v := make([]float32, s.ntrks)
	for i := 0; i < s.ntrks; i++ {
		var f float64
		fmt.Sscanf(fields[1+i], "%g", &f)
		v[i] = float32(f)
	}
	return Sample{T: t, V: v}, true, nil
}

func splitCsv(line string) []string {
	var fields []string
	start := 0
	for i, c := range line {
		if c == ',' {
			fields = append(fields, line[start:i])
			start = i + 1
		}
	}
	fields = append(fields, line[start:])
	return fields
}

func (s *CsvSource) Position() Position      { return int64(s.idx) }
func (s *CsvSource) Seek(p Position) error   { s.idx = int(p); return nil }
func (s *CsvSource) SampleDeltaT() float64   { return s.tdelta }
func (s *CsvSource) NumHeads() int           { return s.ntrks }

// TbinWriter writes the container format of §6.1; used by the
// synthetic sample generator.
type TbinWriter struct {
	w        io.Writer
	ntrks    int
	maxVolts float32
	inBlock  bool
}

type TbinWriterConfig struct {
	Descr    string
	Ntrks    int
	TdeltaNs uint32
	MaxVolts float32
	Mode     Mode
	BPI      float64
	IPS      float64
	Written  time.Time // time_written header field; zero leaves it unset
}

func modeToTbinCode(m Mode) uint32 {
	switch m {
	case ModePE:
		return 1
	case ModeNRZI:
		return 2
	case ModeGCR:
		return 4
	case ModeWhirlwind:
		return 8
	default:
		return 0
	}
}

// NewTbinWriter writes the fixed header immediately and returns a
// writer ready to accept StartBlock/WriteSample/EndBlock calls.
func NewTbinWriter(w io.Writer, cfg TbinWriterConfig) (*TbinWriter, error) {
	hdr := make([]byte, tbinHeaderSize)
	copy(hdr[0:8], tbinTag)
	copy(hdr[8:88], cfg.Descr)
	binary.LittleEndian.PutUint32(hdr[88:92], tbinHeaderSize)
	binary.LittleEndian.PutUint32(hdr[92:96], tbinFormat)
	if !cfg.Written.IsZero() {
		encodeTbinTime(hdr[96:132], cfg.Written)
	}
	// time_read/time_converted (offsets 132..204) left zero.
	binary.LittleEndian.PutUint32(hdr[204:208], 0x1) // tracks not reordered
	binary.LittleEndian.PutUint32(hdr[208:212], uint32(cfg.Ntrks))
	binary.LittleEndian.PutUint32(hdr[212:216], cfg.TdeltaNs)
	binary.LittleEndian.PutUint32(hdr[216:220], math.Float32bits(cfg.MaxVolts))
	binary.LittleEndian.PutUint32(hdr[228:232], modeToTbinCode(cfg.Mode))
	binary.LittleEndian.PutUint32(hdr[232:236], math.Float32bits(float32(cfg.BPI)))
	binary.LittleEndian.PutUint32(hdr[236:240], math.Float32bits(float32(cfg.IPS)))
	if _, err := w.Write(hdr); err != nil {
		return nil, err
	}
	return &TbinWriter{w: w, ntrks: cfg.Ntrks, maxVolts: cfg.MaxVolts}, nil
}

// StartBlock writes a data-block header with the given start time.
func (w *TbinWriter) StartBlock(tstartNs uint64) error {
	hdr := make([]byte, 16)
	copy(hdr[0:4], "DAT")
	hdr[5] = 16 // sample_bits
	binary.LittleEndian.PutUint64(hdr[8:16], tstartNs)
	if _, err := w.w.Write(hdr); err != nil {
		return err
	}
	w.inBlock = true
	return nil
}

// WriteSample writes one ntrks-wide frame of voltages, scaled to the
// configured full scale (§6.1).
func (w *TbinWriter) WriteSample(v []float32) error {
	buf := make([]byte, 2*w.ntrks)
	for i, volts := range v {
		scaled := int32(volts / w.maxVolts * 32767)
		if scaled > 32767 {
			scaled = 32767
		}
		if scaled < -32767 {
			scaled = -32767
		}
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(int16(scaled)))
	}
	_, err := w.w.Write(buf)
	return err
}

// EndBlock writes the sentinel value that terminates a data block.
func (w *TbinWriter) EndBlock() error {
	buf := make([]byte, 2*w.ntrks)
	sentinel := int16(tbinSentinel16)
	for i := 0; i < w.ntrks; i++ {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(sentinel))
	}
	_, err := w.w.Write(buf)
	w.inBlock = false
	return err
}
