// Command gentape synthesizes an analog tape capture for decoder
// testing: it renders a 9-track NRZI recording of the given message,
// with odd parity, CRC, and LRC trailer, as voltage pulses in a .tbin
// container that tapedecode can read back.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/lenshustek-port/readtape/src"
	"github.com/spf13/pflag"
)

func main() {
	var outFile = pflag.StringP("out", "o", "tape.tbin", "Output .tbin file name.")
	var message = pflag.StringP("message", "m", "HELLO, WORLD!", "Bytes to record, as ASCII text.")
	var bpi = pflag.Float64("bpi", 800, "Recording density, bits per inch.")
	var ips = pflag.Float64("ips", 50, "Tape speed, inches per second.")
	var tdeltaNs = pflag.Uint32("tdelta-ns", 500, "Inter-sample time in nanoseconds.")
	var amplitude = pflag.Float64("amplitude", 3.0, "Peak pulse voltage.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: gentape -o tape.tbin -m \"text\"\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if *help {
		pflag.Usage()
		return
	}

	f, err := os.Create(*outFile)
	if err != nil {
		fatal(err)
	}
	defer f.Close()

	const ntrks = 9
	w, err := readtape.NewTbinWriter(f, readtape.TbinWriterConfig{
		Descr:    "gentape synthetic NRZI recording",
		Ntrks:    ntrks,
		TdeltaNs: *tdeltaNs,
		MaxVolts: float32(*amplitude) * 2,
		Mode:     readtape.ModeNRZI,
		BPI:      *bpi,
		IPS:      *ips,
		Written:  time.Now(),
	})
	if err != nil {
		fatal(err)
	}

	frames := renderNRZI([]byte(*message), ntrks, *bpi, *ips, float64(*tdeltaNs)*1e-9, float32(*amplitude))

	if err := w.StartBlock(0); err != nil {
		fatal(err)
	}
	for _, v := range frames {
		if err := w.WriteSample(v); err != nil {
			fatal(err)
		}
	}
	if err := w.EndBlock(); err != nil {
		fatal(err)
	}
	fmt.Fprintf(os.Stderr, "gentape: wrote %d bytes as %d samples to %s\n", len(*message), len(frames), *outFile)
}

// renderNRZI lays the message out as NRZI flux transitions and renders
// each transition as a raised-cosine voltage lobe, alternating polarity
// per track the way a real read head sees alternating flux reversals.
func renderNRZI(data []byte, ntrks int, bpi, ips, dt float64, amp float32) [][]float32 {
	bitPeriod := 1.0 / (bpi * ips)
	bytes := frameNRZI(data)

	// Transition times per track, in seconds from a half-period lead-in.
	type edge struct {
		t    float64
		sign float32
	}
	edges := make([][]edge, ntrks)
	level := make([]float32, ntrks)
	for k := range level {
		level[k] = 1
	}
	for i, b := range bytes {
		t := (float64(i) + 0.5) * bitPeriod
		for k := 0; k < ntrks; k++ {
			// Track 0 carries the MSB, track 8 the parity bit.
			var bit byte
			if k < 8 {
				bit = (b >> uint(7-k)) & 1
			} else {
				bit = parityBit(b)
			}
			if bit == 1 {
				edges[k] = append(edges[k], edge{t: t, sign: level[k]})
				level[k] = -level[k]
			}
		}
	}

	total := (float64(len(bytes)) + 4) * bitPeriod
	n := int(total / dt)
	lobe := 0.6 * bitPeriod
	frames := make([][]float32, n)
	for i := range frames {
		frames[i] = make([]float32, ntrks)
	}
	for k, trk := range edges {
		for _, e := range trk {
			lo := int((e.t - lobe/2) / dt)
			hi := int((e.t + lobe/2) / dt)
			for i := lo; i <= hi && i < n; i++ {
				if i < 0 {
					continue
				}
				x := (float64(i)*dt - e.t) / lobe * math.Pi
				frames[i][k] += e.sign * amp * float32(math.Cos(x)*math.Cos(x))
			}
		}
	}
	return frames
}

// frameNRZI appends the 9-track post-block trailer: three zero byte
// times, the CRC, three more zeros, and the LRC.
func frameNRZI(data []byte) []byte {
	crc := byte(readtape.NRZICRC9(data) & 0xFF)
	lrc := readtape.NRZILRC(data, true, crc)
	out := append([]byte{}, data...)
	out = append(out, 0, 0, 0, crc, 0, 0, 0, lrc)
	return out
}

// parityBit returns the bit that makes the 9-bit character odd parity.
func parityBit(b byte) byte {
	ones := 0
	for i := 0; i < 8; i++ {
		if b&(1<<uint(i)) != 0 {
			ones++
		}
	}
	if ones%2 == 0 {
		return 1
	}
	return 0
}

func fatal(err error) {
	readtape.Logger.Error("aborting", "err", err)
	os.Exit(1)
}
