package readtape

// AssembleBlock packs each track's per-bit-slot values into bytes in
// canonical MSB..LSB,P order (§4.11): track 0 is the MSB of each byte,
// and the last track is treated as the parity track. minBits is the
// shortest track's bit count; trailing bits on longer tracks are
// near-block-boundary artefacts and are ignored.
//
// When appendParity is true and there are fewer than 9 tracks, the
// parity bit is appended as the high-order bit above the data bits
// instead of being dropped, matching narrow (7-track BCD) tape layouts.
func AssembleBlock(tracks []*TrackState, minBits int, appendParity bool) (data []byte, fakedMask uint32) {
	if len(tracks) == 0 || minBits <= 0 {
		return nil, 0
	}
	ndata := len(tracks) - 1
	data = make([]byte, minBits)
	for i := 0; i < minBits; i++ {
		var b byte
		for k := 0; k < ndata; k++ {
			bit := tracks[k].Bits[i]
			b |= bit << uint(ndata-1-k)
			if i < len(tracks[k].Faked) && tracks[k].Faked[i] {
				fakedMask |= 1 << uint(k)
			}
		}
		if appendParity && len(tracks) < 9 {
			b |= tracks[ndata].Bits[i] << uint(ndata)
		}
		data[i] = b
	}
	return data, fakedMask
}

// ibmLabelPrefixes are the EBCDIC byte sequences that open an IBM
// standard label header on an 80-byte block (§4.11). Character-set
// tables for a text dump are explicitly out of scope; this module only
// recognizes the structural shape to decide file-splitting, never the
// label field contents.
var ibmLabelPrefixes = [][4]byte{
	{0xE5, 0xD6, 0xD3, 0xF1}, // VOL1
	{0xC8, 0xC4, 0xD9, 0xF1}, // HDR1
	{0xC8, 0xC4, 0xD9, 0xF2}, // HDR2
	{0xC5, 0xD6, 0xC6, 0xF1}, // EOF1
	{0xC5, 0xD6, 0xC6, 0xF2}, // EOF2
	{0xC5, 0xD6, 0xE5, 0xF1}, // EOV1
	{0xC5, 0xD6, 0xE5, 0xF2}, // EOV2
}

// IsIBMLabelBlock reports whether data structurally looks like an IBM
// standard label header: exactly 80 bytes, beginning with one of the
// recognized prefixes.
func IsIBMLabelBlock(data []byte) bool {
	if len(data) != 80 {
		return false
	}
	for _, p := range ibmLabelPrefixes {
		if data[0] == p[0] && data[1] == p[1] && data[2] == p[2] && data[3] == p[3] {
			return true
		}
	}
	return false
}
