package scan

import "strconv"

// The fingerprint below must match the catalog's published scheme bit for
// bit, since the resulting values are compared against externally computed
// ones. The constants are part of that contract, not a tunable choice.
// Reference: https://github.com/meza/curseforge-fingerprint/blob/main/src/addon/fingerprint.cpp
const hashMultiplex = 1540483477

// EmptyFolderFingerprint is the aggregate fingerprint of a folder with no
// content files: HashFileHashes over an empty sequence.
const EmptyFolderFingerprint uint32 = 1540447798

func isHashWhitespace(b byte) bool {
	return b == '\t' || b == '\n' || b == '\r' || b == ' '
}

func nonWhitespaceLength(data []byte) uint32 {
	var n uint32
	for _, b := range data {
		if !isHashWhitespace(b) {
			n++
		}
	}
	return n
}

// HashBuffer computes the catalog fingerprint of a single file's content.
// Whitespace bytes never contribute, so two buffers differing only in
// whitespace hash identically regardless of prior normalization.
func HashBuffer(data []byte) uint32 {
	num2 := 1 ^ nonWhitespaceLength(data)

	var num3 uint32
	var num4 uint32

	for _, b := range data {
		if isHashWhitespace(b) {
			continue
		}

		num3 |= uint32(b) << num4
		num4 += 8

		if num4 == 32 {
			num6 := num3 * hashMultiplex
			num7 := (num6 ^ num6>>24) * hashMultiplex

			num2 = num2*hashMultiplex ^ num7
			num3 = 0
			num4 = 0
		}
	}

	if num4 > 0 {
		num2 = (num2 ^ num3) * hashMultiplex
	}

	num6 := (num2 ^ num2>>13) * hashMultiplex

	return num6 ^ num6>>15
}

// HashFileHashes combines per-file fingerprints into a folder fingerprint.
// The input must already be sorted ascending; sorting is the scanner's
// responsibility so the hasher itself carries no ordering policy. The
// catalog computes the aggregate over the decimal rendering of each hash,
// concatenated in order.
func HashFileHashes(sorted []uint32) uint32 {
	buf := make([]byte, 0, len(sorted)*10)
	for _, h := range sorted {
		buf = strconv.AppendUint(buf, uint64(h), 10)
	}
	return HashBuffer(buf)
}
