package assets

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"time"
)

// ULID-style identifiers: 26 Crockford base32 characters over a 48-bit
// millisecond timestamp and 80 bits of randomness, kept dependency-free.
// A sequence embedded in the random section keeps IDs unique and sortable
// within a single millisecond.

const crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

var (
	idMu    sync.Mutex
	lastTS  uint64
	lastSeq uint16
)

// NewID returns a fresh lexicographically sortable identifier.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	ts := uint64(time.Now().UnixMilli())
	if ts == lastTS {
		lastSeq++
	} else {
		lastTS = ts
		lastSeq = 0
	}

	var b [16]byte
	// Timestamp in the first 6 bytes (big-endian 48-bit).
	b[0] = byte(ts >> 40)
	b[1] = byte(ts >> 32)
	b[2] = byte(ts >> 24)
	b[3] = byte(ts >> 16)
	b[4] = byte(ts >> 8)
	b[5] = byte(ts)
	rand.Read(b[6:])
	binary.BigEndian.PutUint16(b[6:8], lastSeq)

	return encodeCrockford(b)
}

// encodeCrockford renders the 128-bit value as 26 base32 digits, taking
// five bits per digit from the low end. 26 digits cover 130 bits, so the
// leading digit carries only the top three bits of the timestamp.
func encodeCrockford(b [16]byte) string {
	hi := binary.BigEndian.Uint64(b[0:8])
	lo := binary.BigEndian.Uint64(b[8:16])

	var out [26]byte
	for i := 25; i >= 0; i-- {
		out[i] = crockford[lo&31]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}
