package renderres

import (
	"encoding/binary"
	"hash"
)

// Hash write helpers. FNV-1a is deterministic across runs within one
// process series, which is all bind group identity requires; the hash is
// not part of any persisted or wire format.

func hashWriteByte(h hash.Hash64, v byte) {
	_, _ = h.Write([]byte{v})
}

func hashWriteUint64(h hash.Hash64, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = h.Write(buf[:])
}
