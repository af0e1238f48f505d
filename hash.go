package xlstyle

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// hasher feeds the fields of a value type into xxhash. Fields that the
// equality rules ignore must not be written, so that equal values always hash
// the same.
type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newHasher() *hasher {
	return &hasher{d: xxhash.New()}
}

func (h *hasher) uint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	h.d.Write(h.buf[:])
}

func (h *hasher) int(v int) {
	h.uint64(uint64(v))
}

func (h *hasher) byte(v byte) {
	h.d.Write([]byte{v})
}

func (h *hasher) bool(v bool) {
	if v {
		h.byte(1)
		return
	}
	h.byte(0)
}

// float writes v; -0 and +0 compare equal, so both hash as +0.
func (h *hasher) float(v float64) {
	if v == 0 {
		v = 0
	}
	h.uint64(math.Float64bits(v))
}

func (h *hasher) string(s string) {
	h.int(len(s))
	h.d.WriteString(s)
}

func (h *hasher) color(c Color) {
	h.byte(byte(c.kind))
	switch c.kind {
	case ColorKindRGB:
		h.uint64(uint64(c.rgb))
	case ColorKindIndexed:
		h.int(c.index)
	case ColorKindTheme:
		h.byte(byte(c.theme))
		h.float(c.tint)
	}
}

func (h *hasher) sum() uint64 {
	return h.d.Sum64()
}
