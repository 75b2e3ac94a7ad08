package target

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Daily picks the same target for everyone on a given UTC date using
// HMAC(salt, YYYY-MM-DD) reduced into the range.
type Daily struct {
	Salt string
	Now  func() time.Time
}

// NewDaily returns a date-keyed Provider. now defaults to time.Now.
func NewDaily(salt string, now func() time.Time) Daily {
	if now == nil {
		now = time.Now
	}
	return Daily{Salt: salt, Now: now}
}

func (d Daily) Draw(low, high int64) int64 {
	n := span(low, high)
	h := hmac.New(sha256.New, []byte(d.Salt))
	h.Write([]byte(DateKey(d.Now())))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := new(big.Int).SetUint64(binary.BigEndian.Uint64(sum[:8]))
	return offset(low, v.Mod(v, n))
}
