// Package guid implements the 16-byte GUID value and its five text forms:
//
//	N  00000000000000000000000000000000
//	D  00000000-0000-0000-0000-000000000000
//	B  {00000000-0000-0000-0000-000000000000}
//	P  (00000000-0000-0000-0000-000000000000)
//	X  {0x00000000,0x0000,0x0000,{0x00,0x00,0x00,0x00,0x00,0x00,0x00,0x00}}
//
// The byte layout is the mixed-endian one used by Windows and .NET: the first
// three fields are little-endian, the last eight bytes are stored as they
// appear in the text. FromUUID and UUID convert to and from the RFC 4122 byte
// order so that both print the same text.
package guid

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

type GUID [16]byte

// Empty is the all-zero GUID.
var Empty GUID

// FromFields builds a GUID from its a-b-c-d layout.
func FromFields(a uint32, b, c uint16, d, e, f, g, h, i, j, k byte) (out GUID) {
	binary.LittleEndian.PutUint32(out[0:], a)
	binary.LittleEndian.PutUint16(out[4:], b)
	binary.LittleEndian.PutUint16(out[6:], c)
	out[8], out[9], out[10], out[11] = d, e, f, g
	out[12], out[13], out[14], out[15] = h, i, j, k
	return out
}

// FromBytes copies a 16-byte GUID in its stored layout.
func FromBytes(b []byte) (out GUID, err error) {
	if len(b) != len(out) {
		return out, fmt.Errorf("guid: FromBytes: need 16 bytes, found %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

// New returns a random version 4 GUID. It panics if the random source fails,
// as uuid.New does.
func New() GUID { return FromUUID(uuid.New()) }

// FromUUID converts an RFC 4122 UUID. The text forms of u and the result are
// identical.
func FromUUID(u uuid.UUID) (out GUID) {
	out[0], out[1], out[2], out[3] = u[3], u[2], u[1], u[0]
	out[4], out[5] = u[5], u[4]
	out[6], out[7] = u[7], u[6]
	copy(out[8:], u[8:])
	return out
}

// UUID converts g to RFC 4122 byte order.
func (g GUID) UUID() (u uuid.UUID) {
	u[0], u[1], u[2], u[3] = g[3], g[2], g[1], g[0]
	u[4], u[5] = g[5], g[4]
	u[6], u[7] = g[7], g[6]
	copy(u[8:], g[8:])
	return u
}

func (g GUID) A() uint32 { return binary.LittleEndian.Uint32(g[0:]) }
func (g GUID) B() uint16 { return binary.LittleEndian.Uint16(g[4:]) }
func (g GUID) C() uint16 { return binary.LittleEndian.Uint16(g[6:]) }

// Tail returns the final eight bytes, d through k.
func (g GUID) Tail() (out [8]byte) {
	copy(out[:], g[8:])
	return out
}

func (g GUID) IsZero() bool { return g == Empty }

// Bytes returns a copy of the stored layout.
func (g GUID) Bytes() []byte { return append([]byte(nil), g[:]...) }

func (g GUID) MarshalText() ([]byte, error) {
	return g.AppendFormat(nil, "D")
}

// UnmarshalText accepts any of the five forms.
func (g *GUID) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}
