// Package rowid implements the universal row-identifier codec.
//
// A universal rowid (URowID) is a self-describing byte string:
//
//	byte 0      version
//	bytes 1..n  body, interpreted per version
//
// Version 1 carries an encoded primary key (opaque, ordered bytewise).
// Version 2 carries a heap address: 8-byte big-endian partition id followed
// by an 8-byte big-endian row offset. Any other version is a legacy physical
// form that this codec refuses to order.
package rowid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Version identifies the body layout of a URowID.
type Version byte

const (
	// VersionPrimaryKey marks a rowid built from the row's primary key.
	VersionPrimaryKey Version = 1

	// VersionHeap marks a rowid built from a heap address.
	VersionHeap Version = 2
)

const heapBodyLen = 16

// ErrEmpty is returned when decoding a zero-length rowid.
var ErrEmpty = errors.New("rowid: empty")

// UnsupportedVersionError reports a rowid version this codec cannot order.
type UnsupportedVersionError struct {
	Version byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("rowid: unsupported version %d", e.Version)
}

// URowID is a decoded universal rowid.
type URowID struct {
	Version Version
	Body    []byte
}

// Decode validates raw and splits it into version and body.
// The returned body aliases raw.
func Decode(raw []byte) (URowID, error) {
	if len(raw) == 0 {
		return URowID{}, ErrEmpty
	}
	v := Version(raw[0])
	body := raw[1:]
	switch v {
	case VersionPrimaryKey:
		if len(body) == 0 {
			return URowID{}, fmt.Errorf("rowid: primary-key rowid has empty key")
		}
	case VersionHeap:
		if len(body) != heapBodyLen {
			return URowID{}, fmt.Errorf("rowid: heap rowid body is %d bytes, want %d", len(body), heapBodyLen)
		}
	default:
		return URowID{}, &UnsupportedVersionError{Version: raw[0]}
	}
	return URowID{Version: v, Body: body}, nil
}

// EncodePrimaryKey builds a version-1 rowid from an encoded key.
func EncodePrimaryKey(key []byte) []byte {
	out := make([]byte, 0, len(key)+1)
	out = append(out, byte(VersionPrimaryKey))
	return append(out, key...)
}

// EncodeHeap builds a version-2 rowid from a heap address.
func EncodeHeap(partition, offset uint64) []byte {
	out := make([]byte, 1+heapBodyLen)
	out[0] = byte(VersionHeap)
	binary.BigEndian.PutUint64(out[1:9], partition)
	binary.BigEndian.PutUint64(out[9:], offset)
	return out
}

// Heap returns the partition and offset of a version-2 rowid.
func (r URowID) Heap() (partition, offset uint64, ok bool) {
	if r.Version != VersionHeap || len(r.Body) != heapBodyLen {
		return 0, 0, false
	}
	return binary.BigEndian.Uint64(r.Body[:8]), binary.BigEndian.Uint64(r.Body[8:]), true
}

// Compare orders two decoded rowids: by version first, then bytewise over
// the body. Big-endian heap addresses make bytewise order numeric order.
func Compare(a, b URowID) int {
	if a.Version != b.Version {
		if a.Version < b.Version {
			return -1
		}
		return 1
	}
	return bytes.Compare(a.Body, b.Body)
}

// CompareRaw decodes both operands and compares them.
func CompareRaw(a, b []byte) (int, error) {
	ra, err := Decode(a)
	if err != nil {
		return 0, err
	}
	rb, err := Decode(b)
	if err != nil {
		return 0, err
	}
	return Compare(ra, rb), nil
}
