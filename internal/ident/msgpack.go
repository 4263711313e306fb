package ident

import (
	"github.com/vmihailenco/msgpack/v5"

	"vhdlast/internal/source"
)

var (
	_ msgpack.CustomEncoder = Identifier{}
	_ msgpack.CustomDecoder = (*Identifier)(nil)
)

// EncodeMsgpack writes the identifier as a fixed-size array so cached
// arenas keep the original spelling and the declaration location.
func (id Identifier) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(6); err != nil {
		return err
	}
	if err := enc.EncodeString(string(id.normalized)); err != nil {
		return err
	}
	if err := enc.EncodeString(id.original); err != nil {
		return err
	}
	if err := enc.EncodeBool(id.hasLoc); err != nil {
		return err
	}
	for _, v := range [3]uint32{uint32(id.loc.File), id.loc.Line, id.loc.Col} {
		if err := enc.EncodeUint32(v); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack reads the form written by EncodeMsgpack.
func (id *Identifier) DecodeMsgpack(dec *msgpack.Decoder) error {
	if _, err := dec.DecodeArrayLen(); err != nil {
		return err
	}
	normalized, err := dec.DecodeString()
	if err != nil {
		return err
	}
	original, err := dec.DecodeString()
	if err != nil {
		return err
	}
	hasLoc, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	var triple [3]uint32
	for i := range triple {
		if triple[i], err = dec.DecodeUint32(); err != nil {
			return err
		}
	}
	*id = Identifier{
		normalized: Normalized(normalized),
		original:   original,
		hasLoc:     hasLoc,
		loc:        source.Location{File: source.FileID(triple[0]), Line: triple[1], Col: triple[2]},
	}
	return nil
}
