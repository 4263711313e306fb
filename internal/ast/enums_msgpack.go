package ast

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshots store enums by ordinal. The zero ordinal is legal here: it
// stands for a field the stream did not set.

var (
	_ msgpack.CustomEncoder = Direction(0)
	_ msgpack.CustomDecoder = (*Direction)(nil)
	_ msgpack.CustomEncoder = Mode(0)
	_ msgpack.CustomDecoder = (*Mode)(nil)
	_ msgpack.CustomEncoder = UnaryOperatorKind(0)
	_ msgpack.CustomDecoder = (*UnaryOperatorKind)(nil)
	_ msgpack.CustomEncoder = BinaryOperatorKind(0)
	_ msgpack.CustomDecoder = (*BinaryOperatorKind)(nil)
	_ msgpack.CustomEncoder = AttributeKind(0)
	_ msgpack.CustomDecoder = (*AttributeKind)(nil)
	_ msgpack.CustomEncoder = ImplicitDefinition(0)
	_ msgpack.CustomDecoder = (*ImplicitDefinition)(nil)
)

func encodeOrdinal[E ~uint8 | ~uint16](enc *msgpack.Encoder, v E) error {
	return enc.EncodeUint(uint64(v))
}

func decodeOrdinal[E ~uint8 | ~uint16](dec *msgpack.Decoder, what string, n int) (E, error) {
	v, err := dec.DecodeUint64()
	if err != nil {
		return 0, err
	}
	if v >= uint64(n) { // #nosec G115 -- n is a table length
		return 0, fmt.Errorf("invalid %s %d", what, v)
	}
	return E(v), nil
}

func (d Direction) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeOrdinal(enc, d) }

func (d *Direction) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	*d, err = decodeOrdinal[Direction](dec, "direction", len(directionTags))
	return err
}

func (m Mode) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeOrdinal(enc, m) }

func (m *Mode) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	*m, err = decodeOrdinal[Mode](dec, "mode", len(modeTags))
	return err
}

func (k UnaryOperatorKind) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeOrdinal(enc, k) }

func (k *UnaryOperatorKind) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	*k, err = decodeOrdinal[UnaryOperatorKind](dec, "unary operator", len(unaryOperatorTags))
	return err
}

func (k BinaryOperatorKind) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeOrdinal(enc, k) }

func (k *BinaryOperatorKind) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	*k, err = decodeOrdinal[BinaryOperatorKind](dec, "binary operator", len(binaryOperatorTags))
	return err
}

func (k AttributeKind) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeOrdinal(enc, k) }

func (k *AttributeKind) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	*k, err = decodeOrdinal[AttributeKind](dec, "attribute kind", len(attributeKindTags))
	return err
}

func (d ImplicitDefinition) EncodeMsgpack(enc *msgpack.Encoder) error { return encodeOrdinal(enc, d) }

func (d *ImplicitDefinition) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	*d, err = decodeOrdinal[ImplicitDefinition](dec, "implicit definition", len(implicitDefinitionTable))
	return err
}
