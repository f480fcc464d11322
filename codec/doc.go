// Package codec encodes vectors into a compact, self-describing binary form.
//
// An encoded vector starts with a fixed header naming the component kind,
// the compression algorithm and the component count, followed by a single
// block holding the little-endian components:
//
//	magic   [4]byte  "VGV1"
//	version uint16
//	kind    uint8    reflect.Kind of the component type
//	comp    uint8    Compression
//	length  uint32   component count
//	block   [uncompressed uint32][compressed uint32][data]
//
// A compressed size of 0 marks a raw block. Compression falls back to a raw
// block when it does not pay off.
//
// # Usage
//
//	data, err := codec.Encode(vector.New(1.5, 2.5), codec.WithCompression(codec.CompressionZSTD))
//	v, err := codec.Decode[float64](data)
//
// Decoding into a component type other than the encoded one fails with
// *vector.ErrUnsupportedType.
package codec
