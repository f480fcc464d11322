package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/hupe1980/vector"
	"github.com/hupe1980/vector/internal/conv"
)

var (
	magic         = [4]byte{'V', 'G', 'V', '1'}
	formatVersion = uint16(1)
)

// headerSize covers magic, version, kind, compression and length.
const headerSize = 12

// Encode serializes v.
func Encode[T vector.Number](v vector.Vector[T], opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	kind := kindOf[T]()
	log := o.logger.WithKind(kind.String())

	data, err := encode(v, kind, o.compression)
	log.LogEncode(v.Len(), o.compression, len(data), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func encode[T vector.Number](v vector.Vector[T], kind reflect.Kind, c Compression) ([]byte, error) {
	if !c.valid() {
		return nil, fmt.Errorf("codec: unknown compression %s", c)
	}
	length, err := conv.LenToUint32(v.Len())
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}

	width := widthOf(kind)
	payload := make([]byte, 0, v.Len()*width)
	for x := range v.Values() {
		payload = appendComponent(payload, kind, x)
	}

	out := make([]byte, 0, headerSize+blockHeaderSize+len(payload))
	out = append(out, magic[:]...)
	out = binary.LittleEndian.AppendUint16(out, formatVersion)
	out = append(out, byte(kind), byte(c))
	out = binary.LittleEndian.AppendUint32(out, length)

	return appendBlock(out, payload, c)
}

// Decode deserializes a vector with component type T.
func Decode[T vector.Number](data []byte, opts ...Option) (vector.Vector[T], error) {
	o := applyOptions(opts)
	log := o.logger.WithKind(kindOf[T]().String())

	v, err := decode[T](data, o.maxComponents)
	log.LogDecode(v.Len(), len(data), err)
	if err != nil {
		return vector.Vector[T]{}, err
	}
	return v, nil
}

func decode[T vector.Number](data []byte, maxComponents int) (vector.Vector[T], error) {
	if len(data) < headerSize {
		return vector.Vector[T]{}, fmt.Errorf("%w: header", ErrTruncated)
	}
	if [4]byte(data[0:4]) != magic {
		return vector.Vector[T]{}, ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint16(data[4:6]); version != formatVersion {
		return vector.Vector[T]{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	kind := reflect.Kind(data[6])
	if err := checkKind[T](kind); err != nil {
		return vector.Vector[T]{}, fmt.Errorf("codec: %w", err)
	}

	c := Compression(data[7])
	if !c.valid() {
		return vector.Vector[T]{}, fmt.Errorf("%w: unknown compression %d", ErrCorrupt, data[7])
	}

	n, err := conv.Uint32ToLen(binary.LittleEndian.Uint32(data[8:12]), maxComponents)
	if err != nil {
		return vector.Vector[T]{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	width := widthOf(kind)
	payload, err := readBlock(data[headerSize:], c, n*width)
	if err != nil {
		return vector.Vector[T]{}, err
	}

	return vector.Collect[T](func(yield func(T) bool) {
		for off := 0; off < len(payload); off += width {
			if !yield(readComponent[T](payload[off:off+width], kind)) {
				return
			}
		}
	}), nil
}

func kindOf[T vector.Number]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

func checkKind[T vector.Number](encoded reflect.Kind) error {
	if widthOf(encoded) == 0 {
		return &vector.ErrUnsupportedType{Type: fmt.Sprintf("kind(%d)", uint8(encoded))}
	}
	if want := kindOf[T](); encoded != want {
		return &vector.ErrUnsupportedType{Type: encoded.String()}
	}
	return nil
}

// widthOf returns the encoded byte width of a component kind, or 0 for
// kinds that are not vector components.
func widthOf(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64, reflect.Uintptr, reflect.Float64:
		return 8
	default:
		return 0
	}
}

func appendComponent[T vector.Number](dst []byte, k reflect.Kind, c T) []byte {
	switch k {
	case reflect.Float32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(c)))
	case reflect.Float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(float64(c)))
	case reflect.Int8:
		return append(dst, byte(int8(c)))
	case reflect.Uint8:
		return append(dst, byte(c))
	case reflect.Int16:
		return binary.LittleEndian.AppendUint16(dst, uint16(int16(c)))
	case reflect.Uint16:
		return binary.LittleEndian.AppendUint16(dst, uint16(c))
	case reflect.Int32:
		return binary.LittleEndian.AppendUint32(dst, uint32(int32(c)))
	case reflect.Uint32:
		return binary.LittleEndian.AppendUint32(dst, uint32(c))
	case reflect.Int, reflect.Int64:
		return binary.LittleEndian.AppendUint64(dst, uint64(int64(c)))
	default:
		return binary.LittleEndian.AppendUint64(dst, uint64(c))
	}
}

func readComponent[T vector.Number](b []byte, k reflect.Kind) T {
	switch k {
	case reflect.Float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	case reflect.Float64:
		return T(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	case reflect.Int8:
		return T(int8(b[0]))
	case reflect.Uint8:
		return T(b[0])
	case reflect.Int16:
		return T(int16(binary.LittleEndian.Uint16(b)))
	case reflect.Uint16:
		return T(binary.LittleEndian.Uint16(b))
	case reflect.Int32:
		return T(int32(binary.LittleEndian.Uint32(b)))
	case reflect.Uint32:
		return T(binary.LittleEndian.Uint32(b))
	case reflect.Int, reflect.Int64:
		return T(int64(binary.LittleEndian.Uint64(b)))
	default:
		return T(binary.LittleEndian.Uint64(b))
	}
}
