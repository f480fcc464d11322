package codec_test

import (
	"fmt"

	"github.com/hupe1980/vector"
	"github.com/hupe1980/vector/codec"
)

func Example() {
	v := vector.New(1.5, 2.5, 0, 0, 0, 0, 0, 0)

	data, err := codec.Encode(v, codec.WithCompression(codec.CompressionZSTD))
	if err != nil {
		panic(err)
	}

	got, err := codec.Decode[float64](data)
	if err != nil {
		panic(err)
	}
	fmt.Println(got.Equal(v))

	_, err = codec.Decode[int32](data)
	fmt.Println(err)
	// Output:
	// true
	// codec: unsupported type: float64
}
