package resource

import "github.com/32bitkid/dm/blit"

type DecodeFn = func(payload []byte) (*blit.Bitmap, error)

// DecoderLUT selects the unpacker for each item kind. Kinds with no entry
// are kept packed.
type DecoderLUT map[Kind]DecodeFn

var Decoders = DecoderLUT{
	KindBitmap: DecodeBitmap,
	KindFont:   DecodeFont,
}
