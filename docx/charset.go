package docx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// unmarshalPart decodes an XML part. Parts are UTF-8 or, with a byte order
// mark, UTF-16; a BOM is consumed and UTF-16 is transcoded before the XML
// decoder sees the bytes. A declaration naming a legacy charset such as
// windows-1252 is decoded through charsetReader.
func unmarshalPart(data []byte, v any) error {
	r := transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(encoding.Nop.NewDecoder()))
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	return dec.Decode(v)
}

// charsetReader is called for every declared encoding other than UTF-8.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	name, _ := htmlindex.Name(enc)
	switch name {
	case "utf-8", "utf-16le", "utf-16be":
		// Already UTF-8 after the BOM override.
		return input, nil
	}
	return enc.NewDecoder().Reader(input), nil
}
