package textenc

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/patrickprogramme/lyricbridge/pkg/model"
)

// Encode transforme le contenu d'un payload en octets selon l'encodage
// configuré. Les variantes 16/32 bits sont écrites little-endian avec BOM,
// "utf-8-sig" ajoute le BOM UTF-8 (convention des players qui l'exigent).
func Encode(content string, enc model.Encoding) ([]byte, error) {
	switch enc {
	case model.EncodingUTF8, "":
		return []byte(content), nil
	case model.EncodingUTF8BOM:
		return unicode.UTF8BOM.NewEncoder().Bytes([]byte(content))
	case model.EncodingUTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(content))
	case model.EncodingUTF32:
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM).NewEncoder().Bytes([]byte(content))
	default:
		return nil, fmt.Errorf("encodage non supporté: %s", enc)
	}
}
