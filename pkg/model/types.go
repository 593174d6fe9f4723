package model

import "fmt"

// Source représente le service de streaming d'où viennent les paroles.
type Source string

const (
	SourceNetEase Source = "netease"
	SourceQQ      Source = "qq"
)

// du nom en chaine à la constante de type Source, return une erreur si source inconnue
func ParseSource(s string) (Source, error) {
	switch s {
	case "netease":
		return SourceNetEase, nil
	case "qq":
		return SourceQQ, nil
	default:
		return "", fmt.Errorf("source demandée inconnue: %s", s)
	}
}

func (s Source) String() string {
	return string(s)
}

// SearchType représente le type d'identifiant recherché chez un provider.
type SearchType string

const (
	SearchTypeSong     SearchType = "song"
	SearchTypeAlbum    SearchType = "album"
	SearchTypePlaylist SearchType = "playlist"
)

func ParseSearchType(s string) (SearchType, error) {
	switch s {
	case "song":
		return SearchTypeSong, nil
	case "album":
		return SearchTypeAlbum, nil
	case "playlist":
		return SearchTypePlaylist, nil
	default:
		return "", fmt.Errorf("type de recherche inconnu: %s", s)
	}
}

// Track identifie une piste parallèle de paroles partageant la même timeline.
// pinyin est une piste dérivée (transcription phonétique de l'original),
// jamais parsée depuis un blob.
type Track string

const (
	TrackOriginal        Track = "original"
	TrackTranslated      Track = "translated"
	TrackTransliteration Track = "transliteration"
	TrackPinyin          Track = "pinyin"
)

func ParseTrack(s string) (Track, error) {
	switch s {
	case "original":
		return TrackOriginal, nil
	case "translated":
		return TrackTranslated, nil
	case "transliteration":
		return TrackTransliteration, nil
	case "pinyin":
		return TrackPinyin, nil
	default:
		return "", fmt.Errorf("piste de paroles inconnue: %s", s)
	}
}

func (t Track) String() string {
	return string(t)
}

// OutputFormat : format du document rendu.
// lrc = texte horodaté simple, srt = blocs de sous-titres numérotés
type OutputFormat string

const (
	FormatLRC OutputFormat = "lrc"
	FormatSRT OutputFormat = "srt"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "lrc":
		return FormatLRC, nil
	case "srt":
		return FormatSRT, nil
	default:
		return "", fmt.Errorf("format de sortie inconnu: %s", s)
	}
}

// Extension retourne l'extension de fichier sans le point.
func (f OutputFormat) Extension() string {
	return string(f)
}

func (f OutputFormat) String() string {
	return string(f)
}

// Policy : politique de combinaison des pistes sélectionnées.
// - stagger : une ligne par piste et par timestamp, à la suite
// - merge : les textes des pistes concaténés en une seule ligne
// - isolated : un document séparé par piste
type Policy string

const (
	PolicyStagger  Policy = "stagger"
	PolicyMerge    Policy = "merge"
	PolicyIsolated Policy = "isolated"
)

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "stagger":
		return PolicyStagger, nil
	case "merge":
		return PolicyMerge, nil
	case "isolated":
		return PolicyIsolated, nil
	default:
		return "", fmt.Errorf("politique de combinaison inconnue: %s", s)
	}
}

func (p Policy) String() string {
	return string(p)
}

// Encoding : encodage texte appliqué à l'écriture des fichiers de sortie.
// Les valeurs reprennent les identifiants côté provider ("utf-8-sig" = BOM).
type Encoding string

const (
	EncodingUTF8    Encoding = "utf-8"
	EncodingUTF8BOM Encoding = "utf-8-sig"
	EncodingUTF16   Encoding = "utf-16"
	EncodingUTF32   Encoding = "utf-32"
)

func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "utf-8":
		return EncodingUTF8, nil
	case "utf-8-sig":
		return EncodingUTF8BOM, nil
	case "utf-16":
		return EncodingUTF16, nil
	case "utf-32":
		return EncodingUTF32, nil
	default:
		return "", fmt.Errorf("encodage de sortie inconnu: %s", s)
	}
}

func (e Encoding) String() string {
	return string(e)
}
