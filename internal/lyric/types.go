package lyric

import (
	"github.com/patrickprogramme/lyricbridge/pkg/model"
)

// Line : une ligne de paroles horodatée, produite par le parsing.
// Immuable une fois construite. Plusieurs Line peuvent partager le même
// timestamp (une ligne source peut porter plusieurs tags avec le même texte,
// convention utilisée pour les refrains répétés).
type Line struct {
	TimestampMs int64
	Text        string
}

// Options regroupe tout ce dont le moteur de rendu a besoin pour une passe.
// Construites par l'appelant depuis la configuration, jamais mutées ici.
type Options struct {
	IgnoreEmptyLines bool
	PreferVerbatim   bool

	// Tracks : pistes demandées, dans l'ordre de sortie (l'ordre est significatif).
	Tracks []model.Track

	Format model.OutputFormat
	Policy model.Policy

	MergeSeparator string

	// Templates de timestamp (tokens HH mm ss SSS SS S), un par format.
	LRCTimestamp string
	SRTTimestamp string

	// MinCueMs : durée plancher (ms) appliquée aux cues SRT trop courts.
	// 0 = pas de plancher (comportement historique du chemin de rendu principal).
	MinCueMs int64

	Encoding model.Encoding
}

// Payload : un document rendu, prêt à être encodé et écrit par l'appelant.
// Suffix est non vide uniquement en mode isolated (identifiant de la piste).
type Payload struct {
	Content   string
	Extension string
	Encoding  model.Encoding
	Suffix    string
}
