package lyric

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

// Transcriber : capacité de transcription phonétique mot-à-mot.
// Un Transcriber nil côté appelant dégrade la piste pinyin en piste vide
// au lieu de faire échouer le rendu.
type Transcriber interface {
	// Transcribe découpe le texte en tokens phonétiques (un par mot/caractère).
	Transcribe(text string) []string
}

// HanTranscriber : implémentation par défaut, basée sur go-pinyin.
type HanTranscriber struct {
	args pinyin.Args
}

func NewHanTranscriber() *HanTranscriber {
	return &HanTranscriber{args: pinyin.NewArgs()}
}

// Transcribe transcrit les caractères Han en pinyin (sans tons) et laisse le
// reste tel quel. go-pinyin ignore les runes non-Han : on segmente donc le
// texte en runs Han / non-Han pour que les mots latins survivent entiers au
// lieu d'être perdus ou éclatés rune par rune.
func (t *HanTranscriber) Transcribe(text string) []string {
	var tokens []string
	var run []rune
	runIsHan := false

	flush := func() {
		if len(run) == 0 {
			return
		}
		if runIsHan {
			tokens = append(tokens, pinyin.LazyPinyin(string(run), t.args)...)
		} else {
			tokens = append(tokens, strings.Fields(string(run))...)
		}
		run = run[:0]
	}

	for _, r := range text {
		isHan := unicode.Is(unicode.Han, r)
		if isHan != runIsHan {
			flush()
			runIsHan = isHan
		}
		run = append(run, r)
	}
	flush()

	return tokens
}
