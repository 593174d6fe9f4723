package lyric

import (
	"reflect"
	"strings"
	"testing"

	"github.com/patrickprogramme/lyricbridge/pkg/model"
)

// fakeTranscriber : transcription déterministe pour les tests (préfixe "py-")
type fakeTranscriber struct{}

func (fakeTranscriber) Transcribe(text string) []string {
	var out []string
	for _, word := range strings.Fields(text) {
		out = append(out, "py-"+word)
	}
	return out
}

func TestLastWriteWinsCollapse(t *testing.T) {
	// deux lignes au même timestamp dans la même piste : la dernière en ordre
	// de parse écrase la première (pas de fusion de textes)
	lyrics := model.Lyrics{Original: "[00:01.00]first\n[00:01.00]second"}
	maps := BuildTrackMaps(lyrics, Options{IgnoreEmptyLines: true}, nil)

	if got := maps[model.TrackOriginal][1000]; got != "second" {
		t.Fatalf("last-write-wins : got %q, attendu %q", got, "second")
	}
}

func TestPreferVerbatim(t *testing.T) {
	lyrics := model.Lyrics{
		Original: "[00:01.00]plain",
		Verbatim: "[00:01.00]ver[00:02.00]batim",
	}

	// sans prefer_verbatim : le blob original est utilisé
	maps := BuildTrackMaps(lyrics, Options{IgnoreEmptyLines: true}, nil)
	if got := maps[model.TrackOriginal][1000]; got != "plain" {
		t.Fatalf("sans prefer_verbatim : got %q", got)
	}

	// avec prefer_verbatim : le blob verbatim est parsé à la place
	maps = BuildTrackMaps(lyrics, Options{IgnoreEmptyLines: true, PreferVerbatim: true}, nil)
	if len(maps[model.TrackOriginal]) != 2 {
		t.Fatalf("avec prefer_verbatim : attendu 2 clés, got %+v", maps[model.TrackOriginal])
	}
}

func TestPreferVerbatimFallsBackWhenEmpty(t *testing.T) {
	// un verbatim qui ne parse rien retombe sur le blob original
	lyrics := model.Lyrics{
		Original: "[00:01.00]plain",
		Verbatim: "pas de tags ici",
	}
	maps := BuildTrackMaps(lyrics, Options{IgnoreEmptyLines: true, PreferVerbatim: true}, nil)
	if got := maps[model.TrackOriginal][1000]; got != "plain" {
		t.Fatalf("fallback verbatim : got %q", got)
	}
}

func TestPinyinTrackDerivedFromOriginal(t *testing.T) {
	lyrics := model.Lyrics{Original: "[00:01.00]deux mots\n[00:02.00]"}
	maps := BuildTrackMaps(lyrics, Options{}, fakeTranscriber{})

	if got := maps[model.TrackPinyin][1000]; got != "py-deux py-mots" {
		t.Fatalf("pinyin dérivé : got %q", got)
	}
	// une ligne originale sans contenu transcriptible garde sa position
	// (texte vide au même timestamp)
	if got, found := maps[model.TrackPinyin][2000]; !found || got != "" {
		t.Fatalf("ligne vide : attendu entrée vide présente, got (%q, %v)", got, found)
	}
}

func TestPinyinTrackDegradesWithoutTranscriber(t *testing.T) {
	// pas de capacité de transcription => piste pinyin vide, pas d'échec
	lyrics := model.Lyrics{Original: "[00:01.00]texte"}
	maps := BuildTrackMaps(lyrics, Options{IgnoreEmptyLines: true}, nil)
	if len(maps[model.TrackPinyin]) != 0 {
		t.Fatalf("transcriber nil : attendu piste vide, got %+v", maps[model.TrackPinyin])
	}
}

func TestUnionTimeline(t *testing.T) {
	maps := TrackMaps{
		model.TrackOriginal:   {1000: "a", 3000: "c"},
		model.TrackTranslated: {1000: "x", 2000: "y"},
		model.TrackPinyin:     {9000: "hors sélection"},
	}

	got := UnionTimeline(maps, []model.Track{model.TrackOriginal, model.TrackTranslated})
	want := []int64{1000, 2000, 3000}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("UnionTimeline = %v, attendu %v", got, want)
	}
}
