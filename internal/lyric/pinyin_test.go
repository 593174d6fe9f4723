package lyric

import (
	"reflect"
	"testing"
)

func TestHanTranscriberChinese(t *testing.T) {
	tr := NewHanTranscriber()
	got := tr.Transcribe("你好")
	want := []string{"ni", "hao"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Transcribe = %v, attendu %v", got, want)
	}
}

func TestHanTranscriberKeepsLatinWordsWhole(t *testing.T) {
	// les runs non-Han survivent entiers (mot à mot), ils ne sont ni perdus
	// ni éclatés rune par rune
	tr := NewHanTranscriber()
	got := tr.Transcribe("Hello world 世界")
	want := []string{"Hello", "world", "shi", "jie"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Transcribe = %v, attendu %v", got, want)
	}
}

func TestHanTranscriberEmpty(t *testing.T) {
	tr := NewHanTranscriber()
	if got := tr.Transcribe(""); len(got) != 0 {
		t.Fatalf("chaîne vide : attendu aucun token, got %v", got)
	}
}
