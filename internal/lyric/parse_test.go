package lyric

import (
	"reflect"
	"testing"
)

func TestParseLRCBasic(t *testing.T) {
	got := ParseLRC("[00:01.00]Hello\n[00:02.50]World", true)
	want := []Line{
		{TimestampMs: 1000, Text: "Hello"},
		{TimestampMs: 2500, Text: "World"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseLRC = %+v, attendu %+v", got, want)
	}
}

func TestParseLRCMultipleTagsPerLine(t *testing.T) {
	// une ligne peut porter plusieurs tags : même texte, timestamps différents
	// (convention des refrains répétés)
	got := ParseLRC("[00:01.00][00:03.00]Echo", true)
	want := []Line{
		{TimestampMs: 1000, Text: "Echo"},
		{TimestampMs: 3000, Text: "Echo"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseLRC = %+v, attendu %+v", got, want)
	}
}

func TestParseLRCDropsUntimedLines(t *testing.T) {
	// les en-têtes de métadonnées sans tag de timestamp sont ignorés
	raw := "artist: Someone\n[ti:Titre]\n[00:01.00]Contenu\nnote libre"
	got := ParseLRC(raw, true)
	if len(got) != 1 || got[0].Text != "Contenu" {
		t.Fatalf("attendu uniquement la ligne horodatée, got %+v", got)
	}
}

func TestParseLRCIgnoreEmpty(t *testing.T) {
	raw := "[00:01.00]A\n[00:02.00]\n[00:03.00]B"

	// ignoreEmpty : la ligne vide disparaît avec tous ses tags
	got := ParseLRC(raw, true)
	if len(got) != 2 {
		t.Fatalf("ignoreEmpty=true : attendu 2 lignes, got %+v", got)
	}

	// sans ignoreEmpty : la ligne vide est conservée
	got = ParseLRC(raw, false)
	if len(got) != 3 || got[1].Text != "" {
		t.Fatalf("ignoreEmpty=false : attendu 3 lignes dont une vide, got %+v", got)
	}
}

func TestParseLRCStableSortOnEqualTimestamps(t *testing.T) {
	// tri stable : à timestamp égal, l'ordre d'apparition est conservé
	// (l'ordre compte pour le collapse last-write-wins de l'aligneur)
	got := ParseLRC("[00:01.00]first\n[00:00.50]avant\n[00:01.00]second", true)
	want := []Line{
		{TimestampMs: 500, Text: "avant"},
		{TimestampMs: 1000, Text: "first"},
		{TimestampMs: 1000, Text: "second"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseLRC = %+v, attendu %+v", got, want)
	}
}

func TestParseLRCHandlesCRLFAndEmptyInput(t *testing.T) {
	if got := ParseLRC("", true); got != nil {
		t.Fatalf("blob vide : attendu nil, got %+v", got)
	}

	got := ParseLRC("[00:01.00]A\r\n[00:02.00]B", true)
	if len(got) != 2 || got[0].Text != "A" || got[1].Text != "B" {
		t.Fatalf("CRLF : got %+v", got)
	}
}
