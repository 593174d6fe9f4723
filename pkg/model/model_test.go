package model

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "00:00"},
		{185000, "03:05"},
		{3600000, "60:00"},
		{-500, "00:00"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.ms); got != c.want {
			t.Fatalf("FormatDuration(%d) = %q, attendu %q", c.ms, got, c.want)
		}
	}
}

func TestParseHelpersRejectUnknownValues(t *testing.T) {
	if _, err := ParseSource("spotify"); err == nil {
		t.Fatal("source inconnue : erreur attendue")
	}
	if _, err := ParseTrack("karaoke"); err == nil {
		t.Fatal("piste inconnue : erreur attendue")
	}
	if _, err := ParsePolicy("mixed"); err == nil {
		t.Fatal("politique inconnue : erreur attendue")
	}
	if _, err := ParseOutputFormat("vtt"); err == nil {
		t.Fatal("format inconnu : erreur attendue")
	}
	if _, err := ParseEncoding("latin-1"); err == nil {
		t.Fatal("encodage inconnu : erreur attendue")
	}
}

func TestParseHelpersRoundTrip(t *testing.T) {
	for _, track := range []Track{TrackOriginal, TrackTranslated, TrackTransliteration, TrackPinyin} {
		got, err := ParseTrack(track.String())
		if err != nil || got != track {
			t.Fatalf("ParseTrack(%q) = (%v, %v)", track, got, err)
		}
	}
	for _, policy := range []Policy{PolicyStagger, PolicyMerge, PolicyIsolated} {
		got, err := ParsePolicy(policy.String())
		if err != nil || got != policy {
			t.Fatalf("ParsePolicy(%q) = (%v, %v)", policy, got, err)
		}
	}
}

func TestLyricsEmpty(t *testing.T) {
	if !(Lyrics{}).Empty() {
		t.Fatal("bundle zéro : Empty() devrait être true")
	}
	if (Lyrics{Translated: "[00:01.00]x"}).Empty() {
		t.Fatal("bundle avec une piste : Empty() devrait être false")
	}
}
