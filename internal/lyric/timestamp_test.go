package lyric

import "testing"

func TestParseTagBasics(t *testing.T) {
	cases := []struct {
		tag  string
		want int64
		ok   bool
	}{
		{"[00:01.00]", 1000, true},
		{"[00:02.50]", 2500, true},
		{"[01:01.234]", 61234, true},
		{"01:01.234", 61234, true}, // crochets optionnels pour un tag isolé
		{"[1:2]", 62000, true},     // minutes/secondes à 1 chiffre, pas de fraction
		{"[00:01]", 1000, true},
		{"[abc]", 0, false},
		{"pas un tag", 0, false},
		{"[00:01.0000]", 0, false}, // fraction à 4 chiffres : hors grammaire
	}

	for _, c := range cases {
		got, ok := ParseTag(c.tag)
		if ok != c.ok {
			t.Fatalf("ParseTag(%q) ok = %v, attendu %v", c.tag, ok, c.ok)
		}
		if ok && got != c.want {
			t.Fatalf("ParseTag(%q) = %d, attendu %d", c.tag, got, c.want)
		}
	}
}

func TestParseTagFractionScaling(t *testing.T) {
	// la fraction est complétée à droite puis tronquée à 3 chiffres :
	// ".5", ".50" et ".500" valent toutes 500ms
	for _, tag := range []string{"[00:01.5]", "[00:01.50]", "[00:01.500]"} {
		got, ok := ParseTag(tag)
		if !ok {
			t.Fatalf("ParseTag(%q) devrait matcher", tag)
		}
		if got != 1500 {
			t.Fatalf("ParseTag(%q) = %d, attendu 1500", tag, got)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		ms       int64
		template string
		want     string
	}{
		{61234, "[mm:ss.SSS]", "[01:01.234]"},
		{61234, "HH:mm:ss,SSS", "00:01:01,234"},
		{61234, "[mm:ss.SS]", "[01:01.23]"},
		{61234, "[mm:ss.S]", "[01:01.2]"},
		{3661000, "HH:mm:ss", "01:01:01"},
		{0, "[mm:ss.SSS]", "[00:00.000]"},
	}

	for _, c := range cases {
		if got := FormatTimestamp(c.ms, c.template); got != c.want {
			t.Fatalf("FormatTimestamp(%d, %q) = %q, attendu %q", c.ms, c.template, got, c.want)
		}
	}
}

// La substitution est littérale et ordonnée (SSS avant SS avant S) : un "SS"
// littéral hors position de token est quand même substitué. Comportement
// assumé, le test le fige.
func TestFormatTimestampLiteralQuirk(t *testing.T) {
	got := FormatTimestamp(61234, "SSmm")
	if got != "2301" {
		t.Fatalf("quirk littéral : got %q, attendu %q", got, "2301")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	// pour toute valeur tronquée à la précision 3 chiffres,
	// ParseTag(FormatTimestamp(m)) == m
	for _, ms := range []int64{0, 1, 999, 1000, 2500, 61234, 599999} {
		formatted := FormatTimestamp(ms, "mm:ss.SSS")
		back, ok := ParseTag(formatted)
		if !ok {
			t.Fatalf("round trip %d : %q ne parse pas", ms, formatted)
		}
		if back != ms {
			t.Fatalf("round trip %d : reparse = %d (via %q)", ms, back, formatted)
		}
	}
}
