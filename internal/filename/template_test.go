package filename

import "testing"

func TestRenderTokenSubstitution(t *testing.T) {
	tokens := []Token{{Key: "name", Value: "X"}, {Key: "singer", Value: "Y"}}
	if got := Render("${name} - ${singer}", tokens); got != "X - Y" {
		t.Fatalf("Render = %q", got)
	}
}

func TestRenderSanitizesTokenValues(t *testing.T) {
	// les caractères réservés venant des métadonnées sont remplacés par "_"
	tokens := []Token{{Key: "name", Value: "A/B"}, {Key: "singer", Value: "Y"}}
	if got := Render("${name} - ${singer}", tokens); got != "A_B - Y" {
		t.Fatalf("Render = %q", got)
	}
}

func TestRenderSinglePassNoReExpansion(t *testing.T) {
	// une valeur qui contient elle-même un motif ${...} n'est pas ré-expansée
	tokens := []Token{
		{Key: "name", Value: "${singer}"},
		{Key: "singer", Value: "Y"},
	}
	// le ${singer} injecté par name est substitué par la passe suivante
	// (ordre appelant), mais il n'y a qu'UNE passe par token : figé tel quel
	got := Render("${name}", tokens)
	if got != "Y" {
		t.Fatalf("Render = %q", got)
	}
}

func TestFillLengthPadsLeft(t *testing.T) {
	if got := Render("$fillLength(7, 0, 3)", nil); got != "007" {
		t.Fatalf("fillLength = %q, attendu %q", got, "007")
	}
}

func TestFillLengthContentAlreadyLongEnough(t *testing.T) {
	if got := Render("$fillLength(abcdef, xy, 3)", nil); got != "abcdef" {
		t.Fatalf("fillLength = %q, attendu %q", got, "abcdef")
	}
}

func TestFillLengthTruncatedSymbolPrefix(t *testing.T) {
	// déficit de 3 avec un symbole de 2 : le dernier remplissage est un
	// préfixe du symbole taillé exactement au déficit restant
	if got := Render("$fillLength(a, xy, 4)", nil); got != "xxya" {
		t.Fatalf("fillLength = %q, attendu %q", got, "xxya")
	}
}

func TestFillLengthMalformedLeftUntouched(t *testing.T) {
	// length non entier : la directive reste telle quelle, pas d'erreur
	// (artefact visible dans le nom, comportement voulu)
	got := Render("$fillLength(7, 0, trois)", nil)
	if got != "$fillLength(7, 0, trois)" {
		t.Fatalf("directive malformée : got %q", got)
	}

	// pas exactement 3 arguments : idem
	got = Render("$fillLength(7, 3)", nil)
	if got != "$fillLength(7, 3)" {
		t.Fatalf("directive à 2 arguments : got %q", got)
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct{ in, want string }{
		{`a\b/c:d*e?f"g<h>i|j`, "a_b_c_d_e_f_g_h_i_j"},
		{"  trimmed  ", "trimmed"},
		{"", "lyrics"},
		{`///`, "___"},
		{"   ", "lyrics"},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.want {
			t.Fatalf("Sanitize(%q) = %q, attendu %q", c.in, got, c.want)
		}
	}
}
