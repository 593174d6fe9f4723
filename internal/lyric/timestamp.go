package lyric

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// tagRE : grammaire d'un tag de timestamp dans un blob LRC.
// minutes 1-2 chiffres, secondes 1-2 chiffres, fraction optionnelle 1-3 chiffres.
// Les tags malformés ne matchent simplement pas : ils sont invisibles pour le
// scan, pas rejetés (aucune erreur levée).
var tagRE = regexp.MustCompile(`\[(\d{1,2}):(\d{1,2})(?:\.(\d{1,3}))?\]`)

// singleTagRE : même grammaire pour un tag isolé, crochets optionnels
// (ParseTag accepte "01:02.5" aussi bien que "[01:02.5]").
var singleTagRE = regexp.MustCompile(`^\[?(\d{1,2}):(\d{1,2})(?:\.(\d{1,3}))?\]?$`)

// ParseTag convertit un tag isolé en millisecondes.
// Retourne false si le texte ne respecte pas la grammaire.
func ParseTag(tag string) (int64, bool) {
	m := singleTagRE.FindStringSubmatch(strings.TrimSpace(tag))
	if m == nil {
		return 0, false
	}
	return tagGroupsToMs(m[1], m[2], m[3]), true
}

// tagGroupsToMs calcule les millisecondes depuis les groupes capturés.
// La fraction est complétée à droite avec des zéros puis tronquée à 3 chiffres :
// ".5", ".50" et ".500" valent tous 500ms.
func tagGroupsToMs(minutes, seconds, fraction string) int64 {
	min, _ := strconv.ParseInt(minutes, 10, 64)
	sec, _ := strconv.ParseInt(seconds, 10, 64)

	frac := fraction
	if frac == "" {
		frac = "0"
	}
	for len(frac) < 3 {
		frac += "0"
	}
	ms, _ := strconv.ParseInt(frac[:3], 10, 64)

	return min*60000 + sec*1000 + ms
}

// timestampTokens : ordre de substitution FIXE. SSS doit passer avant SS,
// et SS avant S, parce que "SS" est une sous-chaîne de "SSS" : un remplacement
// global dans le mauvais ordre corromprait la sortie.
var timestampTokens = []string{"HH", "mm", "ss", "SSS", "SS", "S"}

// FormatTimestamp formate des millisecondes selon un template mêlant texte
// littéral et tokens {HH, mm, ss, SSS, SS, S}.
//
// Limitation assumée : la substitution est littérale, pas positionnelle.
// Un template contenant la séquence "SS" hors d'une position de token voulue
// sera quand même substitué. C'est le comportement historique, on le garde.
func FormatTimestamp(timestampMs int64, template string) string {
	totalSeconds := timestampMs / 1000
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	ms := timestampMs % 1000
	if ms < 0 {
		ms = 0
	}

	values := map[string]string{
		"HH":  fmt.Sprintf("%02d", hours),
		"mm":  fmt.Sprintf("%02d", minutes),
		"ss":  fmt.Sprintf("%02d", seconds),
		"SSS": fmt.Sprintf("%03d", ms),
		"SS":  fmt.Sprintf("%02d", ms/10),
		"S":   strconv.FormatInt(ms/100, 10),
	}

	out := template
	for _, token := range timestampTokens {
		out = strings.ReplaceAll(out, token, values[token])
	}
	return out
}
