package filename

import (
	"regexp"
	"strings"
)

// fallbackName : nom de secours si la sanitization vide tout.
const fallbackName = "lyrics"

// reservedRunes : caractères interdits dans un nom de fichier (Windows étant
// le plus restrictif, on prend son jeu réservé).
var reservedRunes = regexp.MustCompile(`[\\/:*?"<>|]`)

// Sanitize remplace chaque caractère réservé par "_" puis trim les espaces
// en bordure. Chaîne vide après nettoyage -> nom de secours.
func Sanitize(name string) string {
	name = reservedRunes.ReplaceAllString(name, "_")
	name = strings.TrimSpace(name)
	if name == "" {
		return fallbackName
	}
	return name
}
