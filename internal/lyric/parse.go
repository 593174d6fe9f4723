package lyric

import (
	"sort"
	"strings"
)

// ParseLRC scanne un blob de texte brut et produit la séquence ordonnée des
// lignes horodatées.
//
// Algorithme :
//   - découpage en lignes physiques
//   - une ligne sans aucun tag est entièrement ignorée (c'est voulu : ça
//     élimine les en-têtes de métadonnées non horodatés [ti:...] [ar:...]
//     que certains providers préfixent)
//   - une ligne peut porter plusieurs tags : on émet une Line par tag, même
//     texte, en préservant l'ordre des tags
//   - si ignoreEmpty est actif et que le contenu est vide après retrait des
//     tags, la ligne (et tous ses tags) est ignorée
//
// La séquence finale est triée par timestamp croissant avec un tri STABLE :
// à timestamp égal, l'ordre relatif d'apparition (ordre des lignes, puis ordre
// des tags dans la ligne) est conservé. Cet ordre compte ensuite pour le
// collapse last-write-wins de l'aligneur.
func ParseLRC(text string, ignoreEmpty bool) []Line {
	if text == "" {
		return nil
	}

	var lines []Line
	for _, rawLine := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		matches := tagRE.FindAllStringSubmatch(rawLine, -1)
		if len(matches) == 0 {
			continue
		}

		content := strings.TrimSpace(tagRE.ReplaceAllString(rawLine, ""))
		if ignoreEmpty && content == "" {
			continue
		}

		for _, m := range matches {
			lines = append(lines, Line{
				TimestampMs: tagGroupsToMs(m[1], m[2], m[3]),
				Text:        content,
			})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].TimestampMs < lines[j].TimestampMs
	})
	return lines
}
