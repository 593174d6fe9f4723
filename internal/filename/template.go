package filename

import (
	"regexp"
	"strconv"
	"strings"
)

// fillLengthRE capture les arguments d'une directive $fillLength(content, symbol, length).
var fillLengthRE = regexp.MustCompile(`\$fillLength\(([^)]*)\)`)

// Token : une paire clé/valeur de substitution. L'ordre des tokens est celui
// fourni par l'appelant ; la substitution se fait en une seule passe (une
// valeur qui contient elle-même un motif ${...} n'est PAS ré-expansée).
type Token struct {
	Key   string
	Value string
}

// Render dérive un nom de fichier depuis un template et des métadonnées.
// Trois passes :
//  1. substitution littérale de chaque ${key} par sa valeur
//  2. expansion des directives $fillLength(content, symbol, length)
//  3. sanitization (caractères réservés -> "_", trim, fallback si vide)
//
// Render est total : aucune entrée ne provoque d'erreur. Une directive
// malformée reste telle quelle dans le résultat (artefact visible, voulu).
func Render(template string, tokens []Token) string {
	result := template
	for _, token := range tokens {
		result = strings.ReplaceAll(result, "${"+token.Key+"}", token.Value)
	}

	result = expandFillDirectives(result)

	return Sanitize(result)
}

// expandFillDirectives remplace chaque $fillLength(content, symbol, length)
// par content préfixé de symbol jusqu'à atteindre length caractères.
// Arguments mal formés (pas exactement 3, length non entier) : la directive
// est laissée intacte, pas d'erreur.
func expandFillDirectives(s string) string {
	for _, match := range fillLengthRE.FindAllStringSubmatch(s, -1) {
		raw := match[0]
		params := strings.Split(match[1], ",")
		if len(params) != 3 {
			continue
		}
		content := strings.TrimSpace(params[0])
		symbol := strings.TrimSpace(params[1])
		targetLength, err := strconv.Atoi(strings.TrimSpace(params[2]))
		if err != nil {
			continue
		}

		s = strings.ReplaceAll(s, raw, fill(content, symbol, targetLength))
	}
	return s
}

// fill préfixe content avec symbol (ou un préfixe de symbol taillé exactement
// au déficit restant) jusqu'à ce que la longueur cible soit atteinte ou
// dépassée. Le remplissage se fait à GAUCHE, jamais en suffixe.
// Longueurs comptées en runes, pas en octets.
func fill(content, symbol string, targetLength int) string {
	symbolRunes := []rune(symbol)
	if len(symbolRunes) == 0 {
		return content
	}

	filled := []rune(content)
	for len(filled) < targetLength {
		diff := targetLength - len(filled)
		prefix := symbolRunes
		if diff < len(symbolRunes) {
			prefix = symbolRunes[:diff]
		}
		filled = append(append([]rune{}, prefix...), filled...)
	}
	return string(filled)
}
