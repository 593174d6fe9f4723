package songid

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/patrickprogramme/lyricbridge/pkg/model"
)

// ErrIllegalInput : un token de l'entrée utilisateur n'a pu être résolu en
// identifiant de morceau/album/playlist.
var ErrIllegalInput = errors.New("entrée illisible")

// ErrEmptyInput : l'entrée ne contient aucun token.
var ErrEmptyInput = errors.New("entrée vide")

// SongRef : un identifiant résolu depuis l'entrée utilisateur (id brut, liens
// de partage, URLs de pages...).
type SongRef struct {
	ID     string
	Source model.Source
	Type   model.SearchType
}

// ShortLinkResolver suit un lien court (réseau) et retourne l'URL finale.
// Injecté par l'appelant ; nil = pas de résolution, le token échoue alors
// normalement. Le parsing lui-même ne fait aucun appel réseau.
type ShortLinkResolver func(url string) (string, bool)

// ordres d'examen fixes (l'itération de map n'est pas déterministe)
var (
	sourceOrder     = []model.Source{model.SourceNetEase, model.SourceQQ}
	searchTypeOrder = []model.SearchType{model.SearchTypeSong, model.SearchTypeAlbum, model.SearchTypePlaylist}
)

// mots-clés de détection du provider dans un token
var sourceKeywords = map[model.Source]string{
	model.SourceNetEase: "163.com",
	model.SourceQQ:      "qq.com",
}

// mots-clés précédant l'identifiant dans les URLs de pages, par provider et type
var typeKeywords = map[model.Source]map[model.SearchType]string{
	model.SourceNetEase: {
		model.SearchTypeSong:     "song?id=",
		model.SearchTypeAlbum:    "album?id=",
		model.SearchTypePlaylist: "playlist?id=",
	},
	model.SourceQQ: {
		model.SearchTypeSong:     "songDetail/",
		model.SearchTypeAlbum:    "albumDetail/",
		model.SearchTypePlaylist: "playlist/",
	},
}

// qqSharePatterns : les liens de partage mobiles QQ, convertis vers la forme
// "mot-clé + id" avant extraction.
var qqSharePatterns = []struct {
	re         *regexp.Regexp
	searchType model.SearchType
}{
	{regexp.MustCompile(`playsong\.html\?songid=([^&]*)(?:&.*)?$`), model.SearchTypeSong},
	{regexp.MustCompile(`playsong\.html\?songmid=([^&]*)(?:&.*)?$`), model.SearchTypeSong},
	{regexp.MustCompile(`album\.html\?albummid=([^&]*)(?:&.*)?$`), model.SearchTypeAlbum},
	{regexp.MustCompile(`album\.html\?(?:.*&)?albumId=([^&]*)(?:&.*)?$`), model.SearchTypeAlbum},
	{regexp.MustCompile(`taoge\.html\?id=([^&]*)(?:&.*)?$`), model.SearchTypePlaylist},
}

var (
	tokenSplitRE = regexp.MustCompile(`[\s,;]+`)
	alnumRE      = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	numRE        = regexp.MustCompile(`^\d+$`)
	leadingIDRE  = regexp.MustCompile(`^[A-Za-z0-9]+`)
)

// Tokenize découpe l'entrée brute sur espaces, virgules et points-virgules.
func Tokenize(raw string) []string {
	var tokens []string
	for _, token := range tokenSplitRE.Split(strings.TrimSpace(raw), -1) {
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Parse résout une entrée utilisateur multi-tokens en identifiants typés.
// defaultSource/defaultType s'appliquent aux tokens qui ne trahissent pas
// leur provenance. Le premier token illisible fait échouer l'ensemble.
func Parse(raw string, defaultSource model.Source, defaultType model.SearchType, resolver ShortLinkResolver) ([]SongRef, error) {
	tokens := Tokenize(raw)
	if len(tokens) == 0 {
		return nil, ErrEmptyInput
	}

	var refs []SongRef
	for _, token := range tokens {
		parsed, err := parseToken(token, defaultSource, defaultType, resolver)
		if err != nil {
			return nil, err
		}
		refs = append(refs, parsed...)
	}
	return refs, nil
}

func parseToken(token string, defaultSource model.Source, defaultType model.SearchType, resolver ShortLinkResolver) ([]SongRef, error) {
	source := defaultSource
	for _, candidate := range sourceOrder {
		if strings.Contains(token, sourceKeywords[candidate]) {
			source = candidate
			break
		}
	}

	token = convertShareLink(source, token)

	searchType := defaultType
	for _, candidate := range searchTypeOrder {
		if strings.Contains(token, typeKeywords[source][candidate]) {
			searchType = candidate
			break
		}
	}

	// identifiants nus : numérique pour netease, alphanumérique pour qq
	if source == model.SourceNetEase && numRE.MatchString(token) {
		return []SongRef{{ID: token, Source: source, Type: searchType}}, nil
	}
	if source == model.SourceQQ && alnumRE.MatchString(token) {
		return []SongRef{{ID: token, Source: source, Type: searchType}}, nil
	}

	if id, ok := extractIDAfterKeyword(token, typeKeywords[source][searchType]); ok {
		return []SongRef{{ID: id, Source: source, Type: searchType}}, nil
	}

	// lien court QQ : résolution (réseau) déléguée à l'appelant, puis re-parse
	// récursif de l'URL finale
	if source == model.SourceQQ && strings.Contains(token, "fcgi-bin/u") && resolver != nil {
		if redirected, ok := resolver(token); ok {
			return Parse(redirected, source, searchType, resolver)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrIllegalInput, token)
}

// convertShareLink ramène un lien de partage QQ vers la forme "mot-clé + id".
// Les autres providers passent tels quels.
func convertShareLink(source model.Source, token string) string {
	if source != model.SourceQQ {
		return token
	}
	for _, pattern := range qqSharePatterns {
		if m := pattern.re.FindStringSubmatch(token); m != nil {
			return typeKeywords[source][pattern.searchType] + m[1]
		}
	}
	return token
}

// extractIDAfterKeyword extrait la séquence alphanumérique qui suit keyword.
func extractIDAfterKeyword(token, keyword string) (string, bool) {
	index := strings.Index(token, keyword)
	if index == -1 {
		return "", false
	}
	suffix := token[index+len(keyword):]
	id := leadingIDRE.FindString(suffix)
	if id == "" {
		return "", false
	}
	return id, true
}
