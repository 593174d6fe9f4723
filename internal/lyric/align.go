package lyric

import (
	"sort"
	"strings"

	"github.com/patrickprogramme/lyricbridge/pkg/model"
)

// TrackMaps : une map timestamp -> texte par piste.
type TrackMaps map[model.Track]map[int64]string

// BuildTrackMaps parse le bundle brut et construit les maps de chaque piste.
//
// Piste originale : si prefer_verbatim est actif et que le blob verbatim est
// non vide, on parse le verbatim ; si ce parse ne donne rien, on retombe sur
// le blob original. Translated et transliteration sont parsées directement.
// La piste pinyin est DÉRIVÉE de la piste originale résolue, jamais parsée
// depuis un blob (transcriber nil => piste pinyin vide, pas d'échec).
func BuildTrackMaps(lyrics model.Lyrics, opts Options, transcriber Transcriber) TrackMaps {
	originalLines := resolveOriginalLines(lyrics, opts)

	return TrackMaps{
		model.TrackOriginal:        linesToMap(originalLines),
		model.TrackTranslated:      linesToMap(ParseLRC(lyrics.Translated, opts.IgnoreEmptyLines)),
		model.TrackTransliteration: linesToMap(ParseLRC(lyrics.Transliteration, opts.IgnoreEmptyLines)),
		model.TrackPinyin:          linesToMap(buildPinyinLines(originalLines, transcriber)),
	}
}

func resolveOriginalLines(lyrics model.Lyrics, opts Options) []Line {
	raw := lyrics.Original
	if opts.PreferVerbatim && lyrics.Verbatim != "" {
		raw = lyrics.Verbatim
	}

	lines := ParseLRC(raw, opts.IgnoreEmptyLines)
	if len(lines) == 0 && raw != lyrics.Original {
		// le verbatim n'a rien donné, retomber sur l'original
		lines = ParseLRC(lyrics.Original, opts.IgnoreEmptyLines)
	}
	return lines
}

// buildPinyinLines dérive une ligne phonétique par ligne originale, au même
// timestamp. Les lignes sans contenu transcriptible donnent une ligne au
// texte vide : l'alignement positionnel est conservé.
func buildPinyinLines(original []Line, transcriber Transcriber) []Line {
	if transcriber == nil {
		return nil
	}

	converted := make([]Line, 0, len(original))
	for _, line := range original {
		if strings.TrimSpace(line.Text) == "" {
			converted = append(converted, Line{TimestampMs: line.TimestampMs})
			continue
		}
		converted = append(converted, Line{
			TimestampMs: line.TimestampMs,
			Text:        strings.Join(transcriber.Transcribe(line.Text), " "),
		})
	}
	return converted
}

// linesToMap collapse une séquence ordonnée en map : insertion dans l'ordre,
// une clé dupliquée est ÉCRASÉE par l'insertion suivante (last-write-wins,
// cohérent avec le tri stable de ParseLRC). Pas de fusion de textes.
func linesToMap(lines []Line) map[int64]string {
	mapping := make(map[int64]string, len(lines))
	for _, line := range lines {
		mapping[line.TimestampMs] = line.Text
	}
	return mapping
}

// UnionTimeline : l'union des clés des pistes sélectionnées, dédupliquée et
// triée par ordre croissant.
func UnionTimeline(maps TrackMaps, tracks []model.Track) []int64 {
	seen := make(map[int64]struct{})
	for _, track := range tracks {
		for ts := range maps[track] {
			seen[ts] = struct{}{}
		}
	}

	timeline := make([]int64, 0, len(seen))
	for ts := range seen {
		timeline = append(timeline, ts)
	}
	sort.Slice(timeline, func(i, j int) bool { return timeline[i] < timeline[j] })
	return timeline
}
