package lyric

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/lyricbridge/pkg/model"
)

// trailingCueDurationMs : durée du dernier cue SRT, faute de timestamp suivant.
const trailingCueDurationMs = 2000

// BuildOutputs : point d'entrée du moteur de rendu. Parse le bundle, aligne
// les pistes et rend le(s) document(s) selon la politique choisie.
//
// Le rendu n'échoue jamais sur des pistes absentes ou malformées : une piste
// vide ne contribue simplement aucune clé à l'union. Un bundle entièrement
// vide donne un payload au contenu vide, pas une erreur.
func BuildOutputs(lyrics model.Lyrics, opts Options, transcriber Transcriber) []Payload {
	tracks := opts.Tracks
	if len(tracks) == 0 {
		tracks = []model.Track{model.TrackOriginal}
	}

	maps := BuildTrackMaps(lyrics, opts, transcriber)

	if opts.Policy == model.PolicyIsolated {
		// un document indépendant par piste demandée, chacun restreint à la
		// timeline de sa propre map
		outputs := make([]Payload, 0, len(tracks))
		for _, track := range tracks {
			restricted := TrackMaps{track: maps[track]}
			outputs = append(outputs, Payload{
				Content:   renderDocument(restricted, []model.Track{track}, opts),
				Extension: opts.Format.Extension(),
				Encoding:  opts.Encoding,
				Suffix:    track.String(),
			})
		}
		return outputs
	}

	return []Payload{{
		Content:   renderDocument(maps, tracks, opts),
		Extension: opts.Format.Extension(),
		Encoding:  opts.Encoding,
	}}
}

func renderDocument(maps TrackMaps, tracks []model.Track, opts Options) string {
	timeline := UnionTimeline(maps, tracks)

	if opts.Format == model.FormatSRT {
		return renderSRT(maps, timeline, tracks, opts)
	}
	return renderLRC(maps, timeline, tracks, opts)
}

// renderLRC : une ligne physique par row, timestamp formaté + texte, pas de
// temps de fin explicite.
func renderLRC(maps TrackMaps, timeline []int64, tracks []model.Track, opts Options) string {
	var lines []string
	for _, ts := range timeline {
		if opts.Policy == model.PolicyMerge {
			merged := mergeTexts(maps, tracks, ts, opts)
			if merged == "" {
				// rien à fusionner : le timestamp est sauté entièrement
				continue
			}
			lines = append(lines, FormatTimestamp(ts, opts.LRCTimestamp)+merged)
			continue
		}

		// stagger (et isolated, qui est un stagger mono-piste) : une row par
		// piste dans l'ordre demandé. ignore_empty_lines désactivé => une
		// entrée absente émet quand même une row au texte vide.
		for _, track := range tracks {
			text := maps[track][ts]
			if opts.IgnoreEmptyLines && text == "" {
				continue
			}
			lines = append(lines, FormatTimestamp(ts, opts.LRCTimestamp)+text)
		}
	}

	return strings.Join(lines, "\n")
}

// renderSRT : cues numérotés séquentiellement. Le temps de fin d'un cue est le
// timestamp distinct suivant moins 1ms, ou +2000ms pour le dernier. Un cue au
// corps vide est sauté et ne consomme pas de numéro : la numérotation reste
// contiguë sur les cues émis.
func renderSRT(maps TrackMaps, timeline []int64, tracks []model.Track, opts Options) string {
	var segments []string
	segmentIndex := 1

	for idx, ts := range timeline {
		var endTs int64
		if idx+1 < len(timeline) {
			endTs = timeline[idx+1] - 1
		} else {
			endTs = ts + trailingCueDurationMs
		}
		if opts.MinCueMs > 0 && endTs < ts+opts.MinCueMs {
			endTs = ts + opts.MinCueMs
		}

		var content string
		if opts.Policy == model.PolicyMerge {
			content = mergeTexts(maps, tracks, ts, opts)
			if content == "" {
				continue
			}
		} else {
			var texts []string
			for _, track := range tracks {
				text := maps[track][ts]
				if opts.IgnoreEmptyLines && text == "" {
					continue
				}
				texts = append(texts, text)
			}
			if len(texts) == 0 {
				continue
			}
			content = strings.Join(texts, "\n")
		}

		segments = append(segments, strings.Join([]string{
			fmt.Sprintf("%d", segmentIndex),
			FormatTimestamp(ts, opts.SRTTimestamp) + " --> " + FormatTimestamp(endTs, opts.SRTTimestamp),
			content,
			"",
		}, "\n"))
		segmentIndex++
	}

	return strings.TrimSpace(strings.Join(segments, "\n"))
}

// mergeTexts assemble les textes des pistes pour un timestamp, dans l'ordre
// demandé, joints par le séparateur puis trimés.
func mergeTexts(maps TrackMaps, tracks []model.Track, ts int64, opts Options) string {
	var parts []string
	for _, track := range tracks {
		text := maps[track][ts]
		if opts.IgnoreEmptyLines && text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.TrimSpace(strings.Join(parts, opts.MergeSeparator))
}
