package export

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/patrickprogramme/lyricbridge/internal/config"
	"github.com/patrickprogramme/lyricbridge/internal/filename"
	"github.com/patrickprogramme/lyricbridge/internal/fsutil"
	"github.com/patrickprogramme/lyricbridge/internal/lyric"
	"github.com/patrickprogramme/lyricbridge/internal/textenc"
	"github.com/patrickprogramme/lyricbridge/pkg/model"
)

// shortCueFloorMs : plancher appliqué aux cues SRT quand clamp_short_cues est actif.
const shortCueFloorMs = 500

// Export : un fichier de sortie planifié pour une chanson (nom complet + payload).
type Export struct {
	Filename string
	Payload  lyric.Payload
}

// OptionsFromConfig traduit la configuration en options du moteur de rendu.
// Erreur si un champ énuméré n'est pas parseable (config non validée).
func OptionsFromConfig(cfg *config.Config) (lyric.Options, error) {
	var opts lyric.Options

	policy, err := model.ParsePolicy(cfg.ShowLrcType)
	if err != nil {
		return opts, err
	}
	format, err := model.ParseOutputFormat(cfg.OutputFormat)
	if err != nil {
		return opts, err
	}
	encoding, err := model.ParseEncoding(cfg.OutputEncoding)
	if err != nil {
		return opts, err
	}

	tracks := make([]model.Track, 0, len(cfg.OutputLyricTypes))
	for _, t := range cfg.OutputLyricTypes {
		track, err := model.ParseTrack(t)
		if err != nil {
			return opts, err
		}
		tracks = append(tracks, track)
	}

	opts = lyric.Options{
		IgnoreEmptyLines: cfg.IgnoreEmptyLines,
		PreferVerbatim:   cfg.PreferVerbatim,
		Tracks:           tracks,
		Format:           format,
		Policy:           policy,
		MergeSeparator:   cfg.LrcMergeSeparator,
		LRCTimestamp:     cfg.LrcTimestampFormat,
		SRTTimestamp:     cfg.SrtTimestampFormat,
		Encoding:         encoding,
	}
	if cfg.ClampShortCues {
		opts.MinCueMs = shortCueFloorMs
	}
	return opts, nil
}

// FilenameTokens assemble les tokens de substitution du template de nom de
// fichier pour une chanson. index est la position 1-based dans le batch.
func FilenameTokens(song model.Song, index int, singerSeparator string) []filename.Token {
	singers := ""
	for i, s := range song.Singers {
		if i > 0 {
			singers += singerSeparator
		}
		singers += s
	}

	return []filename.Token{
		{Key: "index", Value: strconv.Itoa(index)},
		{Key: "id", Value: song.DisplayID},
		{Key: "name", Value: song.Name},
		{Key: "singer", Value: singers},
		{Key: "album", Value: song.Album},
		{Key: "duration", Value: model.FormatDuration(song.DurationMs)},
	}
}

// PlanSong rend les payloads d'une chanson et leur associe leur nom de fichier
// définitif. Les payloads isolés reçoivent un suffixe "_<piste>" avant
// l'extension, comme côté provider.
func PlanSong(song model.Song, index int, lyrics model.Lyrics, cfg *config.Config, transcriber lyric.Transcriber) ([]Export, error) {
	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	base := filename.Render(cfg.OutputFilenameFormat, FilenameTokens(song, index, cfg.SingerSeparator))

	payloads := lyric.BuildOutputs(lyrics, opts, transcriber)
	exports := make([]Export, 0, len(payloads))
	for _, payload := range payloads {
		suffix := ""
		if payload.Suffix != "" {
			suffix = "_" + payload.Suffix
		}
		exports = append(exports, Export{
			Filename: fmt.Sprintf("%s%s.%s", base, suffix, payload.Extension),
			Payload:  payload,
		})
	}
	return exports, nil
}

// Translator : collaborateur externe de traduction automatique. Les appels
// réseau concrets (Baidu, Caiyun...) vivent hors de ce dépôt ; ici on ne
// connaît que le contrat.
type Translator interface {
	Translate(lines []string, target string) ([]string, error)
}

// FillMissingTranslation reconstruit une piste translated en LRC à partir de
// la piste originale quand le provider n'en fournit pas. Les timestamps des
// lignes originales sont reformatés avec le template LRC configuré.
// Bundle inchangé si la piste translated existe déjà ou si l'original est vide.
func FillMissingTranslation(lyrics model.Lyrics, cfg *config.Config, translator Translator) (model.Lyrics, error) {
	if lyrics.Translated != "" || translator == nil {
		return lyrics, nil
	}

	lines := lyric.ParseLRC(lyrics.Original, cfg.IgnoreEmptyLines)
	if len(lines) == 0 {
		return lyrics, nil
	}

	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}

	translated, err := translator.Translate(texts, cfg.TranslationTarget)
	if err != nil {
		return lyrics, fmt.Errorf("traduction: %w", err)
	}

	out := ""
	for i, line := range lines {
		if i >= len(translated) {
			break
		}
		if i > 0 {
			out += "\n"
		}
		out += lyric.FormatTimestamp(line.TimestampMs, cfg.LrcTimestampFormat) + translated[i]
	}
	lyrics.Translated = out
	return lyrics, nil
}

// ExportSongs : orchestration d'un batch. Pour chaque chanson : lookup du
// bundle, traduction optionnelle, rendu, encodage, écriture atomique.
// Un échec sur une chanson est loggé et n'interrompt PAS les suivantes ;
// seuls une config inexploitable ou un ctx annulé arrêtent le batch.
// Retourne les chemins écrits.
func ExportSongs(
	ctx context.Context,
	songs []model.Song,
	lookup func(model.Song) (model.Lyrics, bool),
	outDir string,
	cfg *config.Config,
	transcriber lyric.Transcriber,
	translator Translator,
	logf func(format string, v ...interface{}),
) ([]string, error) {
	if logf == nil {
		logf = log.Printf
	}

	// valider la config de rendu une fois avant de toucher au disque
	if _, err := OptionsFromConfig(cfg); err != nil {
		return nil, err
	}

	encoding, err := model.ParseEncoding(cfg.OutputEncoding)
	if err != nil {
		return nil, err
	}

	var exported []string
	for i, song := range songs {
		if err := ctx.Err(); err != nil {
			return exported, err
		}

		lyrics, ok := lookup(song)
		if !ok {
			logf("skip %s : récupération des paroles échouée", song.Name)
			continue
		}

		if cfg.AutoTranslateMissing && translator != nil {
			filled, err := FillMissingTranslation(lyrics, cfg, translator)
			if err != nil {
				// échec de traduction : on continue avec les pistes disponibles
				logf("traduction échouée pour %s : %v", song.Name, err)
			} else {
				lyrics = filled
			}
		}

		plans, err := PlanSong(song, i+1, lyrics, cfg, transcriber)
		if err != nil {
			return exported, err
		}

		for _, plan := range plans {
			data, err := textenc.Encode(plan.Payload.Content, encoding)
			if err != nil {
				logf("encodage échoué pour %s : %v", plan.Filename, err)
				continue
			}
			path, err := fsutil.SaveFileUnique(outDir, plan.Filename, data, true)
			if err != nil {
				logf("écriture échouée pour %s : %v", plan.Filename, err)
				continue
			}
			exported = append(exported, path)
		}

		logf("saved %s (%s)", song.Name, song.DisplayID)
	}

	return exported, nil
}
