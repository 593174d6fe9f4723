package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/patrickprogramme/lyricbridge/internal/cache"
	"github.com/patrickprogramme/lyricbridge/internal/clipboard"
	"github.com/patrickprogramme/lyricbridge/internal/config"
	"github.com/patrickprogramme/lyricbridge/internal/export"
	"github.com/patrickprogramme/lyricbridge/internal/lyric"
	"github.com/patrickprogramme/lyricbridge/pkg/model"
)

// CLIFlags contient les informations venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	OutDir     string

	// Fichiers d'entrée, un blob LRC par piste (chemins optionnels)
	OriginalPath        string
	TranslatedPath      string
	TransliterationPath string
	VerbatimPath        string

	// Métadonnées de la chanson pour les tokens du nom de fichier
	SongID     string
	Name       string
	Singers    string
	Album      string
	DurationMs int64

	// Surcharges ponctuelles de la config
	Format string
	Policy string

	// Copier le premier document rendu dans le presse-papier
	Clipboard bool
}

// App orchestre les différentes dépendances (config, moteur de rendu, cache, FS)
type App struct {
	cfg         *config.Config
	flags       *CLIFlags
	transcriber lyric.Transcriber
	bundles     *cache.BundleCache
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, flags *CLIFlags, transcriber lyric.Transcriber, bundles *cache.BundleCache) *App {
	if bundles == nil {
		bundles = cache.New()
	}
	return &App{
		cfg:         cfg,
		flags:       flags,
		transcriber: transcriber,
		bundles:     bundles,
	}
}

// Run exécute le flux principal : charge le bundle de paroles depuis les
// fichiers d'entrée (via le cache), rend les documents selon la config et
// les écrit dans le dossier de sortie.
func (a *App) Run(ctx context.Context) error {
	a.applyFlagOverrides()

	song, err := a.songFromFlags()
	if err != nil {
		return err
	}

	source, err := model.ParseSource(a.cfg.SearchSource)
	if err != nil {
		return err
	}

	key := cache.Key{
		Source:         source,
		SongID:         song.SongID,
		PreferVerbatim: a.cfg.PreferVerbatim,
	}

	// lookup avec cache explicite : même clé => réutilisation du bundle déjà
	// chargé, pas de relecture des fichiers
	lookup := func(model.Song) (model.Lyrics, bool) {
		if bundle, found := a.bundles.Lookup(key); found {
			return bundle, true
		}
		bundle, err := a.loadBundle(source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "erreur: chargement des paroles: %v\n", err)
			return model.Lyrics{}, false
		}
		a.bundles.Store(key, bundle)
		return bundle, true
	}

	outDir := a.flags.OutDir
	if outDir == "" {
		outDir = a.cfg.OutputDir
	}

	exported, err := export.ExportSongs(ctx, []model.Song{song}, lookup, outDir, a.cfg, a.transcriber, nil, nil)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if len(exported) == 0 {
		return fmt.Errorf("aucun fichier exporté")
	}
	for _, path := range exported {
		fmt.Printf("Paroles écrites dans :\n%s\n", path)
	}

	if a.flags.Clipboard {
		bundle, _ := a.bundles.Lookup(key)
		plans, err := export.PlanSong(song, 1, bundle, a.cfg, a.transcriber)
		if err != nil {
			return err
		}
		if len(plans) > 0 {
			if err := clipboard.WriteAll(plans[0].Payload.Content); err != nil {
				return fmt.Errorf("copie presse-papier: %w", err)
			}
			fmt.Println("Document copié dans le presse-papier.")
		}
	}

	return nil
}

// applyFlagOverrides applique les flags -format / -policy par-dessus la config
func (a *App) applyFlagOverrides() {
	if a.flags.Format != "" {
		a.cfg.OutputFormat = strings.ToLower(a.flags.Format)
	}
	if a.flags.Policy != "" {
		a.cfg.ShowLrcType = strings.ToLower(a.flags.Policy)
	}
}

func (a *App) songFromFlags() (model.Song, error) {
	if a.flags.OriginalPath == "" && a.flags.TranslatedPath == "" &&
		a.flags.TransliterationPath == "" && a.flags.VerbatimPath == "" {
		return model.Song{}, fmt.Errorf("aucun fichier de paroles fourni (voir -original, -translated, -translit, -verbatim)")
	}

	name := a.flags.Name
	if name == "" {
		name = "untitled"
	}
	id := a.flags.SongID
	if id == "" {
		id = "local"
	}

	var singers []string
	for _, s := range strings.Split(a.flags.Singers, ",") {
		if s = strings.TrimSpace(s); s != "" {
			singers = append(singers, s)
		}
	}

	source, err := model.ParseSource(a.cfg.SearchSource)
	if err != nil {
		return model.Song{}, err
	}

	return model.Song{
		Source:     source,
		SongID:     id,
		DisplayID:  id,
		Name:       name,
		Singers:    singers,
		Album:      a.flags.Album,
		DurationMs: a.flags.DurationMs,
	}, nil
}

// loadBundle lit les blobs de chaque piste depuis les fichiers d'entrée.
// Un chemin vide donne un blob vide (piste absente, jamais une erreur).
func (a *App) loadBundle(source model.Source) (model.Lyrics, error) {
	original, err := readTrackFile(a.flags.OriginalPath)
	if err != nil {
		return model.Lyrics{}, err
	}
	translated, err := readTrackFile(a.flags.TranslatedPath)
	if err != nil {
		return model.Lyrics{}, err
	}
	transliteration, err := readTrackFile(a.flags.TransliterationPath)
	if err != nil {
		return model.Lyrics{}, err
	}
	verbatim, err := readTrackFile(a.flags.VerbatimPath)
	if err != nil {
		return model.Lyrics{}, err
	}

	return model.Lyrics{
		Source:          source,
		Original:        original,
		Translated:      translated,
		Transliteration: transliteration,
		Verbatim:        verbatim,
	}, nil
}

func readTrackFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("lecture %s: %w", path, err)
	}
	return string(data), nil
}
