package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/patrickprogramme/lyricbridge/internal/app"
	"github.com/patrickprogramme/lyricbridge/internal/assets"
	"github.com/patrickprogramme/lyricbridge/internal/bootstrap"
	"github.com/patrickprogramme/lyricbridge/internal/cache"
	"github.com/patrickprogramme/lyricbridge/internal/config"
	"github.com/patrickprogramme/lyricbridge/internal/lyric"
)

func main() {
	flags := parseFlags()

	// cookies provider éventuels depuis un fichier .env (absent = silencieux)
	_ = godotenv.Load()

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
		fmt.Printf("Lancement depuis: %s\n", exePath)
	}

	// emplacement config par défaut
	if flags.ConfigPath == "lyricbridge.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "lyricbridge.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	cfg.ApplyEnv()

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, flags, lyric.NewHanTranscriber(), cache.New())
	if err := a.Run(ctx); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", "lyricbridge.yaml", "path to config file")
	flag.StringVar(&f.OutDir, "out", "", "dossier de sortie (défaut: output_dir de la config)")

	flag.StringVar(&f.OriginalPath, "original", "", "fichier LRC de la piste originale")
	flag.StringVar(&f.TranslatedPath, "translated", "", "fichier LRC de la piste traduite")
	flag.StringVar(&f.TransliterationPath, "translit", "", "fichier LRC de la piste translittérée")
	flag.StringVar(&f.VerbatimPath, "verbatim", "", "fichier LRC verbatim (tag par syllabe)")

	flag.StringVar(&f.SongID, "id", "", "identifiant de la chanson (token ${id})")
	flag.StringVar(&f.Name, "name", "", "titre de la chanson (token ${name})")
	flag.StringVar(&f.Singers, "singer", "", "interprètes, séparés par des virgules (token ${singer})")
	flag.StringVar(&f.Album, "album", "", "album (token ${album})")
	flag.Int64Var(&f.DurationMs, "duration", 0, "durée en millisecondes (token ${duration})")

	flag.StringVar(&f.Format, "format", "", "surcharge du format de sortie (lrc|srt)")
	flag.StringVar(&f.Policy, "policy", "", "surcharge de la politique (stagger|merge|isolated)")
	flag.BoolVar(&f.Clipboard, "clipboard", false, "copier le premier document rendu dans le presse-papier")

	flag.Parse()
	return f
}
