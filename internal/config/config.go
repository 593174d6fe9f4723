package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/patrickprogramme/lyricbridge/internal/assets"
	"github.com/patrickprogramme/lyricbridge/internal/fsutil"
	"github.com/patrickprogramme/lyricbridge/pkg/model"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir"`

	// Recherche
	SearchSource string `yaml:"search_source"`
	SearchType   string `yaml:"search_type"`

	// Rendu
	ShowLrcType       string   `yaml:"show_lrc_type"` // stagger | merge | isolated
	LrcMergeSeparator string   `yaml:"lrc_merge_separator"`
	OutputFormat      string   `yaml:"output_format"`   // lrc | srt
	OutputEncoding    string   `yaml:"output_encoding"` // utf-8 | utf-8-sig | utf-16 | utf-32
	OutputLyricTypes  []string `yaml:"output_lyric_types"`
	IgnoreEmptyLines  bool     `yaml:"ignore_empty_lines"`
	PreferVerbatim    bool     `yaml:"prefer_verbatim"`

	// ClampShortCues : applique un plancher de 500ms aux cues SRT trop courts.
	// Désactivé par défaut (comportement du chemin de rendu historique).
	ClampShortCues bool `yaml:"clamp_short_cues"`

	// Templates de timestamp (tokens HH mm ss SSS SS S)
	LrcTimestampFormat string `yaml:"lrc_timestamp_format"`
	SrtTimestampFormat string `yaml:"srt_timestamp_format"`

	// Noms de fichiers
	OutputFilenameFormat string `yaml:"output_filename_format"`
	SingerSeparator      string `yaml:"singer_separator"`

	// Traduction automatique des pistes manquantes (collaborateur externe)
	AutoTranslateMissing bool   `yaml:"auto_translate_missing"`
	TranslationTarget    string `yaml:"translation_target"`

	// Cookies provider (surchargeables par variables d'environnement, voir ApplyEnv)
	NetEaseCookie string `yaml:"netease_cookie"`
	QQCookie      string `yaml:"qq_cookie"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	c.OutputDir = "."

	c.SearchSource = string(model.SourceNetEase)
	c.SearchType = string(model.SearchTypeSong)

	c.ShowLrcType = string(model.PolicyStagger)
	c.LrcMergeSeparator = " / "
	c.OutputFormat = string(model.FormatLRC)
	c.OutputEncoding = string(model.EncodingUTF8)
	c.OutputLyricTypes = []string{string(model.TrackOriginal), string(model.TrackTranslated)}
	c.IgnoreEmptyLines = true
	c.PreferVerbatim = false
	c.ClampShortCues = false

	c.LrcTimestampFormat = "[mm:ss.SSS]"
	c.SrtTimestampFormat = "HH:mm:ss,SSS"

	c.OutputFilenameFormat = "${name} - ${singer}"
	c.SingerSeparator = ","

	c.AutoTranslateMissing = false
	c.TranslationTarget = "en"

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on le crée à partir de
// l'exemple embarqué dans internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "lyricbridge.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// On déserialise dans cfg initialisé : les champs absents conservent les
	// valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		// re-normaliser au cas où la migration a modifié des valeurs
		cfg.normalizeConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration invalide (%s) : %w", path, err)
	}

	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	c.OutputDir = filepath.Clean(c.OutputDir)

	c.SearchSource = strings.TrimSpace(strings.ToLower(c.SearchSource))
	c.SearchType = strings.TrimSpace(strings.ToLower(c.SearchType))
	c.ShowLrcType = strings.TrimSpace(strings.ToLower(c.ShowLrcType))
	c.OutputFormat = strings.TrimSpace(strings.ToLower(c.OutputFormat))
	c.OutputEncoding = strings.TrimSpace(strings.ToLower(c.OutputEncoding))

	if c.LrcTimestampFormat == "" {
		c.LrcTimestampFormat = "[mm:ss.SSS]"
	}
	if c.SrtTimestampFormat == "" {
		c.SrtTimestampFormat = "HH:mm:ss,SSS"
	}
	if strings.TrimSpace(c.OutputFilenameFormat) == "" {
		c.OutputFilenameFormat = "${name} - ${singer}"
	}
	if c.SingerSeparator == "" {
		c.SingerSeparator = ","
	}
	if len(c.OutputLyricTypes) == 0 {
		c.OutputLyricTypes = []string{string(model.TrackOriginal)}
	}
	for i, t := range c.OutputLyricTypes {
		c.OutputLyricTypes[i] = strings.TrimSpace(strings.ToLower(t))
	}
	if strings.TrimSpace(c.TranslationTarget) == "" {
		c.TranslationTarget = "en"
	}
}

// ApplyEnv surcharge les cookies provider depuis l'environnement
// (typiquement alimenté par un fichier .env chargé dans main).
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LYRICBRIDGE_NETEASE_COOKIE"); v != "" {
		c.NetEaseCookie = v
	}
	if v := os.Getenv("LYRICBRIDGE_QQ_COOKIE"); v != "" {
		c.QQCookie = v
	}
}
