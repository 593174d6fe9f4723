package model

import "fmt"

// Song regroupe les métadonnées d'une chanson telles que renvoyées par un
// provider. DisplayID est l'identifiant montré à l'utilisateur (peut différer
// de l'identifiant interne utilisé par l'API du provider).
type Song struct {
	Source     Source
	SongID     string
	DisplayID  string
	Name       string
	Singers    []string
	Album      string
	DurationMs int64
	PicURL     string
	Extra      map[string]string
}

// Lyrics : le bundle brut de paroles d'une chanson, un blob multi-lignes par
// piste. N'importe quel champ peut être vide selon ce que le provider fournit.
// Verbatim est un encodage alternatif de la piste originale (tag par syllabe,
// façon karaoké), utilisé uniquement si l'option prefer_verbatim est active.
type Lyrics struct {
	Source          Source
	Original        string
	Translated      string
	Transliteration string
	Verbatim        string
	Pinyin          string
}

// Empty renvoie true si aucun blob du bundle ne contient de texte.
func (l Lyrics) Empty() bool {
	return l.Original == "" && l.Translated == "" && l.Transliteration == "" &&
		l.Verbatim == "" && l.Pinyin == ""
}

// FormatDuration formate une durée en millisecondes en "MM:SS" pour le token
// ${duration} des noms de fichiers. Les valeurs négatives sont ramenées à 0.
func FormatDuration(durationMs int64) string {
	totalSeconds := durationMs / 1000
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
