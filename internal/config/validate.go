package config

import (
	"fmt"

	"github.com/patrickprogramme/lyricbridge/pkg/model"
)

// Validate vérifie que les champs énumérés de la config sont parseables.
// Appelé après normalizeConfig : les chaînes sont déjà trimées/minusculées.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config nil")
	}

	if _, err := model.ParseSource(c.SearchSource); err != nil {
		return err
	}
	if _, err := model.ParseSearchType(c.SearchType); err != nil {
		return err
	}
	if _, err := model.ParsePolicy(c.ShowLrcType); err != nil {
		return err
	}
	if _, err := model.ParseOutputFormat(c.OutputFormat); err != nil {
		return err
	}
	if _, err := model.ParseEncoding(c.OutputEncoding); err != nil {
		return err
	}
	for _, t := range c.OutputLyricTypes {
		if _, err := model.ParseTrack(t); err != nil {
			return err
		}
	}

	return nil
}
