package internal

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vocabulary holds the curated enumerations the volunteer mapping filters
// and remaps against.
type Vocabulary struct {
	ValidRoles  []string          `yaml:"valid_roles"`
	ValidTypes  []string          `yaml:"valid_types"`
	CauseLabels map[string]string `yaml:"cause_labels"`
}

// LoadVocabulary loads and parses a YAML vocabulary file from the given
// path.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	return ParseVocabulary(data)
}

// ParseVocabulary parses YAML data into a Vocabulary.
func ParseVocabulary(data []byte) (Vocabulary, error) {
	var vocab Vocabulary

	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return Vocabulary{}, fmt.Errorf("failed to parse vocabulary YAML: %w", err)
	}

	applyVocabularyDefaults(&vocab)

	return vocab, nil
}

// applyVocabularyDefaults fills any missing section with the compiled-in
// defaults.
func applyVocabularyDefaults(vocab *Vocabulary) {
	defaults := DefaultVocabulary()

	if len(vocab.ValidRoles) == 0 {
		vocab.ValidRoles = defaults.ValidRoles
	}
	if len(vocab.ValidTypes) == 0 {
		vocab.ValidTypes = defaults.ValidTypes
	}
	if len(vocab.CauseLabels) == 0 {
		vocab.CauseLabels = defaults.CauseLabels
	}
}
