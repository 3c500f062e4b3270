package services

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"retailnexa_site/models"

	"gopkg.in/yaml.v3"
)

//go:embed content/landing.yaml
var landingYAML []byte

// LoadLanding parses the embedded content catalog of the marketing page
func LoadLanding() (*models.Landing, error) {
	return DecodeLanding(bytes.NewReader(landingYAML))
}

// DecodeLanding parses a content catalog. Unknown keys are rejected so a
// typo in the copy file fails at start-up instead of rendering blank.
func DecodeLanding(r io.Reader) (*models.Landing, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var landing models.Landing
	if err := dec.Decode(&landing); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("content catalog is empty")
		}
		return nil, fmt.Errorf("failed to decode content catalog: %w", err)
	}

	if err := validateLanding(&landing); err != nil {
		return nil, err
	}
	return &landing, nil
}

func validateLanding(l *models.Landing) error {
	switch {
	case l.Brand == "":
		return fmt.Errorf("content catalog: brand is required")
	case len(l.Plans) == 0:
		return fmt.Errorf("content catalog: at least one plan is required")
	case len(l.Dashboard.Series) < 2:
		return fmt.Errorf("content catalog: dashboard series needs at least two points")
	}

	highlighted := 0
	for _, p := range l.Plans {
		if p.Highlighted {
			highlighted++
		}
	}
	if highlighted > 1 {
		return fmt.Errorf("content catalog: %d plans are highlighted, at most one allowed", highlighted)
	}
	return nil
}
