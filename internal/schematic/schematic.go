// Package schematic is the integration point for generated part
// schematics. The upstream rendering service is not wired: the service
// declines every request, with or without an API key, and callers are
// expected to behave identically whether content exists or not.
package schematic

import "github.com/sirupsen/logrus"

// Service would accept a part name and fuel type and return rendered
// blueprint content. It currently never does.
type Service struct {
	apiKey string
}

// NewService builds the stub. An empty key is the normal case.
func NewService(apiKey string) *Service {
	if apiKey == "" {
		logrus.Debug("schematic: no API key configured, generation disabled")
	}
	return &Service{apiKey: apiKey}
}

// Generate returns the rendered schematic for the part, or false when none
// is available. Content generation is not wired, so this always declines;
// with a key configured it logs the request it would have made.
func (s *Service) Generate(partName, fuelType string) (string, bool) {
	if s.apiKey == "" {
		return "", false
	}
	logrus.WithFields(logrus.Fields{
		"part": partName,
		"fuel": fuelType,
	}).Info("schematic generation requested but rendering is not wired")
	return "", false
}
