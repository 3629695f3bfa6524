package langsync

import (
	"encoding/json"
	"time"
)

// Dictionary is a translation dictionary: a possibly nested mapping from
// translation keys to translated strings. Nested namespaces decode as
// map[string]any values, matching the JSON the API serves.
type Dictionary map[string]any

// Project is the metadata the API holds for a localization project.
type Project struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	SourceLanguage string    `json:"sourceLanguage"`
	Languages      []string  `json:"languages"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

// apiEnvelope is the response wrapper every 2xx API payload uses.
type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
	Meta    map[string]any  `json:"meta,omitempty"`
}

// Cache keys are composed from stable identifiers so that a project,
// its full dictionary set, and each per-language dictionary cache
// independently.

func projectKey(projectID string) string {
	return "project:" + projectID
}

func translationsKey(projectID string) string {
	return "translations:" + projectID
}

func languageKey(projectID, language string) string {
	return "translations:" + projectID + ":" + language
}
