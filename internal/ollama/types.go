package ollama

import (
	"github.com/agentstation/utc"
)

// TagsResponse is the body of a GET /api/tags listing.
type TagsResponse struct {
	Models []Tag `json:"models"`
}

// Tag describes one installed model in a tags listing. Servers emit both
// model and name for the same identifier; older builds omit model.
type Tag struct {
	Model      string   `json:"model,omitempty" yaml:"model,omitempty"`
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	ModifiedAt utc.Time `json:"modified_at" yaml:"modified_at"`
	Size       int64    `json:"size,omitempty" yaml:"size,omitempty"`
	Digest     string   `json:"digest,omitempty" yaml:"digest,omitempty"`
}

// Canonical returns the identifier used for membership checks: the model
// field when present, otherwise name.
func (t Tag) Canonical() string {
	if t.Model != "" {
		return t.Model
	}
	return t.Name
}

// Names returns the canonical identifiers of every listed model, skipping
// entries that carry neither field.
func (r *TagsResponse) Names() []string {
	names := make([]string, 0, len(r.Models))
	for _, tag := range r.Models {
		if name := tag.Canonical(); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Has reports whether the listing contains the given model.
func (r *TagsResponse) Has(model string) bool {
	_, ok := r.Lookup(model)
	return ok
}

// Lookup returns the tag for a model and whether it is present.
func (r *TagsResponse) Lookup(model string) (*Tag, bool) {
	for i := range r.Models {
		if r.Models[i].Canonical() == model {
			return &r.Models[i], true
		}
	}
	return nil, false
}

// Presence describes one required model's state against a tags listing.
type Presence struct {
	Model      string    `json:"model" yaml:"model"`
	Present    bool      `json:"present" yaml:"present"`
	Size       int64     `json:"size,omitempty" yaml:"size,omitempty"`
	Digest     string    `json:"digest,omitempty" yaml:"digest,omitempty"`
	ModifiedAt *utc.Time `json:"modified_at,omitempty" yaml:"modified_at,omitempty"`
}

// Check resolves each required model against the listing, preserving order.
func (r *TagsResponse) Check(required []string) []Presence {
	presences := make([]Presence, 0, len(required))
	for _, model := range required {
		presence := Presence{Model: model}
		if tag, ok := r.Lookup(model); ok {
			presence.Present = true
			presence.Size = tag.Size
			presence.Digest = tag.Digest
			if !tag.ModifiedAt.IsZero() {
				modified := tag.ModifiedAt
				presence.ModifiedAt = &modified
			}
		}
		presences = append(presences, presence)
	}
	return presences
}

// pullRequest is the body of a POST /api/pull.
type pullRequest struct {
	Model  string `json:"model"`
	Stream bool   `json:"stream"`
}
