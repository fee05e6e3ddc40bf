package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors reported when content cannot drive the view.
var (
	ErrNoImages       = errors.New("content has no images")
	ErrNoFacts        = errors.New("content has no facts")
	ErrInvalidContent = errors.New("invalid content")
)

// ImageItem is one entry of the carousel. It has no identity beyond its position.
type ImageItem struct {
	URL     string `json:"url" yaml:"url"`
	Caption string `json:"caption" yaml:"caption"`
}

// BreedInfo describes a single cat breed shown in the breeds grid.
type BreedInfo struct {
	Name        string `json:"name" yaml:"name"`
	Origin      string `json:"origin" yaml:"origin"`
	Personality string `json:"personality" yaml:"personality"`
}

// Content holds every static list rendered by the page
type Content struct {
	Title           string      `json:"title" yaml:"title"`
	Tagline         string      `json:"tagline" yaml:"tagline"`
	About           string      `json:"about" yaml:"about"`
	Images          []ImageItem `json:"images" yaml:"images"`
	Characteristics []string    `json:"characteristics" yaml:"characteristics"`
	Facts           []string    `json:"facts" yaml:"facts"`
	Breeds          []BreedInfo `json:"breeds" yaml:"breeds"`
}

// Validate reports whether the content can drive the carousel and the fact
// ticker. Empty image or fact lists are configuration errors; characteristics
// and breeds may be empty.
func (c Content) Validate() error {
	if len(c.Images) == 0 {
		return ErrNoImages
	}
	if len(c.Facts) == 0 {
		return ErrNoFacts
	}
	for i, img := range c.Images {
		if strings.TrimSpace(img.URL) == "" {
			return fmt.Errorf("%w: image %d has no url", ErrInvalidContent, i)
		}
	}
	for i, fact := range c.Facts {
		if strings.TrimSpace(fact) == "" {
			return fmt.Errorf("%w: fact %d is blank", ErrInvalidContent, i)
		}
	}
	seen := make(map[string]bool, len(c.Breeds))
	for i, b := range c.Breeds {
		key := strings.ToLower(strings.TrimSpace(b.Name))
		if key == "" {
			return fmt.Errorf("%w: breed %d has no name", ErrInvalidContent, i)
		}
		if seen[key] {
			return fmt.Errorf("%w: duplicate breed %q", ErrInvalidContent, b.Name)
		}
		seen[key] = true
	}
	return nil
}

// Breed looks up a breed by name (case-insensitive). The returned pointer
// refers into c.Breeds and must not be retained across content reloads.
func (c Content) Breed(name string) (*BreedInfo, bool) {
	if name == "" {
		return nil, false
	}
	for i := range c.Breeds {
		if strings.EqualFold(c.Breeds[i].Name, name) {
			return &c.Breeds[i], true
		}
	}
	return nil, false
}

// BreedNames returns the breed names in display order
func (c Content) BreedNames() []string {
	names := make([]string, len(c.Breeds))
	for i, b := range c.Breeds {
		names[i] = b.Name
	}
	return names
}

// Clone creates a deep copy of the content
func (c Content) Clone() Content {
	clone := c
	if c.Images != nil {
		clone.Images = make([]ImageItem, len(c.Images))
		copy(clone.Images, c.Images)
	}
	if c.Characteristics != nil {
		clone.Characteristics = make([]string, len(c.Characteristics))
		copy(clone.Characteristics, c.Characteristics)
	}
	if c.Facts != nil {
		clone.Facts = make([]string, len(c.Facts))
		copy(clone.Facts, c.Facts)
	}
	if c.Breeds != nil {
		clone.Breeds = make([]BreedInfo, len(c.Breeds))
		copy(clone.Breeds, c.Breeds)
	}
	return clone
}
