package model

import (
	"errors"
	"testing"
)

func validContent() Content {
	return Content{
		Title:  "All About Cats",
		Images: []ImageItem{{URL: "https://example.com/cat.jpg", Caption: "A cat"}},
		Facts:  []string{"Cats sleep a lot"},
		Breeds: []BreedInfo{
			{Name: "Siamese", Origin: "Thailand", Personality: "Vocal"},
			{Name: "Maine Coon", Origin: "United States", Personality: "Gentle"},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Content)
		wantErr error
	}{
		{name: "valid", mutate: func(*Content) {}},
		{name: "no images", mutate: func(c *Content) { c.Images = nil }, wantErr: ErrNoImages},
		{name: "no facts", mutate: func(c *Content) { c.Facts = []string{} }, wantErr: ErrNoFacts},
		{name: "blank url", mutate: func(c *Content) { c.Images[0].URL = "  " }, wantErr: ErrInvalidContent},
		{name: "blank fact", mutate: func(c *Content) { c.Facts = append(c.Facts, "") }, wantErr: ErrInvalidContent},
		{name: "unnamed breed", mutate: func(c *Content) { c.Breeds[1].Name = "" }, wantErr: ErrInvalidContent},
		{name: "duplicate breed", mutate: func(c *Content) { c.Breeds[1].Name = "siamese" }, wantErr: ErrInvalidContent},
		{name: "no breeds is fine", mutate: func(c *Content) { c.Breeds = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContent()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBreedLookup(t *testing.T) {
	c := validContent()

	b, ok := c.Breed("maine coon")
	if !ok {
		t.Fatal("expected to find Maine Coon")
	}
	if b.Origin != "United States" {
		t.Errorf("Origin = %q, want United States", b.Origin)
	}
	if b != &c.Breeds[1] {
		t.Error("Breed should point into the canonical list")
	}

	if _, ok := c.Breed(""); ok {
		t.Error("empty name should not match")
	}
	if _, ok := c.Breed("Sphynx"); ok {
		t.Error("unknown breed should not match")
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := validContent()
	clone := c.Clone()
	clone.Images[0].Caption = "changed"
	clone.Facts[0] = "changed"
	clone.Breeds[0].Name = "changed"

	if c.Images[0].Caption == "changed" || c.Facts[0] == "changed" || c.Breeds[0].Name == "changed" {
		t.Error("Clone shares backing arrays with the original")
	}
	if got := c.BreedNames(); len(got) != 2 || got[0] != "Siamese" {
		t.Errorf("BreedNames() = %v", got)
	}
}
