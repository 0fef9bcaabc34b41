package comic

import (
	"encoding/json"
	"testing"
)

func TestCreatePayload_Validate(t *testing.T) {
	tests := []struct {
		name        string
		payload     CreatePayload
		wantMissing []string
	}{
		{
			name:    "valid",
			payload: CreatePayload{Title: "T", Author: "A", Year: Int(1986)},
		},
		{
			name:        "all missing",
			payload:     CreatePayload{},
			wantMissing: []string{"title", "author", "year"},
		},
		{
			name:        "zero year counts as missing",
			payload:     CreatePayload{Title: "T", Author: "A", Year: Int(0)},
			wantMissing: []string{"year"},
		},
		{
			name:        "unset year",
			payload:     CreatePayload{Title: "T", Author: "A"},
			wantMissing: []string{"year"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.payload.Validate()
			if len(tc.wantMissing) == 0 {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Validate() error = %T, want *ValidationError", err)
			}
			if len(verr.Missing) != len(tc.wantMissing) {
				t.Fatalf("Missing = %v, want %v", verr.Missing, tc.wantMissing)
			}
			for i := range tc.wantMissing {
				if verr.Missing[i] != tc.wantMissing[i] {
					t.Errorf("Missing[%d] = %q, want %q", i, verr.Missing[i], tc.wantMissing[i])
				}
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Missing: []string{"title", "year"}}
	want := "missing required fields: title, year"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestCreatePayload_Comic(t *testing.T) {
	p := CreatePayload{Title: "Bone", Author: "Jeff Smith", Year: Int(1991)}
	c := p.Comic(7)

	if c.ID != 7 {
		t.Errorf("ID = %d, want 7", c.ID)
	}
	if c.Publisher != DefaultPublisher {
		t.Errorf("Publisher = %q, want %q", c.Publisher, DefaultPublisher)
	}
	if c.Genre != DefaultGenre {
		t.Errorf("Genre = %q, want %q", c.Genre, DefaultGenre)
	}
}

func TestCreatePayload_ComicKeepsProvidedValues(t *testing.T) {
	p := CreatePayload{
		Title:     "Akira",
		Author:    "Katsuhiro Otomo",
		Year:      Int(1982),
		Publisher: "Kodansha",
		Genre:     "Cyberpunk",
	}
	c := p.Comic(1)
	if c.Publisher != "Kodansha" || c.Genre != "Cyberpunk" {
		t.Errorf("defaults overwrote provided values: %+v", c)
	}
}

func TestUpdatePayload_ApplyTo(t *testing.T) {
	title := "New Title"
	genre := "Horror"
	p := UpdatePayload{Title: &title, Genre: &genre, Year: Int(2001)}

	c := Comic{ID: 1, Title: "Old", Author: "A", Year: 1990, Publisher: "P", Genre: "G"}
	p.ApplyTo(&c)

	if c.Title != "New Title" || c.Genre != "Horror" || c.Year != 2001 {
		t.Errorf("ApplyTo result = %+v", c)
	}
	if c.Author != "A" || c.Publisher != "P" {
		t.Errorf("omitted fields changed: %+v", c)
	}
	if c.ID != 1 {
		t.Errorf("ID changed to %d", c.ID)
	}
}

func TestUpdatePayload_EmptyIsNoOp(t *testing.T) {
	c := Comic{ID: 1, Title: "T", Author: "A", Year: 1990}
	before := c
	(&UpdatePayload{}).ApplyTo(&c)
	if c != before {
		t.Errorf("empty payload changed the record: %+v", c)
	}
}

func TestUpdatePayload_YearFromJSONString(t *testing.T) {
	var p UpdatePayload
	if err := json.Unmarshal([]byte(`{"year": "1999"}`), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	c := Comic{Year: 1990}
	p.ApplyTo(&c)
	if c.Year != 1999 {
		t.Errorf("Year = %d, want 1999", c.Year)
	}
}
