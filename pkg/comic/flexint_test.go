package comic

import (
	"encoding/json"
	"testing"
)

func TestFlexInt_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantVal int
		wantSet bool
		wantRaw string
	}{
		{name: "number", input: `1986`, wantVal: 1986, wantSet: true},
		{name: "numeric string", input: `"1986"`, wantVal: 1986, wantSet: true},
		{name: "negative number", input: `-5`, wantVal: -5, wantSet: true},
		{name: "null", input: `null`},
		{name: "garbage string", input: `"first of may"`, wantRaw: "first of may"},
		{name: "float", input: `1986.5`, wantRaw: "1986.5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexInt
			if err := json.Unmarshal([]byte(tc.input), &f); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tc.input, err)
			}
			if f.Val != tc.wantVal || f.Set != tc.wantSet || f.Raw != tc.wantRaw {
				t.Errorf("Unmarshal(%s) = %+v, want {Val:%d Set:%v Raw:%q}",
					tc.input, f, tc.wantVal, tc.wantSet, tc.wantRaw)
			}
		})
	}
}

func TestFlexInt_UnmarshalInsideStruct(t *testing.T) {
	var p CreatePayload
	if err := json.Unmarshal([]byte(`{"title":"T","author":"A","year":"2001"}`), &p); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if !p.Year.Set || p.Year.Val != 2001 {
		t.Errorf("Year = %+v, want parsed 2001", p.Year)
	}
}

func TestFlexInt_Marshal(t *testing.T) {
	b, err := json.Marshal(Int(42))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(b) != "42" {
		t.Errorf("Marshal = %s, want 42", b)
	}

	b, err = json.Marshal(FlexInt{Raw: "abc"})
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(b) != `"abc"` {
		t.Errorf("Marshal = %s, want %q", b, `"abc"`)
	}
}

func TestFlexInt_OmitzeroInPayload(t *testing.T) {
	b, err := json.Marshal(CreatePayload{Title: "T", Author: "A"})
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if _, present := m["year"]; present {
		t.Errorf("year present in %s, want omitted", b)
	}
}

func TestFlexInt_String(t *testing.T) {
	if got := Int(7).String(); got != "7" {
		t.Errorf("String() = %q, want %q", got, "7")
	}
	if got := (FlexInt{Raw: "abc"}).String(); got != "abc" {
		t.Errorf("String() = %q, want %q", got, "abc")
	}
}
