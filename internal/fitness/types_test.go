package fitness

import (
	"encoding/json"
	"testing"
)

func TestDocumentString(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(`{"id":42,"name":"Squat","big":12345678901,"ok":true,"nested":{"a":1}}`), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	cases := map[string]string{
		"id":      "42",
		"name":    "Squat",
		"big":     "12345678901",
		"ok":      "true",
		"nested":  "",
		"missing": "",
	}
	for key, want := range cases {
		if got := doc.String(key); got != want {
			t.Fatalf("String(%q) = %q, want %q", key, got, want)
		}
	}
	if doc.ID() != "42" {
		t.Fatalf("ID = %q, want 42", doc.ID())
	}
}

func TestDocumentDocuments(t *testing.T) {
	var doc Document
	if err := json.Unmarshal([]byte(`{"sets":[{"setNumber":1},"skip",{"setNumber":2}],"flat":"x"}`), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	sets := doc.Documents("sets")
	if len(sets) != 2 || sets[1].String("setNumber") != "2" {
		t.Fatalf("Documents(sets) = %#v, want two set objects", sets)
	}
	if doc.Documents("flat") != nil || doc.Documents("missing") != nil {
		t.Fatalf("Documents on non-array should be nil")
	}
}

func TestSetRecordSendsZeroValues(t *testing.T) {
	raw, err := json.Marshal(SetRecord{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"setNumber":0,"actualRepsOrDuration":0,"restAfterSetSeconds":0}`
	if string(raw) != want {
		t.Fatalf("SetRecord JSON = %s, want %s", raw, want)
	}
}
