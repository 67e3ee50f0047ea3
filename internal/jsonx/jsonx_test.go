package jsonx

import "testing"

func TestParse_PreservesMemberOrder(t *testing.T) {
	v, err := Parse([]byte(`{"b":1,"a":2,"c":{"z":null}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Kind != Object {
		t.Fatalf("kind: want Object, got %v", v.Kind)
	}
	keys := []string{}
	for _, m := range v.Members {
		keys = append(keys, m.Key)
	}
	want := []string{"b", "a", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("member order: want %v, got %v", want, keys)
		}
	}
}

func TestParse_RejectsTrailingData(t *testing.T) {
	if _, err := Parse([]byte(`{"a":1} garbage`)); err == nil {
		t.Fatal("expected error for trailing data")
	}
}

func TestParse_RejectsMalformed(t *testing.T) {
	if _, err := Parse([]byte(`{"a":`)); err == nil {
		t.Fatal("expected error for truncated document")
	}
}

func TestField_FirstMemberWins(t *testing.T) {
	v, err := Parse([]byte(`{"id":"one","id":"two"}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, ok := v.Field("id")
	if !ok || got.Str != "one" {
		t.Fatalf("Field: want \"one\", got %q (ok=%v)", got.Str, ok)
	}
}

func TestWalk_FirstMatchInDocumentOrder(t *testing.T) {
	doc := []byte(`{
		"outer": [
			{"id": "x", "name": "first"},
			{"id": "x", "name": "second"}
		],
		"later": {"id": "x", "name": "third"}
	}`)
	v, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	match, ok := Walk(v, func(obj Value) bool {
		id, ok := obj.Field("id")
		return ok && id.Str == "x"
	})
	if !ok {
		t.Fatal("expected a match")
	}
	name, _ := match.Field("name")
	if name.Str != "first" {
		t.Fatalf("walk order: want \"first\", got %q", name.Str)
	}
}

func TestWalk_NoMatch(t *testing.T) {
	v, err := Parse([]byte(`{"a":[1,2,{"b":true}]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := Walk(v, func(Value) bool { return false }); ok {
		t.Fatal("expected no match")
	}
}

func TestText(t *testing.T) {
	v, err := Parse([]byte(`{"s":"hi","n":3.5,"b":true,"z":null}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cases := map[string]string{"s": "hi", "n": "3.5", "b": "true", "z": ""}
	for key, want := range cases {
		f, _ := v.Field(key)
		if got := f.Text(); got != want {
			t.Fatalf("Text(%s): want %q, got %q", key, want, got)
		}
	}
}
