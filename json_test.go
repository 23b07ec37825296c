package main

import (
	"encoding/json"
	"testing"
)

func TestParseJSONKinds(t *testing.T) {
	v, err := ParseJSON([]byte(`{"s":"x","n":1.5,"b":true,"nul":null,"a":[1,2]}`))
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if v.Kind != JSONObject {
		t.Fatalf("want object, got kind %d", v.Kind)
	}
	if v.Get("s").Kind != JSONString || v.Get("s").Str != "x" {
		t.Error("string member")
	}
	if v.Get("n").Kind != JSONNumber || v.Get("n").Number.String() != "1.5" {
		t.Error("number member")
	}
	if v.Get("b").Kind != JSONBool || !v.Get("b").Bool {
		t.Error("bool member")
	}
	if v.Get("nul").Kind != JSONNull {
		t.Error("null member")
	}
	if v.Get("a").Kind != JSONArray || len(v.Get("a").Array) != 2 {
		t.Error("array member")
	}
}

func TestParseJSONNullVsAbsent(t *testing.T) {
	v, err := ParseJSON([]byte(`{"present":null}`))
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if v.Get("present") == nil {
		t.Error("explicit null must not look absent")
	}
	if v.Get("missing") != nil {
		t.Error("missing key must be nil")
	}
}

func TestParseJSONRejectsGarbage(t *testing.T) {
	if _, err := ParseJSON([]byte("not json!")); err == nil {
		t.Error("want error for garbage")
	}
	if _, err := ParseJSON([]byte(`{"a":1} trailing`)); err == nil {
		t.Error("want error for trailing data")
	}
}

func TestJSONValueMarshalRoundTrip(t *testing.T) {
	src := `{"a":[1,"two",false,null],"n":1.25}`
	v, err := ParseJSON([]byte(src))
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Compare decoded forms, key order is not stable.
	var a, b interface{}
	if err := json.Unmarshal([]byte(src), &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(out, &b); err != nil {
		t.Fatal(err)
	}
	if string(mustMarshalSorted(t, a)) != string(mustMarshalSorted(t, b)) {
		t.Errorf("round trip mismatch: %s vs %s", src, out)
	}
}

func mustMarshalSorted(t *testing.T, v interface{}) []byte {
	t.Helper()
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return out
}
