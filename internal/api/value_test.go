package api

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decodeValue(t *testing.T, data string) Value {
	t.Helper()
	var raw any
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return newValue(raw)
}

func TestValueObjectAccess(t *testing.T) {
	v := decodeValue(t, `{"name":"laptop","paused":true,"count":3,"ratio":0.5,"label":""}`)

	if got := v.Get("name").Str(); got != "laptop" {
		t.Fatalf("name = %q, want laptop", got)
	}
	if !v.Get("paused").Bool() {
		t.Fatal("paused should be true")
	}
	if got := v.Get("count").Int(); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}
	if got := v.Get("ratio").Float(); got != 0.5 {
		t.Fatalf("ratio = %v, want 0.5", got)
	}
	if got := v.Get("label").StrOr("fallback"); got != "fallback" {
		t.Fatalf("empty string should fall back, got %q", got)
	}
}

func TestValueMissingAndMistypedFieldsDefault(t *testing.T) {
	v := decodeValue(t, `{"count":"three"}`)

	if v.Get("missing").Exists() {
		t.Fatal("missing field should not exist")
	}
	if got := v.Get("missing").Str(); got != "" {
		t.Fatalf("missing Str = %q, want empty", got)
	}
	if got := v.Get("count").Int(); got != 0 {
		t.Fatalf("mistyped Int = %d, want 0", got)
	}
	if got := v.Get("missing").Get("deeper").StrOr("unknown"); got != "unknown" {
		t.Fatalf("chained access = %q, want unknown", got)
	}
	if got := v.Get("missing").FloatOr(100); got != 100 {
		t.Fatalf("FloatOr = %v, want 100", got)
	}
}

func TestValueArrays(t *testing.T) {
	v := decodeValue(t, `[{"id":"a"},{"id":"b"}]`)

	if got := v.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
	if got := v.Index(1).Get("id").Str(); got != "b" {
		t.Fatalf("second id = %q, want b", got)
	}
	if v.Index(5).Exists() {
		t.Fatal("out-of-range index should be absent")
	}

	ids := make([]string, 0, 2)
	for _, item := range v.Array() {
		ids = append(ids, item.Get("id").Str())
	}
	if !reflect.DeepEqual(ids, []string{"a", "b"}) {
		t.Fatalf("ids = %v", ids)
	}
}

func TestValueKeysSorted(t *testing.T) {
	v := decodeValue(t, `{"zeta":1,"alpha":2,"mid":3}`)
	want := []string{"alpha", "mid", "zeta"}
	if got := v.Keys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys = %v, want %v", got, want)
	}
	if keys := v.Get("alpha").Keys(); keys != nil {
		t.Fatalf("scalar Keys = %v, want nil", keys)
	}
}

func TestNoContentAndZeroValue(t *testing.T) {
	if !NoContent.Exists() || !NoContent.IsNull() {
		t.Fatal("NoContent should exist and be null")
	}

	var zero Value
	if zero.Exists() || zero.IsNull() {
		t.Fatal("zero Value should be absent and not null")
	}
	if zero.Array() != nil || zero.Keys() != nil || zero.Len() != 0 {
		t.Fatal("zero Value collection accessors should be empty")
	}
}
