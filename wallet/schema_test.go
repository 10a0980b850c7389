package wallet

import (
	"bytes"
	"testing"
)

func TestCompileSchema_CachesIdenticalSource(t *testing.T) {
	source := `{"type":"object","required":["text"]}`

	a, err := CompileSchema(source)
	if err != nil {
		t.Fatal(err)
	}
	b, err := CompileSchema(source)
	if err != nil {
		t.Fatal(err)
	}

	if a.schema != b.schema {
		t.Error("compiling identical schema source twice should hit the cache")
	}
}

func TestCompileSchema_InvalidSchemaErrors(t *testing.T) {
	if _, err := CompileSchema(`not json`); err == nil {
		t.Error("expected an error compiling invalid schema JSON")
	}
}

func TestSchema_Fingerprint(t *testing.T) {
	a, err := CompileSchema(`{"type":"object"}`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := CompileSchema(`{"type":"string"}`)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(a.Fingerprint(), b.Fingerprint()) {
		t.Error("distinct schema sources should have distinct fingerprints")
	}

	again, err := CompileSchema(`{"type":"object"}`)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Fingerprint(), again.Fingerprint()) {
		t.Error("identical schema sources should have identical fingerprints")
	}
}
