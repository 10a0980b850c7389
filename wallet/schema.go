package wallet

import (
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/arc52/xhd-wallet-go/crypto"
)

// schemaCache compiles each distinct schema source exactly once. It is the
// one process-wide resource the domain guard carries (spec §5/§9): a
// lazily-initialized singleton, never mutated once a schema is compiled.
var schemaCache = struct {
	mu    sync.RWMutex
	byKey map[string]*jsonschema.Schema
}{byKey: make(map[string]*jsonschema.Schema)}

// CompiledSchema wraps a compiled JSON schema together with its canonical
// source, so that Fingerprint can hash the exact text that was compiled.
type CompiledSchema struct {
	source string
	schema *jsonschema.Schema
}

// CompileSchema compiles schemaJSON, reusing a cached compilation if this
// exact source has already been compiled by this process.
func CompileSchema(schemaJSON string) (*CompiledSchema, error) {
	schemaCache.mu.RLock()
	cached, ok := schemaCache.byKey[schemaJSON]
	schemaCache.mu.RUnlock()
	if ok {
		return &CompiledSchema{source: schemaJSON, schema: cached}, nil
	}

	compiler := jsonschema.NewCompiler()
	resourceName := "inline.json"
	if err := compiler.AddResource(resourceName, strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	compiled, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, err
	}

	schemaCache.mu.Lock()
	schemaCache.byKey[schemaJSON] = compiled
	schemaCache.mu.Unlock()

	return &CompiledSchema{source: schemaJSON, schema: compiled}, nil
}

// Validate checks v (typically the result of json.Unmarshal into an
// interface{}) against the compiled schema.
func (s *CompiledSchema) Validate(v interface{}) error {
	return s.schema.Validate(v)
}

// Fingerprint hashes the schema's canonical source with SHA3-256, in the
// style of crypto.DigestDefault — useful for callers that want to
// log/cache which schema version gated a given signature.
func (s *CompiledSchema) Fingerprint() []byte {
	return crypto.DigestDefault([]byte(s.source))
}
