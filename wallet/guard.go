package wallet

import (
	"bytes"
	"encoding/json"
)

// reservedPrefixes is the literal ASCII prefix set spec §6 reserves for the
// host chain's own signed object tags. signData must never be able to
// produce a signature over a payload that could collide with one of these.
var reservedPrefixes = [][]byte{
	[]byte("appID"), []byte("arc"), []byte("aB"), []byte("aD"), []byte("aO"),
	[]byte("aP"), []byte("aS"), []byte("AS"), []byte("B256"), []byte("BH"),
	[]byte("BR"), []byte("CR"), []byte("GE"), []byte("KP"), []byte("MA"),
	[]byte("MB"), []byte("MX"), []byte("NIC"), []byte("NIR"), []byte("NIV"),
	[]byte("NPR"), []byte("OT1"), []byte("OT2"), []byte("PF"), []byte("PL"),
	[]byte("Program"), []byte("ProgData"), []byte("PS"), []byte("PK"),
	[]byte("SD"), []byte("SpecialAddr"), []byte("STIB"), []byte("spc"),
	[]byte("spm"), []byte("spp"), []byte("sps"), []byte("spv"), []byte("TE"),
	[]byte("TG"), []byte("TL"), []byte("TX"), []byte("VO"),
}

// hasReservedPrefix reports whether any reserved prefix is a prefix of
// data, per §4.9 step 1/3.
func hasReservedPrefix(data []byte) bool {
	for _, prefix := range reservedPrefixes {
		if bytes.HasPrefix(data, prefix) {
			return true
		}
	}
	return false
}

// SignMetadata bundles the encoding and JSON schema signData validates
// caller-supplied data against (§3).
type SignMetadata struct {
	Encoding Encoding
	Schema   *CompiledSchema
}

// validateData implements the domain guard of §4.9: reserved-prefix
// rejection on both the raw and decoded bytes, followed by JSON-schema
// validation of the decoded bytes. Returns false (never an error) for
// anything the guard rejects; signData maps that to ErrDataValidation.
func validateData(data []byte, metadata SignMetadata) (bool, error) {
	if hasReservedPrefix(data) {
		return false, nil
	}

	decoded, err := metadata.Encoding.decode(data)
	if err != nil {
		return false, nil
	}

	if hasReservedPrefix(decoded) {
		return false, nil
	}

	if metadata.Schema == nil {
		return false, nil
	}

	var v interface{}
	if err := json.Unmarshal(decoded, &v); err != nil {
		return false, nil
	}

	if err := metadata.Schema.Validate(v); err != nil {
		return false, nil
	}

	return true, nil
}
