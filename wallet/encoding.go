package wallet

import (
	"encoding/base64"
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// Encoding selects how signData's raw input bytes are decoded before
// domain-guard re-checking and schema validation (§4.9 step 2).
type Encoding int

const (
	// None passes the input through unchanged.
	None Encoding = iota
	// Base64 decodes standard base64 text.
	Base64
	// MsgPack decodes a MessagePack value and re-serializes it as
	// canonical JSON text for schema validation.
	MsgPack
)

// String returns the encoding's name.
func (e Encoding) String() string {
	switch e {
	case None:
		return "None"
	case Base64:
		return "Base64"
	case MsgPack:
		return "MsgPack"
	default:
		return "Unknown"
	}
}

// decode applies the encoding to raw, producing the bytes that are
// re-checked against the reserved-prefix set and validated against the
// schema.
func (e Encoding) decode(raw []byte) ([]byte, error) {
	switch e {
	case None:
		return raw, nil
	case Base64:
		out := make([]byte, base64.StdEncoding.DecodedLen(len(raw)))
		n, err := base64.StdEncoding.Decode(out, raw)
		if err != nil {
			return nil, err
		}
		return out[:n], nil
	case MsgPack:
		var v interface{}
		if err := msgpack.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return json.Marshal(v)
	default:
		return nil, ErrDataValidation
	}
}
