package crypto

import "errors"

// ErrCryptoBackend is returned when an underlying primitive (scalar
// decoding, point decompression, AEAD open, ...) rejects its input for
// reasons unrelated to the higher-level wallet semantics. It is the single
// catch-all crypto-primitive failure kind; callers should not attempt to
// distinguish sub-cases.
var ErrCryptoBackend = errors.New("crypto: backend primitive failure")
