// Package sharelink encodes a document and its layout settings into a
// compact signed token, so a share URL can carry a whole draft without
// server-side storage.
//
// Token format: "<sig>.<body>" where body is base64url(gzip(JSON payload))
// and sig is the first SignatureLength hex characters of an HMAC-SHA256
// over body. Anyone holding the link can read the draft; the signature
// only proves the token was minted by this server and not altered.
package sharelink

import (
	"bytes"
	"compress/gzip"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// SignatureLength is the number of hex characters used for the truncated
// HMAC signature.
const SignatureLength = 12

// maxPayloadBytes caps the decompressed payload size during decode.
const maxPayloadBytes = 8 << 20

var (
	// ErrMalformedToken reports a token without the "<sig>.<body>" shape.
	ErrMalformedToken = errors.New("malformed share token")
	// ErrBadSignature reports a token whose signature does not match.
	ErrBadSignature = errors.New("share token signature mismatch")
)

// Payload is the document state carried inside a share token.
type Payload struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Format    string `json:"format"`
	SoftLimit int    `json:"soft_limit"`
}

// Encoder signs and encodes share tokens using a shared secret.
type Encoder struct {
	secret []byte
}

// NewEncoder creates an Encoder with the given secret string.
func NewEncoder(secret string) *Encoder {
	return &Encoder{secret: []byte(secret)}
}

// Encode packs the payload into a signed token.
func (e *Encoder) Encode(p Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}

	body := base64.RawURLEncoding.EncodeToString(buf.Bytes())
	return e.sign(body) + "." + body, nil
}

// Decode verifies the token signature and unpacks the payload. The
// signature is checked before anything is decompressed.
func (e *Encoder) Decode(token string) (*Payload, error) {
	sig, body, ok := strings.Cut(token, ".")
	if !ok || len(sig) != SignatureLength || body == "" {
		return nil, ErrMalformedToken
	}
	if !hmac.Equal([]byte(e.sign(body)), []byte(sig)) {
		return nil, ErrBadSignature
	}

	compressed, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("decode share token: %w", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("decompress share token: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(io.LimitReader(zr, maxPayloadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("decompress share token: %w", err)
	}
	if len(raw) > maxPayloadBytes {
		return nil, fmt.Errorf("share token payload exceeds %d bytes", maxPayloadBytes)
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode share token: %w", err)
	}
	return &p, nil
}

// sign computes the truncated hex HMAC-SHA256 of the message.
func (e *Encoder) sign(message string) string {
	mac := hmac.New(sha256.New, e.secret)
	mac.Write([]byte(message))

	return hex.EncodeToString(mac.Sum(nil))[:SignatureLength]
}
