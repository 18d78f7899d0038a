package identity

import (
	"crypto/sha512"
	"encoding/base32"
	"regexp"
	"strings"

	"skill-swap-core/internal/pkg/errs"
)

var (
	ErrEmptyIdentity   = errs.New("identity is required")
	ErrInvalidIdentity = errs.New("identity is not syntactically valid")
)

const (
	MaxLength = 64

	algorandAddressLength = 58
	publicKeyLength       = 32
	checksumLength        = 4
)

var opaquePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Identity is a wallet holder's address. Only the format is checked here;
// existence is a ledger concern.
type Identity struct {
	value string
}

func (i Identity) String() string { return i.value }
func (i Identity) IsZero() bool   { return i.value == "" }

func (i Identity) Equal(other Identity) bool {
	return i.value == other.value
}

// Format decides which strings are acceptable identities.
type Format interface {
	Parse(s string) (Identity, error)
}

type OpaqueFormat struct{}

func (OpaqueFormat) Parse(s string) (Identity, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Identity{}, ErrEmptyIdentity
	}
	if len(v) > MaxLength || !opaquePattern.MatchString(v) {
		return Identity{}, errs.Mark(errs.Newf("identity %q", v), ErrInvalidIdentity)
	}
	return Identity{value: v}, nil
}

// AlgorandFormat accepts 58-character base32 addresses carrying the
// SHA-512/256 checksum of the public key.
type AlgorandFormat struct{}

func (AlgorandFormat) Parse(s string) (Identity, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Identity{}, ErrEmptyIdentity
	}
	if len(v) != algorandAddressLength {
		return Identity{}, errs.Mark(errs.Newf("address length %d", len(v)), ErrInvalidIdentity)
	}
	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(v)
	if err != nil || len(raw) != publicKeyLength+checksumLength {
		return Identity{}, errs.Mark(errs.Newf("address %q is not base32", v), ErrInvalidIdentity)
	}
	sum := sha512.Sum512_256(raw[:publicKeyLength])
	if string(sum[len(sum)-checksumLength:]) != string(raw[publicKeyLength:]) {
		return Identity{}, errs.Mark(errs.Newf("address %q checksum mismatch", v), ErrInvalidIdentity)
	}
	return Identity{value: v}, nil
}

// FromPublicKey renders a 32-byte public key as an Algorand address.
func FromPublicKey(pub []byte) (Identity, error) {
	if len(pub) != publicKeyLength {
		return Identity{}, errs.Mark(errs.Newf("public key length %d", len(pub)), ErrInvalidIdentity)
	}
	sum := sha512.Sum512_256(pub)
	raw := make([]byte, 0, publicKeyLength+checksumLength)
	raw = append(raw, pub...)
	raw = append(raw, sum[len(sum)-checksumLength:]...)
	return Identity{value: base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw)}, nil
}

func NewFormat(name string) Format {
	if name == "algorand" {
		return AlgorandFormat{}
	}
	return OpaqueFormat{}
}

// FromTrusted wraps a value read back from a store that only ever holds
// parsed identities.
func FromTrusted(s string) Identity {
	return Identity{value: s}
}

// MustParse is intended for tests and fixtures.
func MustParse(s string) Identity {
	id, err := OpaqueFormat{}.Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}
