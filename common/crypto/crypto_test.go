package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexEncodeToString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "31323334", HexEncodeToString([]byte("1234")))
}

func TestGetSHA256(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		HexEncodeToString(GetSHA256([]byte("abc"))))
}

// Vectors from RFC 4231 test case 2.
func TestGetHMAC(t *testing.T) {
	t.Parallel()
	key := []byte("Jefe")
	input := []byte("what do ya want for nothing?")

	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		HexEncodeToString(GetHMAC(HashSHA256, input, key)))

	assert.Equal(t,
		"164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea2505549758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737",
		HexEncodeToString(GetHMAC(HashSHA512, input, key)))
}

func TestGetHMACDeterminism(t *testing.T) {
	t.Parallel()
	key := []byte("secretsecretsecretsecret066")
	input := []byte("1460020144872usernameWW2MWBMBRSEMY6BGAGQQ4MMV6A")
	first := GetHMAC(HashSHA256, input, key)
	second := GetHMAC(HashSHA256, input, key)
	assert.Equal(t, first, second)
}
