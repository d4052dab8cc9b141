package signature_test

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vodclient/pkg/signature"
)

var signaturePattern = regexp.MustCompile(`^[0-9a-f]{32}\.[A-Za-z0-9]{10}$`)

func fixedClock(ts int64) func() time.Time {
	return func() time.Time { return time.Unix(ts, 0) }
}

func TestGenerator_Generate_KnownVector(t *testing.T) {
	t.Parallel()

	// Bytes 0..9 select alphabet[0..9], i.e. nonce "ABCDEFGHIJ".
	gen := signature.New(
		signature.WithClock(fixedClock(1700000000)),
		signature.WithRandom(bytes.NewReader([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})),
	)

	sig := gen.Generate()
	assert.Equal(t, "1700000000", sig.Timestamp)
	assert.Equal(t, "c732786aa18ac1fd2ccdf5396c5eafaf.JIHGFEDCBA", sig.Signature)
}

func TestGenerator_Generate_RejectsBiasedBytes(t *testing.T) {
	t.Parallel()

	// 248..255 are skipped; 26 and 61 map to 'a' and '9'.
	random := append([]byte{255, 248, 26, 61}, make([]byte, 16)...)
	gen := signature.New(
		signature.WithClock(fixedClock(1700000000)),
		signature.WithRandom(bytes.NewReader(random)),
	)

	sig := gen.Generate()
	nonce, err := signature.Nonce(sig.Signature)
	require.NoError(t, err)
	assert.Equal(t, "a9AAAAAAAA", nonce)
}

func TestGenerator_Generate_MatchesAlgorithm(t *testing.T) {
	t.Parallel()

	now := time.Now()
	gen := signature.New(signature.WithAppID("custom"), signature.WithClock(func() time.Time { return now }))
	sig := gen.Generate()

	assert.Equal(t, strconv.FormatInt(now.Unix(), 10), sig.Timestamp)
	require.Regexp(t, signaturePattern, sig.Signature)

	nonce, err := signature.Nonce(sig.Signature)
	require.NoError(t, err)

	sum := md5.Sum([]byte("custom&" + sig.Timestamp + "&" + nonce))
	assert.Equal(t, hex.EncodeToString(sum[:]), sig.Signature[:32])
	assert.NoError(t, signature.Verify("custom", sig.Signature, sig.Timestamp, now, time.Minute))
}

func TestGenerate_FreshNonceEachCall(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		sig := signature.Generate()
		_, dup := seen[sig.Signature]
		require.False(t, dup, "duplicate signature %s", sig.Signature)
		seen[sig.Signature] = struct{}{}
	}
}

func TestGenerator_Generate_BrokenRandomPanics(t *testing.T) {
	t.Parallel()

	gen := signature.New(signature.WithRandom(bytes.NewReader(nil)))
	assert.Panics(t, func() { gen.Generate() })
}

func TestSignature_Headers(t *testing.T) {
	t.Parallel()

	h := signature.Signature{Signature: "abc.def", Timestamp: "1"}.Headers()
	assert.Equal(t, map[string]string{"s": "abc.def", "t": "1"}, h)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)
	valid := signature.Compute(signature.DefaultAppID, "1700000000", "ABCDEFGHIJ")

	tests := []struct {
		name      string
		appID     string
		sig       string
		timestamp string
		maxAge    time.Duration
		wantErr   error
	}{
		{"valid", signature.DefaultAppID, valid, "1700000000", time.Minute, nil},
		{"wrong app id", "other", valid, "1700000000", 0, signature.ErrSignatureMismatch},
		{"wrong timestamp", signature.DefaultAppID, valid, "1700000001", 0, signature.ErrSignatureMismatch},
		{"stale", signature.DefaultAppID, signature.Compute(signature.DefaultAppID, "1699990000", "ABCDEFGHIJ"), "1699990000", time.Minute, signature.ErrSignatureExpired},
		{"no separator", signature.DefaultAppID, "deadbeef", "1700000000", 0, signature.ErrMalformedSignature},
		{"short nonce", signature.DefaultAppID, valid[:40], "1700000000", 0, signature.ErrMalformedSignature},
		{"bad timestamp", signature.DefaultAppID, valid, "soon", 0, signature.ErrMalformedTimestamp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := signature.Verify(tt.appID, tt.sig, tt.timestamp, now, tt.maxAge)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
