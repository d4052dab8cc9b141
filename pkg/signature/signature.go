package signature

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultAppID is the application id compiled into this client.
	DefaultAppID = "jocy"

	// NonceLength is the number of random characters in every nonce.
	NonceLength = 10

	// HeaderSignature and HeaderTimestamp carry a Signature on the wire.
	HeaderSignature = "s"
	HeaderTimestamp = "t"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const rejectAbove = 256 - 256%len(alphabet)

// Signature is one generated tag and the timestamp it was bound to.
type Signature struct {
	Signature string
	Timestamp string
}

// Headers returns the signature as header name/value pairs.
func (s Signature) Headers() map[string]string {
	return map[string]string{
		HeaderSignature: s.Signature,
		HeaderTimestamp: s.Timestamp,
	}
}

// Generator creates signatures. The zero value is not usable; use New.
type Generator struct {
	appID  string
	now    func() time.Time
	random io.Reader
}

// Option configures a Generator.
type Option func(*Generator)

// WithAppID overrides DefaultAppID. Empty ids are ignored.
func WithAppID(appID string) Option {
	return func(g *Generator) {
		if appID != "" {
			g.appID = appID
		}
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithRandom sets the source nonce characters are drawn from.
func WithRandom(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.random = r
		}
	}
}

// New returns a Generator using DefaultAppID, the wall clock and crypto/rand
// unless overridden by opts.
func New(opts ...Option) *Generator {
	g := &Generator{
		appID:  DefaultAppID,
		now:    time.Now,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AppID returns the application id signatures are bound to.
func (g *Generator) AppID() string {
	return g.appID
}

// Generate returns a new signature for the current second.
func (g *Generator) Generate() Signature {
	timestamp := strconv.FormatInt(g.now().Unix(), 10)
	nonce := g.nonce()
	return Signature{
		Signature: Compute(g.appID, timestamp, nonce),
		Timestamp: timestamp,
	}
}

// nonce draws NonceLength characters uniformly from alphabet. Bytes at or
// above the largest multiple of len(alphabet) are rejected to avoid modulo bias.
func (g *Generator) nonce() string {
	out := make([]byte, 0, NonceLength)
	buf := make([]byte, NonceLength)
	for len(out) < NonceLength {
		if _, err := io.ReadFull(g.random, buf); err != nil {
			panic(fmt.Errorf("signature: random source failed: %w", err))
		}
		for _, b := range buf {
			if int(b) >= rejectAbove {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == NonceLength {
				break
			}
		}
	}
	return string(out)
}

var defaultGenerator = New()

// Generate returns a new signature from the default generator.
func Generate() Signature {
	return defaultGenerator.Generate()
}

// Compute builds the signature for a known timestamp and nonce.
func Compute(appID, timestamp, nonce string) string {
	sum := md5.Sum([]byte(appID + "&" + timestamp + "&" + nonce))
	return hex.EncodeToString(sum[:]) + "." + reverse(nonce)
}

// Nonce recovers the nonce embedded in a signature.
func Nonce(sig string) (string, error) {
	digest, reversed, ok := strings.Cut(sig, ".")
	if !ok || len(digest) != hex.EncodedLen(md5.Size) || len(reversed) != NonceLength {
		return "", ErrMalformedSignature
	}
	return reverse(reversed), nil
}

// Verify checks sig against appID and timestamp. A positive maxAge also
// rejects timestamps further than maxAge from now in either direction.
func Verify(appID, sig, timestamp string, now time.Time, maxAge time.Duration) error {
	nonce, err := Nonce(sig)
	if err != nil {
		return err
	}
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrMalformedTimestamp
	}
	if maxAge > 0 {
		age := now.Sub(time.Unix(ts, 0))
		if age > maxAge || age < -maxAge {
			return fmt.Errorf("%w: %v", ErrSignatureExpired, age)
		}
	}
	if subtle.ConstantTimeCompare([]byte(Compute(appID, timestamp, nonce)), []byte(sig)) != 1 {
		return ErrSignatureMismatch
	}
	return nil
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
