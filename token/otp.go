package token

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	ErrOTPNotRequested = errors.New("otp not requested")
	ErrOTPExpired      = errors.New("otp expired")
	ErrOTPMismatch     = errors.New("invalid otp")
)

// OTPTTL is the validity window of a password-reset code.
const OTPTTL = 5 * time.Minute

type otpEntry struct {
	code    int
	expires time.Time
}

// OTPStore keeps one live password-reset code per email. State is
// process-local; a multi-instance deployment would need a shared store
// with TTL support instead.
type OTPStore struct {
	mu      sync.Mutex
	entries map[string]otpEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewOTPStore() *OTPStore {
	return &OTPStore{
		entries: make(map[string]otpEntry),
		ttl:     OTPTTL,
		now:     time.Now,
	}
}

// Issue generates a fresh 6-digit code for the email, replacing any
// prior unconsumed code.
func (s *OTPStore) Issue(email string) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, err
	}
	code := int(n.Int64()) + 100000

	s.mu.Lock()
	s.entries[email] = otpEntry{code: code, expires: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return code, nil
}

// Validate checks the supplied code against the live entry for the
// email. An expired entry is deleted as a side effect. On success the
// entry is kept; the caller deletes it with Consume once the password
// change lands.
func (s *OTPStore) Validate(email, supplied string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[email]
	if !ok {
		return ErrOTPNotRequested
	}
	if s.now().After(entry.expires) {
		delete(s.entries, email)
		return ErrOTPExpired
	}
	code, err := strconv.Atoi(strings.TrimSpace(supplied))
	if err != nil || code != entry.code {
		return ErrOTPMismatch
	}
	return nil
}

// Consume removes the live entry for the email, if any.
func (s *OTPStore) Consume(email string) {
	s.mu.Lock()
	delete(s.entries, email)
	s.mu.Unlock()
}
