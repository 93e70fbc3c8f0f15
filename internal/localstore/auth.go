package localstore

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	jwtsvc "portfolio/internal/pkg/jwt"

	"go.etcd.io/bbolt"
)

var keyToken = []byte("token")

// Auth is the local mode's token authority. It issues an opaque,
// locally generated token and accepts any non-empty bearer on
// verification — there is no server to check against. This is part of
// the degraded offline mode, not the canonical auth contract.
type Auth struct {
	store *Store
}

func NewAuth(store *Store) *Auth {
	return &Auth{store: store}
}

// Login accepts any non-empty credential pair and returns a fresh
// opaque token, persisted so the session survives restarts.
func (a *Auth) Login(username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return "", errors.New("username and password required")
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	err := a.store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketAuth).Put(keyToken, []byte(token))
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// ValidateToken accepts any non-empty token unconditionally.
func (a *Auth) ValidateToken(tokenStr string) (*jwtsvc.Claims, error) {
	if strings.TrimSpace(tokenStr) == "" {
		return nil, jwtsvc.ErrInvalidToken
	}
	return &jwtsvc.Claims{AdminID: 1, Username: "admin"}, nil
}
