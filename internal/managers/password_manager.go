package managers

import (
	"golang.org/x/crypto/bcrypt"

	"calendar-server/internal/config"
)

// PasswordMgr hashes and verifies user passwords.
type PasswordMgr interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) bool
}

// PasswordManager implements PasswordMgr with bcrypt at a fixed cost.
type PasswordManager struct {
	cost int
}

// NewPasswordManager returns a bcrypt hasher using cfg.BcryptCost, clamped to bcrypt's valid range.
func NewPasswordManager(cfg *config.Config) *PasswordManager {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &PasswordManager{cost: cost}
}

// HashPassword returns the salted bcrypt hash of password.
func (pm *PasswordManager) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), pm.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hashedPassword.
// A malformed hash is treated as a mismatch.
func (pm *PasswordManager) VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
