package license

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMachineMismatch = errors.New("license bound to another machine")
	ErrExpired         = errors.New("license expired")
)

// Manager validates tokens against the current machine id.
type Manager struct {
	Secret string

	// machineID is swappable in tests.
	machineID func() (string, error)
}

func NewManager(secret string) *Manager {
	return &Manager{Secret: secret, machineID: MachineID}
}

func (m *Manager) Validate(token string) error {
	midFn := m.machineID
	if midFn == nil {
		midFn = MachineID
	}
	mid, err := midFn()
	if err != nil {
		return fmt.Errorf("machine id: %w", err)
	}
	claims, err := ParseToken(m.Secret, token)
	if err != nil {
		return fmt.Errorf("parse token: %w", err)
	}
	if claims.Machine != mid {
		return ErrMachineMismatch
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return ErrExpired
	}
	return nil
}
