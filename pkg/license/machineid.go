package license

import (
	"github.com/denisbrodbeck/machineid"
)

// MachineID fetches the stable host identifier that licenses are bound to.
func MachineID() (string, error) {
	return machineid.ID()
}
