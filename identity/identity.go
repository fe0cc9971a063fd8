package identity

import (
	"context"
	"os"
	"runtime"
	"sync"

	"github.com/google/uuid"
)

// Identity is the per-process metadata attached to remote records
type Identity struct {
	DeviceID        string
	AppID           string
	AppVersion      string
	Platform        string
	PlatformVersion string
}

// Provider resolves the process identity
type Provider interface {
	Identity(ctx context.Context) (Identity, error)
}

// ProviderFunc adapts a function to the Provider interface
type ProviderFunc func(ctx context.Context) (Identity, error)

// Identity calls f(ctx)
func (f ProviderFunc) Identity(ctx context.Context) (Identity, error) {
	return f(ctx)
}

// Static returns a Provider that always resolves to id
func Static(id Identity) Provider {
	return ProviderFunc(func(context.Context) (Identity, error) {
		return id, nil
	})
}

var (
	hostOnce     sync.Once
	hostDeviceID string
)

// Host returns a Provider describing the running process. The device id is
// the host name, or a random UUID when the host name is unavailable; it is
// computed once per process.
func Host(appID, appVersion string) Provider {
	return ProviderFunc(func(context.Context) (Identity, error) {
		hostOnce.Do(func() {
			name, err := os.Hostname()
			if err != nil || name == "" {
				name = uuid.NewString()
			}
			hostDeviceID = name
		})
		return Identity{
			DeviceID:        hostDeviceID,
			AppID:           appID,
			AppVersion:      appVersion,
			Platform:        runtime.GOOS,
			PlatformVersion: runtime.Version(),
		}, nil
	})
}
