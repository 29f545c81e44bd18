//go:build !linux

package notify

import "errors"

func New() (Notifier, error) {
	return nil, errors.New("desktop notifications need a D-Bus session")
}
