//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cli

import (
	"errors"
	"os"
)

func readKeyNoEcho(_ *os.File) ([]byte, error) {
	return nil, errors.New("no-echo input unsupported on this platform")
}
