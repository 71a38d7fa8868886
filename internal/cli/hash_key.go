package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/liftlog/internal/security"
	"github.com/terraincognita07/liftlog/internal/services"
)

var errKeyMismatch = errors.New("access keys do not match")

type HashKeyOptions struct {
	// Generate creates a random key instead of prompting for one.
	Generate bool
	Stdin    *os.File
	Out      io.Writer
}

// RunHashKeyCommand prints the ACCESS_KEY_HASH line for a new or typed access
// key. Generated keys are printed once since they cannot be recovered later.
func RunHashKeyCommand(options HashKeyOptions) error {
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	if options.Generate {
		key, err := security.NewAccessKey()
		if err != nil {
			return fmt.Errorf("generate access key: %w", err)
		}
		return writeHashedKey(out, key, true)
	}

	key, err := promptAccessKey(options.Stdin, out)
	if err != nil {
		return err
	}
	return writeHashedKey(out, key, false)
}

func promptAccessKey(stdin *os.File, out io.Writer) (string, error) {
	if stdin == nil {
		stdin = os.Stdin
	}

	fmt.Fprint(out, "Access key: ")
	first, err := readKey(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read access key: %w", err)
	}

	fmt.Fprint(out, "Repeat access key: ")
	second, err := readKey(stdin)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read access key: %w", err)
	}

	if first != second {
		return "", errKeyMismatch
	}
	return first, nil
}

// readKey disables echo when stdin is a terminal and falls back to a plain
// line read for pipes.
func readKey(stdin *os.File) (string, error) {
	raw, err := readKeyNoEcho(stdin)
	if err == nil {
		return strings.TrimSpace(string(raw)), nil
	}

	line, readErr := readLine(stdin)
	if readErr != nil {
		return "", readErr
	}
	return strings.TrimSpace(string(line)), nil
}

func writeHashedKey(out io.Writer, key string, showKey bool) error {
	hash, err := services.HashAccessKey(key)
	if err != nil {
		return err
	}

	if showKey {
		fmt.Fprintf(out, "Access key: %s\n", key)
		fmt.Fprintln(out, "Store it now, it is not shown again.")
	}
	fmt.Fprintf(out, "ACCESS_KEY_HASH=%s\n", hash)
	return nil
}
