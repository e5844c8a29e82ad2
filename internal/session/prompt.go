package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func withValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func withMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// prompt writes a question and reads one validated line back.
func prompt(rw io.ReadWriter, question string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	br := bufio.NewReader(rw)

	tries := 0
	for {
		if _, err := rw.Write([]byte(question)); err != nil {
			return "", err
		}

		line, err := br.ReadString('\n')
		if err != nil {
			return "", err
		}
		input := strings.TrimSpace(line)

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				rw.Write([]byte(msg))

				tries++
				if config.tries > 0 && config.tries == tries {
					return "", fmt.Errorf("too many tries")
				}
				continue
			}
		}

		return input, nil
	}
}

const maxNameLength = 20

// promptName asks for the character's name. An empty answer falls back
// to the default name, so a player can just press enter.
func promptName(rw io.ReadWriter) (string, error) {
	name, err := prompt(rw, "Come ti chiami? ", withMaxTries(5), withValidator(
		func(s string) (bool, string) {
			if len(s) > maxNameLength {
				return false, fmt.Sprintf("Il nome non può superare %d caratteri.\n", maxNameLength)
			}
			return true, ""
		},
	))
	if err != nil {
		return "", err
	}
	return name, nil
}
