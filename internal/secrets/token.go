package secrets

import (
	"errors"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups the engine's secrets in the OS keychain.
	KeyringService = "sponsorscout"

	careersAccount = "sponsorscout:careers-api"
)

// GetCareersToken loads the career-search API bearer token from the
// keychain. An absent token is not an error for public postings APIs, so
// callers usually ignore the error and pass the empty string through.
func GetCareersToken() (string, error) {
	tok, err := keyring.Get(KeyringService, careersAccount)
	if err != nil || strings.TrimSpace(tok) == "" {
		return "", errors.New("careers API token not set")
	}
	return tok, nil
}

func SetCareersToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(KeyringService, careersAccount, token)
}

func DeleteCareersToken() error {
	return keyring.Delete(KeyringService, careersAccount)
}
