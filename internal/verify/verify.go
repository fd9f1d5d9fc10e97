// Package verify contains utilities for email-verification codes.
package verify

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	codeBytes = 16
	delimiter = '$'
)

var ErrInvalidToken = errors.New("malformed verification token")

// CreateCode creates a cryptographically secure random verification code.
func CreateCode() (string, error) {
	code := make([]byte, codeBytes)
	if _, err := rand.Reader.Read(code); err != nil {
		return "", fmt.Errorf("creating verification code: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(code), nil
}

// EncodeToken encodes the token sent to the user: "<userID>$<code>".
func EncodeToken(code string, id int64) string {
	return fmt.Sprintf("%d%c%s", id, delimiter, code)
}

// DecodeToken splits a verification token back into its user id and code.
func DecodeToken(token string) (code string, id int64, err error) {
	idStr, code, found := strings.Cut(token, string(delimiter))
	if !found || code == "" {
		return "", 0, ErrInvalidToken
	}

	id, err = strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return "", 0, errors.Join(ErrInvalidToken, err)
	}

	return code, id, nil
}
