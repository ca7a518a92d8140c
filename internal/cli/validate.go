package cli

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/haeun-dev/maumdiary/internal/diary"
)

// Validation bounds. These live in the presentation layer on purpose: the
// stores trust their callers, and the contract is that nothing reaches a
// store operation without passing these checks first.
const (
	minUsernameLen = 4
	minPasswordLen = 6
	maxContentLen  = 100
)

var (
	errUsernameRequired = errors.New("username is required")
	errUsernameTooShort = errors.New("username must be at least 4 characters")
	errPasswordRequired = errors.New("password is required")
	errPasswordTooShort = errors.New("password must be at least 6 characters")
	errPasswordMismatch = errors.New("passwords do not match")
	errNicknameRequired = errors.New("nickname is required")
	errContentRequired  = errors.New("content is required")
	errContentTooLong   = errors.New("content must be 100 characters or less")
	errUnknownEmotion   = errors.New("unknown emotion")
)

func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errUsernameRequired
	}
	if utf8.RuneCountInString(username) < minUsernameLen {
		return errUsernameTooShort
	}
	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return errPasswordRequired
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return errPasswordTooShort
	}
	return nil
}

func ValidatePasswordConfirm(password, confirm string) error {
	if password != confirm {
		return errPasswordMismatch
	}
	return nil
}

func ValidateNickname(nickname string) error {
	if strings.TrimSpace(nickname) == "" {
		return errNicknameRequired
	}
	return nil
}

func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errContentRequired
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return errContentTooLong
	}
	return nil
}

func ValidateEmotion(emotion diary.Emotion) error {
	if !emotion.Valid() {
		return errUnknownEmotion
	}
	return nil
}
