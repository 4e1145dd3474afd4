package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidProfile     = errors.New("name and country must be between 2 and 120 characters")
	ErrProfileRequired    = errors.New("please provide the required details")
)

var (
	ErrLoginCodeMalformed       = errors.New("invalid verification code")
	ErrLoginCodeInvalid         = errors.New("code is invalid or has expired")
	ErrVerificationCodeConsumed = errors.New("verification code has already been consumed")
)
