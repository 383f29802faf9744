package domain

import "errors"

var (
	// ErrInvalidWalletAddress is returned when an input does not normalize
	// to a canonical wallet address.
	ErrInvalidWalletAddress = errors.New("invalid wallet address")

	// ErrEmailTaken is returned when an upsert would reuse a non-empty
	// email already claimed by another wallet address.
	ErrEmailTaken = errors.New("email already in use by another profile")

	// ErrInvalidTokenID is returned when a token id is not a decimal
	// integer.
	ErrInvalidTokenID = errors.New("invalid token id")
)
