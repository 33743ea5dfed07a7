package service

import "errors"

var (
	// ErrInvalidCredentials covers both unknown id numbers and wrong
	// passwords so responses never reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid id number or password")

	// ErrStoredHash means the persisted password hash is missing or not a
	// bcrypt hash; the account needs administrator repair.
	ErrStoredHash = errors.New("stored password is malformed, contact an administrator")

	// ErrNoSession is returned by interact calls made before a non-owner
	// retrieval established a session, or after the session expired.
	ErrNoSession = errors.New("no interactive session, call the health-check retrieval endpoint first")
)
