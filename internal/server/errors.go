package server

import "errors"

var (
	errNoAddressConfigured = errors.New("no http address is configured")
)
