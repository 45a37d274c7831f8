package service

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrUnknownForm     = errors.New("unknown enquiry form")
	ErrUpstreamFailure = errors.New("upstream provider failure")
	ErrNetworkFailure  = errors.New("network failure")
)
