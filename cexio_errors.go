package cexio

import (
	"errors"
	"fmt"
)

// Broad classification sentinels. Every error produced by a completed API
// call matches ErrAPI via errors.Is, and exactly one of the narrower
// sentinels below.
var (
	ErrAPI                = errors.New("cexio api failure")
	ErrNetwork            = errors.New("cexio network failure")
	ErrInvalidCredentials = errors.New("cexio invalid credentials")
	ErrResponse           = errors.New("cexio api response error")
)

// NetworkError reports a transport level failure: connection refused, DNS
// failure, timeout or context cancellation. The call never produced a usable
// response and was not retried.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() []error {
	return []error{ErrAPI, ErrNetwork, e.Err}
}

// InvalidCredentialsError reports credentials rejected locally before a call
// or by the exchange during one. StatusCode is zero for local rejections.
type InvalidCredentialsError struct {
	Reason     string
	StatusCode int
}

func (e *InvalidCredentialsError) Error() string {
	return "invalid credentials: " + e.Reason
}

func (e *InvalidCredentialsError) Unwrap() []error {
	return []error{ErrAPI, ErrInvalidCredentials}
}

// ResponseError reports a well-formed exchange response that signals
// failure, either through a non-2xx status code or an error field embedded
// in a 2xx body. Body holds the raw response for callers that need more than
// the message.
type ResponseError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("api returned status code %d: %s", e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() []error {
	return []error{ErrAPI, ErrResponse}
}
