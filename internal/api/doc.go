// Package api contains the HTTP handlers, request/response models, and
// error mapping for the public REST surface. Handlers validate input,
// delegate to the service layer, and translate domain and store errors
// into HTTP status codes with safe client-facing messages.
package api
