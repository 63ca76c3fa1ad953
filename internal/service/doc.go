// Package service contains the application services built on the store
// interfaces: the user identity aggregate (credentials, remember tokens,
// lifecycle), the social graph operations, post creation, and feed
// assembly. Services log through slog and return the store and auth
// packages' sentinel errors unchanged so callers can branch on them.
package service
