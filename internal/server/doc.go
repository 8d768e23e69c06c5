// Package server owns the HTTP surface over hosted scenes.
//
// Ownership boundary:
// - scene registry and per-scene locking
// - route registration and status mapping
// - request auth, logging, and metrics wiring
//
// The scene package itself is single-threaded; every mutation or read
// that crosses this boundary runs under the hosted scene's lock.
package server
