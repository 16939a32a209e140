// Package entities provides core domain entities for the sandbox.
// Signatures, member descriptors and the canonical operation form live here,
// together with the configuration and approval records consumed by the
// application layer. Nothing in this package imports third-party code.
package entities
