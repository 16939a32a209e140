// Package ports defines interfaces between the sandbox domain and its
// collaborators. Domain logic depends on these abstractions; infrastructure
// adapters implement them.
package ports
