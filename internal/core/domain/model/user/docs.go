// Package user provides the minimal user model the lifecycle core depends on:
// identity, display name, role, and active flag. Authentication, credential
// storage, and profile management are external collaborators; this package
// only models what role-gated authorization and response projection need.
package user
