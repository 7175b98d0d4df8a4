// Package schema validates generated JSON files against embedded JSON schemas.
//
// The schemas cover only the subset of each tool's configuration that
// monogen emits. They catch malformed output before it reaches disk; they
// are not replacements for the upstream schemas referenced via "$schema".
package schema
