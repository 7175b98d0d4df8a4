// Package project models the monorepo being generated.
//
// A root Project owns an ordered list of subprojects, and every project
// (root or sub) carries its own task registry, dependency log, ignore file
// and set of generated files. Components mutate a project through Apply;
// nothing touches the filesystem until Synth writes the registered files.
package project
