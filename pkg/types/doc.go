// Package types defines the core types and interfaces shared across extlinker.
// This includes the FS capability interface the provisioner works against,
// as well as data structures like LinkSpec, LinkSet, RemovalSet and RootPaths.
package types
