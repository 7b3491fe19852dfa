// Package ent holds the generated ent client. Run `go generate ./ent` after
// editing schemas, then create a matching SQL migration (see pkg/database).
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
