package schema

// The ent client is generated into internal/repo and is not committed.
// Regenerate after schema changes with `go generate ./...`.

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target ../repo ./
