package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

// GenerateID creates a short URL-safe listing identifier. Generation only
// fails on a broken entropy source, which is not recoverable anyway.
func GenerateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}
