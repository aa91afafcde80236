package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength     = 16
)

// GenerateID gera um identificador alfanumérico para registros criados pela aplicação
func GenerateID() (string, error) {
	return gonanoid.Generate(idCharacters, idLength)
}
