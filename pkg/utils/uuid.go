package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const sessionIDSize = 12

// GenerateID gera o identificador público de uma sessão de dashboard
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, sessionIDSize)
}
