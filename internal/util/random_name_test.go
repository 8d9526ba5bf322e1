package util

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	a := assert.New(t)

	random = rand.New(rand.NewSource(0)) // nolint:gosec
	first := []string{GetRandomName(), GetRandomName()}

	random = rand.New(rand.NewSource(0)) // nolint:gosec
	a.Equal(first, []string{GetRandomName(), GetRandomName()})

	parts := strings.SplitN(first[0], " ", 2)
	a.Equal(2, len(parts))
	a.Contains(adjectives, parts[0])
	a.Contains(animals, parts[1])
}
