package idgen

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const (
	alphabet    = "0123456789abcdefghijklmnopqrstuvwxyz"
	randomChars = 7
)

// New retorna um identificador local: timestamp em base 36 seguido de
// caracteres aleatórios em base 36. Colisões são improváveis, não impossíveis.
func New() string {
	return newAt(time.Now())
}

func newAt(now time.Time) string {
	buf := make([]byte, 0, 16)
	buf = strconv.AppendInt(buf, now.UnixMilli(), 36)
	for i := 0; i < randomChars; i++ {
		buf = append(buf, alphabet[rand.IntN(len(alphabet))])
	}
	return string(buf)
}
