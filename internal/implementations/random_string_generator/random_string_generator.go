package randomstringgenerator

import (
	"crypto/rand"
	"digitalmenu/internal/core/domain/user"
	"fmt"
	"math/big"
)

const (
	LOGIN_CODE_MIN = 100000
	LOGIN_CODE_MAX = 999999
)

var slugChars = []rune("abcdefghijklmnopqrstuvwxyz0123456789")

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateLoginCode draws a six digit code uniformly from 100000..999999.
func (g *Generator) GenerateLoginCode() user.LoginCode {
	n := randomInt(LOGIN_CODE_MAX - LOGIN_CODE_MIN + 1)
	return user.LoginCode(fmt.Sprintf("%d", LOGIN_CODE_MIN+n))
}

// RandomString returns length characters from a-z and 0-9.
func (g *Generator) RandomString(length int) string {
	b := make([]rune, length)
	for i := range b {
		b[i] = slugChars[randomInt(len(slugChars))]
	}
	return string(b)
}

func randomInt(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic("Could not read random bytes: " + err.Error())
	}
	return int(n.Int64())
}
