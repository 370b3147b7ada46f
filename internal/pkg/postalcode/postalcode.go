// Package postalcode нормализует канадские почтовые индексы.
// Единственная реализация на весь сервис, хендлеры и сервисы ходят сюда.
package postalcode

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var ErrInvalidFormat = errors.New("invalid canadian postal code format")

// Алфавит Canada Post: первая буква без D,F,I,O,Q,U,W,Z,
// третья и пятая без D,F,I,O,Q,U.
var pattern = regexp.MustCompile(`^[ABCEGHJKLMNPRSTVXY][0-9][ABCEGHJKLMNPRSTVWXYZ][0-9][ABCEGHJKLMNPRSTVWXYZ][0-9]$`)

// Normalize приводит сырой пользовательский ввод к каноничному виду "A1A 1A1".
// Повторный вызов над результатом ничего не меняет.
func Normalize(raw string) (string, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	compact = strings.ToUpper(compact)

	if len(compact) != 6 || !pattern.MatchString(compact) {
		return "", ErrInvalidFormat
	}

	return compact[:3] + " " + compact[3:], nil
}

// FSA возвращает forward sortation area - первые три символа каноничного
// индекса, единица членства в зоне доставки.
func FSA(code string) string {
	if len(code) < 3 {
		return code
	}
	return code[:3]
}
