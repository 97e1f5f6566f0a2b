package gamerules

import (
	"strings"
)

// NormalizeAnswer приводит ответ к каноническому виду: обрезает пробелы
// и переводит в нижний регистр. Никакой locale-зависимой нормализации.
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CheckAnswer сравнивает присланный ответ с сохранённым.
// Чистая функция: равенство после нормализации обеих сторон, без частичных совпадений.
func CheckAnswer(submitted, stored string) bool {
	return NormalizeAnswer(submitted) == NormalizeAnswer(stored)
}
