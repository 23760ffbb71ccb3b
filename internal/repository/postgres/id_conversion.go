package postgres

import (
	"fmt"
	"strconv"
	"strings"
)

// Внешняя система хранит числовые идентификаторы, ядро оперирует
// непрозрачными строковыми. Префикс кодирует тип сущности.

func teamIntToStringID(id int) string {
	return fmt.Sprintf("t%d", id)
}

func teamStringIDToInt(stringID string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(stringID, "t"))
}

func resourceIntToStringID(id int) string {
	return fmt.Sprintf("r%d", id)
}

func resourceStringIDToInt(stringID string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(stringID, "r"))
}

func assignmentIntToStringID(id int) string {
	return fmt.Sprintf("a%d", id)
}

func assignmentStringIDToInt(stringID string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(stringID, "a"))
}
