package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizQuestion_IsCorrect_StrictEquality(t *testing.T) {
	// Arrange
	question := &QuizQuestion{
		Kind:          KindHex,
		Options:       StringArray{"0x01", "0x02", "0x03", "0x04"},
		CorrectAnswer: "0x01",
	}

	// Act & Assert
	assert.True(t, question.IsCorrect("0x01"), "Точное совпадение должно засчитываться")
	assert.False(t, question.IsCorrect("0x02"), "Другой вариант не должен засчитываться")
	assert.False(t, question.IsCorrect(""), "Пустой ответ не должен засчитываться")
}

func TestQuizQuestion_IsCorrect_NoNormalization(t *testing.T) {
	// Arrange
	question := &QuizQuestion{
		Kind:          KindDescription,
		CorrectAnswer: "Addition operation",
	}

	// Act & Assert: регистр и пробелы значимы
	assert.True(t, question.IsCorrect("Addition operation"))
	assert.False(t, question.IsCorrect("addition operation"), "Сравнение должно быть чувствительно к регистру")
	assert.False(t, question.IsCorrect(" Addition operation"), "Ведущие пробелы должны менять результат")
	assert.False(t, question.IsCorrect("Addition operation "), "Хвостовые пробелы должны менять результат")
}

func TestQuizQuestion_HasOption(t *testing.T) {
	// Arrange
	question := &QuizQuestion{
		Options: StringArray{"3", "5", "8", "2"},
	}

	// Act & Assert
	assert.True(t, question.HasOption("5"))
	assert.False(t, question.HasOption("7"), "Отсутствующий вариант не должен находиться")
	assert.False(t, question.HasOption(""), "Пустая строка не является вариантом")
}

func TestParseQuestionKind(t *testing.T) {
	// Act & Assert: все известные типы разбираются
	for _, kind := range QuestionKinds {
		parsed, err := ParseQuestionKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	// Неизвестный тип отклоняется
	_, err := ParseQuestionKind("binary")
	assert.Error(t, err, "Неизвестный тип вопроса должен отклоняться")
}

func TestOpcode_Answer_ByKind(t *testing.T) {
	// Arrange
	op := &Opcode{
		Name:        "ADD",
		Value:       "1",
		Hex:         "0x01",
		Gas:         3,
		Description: "Addition operation",
	}

	// Act & Assert: каждый тип вопроса читает своё поле
	assert.Equal(t, "1", op.Answer(KindValue))
	assert.Equal(t, "0x01", op.Answer(KindHex))
	assert.Equal(t, "Addition operation", op.Answer(KindDescription))
	assert.Equal(t, "3", op.Answer(KindGas))
}

func TestStringArray_ScanValue(t *testing.T) {
	// Arrange
	original := StringArray{"0x01", "0x02"}

	// Act: запись и чтение через интерфейсы driver.Valuer / sql.Scanner
	value, err := original.Value()
	require.NoError(t, err)

	var restored StringArray
	err = restored.Scan(value)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestStringArray_ScanNil(t *testing.T) {
	// Act
	var arr StringArray
	err := arr.Scan(nil)

	// Assert: NULL из базы превращается в пустой массив
	require.NoError(t, err)
	assert.Equal(t, StringArray{}, arr)
}
