package opcodes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
)

func TestBank_CatalogueIntegrity(t *testing.T) {
	// Arrange
	bank := NewBank()

	// Assert: каталог не пуст и каждая инструкция полностью заполнена
	require.Greater(t, bank.Size(), 0, "Каталог не должен быть пустым")
	for _, op := range bank.All() {
		assert.NotEmpty(t, op.Name, "Имя инструкции должно быть заполнено")
		assert.NotEmpty(t, op.Value, "Десятичное значение должно быть заполнено")
		assert.NotEmpty(t, op.Hex, "Hex-значение должно быть заполнено")
		assert.NotEmpty(t, op.Description, "Описание должно быть заполнено")
		_, err := entity.ParseCategory(string(op.Category))
		assert.NoError(t, err, "Категория инструкции %s должна быть известной", op.Name)
	}
}

func TestBank_CatalogueNamesUnique(t *testing.T) {
	// Arrange
	bank := NewBank()

	// Assert
	seen := make(map[string]bool)
	for _, op := range bank.All() {
		assert.False(t, seen[op.Name], "Имя инструкции %s не должно повторяться", op.Name)
		seen[op.Name] = true
	}
}

func TestBank_ByCategory(t *testing.T) {
	// Arrange
	bank := NewBank()

	// Act
	arithmetic := bank.ByCategory(entity.CategoryArithmetic)

	// Assert
	require.NotEmpty(t, arithmetic, "Категория arithmetic должна содержать инструкции")
	for _, op := range arithmetic {
		assert.Equal(t, entity.CategoryArithmetic, op.Category)
	}

	// Сумма по категориям должна давать весь каталог
	total := 0
	for _, cat := range entity.Categories {
		total += len(bank.ByCategory(cat))
	}
	assert.Equal(t, bank.Size(), total, "Категории должны покрывать весь каталог без пересечений")
}

func TestBank_Sample_Deterministic(t *testing.T) {
	// Arrange
	bank := NewBank()

	// Act: два вызова с одинаковым зерном
	first, err1 := bank.Sample(rand.New(rand.NewSource(42)), 4)
	second, err2 := bank.Sample(rand.New(rand.NewSource(42)), 4)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second, "Одинаковое зерно должно давать одинаковую выборку")
}

func TestBank_Sample_Distinct(t *testing.T) {
	// Arrange
	bank := NewBank()
	rng := rand.New(rand.NewSource(7))

	// Act
	sampled, err := bank.Sample(rng, 10)

	// Assert
	require.NoError(t, err)
	require.Len(t, sampled, 10)
	seen := make(map[string]bool)
	for _, op := range sampled {
		assert.False(t, seen[op.Name], "Выборка без возвращения не должна содержать дубликатов")
		seen[op.Name] = true
	}
}

func TestBank_Sample_ByCategories(t *testing.T) {
	// Arrange
	bank := NewBank()
	rng := rand.New(rand.NewSource(1))

	// Act
	sampled, err := bank.Sample(rng, 3, entity.CategoryArithmetic, entity.CategoryComparison)

	// Assert
	require.NoError(t, err)
	for _, op := range sampled {
		assert.Contains(t,
			[]entity.Category{entity.CategoryArithmetic, entity.CategoryComparison},
			op.Category,
			"Выборка должна идти только из указанных категорий")
	}
}

func TestBank_Sample_InsufficientCatalogue(t *testing.T) {
	// Arrange
	bank := NewBank()
	rng := rand.New(rand.NewSource(1))

	// Act: запрашиваем больше, чем есть в каталоге
	sampled, err := bank.Sample(rng, bank.Size()+1)

	// Assert
	assert.Nil(t, sampled)
	assert.ErrorIs(t, err, ErrInsufficientCatalogue, "Должна быть ошибка нехватки инструкций")
}
