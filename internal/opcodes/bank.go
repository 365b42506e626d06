package opcodes

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
)

// ErrInsufficientCatalogue означает, что в каталоге (после фильтрации)
// меньше инструкций, чем запрошено для выборки.
var ErrInsufficientCatalogue = errors.New("insufficient opcodes in catalogue")

// Bank - каталог EVM-инструкций, доступный только для чтения.
// Безопасен для конкурентного использования после создания.
type Bank struct {
	all        []entity.Opcode
	byCategory map[entity.Category][]entity.Opcode
}

// NewBank создает банк вопросов поверх встроенного каталога
func NewBank() *Bank {
	b := &Bank{
		all:        catalogue,
		byCategory: make(map[entity.Category][]entity.Opcode),
	}
	for _, op := range catalogue {
		b.byCategory[op.Category] = append(b.byCategory[op.Category], op)
	}
	return b
}

// All возвращает все инструкции каталога
func (b *Bank) All() []entity.Opcode {
	return b.all
}

// ByCategory возвращает инструкции одной категории
func (b *Bank) ByCategory(cat entity.Category) []entity.Opcode {
	return b.byCategory[cat]
}

// Size возвращает размер каталога
func (b *Bank) Size() int {
	return len(b.all)
}

// Sample выбирает n различных инструкций без возвращения, равномерно
// случайно. Если указаны категории, выборка идёт из их объединения.
// Детерминированность обеспечивается переданным rng: один и тот же
// источник даёт одну и ту же выборку.
func (b *Bank) Sample(rng *rand.Rand, n int, cats ...entity.Category) ([]entity.Opcode, error) {
	pool := b.all
	if len(cats) > 0 {
		pool = nil
		for _, c := range cats {
			pool = append(pool, b.byCategory[c]...)
		}
	}

	if len(pool) < n {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientCatalogue, n, len(pool))
	}

	picked := make([]entity.Opcode, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[idx])
	}
	return picked, nil
}
