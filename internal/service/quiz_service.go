package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/opcode-quiz-api/internal/domain/entity"
	"github.com/yourusername/opcode-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/opcode-quiz-api/internal/pkg/errors"
	"github.com/yourusername/opcode-quiz-api/internal/service/quizgen"
)

// quizCacheTTL - время жизни кешированной викторины. Викторина неизменяема,
// но ключ привязан к дате, так что сутки - естественный горизонт.
const quizCacheTTL = 24 * time.Hour

// QuizService предоставляет методы для работы с дневными викторинами
type QuizService struct {
	quizRepo  repository.QuizRepository
	cacheRepo repository.CacheRepository
	generator *quizgen.Generator
}

// NewQuizService создает новый сервис викторин
func NewQuizService(
	quizRepo repository.QuizRepository,
	cacheRepo repository.CacheRepository,
	generator *quizgen.Generator,
) *QuizService {
	return &QuizService{
		quizRepo:  quizRepo,
		cacheRepo: cacheRepo,
		generator: generator,
	}
}

// Config возвращает конфигурацию генерации
func (s *QuizService) Config() *quizgen.Config {
	return s.generator.Config()
}

// GetOrCreateDailyQuiz возвращает викторину календарной даты, создавая её
// при первом запросе. Идемпотентно по дате: повторные вызовы возвращают ту
// же викторину, порядок вопросов и вариантов стабилен между чтениями.
func (s *QuizService) GetOrCreateDailyQuiz(date string) (*entity.DailyQuiz, error) {
	if _, err := time.Parse(entity.QuizDateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: invalid quiz date %q", apperrors.ErrValidation, date)
	}

	// Кеш хранит клиентскую проекцию: правильные ответы и пояснения
	// сериализуются с json:"-" и в кеш не попадают. Скоринг читает из БД.
	if s.cacheRepo != nil {
		var cached entity.DailyQuiz
		if err := s.cacheRepo.GetJSON(quizCacheKey(date), &cached); err == nil {
			return &cached, nil
		}
	}

	quiz, err := s.quizRepo.GetByDate(date)
	if err == nil {
		s.cacheQuiz(quiz)
		return quiz, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[QuizService] Ошибка чтения викторины за %s: %v", date, err)
		return nil, fmt.Errorf("%w: get quiz by date %s", apperrors.ErrDependency, date)
	}

	generated, err := s.generator.Generate(date)
	if err != nil {
		return nil, err
	}

	if err := s.quizRepo.Create(generated); err != nil {
		if errors.Is(err, repository.ErrQuizDateTaken) {
			// Конкурентный генератор вставил строку первым - это успех,
			// возвращаем уже существующую викторину
			log.Printf("[QuizService] Викторина за %s уже создана конкурентным запросом, перечитываем", date)
			existing, err2 := s.quizRepo.GetByDate(date)
			if err2 != nil {
				log.Printf("[QuizService] Ошибка перечитывания викторины за %s после конфликта: %v", date, err2)
				return nil, fmt.Errorf("%w: refetch quiz for %s", apperrors.ErrDependency, date)
			}
			s.cacheQuiz(existing)
			return existing, nil
		}
		log.Printf("[QuizService] Ошибка сохранения викторины за %s: %v", date, err)
		return nil, fmt.Errorf("%w: create quiz for %s", apperrors.ErrDependency, date)
	}

	log.Printf("[QuizService] Сгенерирована викторина за %s: id=%s, вопросов=%d, seed=%s",
		date, generated.ID, len(generated.Questions), generated.Seed)
	s.cacheQuiz(generated)
	return generated, nil
}

// GetQuizByDate возвращает викторину даты без генерации.
// Единственная граница, на которой существует "викторины нет".
func (s *QuizService) GetQuizByDate(date string) (*entity.DailyQuiz, error) {
	return s.quizRepo.GetByDate(date)
}

// cacheQuiz кладёт викторину в кеш; сбой кеша не фатален
func (s *QuizService) cacheQuiz(quiz *entity.DailyQuiz) {
	if s.cacheRepo == nil || quiz == nil {
		return
	}
	if err := s.cacheRepo.SetJSON(quizCacheKey(quiz.QuizDate), quiz, quizCacheTTL); err != nil {
		log.Printf("[QuizService] Не удалось закешировать викторину за %s: %v", quiz.QuizDate, err)
	}
}

func quizCacheKey(date string) string {
	return "daily_quiz:" + date
}
