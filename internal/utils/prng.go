// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Range возвращает случайное число в диапазоне [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Angle возвращает равномерно распределённый угол в градусах в диапазоне [0, 360).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 360
}
