package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

// Store владеет рабочим состоянием расписания и снимком последней
// синхронизации. Все операции атомарны относительно состояния: валидация
// выполняется строго до записи, неудачная операция не оставляет следов.
//
// Раньше такое состояние жило в глобальных переменных; здесь это явный
// объект - один экземпляр на сессию, свежий экземпляр на тест.
type Store struct {
	mu sync.Mutex

	workingTeams       []domain.Team
	workingAssignments []domain.Assignment
	resources          []domain.Resource

	originalTeams       map[string]domain.Team
	originalAssignments map[string]domain.Assignment

	changedTeams       map[string]struct{}
	changedAssignments map[string]struct{}
	deletedTeams       map[string]struct{}
	deletedAssignments map[string]struct{}

	seeded bool

	now   func() time.Time
	newID func() string
}

func New() *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
	s.resetLocked()
	return s
}

// resetLocked возвращает состояние к пустому. Вызывается под мьютексом
// (или до того, как Store стал кому-то виден).
func (s *Store) resetLocked() {
	s.workingTeams = nil
	s.workingAssignments = nil
	s.resources = nil
	s.originalTeams = make(map[string]domain.Team)
	s.originalAssignments = make(map[string]domain.Assignment)
	s.changedTeams = make(map[string]struct{})
	s.changedAssignments = make(map[string]struct{})
	s.deletedTeams = make(map[string]struct{})
	s.deletedAssignments = make(map[string]struct{})
	s.seeded = false
}

// Seed заполняет original и working одним и тем же набором данных из
// внешнего источника. Вызывается один раз за сессию (и повторно после
// ResetWorkingState).
func (s *Store) Seed(teams []domain.Team, resources []domain.Resource, assignments []domain.Assignment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	s.workingTeams = append([]domain.Team(nil), teams...)
	s.workingAssignments = append([]domain.Assignment(nil), assignments...)
	s.resources = append([]domain.Resource(nil), resources...)
	for _, team := range teams {
		s.originalTeams[team.ID] = team
	}
	for _, a := range assignments {
		s.originalAssignments[a.ID] = a
	}
	s.seeded = true
}

// NeedsSeed сообщает, что рабочее состояние пусто и его нужно заполнить
// из внешнего источника (первый запуск или после ResetWorkingState).
func (s *Store) NeedsSeed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.seeded
}

// ResetWorkingState сбрасывает локальные правки и отслеживание изменений.
// Следующая загрузка данных заново заполнит original и working.
func (s *Store) ResetWorkingState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// Teams возвращает копию рабочего списка команд.
func (s *Store) Teams() []domain.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Team(nil), s.workingTeams...)
}

// Assignments возвращает копию рабочего списка назначений.
func (s *Store) Assignments() []domain.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Assignment(nil), s.workingAssignments...)
}

// Resources возвращает справочник ресурсов.
func (s *Store) Resources() []domain.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Resource(nil), s.resources...)
}
