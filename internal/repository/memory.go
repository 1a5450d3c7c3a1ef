package repository

import (
	"context"
	"sort"
	"sync"

	"sakila-backend/internal/models"
)

// memoryTable is a map-backed table with store-assigned, never reused ids.
type memoryTable[T any] struct {
	mu     sync.RWMutex
	rows   map[uint]T
	nextID uint
	id     func(*T) *uint
	clone  func(T) T
}

func newMemoryTable[T any](id func(*T) *uint, clone func(T) T) *memoryTable[T] {
	return &memoryTable[T]{rows: make(map[uint]T), nextID: 1, id: id, clone: clone}
}

func (t *memoryTable[T]) findAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]uint, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.clone(t.rows[id]))
	}
	return out, nil
}

func (t *memoryTable[T]) findByID(ctx context.Context, id uint) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	row = t.clone(row)
	return &row, nil
}

func (t *memoryTable[T]) create(ctx context.Context, row *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	*t.id(row) = t.nextID
	t.nextID++
	t.rows[*t.id(row)] = t.clone(*row)
	return nil
}

func (t *memoryTable[T]) update(ctx context.Context, row *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	id := *t.id(row)
	if _, ok := t.rows[id]; !ok {
		return ErrNotFound
	}
	t.rows[id] = t.clone(*row)
	return nil
}

func (t *memoryTable[T]) delete(ctx context.Context, id uint) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

type memoryActorRepository struct {
	table *memoryTable[models.Actor]
}

// NewMemoryActorRepository returns an ActorRepository kept in process memory.
func NewMemoryActorRepository() ActorRepository {
	return &memoryActorRepository{
		table: newMemoryTable(
			func(a *models.Actor) *uint { return &a.ActorID },
			func(a models.Actor) models.Actor { return a },
		),
	}
}

func (r *memoryActorRepository) FindAll(ctx context.Context) ([]models.Actor, error) {
	return r.table.findAll(ctx)
}

func (r *memoryActorRepository) FindByID(ctx context.Context, id uint) (*models.Actor, error) {
	return r.table.findByID(ctx, id)
}

func (r *memoryActorRepository) Create(ctx context.Context, actor *models.Actor) error {
	return r.table.create(ctx, actor)
}

func (r *memoryActorRepository) Delete(ctx context.Context, id uint) error {
	return r.table.delete(ctx, id)
}

type memoryFilmRepository struct {
	table *memoryTable[models.Film]
}

// NewMemoryFilmRepository returns a FilmRepository kept in process memory.
func NewMemoryFilmRepository() FilmRepository {
	return &memoryFilmRepository{
		table: newMemoryTable(
			func(f *models.Film) *uint { return &f.FilmID },
			cloneFilm,
		),
	}
}

func cloneFilm(f models.Film) models.Film {
	f.ReleaseYear = cloneInt(f.ReleaseYear)
	f.OriginalLanguageID = cloneInt(f.OriginalLanguageID)
	f.Length = cloneInt(f.Length)
	if f.SpecialFeatures != nil {
		f.SpecialFeatures = append(models.SpecialFeatures{}, f.SpecialFeatures...)
	}
	return f
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (r *memoryFilmRepository) FindAll(ctx context.Context) ([]models.Film, error) {
	return r.table.findAll(ctx)
}

func (r *memoryFilmRepository) FindByID(ctx context.Context, id uint) (*models.Film, error) {
	return r.table.findByID(ctx, id)
}

func (r *memoryFilmRepository) Create(ctx context.Context, film *models.Film) error {
	return r.table.create(ctx, film)
}

func (r *memoryFilmRepository) Update(ctx context.Context, film *models.Film) error {
	return r.table.update(ctx, film)
}

func (r *memoryFilmRepository) Delete(ctx context.Context, id uint) error {
	return r.table.delete(ctx, id)
}
