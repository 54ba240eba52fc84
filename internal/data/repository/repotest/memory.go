// Package repotest provides in-memory repositories for tests. They enforce the
// same uniqueness rules as the database schema: unique user email and one
// purchase per (user, course).
package repotest

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"course-portal/internal/data/entity"
	"course-portal/internal/data/repository"

	"github.com/google/uuid"
)

// Store is the shared state behind the in-memory repositories.
type Store struct {
	mu        sync.Mutex
	users     map[uuid.UUID]entity.User
	courses   map[uuid.UUID]entity.Course
	purchases []entity.Purchase
}

func NewStore() *Store {
	return &Store{
		users:   make(map[uuid.UUID]entity.User),
		courses: make(map[uuid.UUID]entity.Course),
	}
}

// NewRepository returns a repository set backed by a fresh Store.
func NewRepository() (*repository.Repository, *Store) {
	s := NewStore()
	return s.Repository(), s
}

func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		User:     &userRepo{s: s},
		Course:   &courseRepo{s: s},
		Purchase: &purchaseRepo{s: s},
	}
}

// Purchases returns a copy of every stored purchase
func (s *Store) Purchases() []entity.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Purchase(nil), s.purchases...)
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return fmt.Errorf("create user %s: %w", user.Email, repository.ErrDuplicate)
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		u := u
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID.String() < users[j].ID.String()
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (r *userRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
	}
	u.IsActive = active
	r.s.users[id] = u
	return nil
}

type courseRepo struct{ s *Store }

func cloneCourse(c entity.Course) *entity.Course {
	c.Videos = append([]entity.CourseVideo{}, c.Videos...)
	return &c
}

func (r *courseRepo) Create(_ context.Context, course *entity.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.courses[course.ID] = *cloneCourse(*course)
	return nil
}

func (r *courseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.courses[id]
	if !ok {
		return nil, nil
	}
	return cloneCourse(c), nil
}

func (r *courseRepo) FindAll(_ context.Context) ([]*entity.Course, error) {
	return r.list(func(entity.Course) bool { return true }), nil
}

func (r *courseRepo) FindAllActive(_ context.Context) ([]*entity.Course, error) {
	return r.list(func(c entity.Course) bool { return c.IsActive }), nil
}

func (r *courseRepo) list(keep func(entity.Course) bool) []*entity.Course {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	courses := make([]*entity.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		if keep(c) {
			courses = append(courses, cloneCourse(c))
		}
	}
	sort.Slice(courses, func(i, j int) bool {
		if courses[i].CreatedAt.Equal(courses[j].CreatedAt) {
			return courses[i].ID.String() < courses[j].ID.String()
		}
		return courses[i].CreatedAt.Before(courses[j].CreatedAt)
	})
	return courses
}

func (r *courseRepo) Update(_ context.Context, course *entity.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.courses[course.ID]
	if !ok {
		return fmt.Errorf("update course %s: %w", course.ID, repository.ErrNotFound)
	}
	updated := *cloneCourse(*course)
	updated.CreatedAt = existing.CreatedAt
	r.s.courses[course.ID] = updated
	return nil
}

func (r *courseRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.courses[id]
	if !ok {
		return fmt.Errorf("delete course %s: %w", id, repository.ErrNotFound)
	}
	c.IsActive = false
	r.s.courses[id] = c
	return nil
}

func (r *courseRepo) FindPurchasedByUser(_ context.Context, userID uuid.UUID) ([]*entity.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// purchases are appended in time order
	courses := make([]*entity.Course, 0)
	for _, p := range r.s.purchases {
		if p.UserID != userID || p.Status != entity.PurchaseStatusCompleted {
			continue
		}
		if c, ok := r.s.courses[p.CourseID]; ok && c.IsActive {
			courses = append(courses, cloneCourse(c))
		}
	}
	return courses, nil
}

type purchaseRepo struct{ s *Store }

func (r *purchaseRepo) Create(_ context.Context, purchase *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.purchases {
		if p.UserID == purchase.UserID && p.CourseID == purchase.CourseID {
			return fmt.Errorf("create purchase of course %s: %w", purchase.CourseID, repository.ErrDuplicate)
		}
	}
	r.s.purchases = append(r.s.purchases, *purchase)
	return nil
}

func (r *purchaseRepo) Exists(_ context.Context, userID, courseID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.purchases {
		if p.UserID == userID && p.CourseID == courseID && p.Status == entity.PurchaseStatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (r *purchaseRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	purchases := make([]*entity.Purchase, 0)
	for _, p := range r.s.purchases {
		if p.UserID == userID {
			p := p
			purchases = append(purchases, &p)
		}
	}
	return purchases, nil
}
