package store

import (
	"errors"
	"fmt"

	"github.com/Rajnish-J/todo-fast-api/internal/auth"
	"github.com/Rajnish-J/todo-fast-api/internal/models"

	"gorm.io/gorm"
)

// TodoStore is the resource store consumed by the todo handlers. Owned
// variants constrain the lookup to the owner in the WHERE clause, so a
// non-owner can never observe more than "not found". Mutating variants
// re-apply the owner constraint inside the mutation itself rather than
// trusting an earlier lookup.
type TodoStore interface {
	FindOwned(id, ownerID uint) (*models.Todo, error)
	FindAny(id uint) (*models.Todo, error)
	ListOwned(ownerID uint, offset, limit int) ([]models.Todo, error)
	ListAll() ([]models.Todo, error)
	Create(todo *models.Todo) error
	UpdateOwned(id, ownerID uint, changes map[string]interface{}) (*models.Todo, error)
	DeleteOwned(id, ownerID uint) error
	DeleteAny(id uint) error
}

type todoStore struct {
	db *gorm.DB
}

func NewTodoStore(db *gorm.DB) TodoStore {
	return &todoStore{db: db}
}

func (s *todoStore) FindOwned(id, ownerID uint) (*models.Todo, error) {
	var todo models.Todo
	err := s.db.Where("id = ? AND user_id = ?", id, ownerID).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return &todo, nil
}

func (s *todoStore) FindAny(id uint) (*models.Todo, error) {
	var todo models.Todo
	if err := s.db.First(&todo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return &todo, nil
}

func (s *todoStore) ListOwned(ownerID uint, offset, limit int) ([]models.Todo, error) {
	q := s.db.Where("user_id = ?", ownerID).Order("id ASC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	var todos []models.Todo
	if err := q.Find(&todos).Error; err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *todoStore) ListAll() ([]models.Todo, error) {
	var todos []models.Todo
	if err := s.db.Order("id ASC").Find(&todos).Error; err != nil {
		return nil, fmt.Errorf("list all todos: %w", err)
	}
	return todos, nil
}

func (s *todoStore) Create(todo *models.Todo) error {
	if err := s.db.Create(todo).Error; err != nil {
		return fmt.Errorf("create todo: %w", err)
	}
	return nil
}

// UpdateOwned applies changes to the caller's todo and returns the
// updated row. The owner check runs in the UPDATE statement itself.
func (s *todoStore) UpdateOwned(id, ownerID uint, changes map[string]interface{}) (*models.Todo, error) {
	res := s.db.Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(changes)
	if res.Error != nil {
		return nil, fmt.Errorf("update todo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, auth.ErrNotFound
	}
	return s.FindOwned(id, ownerID)
}

func (s *todoStore) DeleteOwned(id, ownerID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Todo{})
	if res.Error != nil {
		return fmt.Errorf("delete todo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return auth.ErrNotFound
	}
	return nil
}

func (s *todoStore) DeleteAny(id uint) error {
	res := s.db.Delete(&models.Todo{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete todo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return auth.ErrNotFound
	}
	return nil
}
