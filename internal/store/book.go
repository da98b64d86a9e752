package store

import (
	"errors"
	"fmt"

	"github.com/Rajnish-J/todo-fast-api/internal/auth"
	"github.com/Rajnish-J/todo-fast-api/internal/models"

	"gorm.io/gorm"
)

// BookStore is the catalog store. Books are shared, not owner-scoped.
type BookStore interface {
	Find(id uint) (*models.Book, error)
	List(category string) ([]models.Book, error)
	Create(book *models.Book) error
	Update(book *models.Book) error
	Delete(id uint) error
}

type bookStore struct {
	db *gorm.DB
}

func NewBookStore(db *gorm.DB) BookStore {
	return &bookStore{db: db}
}

func (s *bookStore) Find(id uint) (*models.Book, error) {
	var book models.Book
	if err := s.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	return &book, nil
}

func (s *bookStore) List(category string) ([]models.Book, error) {
	q := s.db.Order("id ASC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var books []models.Book
	if err := q.Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *bookStore) Create(book *models.Book) error {
	if err := s.db.Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (s *bookStore) Update(book *models.Book) error {
	if err := s.db.Save(book).Error; err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (s *bookStore) Delete(id uint) error {
	res := s.db.Delete(&models.Book{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete book: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return auth.ErrNotFound
	}
	return nil
}
