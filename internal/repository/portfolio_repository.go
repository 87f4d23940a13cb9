// Package repository provides SQLite data access for the portfolio
// persistence service.
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/SohamNaik26/wealth-management/internal/errors"
	"github.com/SohamNaik26/wealth-management/internal/model"
)

// PortfolioRepository provides data access methods for the portfolio table.
type PortfolioRepository struct {
	db *sql.DB
}

// NewPortfolioRepository creates a new PortfolioRepository with the provided database connection.
func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// GetPortfolios retrieves all portfolios in creation order.
// Returns an empty slice when the table is empty.
func (s *PortfolioRepository) GetPortfolios() ([]model.Portfolio, error) {
	query := `
          SELECT id, name, description, total_value, created_at
          FROM portfolio
          ORDER BY created_at
      `

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio table: %w", err)
	}
	defer rows.Close()

	portfolios := []model.Portfolio{}

	for rows.Next() {
		p, err := scanPortfolio(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio table results: %w", err)
		}
		portfolios = append(portfolios, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio table: %w", err)
	}

	return portfolios, nil
}

// GetPortfolioOnID retrieves a single portfolio by its ID.
func (s *PortfolioRepository) GetPortfolioOnID(portfolioID string) (model.Portfolio, error) {
	query := `
          SELECT id, name, description, total_value, created_at
          FROM portfolio
          WHERE id = ?
      `

	p, err := scanPortfolio(s.db.QueryRow(query, portfolioID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Portfolio{}, apperrors.ErrPortfolioNotFound
	}
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to query portfolio: %w", err)
	}

	return p, nil
}

// CreatePortfolio inserts a new portfolio row.
func (s *PortfolioRepository) CreatePortfolio(p model.Portfolio) error {
	query := `
          INSERT INTO portfolio (id, name, description, total_value, created_at)
          VALUES (?, ?, ?, ?, ?)
      `

	if _, err := s.db.Exec(query, p.ID, p.Name, p.Description, p.TotalValue, p.CreatedAt.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to insert portfolio: %w", err)
	}

	return nil
}

// UpdatePortfolio rewrites the mutable columns of an existing portfolio.
func (s *PortfolioRepository) UpdatePortfolio(p model.Portfolio) error {
	query := `
          UPDATE portfolio
          SET name = ?, description = ?, total_value = ?
          WHERE id = ?
      `

	result, err := s.db.Exec(query, p.Name, p.Description, p.TotalValue, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update portfolio: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPortfolioNotFound
	}

	return nil
}

// DeletePortfolio removes a portfolio row.
func (s *PortfolioRepository) DeletePortfolio(portfolioID string) error {
	result, err := s.db.Exec("DELETE FROM portfolio WHERE id = ?", portfolioID)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPortfolioNotFound
	}

	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPortfolio(row scanner) (model.Portfolio, error) {
	var p model.Portfolio
	var createdAt string

	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.TotalValue, &createdAt); err != nil {
		return model.Portfolio{}, err
	}

	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	p.CreatedAt = parsed

	return p, nil
}
