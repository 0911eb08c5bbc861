package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS volumes (
	id          INTEGER,
	abbr        VARCHAR,
	full_name   VARCHAR,
	min_book_id INTEGER,
	max_book_id INTEGER
)`, `
CREATE TABLE IF NOT EXISTS books (
	id           INTEGER,
	volume_id    INTEGER,
	abbr         VARCHAR,
	cite_abbr    VARCHAR,
	full_name    VARCHAR,
	grid_name    VARCHAR,
	toc_name     VARCHAR,
	num_chapters INTEGER
)`, `
CREATE TABLE IF NOT EXISTS history (
	hash       VARCHAR,
	title      VARCHAR,
	visited_at TIMESTAMP
)`,
}

func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return db, nil
}

// Repository caches the reference tables and keeps the reading history.
type Repository struct {
	db *sql.DB
}

func NewDuckDBRepository(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// SaveReference replaces the cached volume and book tables.
func (r *Repository) SaveReference(volumes []Volume, books []Book) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM volumes`); err != nil {
		return fmt.Errorf("failed to clear volumes: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM books`); err != nil {
		return fmt.Errorf("failed to clear books: %w", err)
	}

	for _, v := range volumes {
		_, err := tx.Exec(
			`INSERT INTO volumes (id, abbr, full_name, min_book_id, max_book_id) VALUES (?, ?, ?, ?, ?)`,
			v.ID, v.Abbr, v.FullName, v.MinBookID, v.MaxBookID,
		)
		if err != nil {
			return fmt.Errorf("failed to save volume %d: %w", v.ID, err)
		}
	}

	for _, b := range books {
		_, err := tx.Exec(
			`INSERT INTO books (id, volume_id, abbr, cite_abbr, full_name, grid_name, toc_name, num_chapters)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			b.ID, b.VolumeID, b.Abbr, b.CiteAbbr, b.FullName, b.GridName, b.TocName, b.NumChapters,
		)
		if err != nil {
			return fmt.Errorf("failed to save book %d: %w", b.ID, err)
		}
	}

	return tx.Commit()
}

// LoadReference returns the cached tables. Both slices are empty when nothing
// has been cached yet.
func (r *Repository) LoadReference() ([]Volume, []Book, error) {
	rows, err := r.db.Query(`SELECT id, abbr, full_name, min_book_id, max_book_id FROM volumes ORDER BY id`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var volumes []Volume
	for rows.Next() {
		var v Volume
		if err := rows.Scan(&v.ID, &v.Abbr, &v.FullName, &v.MinBookID, &v.MaxBookID); err != nil {
			return nil, nil, err
		}
		volumes = append(volumes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	bookRows, err := r.db.Query(
		`SELECT id, volume_id, abbr, cite_abbr, full_name, grid_name, toc_name, num_chapters FROM books ORDER BY id`,
	)
	if err != nil {
		return nil, nil, err
	}
	defer bookRows.Close()

	var books []Book
	for bookRows.Next() {
		var b Book
		if err := bookRows.Scan(&b.ID, &b.VolumeID, &b.Abbr, &b.CiteAbbr, &b.FullName, &b.GridName, &b.TocName, &b.NumChapters); err != nil {
			return nil, nil, err
		}
		books = append(books, b)
	}

	return volumes, books, bookRows.Err()
}

func (r *Repository) RecordVisit(hash, title string) error {
	_, err := r.db.Exec(
		`INSERT INTO history (hash, title, visited_at) VALUES (?, ?, ?)`,
		hash, title, time.Now(),
	)
	return err
}

// RecentVisits returns up to limit visits, newest first.
func (r *Repository) RecentVisits(limit int) ([]*Visit, error) {
	rows, err := r.db.Query(
		`SELECT hash, title, visited_at FROM history ORDER BY visited_at DESC, rowid DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []*Visit
	for rows.Next() {
		v := &Visit{}
		if err := rows.Scan(&v.Hash, &v.Title, &v.VisitedAt); err != nil {
			return nil, err
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}
