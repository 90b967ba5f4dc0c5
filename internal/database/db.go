package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate applies the schema. Statements are idempotent so the server
// can run them on every start.
func Migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(64) NOT NULL,
			email VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			profile_photo VARCHAR(512) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uq_users_username (username),
			UNIQUE KEY uq_users_email (email)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS books (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT UNSIGNED NOT NULL,
			title VARCHAR(255) NOT NULL,
			author VARCHAR(255) NOT NULL,
			cover_url VARCHAR(512) NOT NULL DEFAULT '',
			description TEXT,
			isbn VARCHAR(32) NOT NULL DEFAULT '',
			rating DOUBLE NOT NULL DEFAULT 0,
			added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			KEY idx_books_user (user_id),
			CONSTRAINT fk_books_user FOREIGN KEY (user_id) REFERENCES users (id)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS favorites (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT UNSIGNED NOT NULL,
			book_title VARCHAR(255) NOT NULL,
			book_author VARCHAR(255) NOT NULL,
			book_cover VARCHAR(512) NOT NULL DEFAULT '',
			book_description TEXT,
			book_isbn VARCHAR(32) NOT NULL DEFAULT '',
			added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			KEY idx_favorites_user (user_id),
			CONSTRAINT fk_favorites_user FOREIGN KEY (user_id) REFERENCES users (id)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS exchange_requests (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			requester_id BIGINT UNSIGNED NOT NULL,
			owner_id BIGINT UNSIGNED NOT NULL,
			book_id BIGINT UNSIGNED NOT NULL,
			status ENUM('pending','accepted','rejected') NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_requests_requester (requester_id),
			KEY idx_requests_owner (owner_id),
			KEY idx_requests_book (book_id),
			CONSTRAINT fk_requests_requester FOREIGN KEY (requester_id) REFERENCES users (id),
			CONSTRAINT fk_requests_owner FOREIGN KEY (owner_id) REFERENCES users (id),
			CONSTRAINT fk_requests_book FOREIGN KEY (book_id) REFERENCES books (id)
		) ENGINE=InnoDB`,
		`CREATE TABLE IF NOT EXISTS completed_exchanges (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			user1_id BIGINT UNSIGNED NOT NULL,
			user2_id BIGINT UNSIGNED NOT NULL,
			book_id BIGINT UNSIGNED NOT NULL,
			completed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			KEY idx_completed_user1 (user1_id),
			KEY idx_completed_user2 (user2_id),
			CONSTRAINT fk_completed_user1 FOREIGN KEY (user1_id) REFERENCES users (id),
			CONSTRAINT fk_completed_user2 FOREIGN KEY (user2_id) REFERENCES users (id),
			CONSTRAINT fk_completed_book FOREIGN KEY (book_id) REFERENCES books (id)
		) ENGINE=InnoDB`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
