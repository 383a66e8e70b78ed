package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-story-nook/models"
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `id, email, password_hash, reset_token, reset_token_expires, created_at`

const (
	createUser = `INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1;`

	setPasswordHash = `UPDATE users SET password_hash = $1 WHERE id = $2;`

	setResetToken = `UPDATE users
		SET reset_token = $1, reset_token_expires = $2
		WHERE id = $3;`

	clearResetToken = `UPDATE users
		SET reset_token = NULL, reset_token_expires = NULL
		WHERE id = $1;`

	findUserByValidResetToken = `SELECT ` + userColumns + `
		FROM users
		WHERE reset_token = $1 AND reset_token_expires > $2;`

	consumeResetToken = `UPDATE users
		SET password_hash = $1, reset_token = NULL, reset_token_expires = NULL
		WHERE reset_token = $2 AND reset_token_expires > $3
		RETURNING id, email;`
)

const libraryColumns = `id, user_id, name, created_at`

const (
	createLibrary = `INSERT INTO libraries (user_id, name)
		VALUES ($1, $2)
		RETURNING ` + libraryColumns + `;`

	findLibrary = `SELECT ` + libraryColumns + `
		FROM libraries
		WHERE id = $1 AND user_id = $2;`

	renameLibrary = `UPDATE libraries SET name = $1
		WHERE id = $2 AND user_id = $3
		RETURNING ` + libraryColumns + `;`

	deleteLibrary = `DELETE FROM libraries WHERE id = $1 AND user_id = $2;`
)

const bookColumns = `id, library_id, title, author, isbn, genre, rating, cover_url, created_at`

const (
	createBook = `INSERT INTO books (library_id, title, author, isbn, genre, rating)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + bookColumns + `;`

	listBooks = `SELECT ` + bookColumns + `
		FROM books
		WHERE library_id = $1
		ORDER BY id;`

	findBook = `SELECT ` + bookColumns + `
		FROM books
		WHERE id = $1 AND library_id = $2;`

	deleteBook = `DELETE FROM books WHERE id = $1 AND library_id = $2;`

	setCoverURL = `UPDATE books SET cover_url = $1
		WHERE id = $2 AND library_id = $3
		RETURNING ` + bookColumns + `;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildClearExpiredResetTokensQuery clears tokens whose expiry is not
// strictly after now, the complement of the validity check.
func buildClearExpiredResetTokensQuery(now time.Time) (string, []any, error) {
	query, args, err := psql.Update("users").
		Set("reset_token", sq.Expr("NULL")).
		Set("reset_token_expires", sq.Expr("NULL")).
		Where(sq.NotEq{"reset_token": nil}).
		Where(sq.LtOrEq{"reset_token_expires": now}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListLibrariesQuery(userID int64) (string, []any, error) {
	query, args, err := psql.Select("id", "user_id", "name", "created_at").
		From("libraries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateBookQuery sets only the fields present in upd.
func buildUpdateBookQuery(libraryID, bookID int64, upd models.BookUpdate) (string, []any, error) {
	if upd.IsEmpty() {
		return "", nil, fmt.Errorf("%w: nothing to update", ErrBuildingSQLQuery)
	}

	builder := psql.Update("books")
	if upd.Title != nil {
		builder = builder.Set("title", *upd.Title)
	}
	if upd.Author != nil {
		builder = builder.Set("author", *upd.Author)
	}
	if upd.ISBN != nil {
		builder = builder.Set("isbn", *upd.ISBN)
	}
	if upd.Genre != nil {
		builder = builder.Set("genre", *upd.Genre)
	}
	if upd.Rating != nil {
		builder = builder.Set("rating", *upd.Rating)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": bookID, "library_id": libraryID}).
		Suffix("RETURNING " + bookColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
