package store

// Positional $N placeholders are understood by both the pgx and the
// go-sqlite3 driver, so one query set serves both backends.
const (
	createUser = `INSERT INTO users (username, password, firstName, lastName, email, birthDate, profilePicture)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, username, password, firstName, lastName, email, birthDate, profilePicture;`

	findUserByUsername = `SELECT id, username, password, firstName, lastName, email, birthDate, profilePicture
    FROM users
    WHERE username = $1;`

	getUserByID = `SELECT id, username, firstName, lastName, email, birthDate, profilePicture
    FROM users
    WHERE id = $1;`
)
