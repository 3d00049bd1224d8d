package models

// User represents a registered account row as stored in the users table.
// It contains identity attributes and the password hash.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the surrogate primary key assigned by the database on insert.
	ID int64 `json:"-"`

	// Username is the unique login identifier. Immutable after creation;
	// no update path exists.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext. It is used only for
	// credential verification and never leaves the store/service boundary.
	PasswordHash string `json:"-"`

	// FirstName and LastName are free-form display names.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Email is the contact address supplied at signup. Stored as given;
	// no format validation beyond non-emptiness.
	Email string `json:"email"`

	// BirthDate is the birth date string as submitted by the signup form.
	BirthDate string `json:"birthDate"`

	// ProfilePicture is the stored filename of the uploaded avatar,
	// assigned once at signup.
	ProfilePicture string `json:"profilePicture"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// View returns the sanitized projection of the user with the password
// hash stripped. Every read path that crosses outside the store must
// hand out a UserView, never a full User.
func (u User) View() UserView {
	return UserView{
		ID:             u.ID,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Email:          u.Email,
		BirthDate:      u.BirthDate,
		ProfilePicture: u.ProfilePicture,
	}
}

// UserView is the sanitized user projection bound to browser sessions and
// rendered on pages. It deliberately has no password field.
type UserView struct {
	ID             int64  `json:"-"`
	Username       string `json:"username"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	BirthDate      string `json:"birthDate"`
	ProfilePicture string `json:"profilePicture"`
}
