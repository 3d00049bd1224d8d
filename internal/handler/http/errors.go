package http

// User-facing messages rendered on the login and signup forms. The same
// generic wording is deliberately reused for internal failures so that a
// form error never reveals whether a username exists.
const (
	msgFillAllFields  = "Please fill in all fields"
	msgUploadPicture  = "Please upload a profile picture"
	msgUsernameExists = "Username already exists"
	msgUploadFailed   = "Error uploading image"
	msgSignupFailed   = "Error saving user"
	msgBadCredentials = "Incorrect username or password"

	msgImageForbidden = "You are not authorized to view this image"
)
