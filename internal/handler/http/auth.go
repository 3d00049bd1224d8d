package http

import (
	"errors"
	"net/http"

	"github.com/reut-b/profile-site/internal/logger"
	"github.com/reut-b/profile-site/internal/service"
	"github.com/reut-b/profile-site/internal/session"
	"github.com/reut-b/profile-site/internal/store"
)

// maxUploadSize caps the multipart signup request, picture included.
const maxUploadSize = 10 << 20 // 10 MB

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	// already-authenticated browsers skip the form
	if _, _, ok := h.currentUser(r); ok {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	h.render(w, r, "login.html", formPage{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("error parsing login form")
		h.render(w, r, "login.html", formPage{Error: msgFillAllFields})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if username == "" || password == "" {
		h.render(w, r, "login.html", formPage{Error: msgFillAllFields})
		return
	}

	user, err := h.services.Auth.Authenticate(ctx, username, password)
	if err != nil {
		// wrong password, unknown username, and internal faults all render
		// the same message; anything else would leak account existence
		log.Err(err).Str("username", username).Msg("login failed")
		h.render(w, r, "login.html", formPage{Error: msgBadCredentials})
		return
	}

	sessionID := session.NewSessionID()
	h.sessions.Set(sessionID, user)
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info().Int64("id", user.ID).Str("username", user.Username).Msg("user logged in")
	http.Redirect(w, r, "/home", http.StatusFound)
}

func (h *Handler) signupForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signup.html", formPage{})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Msg("error parsing signup form")
		h.render(w, r, "signup.html", formPage{Error: msgFillAllFields})
		return
	}

	input := service.SignupInput{
		Username:  r.PostFormValue("username"),
		Password:  r.PostFormValue("password"),
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
		BirthDate: r.PostFormValue("birthDate"),
	}

	file, header, err := r.FormFile("profilePicture")
	if err == nil {
		defer file.Close()
		input.Picture = service.PictureUpload{
			FileName: header.Filename,
			Data:     file,
		}
	} else if !errors.Is(err, http.ErrMissingFile) {
		log.Err(err).Msg("error reading uploaded picture")
		h.render(w, r, "signup.html", formPage{Error: msgUploadFailed})
		return
	}

	if _, err := h.services.Auth.Signup(ctx, input); err != nil {
		log.Err(err).Str("username", input.Username).Msg("signup failed")

		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.render(w, r, "signup.html", formPage{Error: msgFillAllFields})
		case errors.Is(err, service.ErrMissingUpload):
			h.render(w, r, "signup.html", formPage{Error: msgUploadPicture})
		case errors.Is(err, store.ErrUsernameTaken):
			h.render(w, r, "signup.html", formPage{Error: msgUsernameExists})
		case errors.Is(err, service.ErrUploadFailed):
			h.render(w, r, "signup.html", formPage{Error: msgUploadFailed})
		default:
			h.render(w, r, "signup.html", formPage{Error: msgSignupFailed})
		}
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		h.sessions.Destroy(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	http.Redirect(w, r, "/login", http.StatusFound)
}
