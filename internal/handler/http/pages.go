package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reut-b/profile-site/internal/logger"
	"github.com/reut-b/profile-site/internal/utils"
	"github.com/reut-b/profile-site/models"
)

// homePage is the data handed to the home template.
type homePage struct {
	User models.UserView
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := h.currentUser(r); ok {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetSessionUserFromContext(r.Context())
	if !ok {
		// requireLogin always runs first; a miss here means a wiring bug
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	h.render(w, r, "home.html", homePage{User: user})
}

func (h *Handler) profileImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetSessionUserFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	requestedFile := chi.URLParam(r, "filename")

	// a user may fetch only the picture recorded on their own session
	if requestedFile != user.ProfilePicture {
		log.Info().
			Int64("id", user.ID).
			Str("requested", requestedFile).
			Msg("profile image access denied")
		http.Error(w, msgImageForbidden, http.StatusForbidden)
		return
	}

	path, err := h.pictures.Path(requestedFile)
	if err != nil {
		http.Error(w, msgImageForbidden, http.StatusForbidden)
		return
	}

	http.ServeFile(w, r, path)
}
