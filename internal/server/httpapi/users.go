package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/spende/internal/server/services"
)

type registerRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (r *registerRequest) validate() error {
	switch {
	case r.Name == nil:
		return missingField("name")
	case r.Username == nil:
		return missingField("username")
	case r.Password == nil:
		return missingField("password")
	}
	return nil
}

type loginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (r *loginRequest) validate() error {
	switch {
	case r.Username == nil:
		return missingField("username")
	case r.Password == nil:
		return missingField("password")
	}
	return nil
}

type updateUserRequest struct {
	Name        *string `json:"name"`
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	OldPassword *string `json:"old_password"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, opCreateUser, err)
		return
	}

	user, token, err := h.users.Register(r.Context(), services.NewUser{
		Name:     *req.Name,
		Username: *req.Username,
		Password: *req.Password,
	})
	if err != nil {
		h.fail(w, r, opCreateUser, err)
		return
	}

	setSessionCookie(w, token, h.users.TokenValidity())
	h.log.Info(r.Context(), "user registered", "user_id", user.ID)
	writeData(w, http.StatusOK, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)

	var req loginRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, opLogin, err)
		return
	}

	user, token, err := h.users.Login(r.Context(), *req.Username, *req.Password)
	if err != nil {
		h.fail(w, r, opLogin, err)
		return
	}

	setSessionCookie(w, token, h.users.TokenValidity())
	writeData(w, http.StatusOK, user)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	writeData(w, http.StatusOK, nil)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, mustUser(r))
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.fail(w, r, opUpdateUser, err)
		return
	}

	user, err := h.users.Update(r.Context(), mustUser(r), services.UserUpdate{
		Name:        req.Name,
		Username:    req.Username,
		Password:    req.Password,
		OldPassword: req.OldPassword,
	})
	if err != nil {
		h.fail(w, r, opUpdateUser, err)
		return
	}

	writeData(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Delete(r.Context(), mustUser(r))
	if err != nil {
		h.fail(w, r, opDeleteUser, err)
		return
	}

	clearSessionCookie(w)
	h.log.Info(r.Context(), "user deleted", "user_id", user.ID)
	writeData(w, http.StatusOK, user)
}
