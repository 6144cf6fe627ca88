package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/snsplatform/internal/common"
	"github.com/dmitrijs2005/snsplatform/internal/logging"
	"github.com/dmitrijs2005/snsplatform/internal/server/models"
	"github.com/gorilla/mux"
)

// UserService is the user resource as seen by the HTTP layer.
type UserService interface {
	List(ctx context.Context, page, limit int) (*models.UserPage, error)
	Get(ctx context.Context, id string) (*models.UserWithCount, error)
	Create(ctx context.Context, in *models.NewUser) (*models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// MediaService issues presigned uploads for user media.
type MediaService interface {
	PresignProfileImageUpload(ctx context.Context, userID, contentType string) (*models.ProfileImageUpload, error)
}

type handlers struct {
	users       UserService
	media       MediaService
	logger      logging.Logger
	environment string
}

type createUserRequest struct {
	Email           string  `json:"email"`
	Username        string  `json:"username"`
	DisplayName     string  `json:"displayName"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

type profileImageRequest struct {
	ContentType string `json:"contentType"`
}

// queryInt returns the integer value of key, or 0 when it is missing or
// not a number. The service turns 0 into the default.
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}

// decodeJSON reads a JSON object body into dst. An empty or non-JSON body
// leaves dst untouched. Size-limit errors are returned as is; syntax errors
// become validation errors.
func decodeJSON(r *http.Request, dst any) error {
	if !isJSONContentType(r) {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return fmt.Errorf("%w: %s", common.NewValidationError(msgInvalidJSON), err)
}

func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.users.List(r.Context(), queryInt(r, "page"), queryInt(r, "limit"))
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to fetch users")
		return
	}
	respondData(w, http.StatusOK, page, "")
}

func (h *handlers) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to fetch user")
		return
	}
	respondData(w, http.StatusOK, user, "")
}

func (h *handlers) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeMutationError(w, r, err, "Failed to create user")
		return
	}

	user, err := h.users.Create(r.Context(), &models.NewUser{
		Email:           req.Email,
		Username:        req.Username,
		DisplayName:     req.DisplayName,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
	})
	if err != nil {
		h.writeMutationError(w, r, err, "Failed to create user")
		return
	}
	respondData(w, http.StatusCreated, user, "User created successfully")
}

func (h *handlers) updateUser(w http.ResponseWriter, r *http.Request) {
	var patch models.UserPatch
	if err := decodeJSON(r, &patch); err != nil {
		h.writeMutationError(w, r, err, "Failed to update user")
		return
	}

	user, err := h.users.Update(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		h.writeMutationError(w, r, err, "Failed to update user")
		return
	}
	respondData(w, http.StatusOK, user, "User updated successfully")
}

func (h *handlers) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeMutationError(w, r, err, "Failed to delete user")
		return
	}
	respondJSON(w, http.StatusOK, envelope{Success: true, Message: "User deleted successfully"})
}

func (h *handlers) presignProfileImage(w http.ResponseWriter, r *http.Request) {
	var req profileImageRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeServiceError(w, r, err, "Failed to create upload URL")
		return
	}

	upload, err := h.media.PresignProfileImageUpload(r.Context(), mux.Vars(r)["id"], req.ContentType)
	if err != nil {
		h.writeServiceError(w, r, err, "Failed to create upload URL")
		return
	}
	respondData(w, http.StatusOK, upload, "")
}
