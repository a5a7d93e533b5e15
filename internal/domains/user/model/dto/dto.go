package dto

import (
	"mime/multipart"

	"airtech/internal/domains/user/model"
	"airtech/shared/constant"
)

// UserResponse is the public projection of a user; the password hash is never
// serialized.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Username = mod.Username
	r.Email = mod.Email
	r.Role = mod.Role
}

type UpdatePassportRequest struct {
	PassportURL       string `db:"passport_url"`
	PassportObjectKey string `db:"passport_object_key"`
}

// UploadPassportRequest carries the multipart passport scan. Images only,
// capped at 2 MB.
type UploadPassportRequest struct {
	Passport     *multipart.FileHeader `json:"passport" validate:"required,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=2"`
	PassportFile multipart.File        `json:"-"`
}

type PassportResponse struct {
	PassportURL       string `json:"passport_url"`
	PassportObjectKey string `json:"passport_object_key"`
}

// ProfileResponse extends the public projection with the passport reference
// for the authenticated user's own view.
type ProfileResponse struct {
	UserResponse
	PassportURL string `json:"passport_url"`
	LastLogin   string `json:"last_login,omitempty"`
}

func (r *ProfileResponse) FromModel(mod model.User) {
	r.UserResponse.FromModel(mod)

	if mod.PassportURL != nil {
		r.PassportURL = *mod.PassportURL
	}

	if mod.LastLogin != nil {
		r.LastLogin = mod.LastLogin.Format(constant.DateTimeFormat)
	}
}
