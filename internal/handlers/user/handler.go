package user

import (
	"net/http"

	"airtech/infras/otel"
	"airtech/internal/domains/user/model/dto"
	"airtech/internal/domains/user/service"
	"airtech/permissions"
	"airtech/shared/constant"
	"airtech/shared/validator"
	"airtech/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/profile", handler.GetProfile)

	r.Route("/passport", func(r chi.Router) {
		r.Post("/", handler.UploadPassport)
		r.Put("/", handler.UploadPassport)
		r.Delete("/", handler.DeletePassport)
	})
}

// GetProfile returns the authenticated user's profile.
// @Summary Get profile
// @Description Retrieve the profile of the authenticated user.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileResponse] "User profile"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	actor := permissions.FromContext(ctx)

	profile, err := handler.service.Get(ctx, actor.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Profile retrieved successfully")

	response.WithJSON(w, http.StatusOK, profile)
}

// UploadPassport stores a passport scan for the authenticated user.
// @Summary Upload passport
// @Description Upload a passport scan for the authenticated user. Replaces any previous document.
// @Tags User
// @Accept multipart/form-data
// @Produce json
// @Param passport formData file true "Passport scan"
// @Success 201 {object} response.Data[dto.PassportResponse] "Passport uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/passport [post]
// @Security BearerAuth
func (handler *Handler) UploadPassport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPassport")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UploadPassportRequest{}

	file, fileHeader, err := r.FormFile(constant.FormFilePassport)
	if err == nil {
		req.Passport = fileHeader
		req.PassportFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	actor := permissions.FromContext(ctx)

	res, err := handler.service.UploadPassport(ctx, req, actor.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload passport")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Passport uploaded successfully by user " + actor.ID)

	status := http.StatusCreated
	if r.Method == http.MethodPut {
		status = http.StatusOK
	}

	response.WithJSON(w, status, res)
}

// DeletePassport removes the authenticated user's passport scan.
// @Summary Delete passport
// @Description Delete the passport scan of the authenticated user.
// @Tags User
// @Accept json
// @Produce json
// @Success 204 "Passport deleted successfully"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/passport [delete]
// @Security BearerAuth
func (handler *Handler) DeletePassport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePassport")
	defer scope.End()

	actor := permissions.FromContext(ctx)

	if err := handler.service.DeletePassport(ctx, actor.ID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete passport")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Passport deleted successfully by user " + actor.ID)

	w.WriteHeader(http.StatusNoContent)
}
