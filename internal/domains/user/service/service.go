package service

import (
	"context"
	"fmt"
	"strings"

	"airtech/config"
	"airtech/infras/otel"
	"airtech/infras/s3"
	"airtech/internal/domains/user/model"
	"airtech/internal/domains/user/model/dto"
	"airtech/internal/domains/user/repository"
	"airtech/shared"
	"airtech/shared/cache"
	"airtech/shared/constant"
	"airtech/shared/failure"
	"airtech/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const cacheGetUser = "user:get"

type User interface {
	Get(ctx context.Context, id string) (dto.ProfileResponse, error)
	UploadPassport(ctx context.Context, req dto.UploadPassportRequest, userID string) (dto.PassportResponse, error)
	DeletePassport(ctx context.Context, userID string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.getUser(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

// UploadPassport stores the passport scan and points the user record at it.
// The previous object, if any, is removed only after the record update
// succeeds, so a failed update never orphans the user's current document.
func (s *serviceImpl) UploadPassport(ctx context.Context, req dto.UploadPassportRequest, userID string) (res dto.PassportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPassport")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return res, err
	}

	bucketName := s.cfg.External.S3.BucketName
	fileName := uuid.NewString()

	// Keep the original extension
	parts := strings.Split(req.Passport.Filename, ".")
	if len(parts) > 1 {
		fileName = fmt.Sprintf("%s.%s", fileName, parts[len(parts)-1])
	}

	object, err := s.s3.UploadFile(ctx, bucketName, s.cfg.External.S3.PassportDir, req.PassportFile, req.Passport, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload passport")

		return res, fmt.Errorf("failed to upload passport: %w", err)
	}

	updated := dto.UpdatePassportRequest{
		PassportURL:       object.URL,
		PassportObjectKey: object.Key,
	}
	updatedFields := shared.TransformFields(updated, userID)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(userID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update user passport")

		if delErr := s.s3.DeleteFile(ctx, bucketName, object.Key); delErr != nil {
			log.Error().Err(delErr).Msg("failed to clean up uploaded passport")
		}

		return res, fmt.Errorf("failed to update user passport: %w", err)
	}

	if user.PassportObjectKey != nil && *user.PassportObjectKey != constant.Empty {
		if delErr := s.s3.DeleteFile(ctx, bucketName, *user.PassportObjectKey); delErr != nil {
			log.Error().Err(delErr).Msg("failed to delete previous passport")
		}
	}

	s.invalidate(ctx, userID)

	res.PassportURL = object.URL
	res.PassportObjectKey = object.Key

	return res, nil
}

func (s *serviceImpl) DeletePassport(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePassport")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if user.PassportObjectKey == nil || *user.PassportObjectKey == constant.Empty {
		return failure.NotFound("passport not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldPassportURL:       nil,
		model.FieldPassportObjectKey: nil,
		constant.FieldModifiedAt:     timezone.Now(),
		constant.FieldModifiedBy:     userID,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(userID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to clear user passport")

		return fmt.Errorf("failed to clear user passport: %w", err)
	}

	if delErr := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, *user.PassportObjectKey); delErr != nil {
		log.Error().Err(delErr).Msg("failed to delete passport object")
	}

	s.invalidate(ctx, userID)

	return nil
}

func (s *serviceImpl) getUser(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound("user not found") // nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUser, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete user cache")
		}
	}()
}
