package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"airtech/config"
	"airtech/infras/otel/mocks"
	"airtech/infras/s3"
	s3Mocks "airtech/infras/s3/mocks"
	userMocks "airtech/internal/domains/user/mocks"
	"airtech/internal/domains/user/model"
	"airtech/internal/domains/user/model/dto"
	"airtech/internal/domains/user/service"
	cacheMocks "airtech/shared/cache/mocks"
	"airtech/shared/failure"
	gModel "airtech/shared/model"
	"airtech/shared/timezone"
)

func newUserService(ctrl *gomock.Controller) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "airtech-documents"
	cfg.External.S3.PassportDir = "passports"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	return svc, mockRepo, mockCache, mockS3
}

func testUser() model.User {
	return model.User{
		ID:       "user-id",
		Username: "traveler",
		Email:    "traveler@example.com",
		Role:     "user",
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func userWithPassport() model.User {
	user := testUser()
	url := "https://cdn.example.com/passports/old.png"
	key := "passports/old.png"
	user.PassportURL = &url
	user.PassportObjectKey = &key

	return user
}

func TestUserService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, _ := newUserService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "user-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "user-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testUser(), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "user-id",
		},
		{
			name: "user not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestUserService_UploadPassport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, mockS3 := newUserService(ctrl)

	req := dto.UploadPassportRequest{
		Passport: &multipart.FileHeader{Filename: "passport.png"},
	}

	uploaded := s3.Object{
		URL: "https://cdn.example.com/passports/new.png",
		Key: "passports/new.png",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "first upload",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testUser(), nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "airtech-documents", "passports", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uploaded, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "replacement removes the previous object",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userWithPassport(), nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "airtech-documents", "passports", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uploaded, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "airtech-documents", "passports/old.png").
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "upload error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testUser(), nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "airtech-documents", "passports", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(s3.Object{}, errors.New("upload failed"))
			},
			wantErr: true,
		},
		{
			name: "failed update cleans up the new object",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testUser(), nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "airtech-documents", "passports", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uploaded, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "airtech-documents", "passports/new.png").
					Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.UploadPassport(context.Background(), req, "user-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uploaded.URL, res.PassportURL)
				assert.Equal(t, uploaded.Key, res.PassportObjectKey)
			}
		})
	}
}

func TestUserService_DeletePassport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache, mockS3 := newUserService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userWithPassport(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "airtech-documents", "passports/old.png").
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "no passport on record",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testUser(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userWithPassport(), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.DeletePassport(context.Background(), "user-id")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
