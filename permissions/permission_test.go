package permissions_test

import (
	"context"
	"net/http"
	"testing"

	"airtech/permissions"
	"airtech/shared/constant"
	"airtech/shared/failure"
)

func TestFromContext(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected permissions.Actor
	}{
		{
			name:     "empty context yields anonymous actor",
			ctx:      context.Background(),
			expected: permissions.Actor{},
		},
		{
			name: "authenticated user",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id"),
				constant.ContextKeyUserRole, constant.RoleUser,
			),
			expected: permissions.Actor{
				ID:            "user-id",
				Role:          constant.RoleUser,
				Authenticated: true,
			},
		},
		{
			name: "administrator",
			ctx: context.WithValue(
				context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id"),
				constant.ContextKeyUserRole, constant.RoleAdmin,
			),
			expected: permissions.Actor{
				ID:            "admin-id",
				Role:          constant.RoleAdmin,
				Authenticated: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := permissions.FromContext(tt.ctx)

			if actor != tt.expected {
				t.Errorf("expected actor %+v, got %+v", tt.expected, actor)
			}
		})
	}
}

func TestAnonymousOnly(t *testing.T) {
	tests := []struct {
		name      string
		actor     permissions.Actor
		expectErr bool
	}{
		{
			name:      "anonymous actor allowed",
			actor:     permissions.Actor{},
			expectErr: false,
		},
		{
			name: "authenticated actor rejected",
			actor: permissions.Actor{
				ID:            "user-id",
				Role:          constant.RoleUser,
				Authenticated: true,
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := permissions.AnonymousOnly(tt.actor)

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if failure.GetCode(err) != http.StatusForbidden {
					t.Errorf("expected code %d, got %d", http.StatusForbidden, failure.GetCode(err))
				}
				if err.Error() != constant.MessageAlreadyAuthenticated {
					t.Errorf("expected message %q, got %q", constant.MessageAlreadyAuthenticated, err.Error())
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestAdminOrReadOnly(t *testing.T) {
	admin := permissions.Actor{ID: "admin-id", Role: constant.RoleAdmin, Authenticated: true}
	user := permissions.Actor{ID: "user-id", Role: constant.RoleUser, Authenticated: true}
	anonymous := permissions.Actor{}

	tests := []struct {
		name      string
		actor     permissions.Actor
		write     bool
		expectErr bool
	}{
		{
			name:      "admin can write",
			actor:     admin,
			write:     true,
			expectErr: false,
		},
		{
			name:      "admin can read",
			actor:     admin,
			write:     false,
			expectErr: false,
		},
		{
			name:      "user can read",
			actor:     user,
			write:     false,
			expectErr: false,
		},
		{
			name:      "user cannot write",
			actor:     user,
			write:     true,
			expectErr: true,
		},
		{
			name:      "anonymous cannot read",
			actor:     anonymous,
			write:     false,
			expectErr: true,
		},
		{
			name:      "anonymous cannot write",
			actor:     anonymous,
			write:     true,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := permissions.AdminOrReadOnly(tt.actor, tt.write)

			if tt.expectErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestOwnerOrReadOnly(t *testing.T) {
	owner := permissions.Actor{ID: "owner-id", Role: constant.RoleUser, Authenticated: true}
	other := permissions.Actor{ID: "other-id", Role: constant.RoleUser, Authenticated: true}
	admin := permissions.Actor{ID: "admin-id", Role: constant.RoleAdmin, Authenticated: true}
	anonymous := permissions.Actor{}

	tests := []struct {
		name      string
		actor     permissions.Actor
		write     bool
		expectErr bool
	}{
		{
			name:      "owner can write",
			actor:     owner,
			write:     true,
			expectErr: false,
		},
		{
			name:      "other user can read",
			actor:     other,
			write:     false,
			expectErr: false,
		},
		{
			name:      "other user cannot write",
			actor:     other,
			write:     true,
			expectErr: true,
		},
		{
			name:      "admin gets no write override",
			actor:     admin,
			write:     true,
			expectErr: true,
		},
		{
			name:      "anonymous cannot read",
			actor:     anonymous,
			write:     false,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := permissions.OwnerOrReadOnly(tt.actor, "owner-id", tt.write)

			if tt.expectErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
