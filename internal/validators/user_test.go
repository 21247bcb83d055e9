package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestUserValidator(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.User{Login: "alice", Password: "pw1"}))
	assert.NoError(t, v.Validate(ctx, &models.User{Login: "alice", Password: "pw1"}))

	assert.ErrorIs(t, v.Validate(ctx, models.User{Password: "pw1"}), ErrEmptyLogin)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Login: "alice"}), ErrEmptyPassword)

	// whitespace-only passwords are kept as typed
	assert.NoError(t, v.Validate(ctx, models.User{Login: "alice", Password: " "}))

	assert.NoError(t, v.Validate(ctx, models.User{Login: "alice"}, FieldLogin))
	assert.ErrorIs(t, v.Validate(ctx, models.User{}, FieldUserID), ErrInvalidUserID)
	assert.ErrorIs(t, v.Validate(ctx, models.User{}, "streak"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.Task{}), ErrUnsupportedType)
}
