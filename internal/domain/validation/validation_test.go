package validation

import (
	"testing"

	domainerrors "yelocar/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPhone10(t *testing.T) {
	assert.True(t, IsPhone10("9876543210"))
	assert.True(t, IsPhone10("98765 43210"))
	assert.True(t, IsPhone10(" 987 654 3210 "))
	assert.False(t, IsPhone10("987654321"))
	assert.False(t, IsPhone10("98765432100"))
	assert.False(t, IsPhone10("+919876543210"))
	assert.False(t, IsPhone10("98765-43210"))
}

func TestIsStrongPassword(t *testing.T) {
	assert.True(t, IsStrongPassword("Secret1"))
	assert.False(t, IsStrongPassword("Sec1"))
	assert.False(t, IsStrongPassword("secret1"))
	assert.False(t, IsStrongPassword("SECRET1"))
	assert.False(t, IsStrongPassword("Secrets"))
}

type signUp struct {
	FullName        string `validate:"required,notblank,min=2"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,strongpassword"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

func TestStruct_ReportsFirstFailingField(t *testing.T) {
	v := New()

	err := Struct(v, &signUp{FullName: "Asha", Email: "a@example.com", Password: "Secret1", ConfirmPassword: "Secret2"})

	var vErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "confirmPassword", vErr.Field)
	assert.Equal(t, "Passwords do not match.", vErr.Message())
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(New(), &signUp{FullName: "Asha", Email: "a@example.com", Password: "Secret1", ConfirmPassword: "Secret1"})

	assert.NoError(t, err)
}
