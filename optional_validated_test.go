package livestock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpenwith/livestock"
	"github.com/jpenwith/livestock/transform"
)

func ptr[T any](v T) *T {
	return &v
}

func TestOptionalValidatedRequired(t *testing.T) {
	called := 0
	spy := livestock.Func(func(string) error {
		called++
		return nil
	})

	v := livestock.NewOptionalValidated[string](nil, livestock.Required, spy)
	assert.False(t, v.IsValid())
	assert.Equal(t, []string{"Value is required"}, v.Errors().Messages())
	assert.Equal(t, livestock.ErrRequired, v.Errors()[0])
	assert.Zero(t, called)

	_, ok := v.Value()
	assert.False(t, ok)

	v.Set("x")
	assert.True(t, v.IsValid())
	assert.Equal(t, 1, called)

	v.Clear()
	assert.Equal(t, []string{"Value is required"}, v.Errors().Messages())
	assert.Equal(t, 1, called)
}

func TestOptionalValidatedNotRequired(t *testing.T) {
	v := livestock.NewOptionalValidated[string](nil, livestock.NotRequired, livestock.IsNotEmpty())
	assert.True(t, v.IsValid())
	assert.Nil(t, v.Errors())

	v.Set("")
	assert.Equal(t, []string{"Value is empty"}, v.Errors().Messages())

	v.Clear()
	assert.True(t, v.IsValid())
}

func TestOptionalValidatedPresentZeroValue(t *testing.T) {
	v := livestock.NewOptionalValidated(ptr(0), livestock.Required, livestock.IsPositive[int]())

	value, ok := v.Value()
	assert.True(t, ok)
	assert.Equal(t, 0, value)
	assert.Equal(t, []string{"Number is not positive"}, v.Errors().Messages())
}

func TestOptionalValidatedCopiesInitialValue(t *testing.T) {
	initial := "Hello"
	v := livestock.NewOptionalValidated(&initial, livestock.Required, livestock.IsLessThan(6))
	initial = "Hello, World"

	value, _ := v.Value()
	assert.Equal(t, "Hello", value)
	assert.True(t, v.IsValid())
}

func TestOptionalValidatedValidate(t *testing.T) {
	v := livestock.NewOptionalValidated(ptr("ok"), livestock.Required, livestock.IsNotEmpty())

	assert.Equal(t, []string{"Value is required"}, v.Validate(nil).Messages())
	assert.Equal(t, []string{"Value is empty"}, v.Validate(ptr("")).Messages())
	assert.Nil(t, v.Validate(ptr("x")))
	assert.True(t, v.IsValid())
	assert.Len(t, v.Validators(), 1)
}

func TestOptionalValidatedOnChange(t *testing.T) {
	var values []*string
	var errs [][]string

	v := livestock.NewOptionalValidated[string](nil, livestock.Required).
		OnChange(func(value *string, es livestock.ValidationErrors) {
			values = append(values, value)
			errs = append(errs, es.Messages())
		})

	v.Set("a")
	v.Clear()

	require.Len(t, values, 2)
	require.NotNil(t, values[0])
	assert.Equal(t, "a", *values[0])
	assert.Nil(t, values[1])
	assert.Equal(t, [][]string{nil, {"Value is required"}}, errs)
}

func TestOptionalValidatedTransform(t *testing.T) {
	v := livestock.NewOptionalValidated[string](nil, livestock.NotRequired, livestock.IsAlphaNumeric()).
		Transform(transform.WhiteList("a-zA-Z0-9"))
	_, ok := v.Value()
	assert.False(t, ok)

	v.Set("ab-12 c")
	value, ok := v.Value()
	assert.True(t, ok)
	assert.Equal(t, "ab12c", value)
	assert.True(t, v.IsValid())
}

func TestRequirementString(t *testing.T) {
	assert.Equal(t, "required", livestock.Required.String())
	assert.Equal(t, "not required", livestock.NotRequired.String())
}
