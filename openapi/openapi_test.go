package openapi_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpenwith/livestock"
	"github.com/jpenwith/livestock/openapi"
)

func TestSchemaRef(t *testing.T) {

	t.Run("string", func(t *testing.T) {
		ref, err := openapi.SchemaRef(
			livestock.IsNotEmpty(),
			livestock.IsLessThan(50),
			livestock.IsEmailAddress(),
		)
		require.NoError(t, err)
		assert.True(t, ref.Value.Type.Is(openapi3.TypeString))
		assert.Equal(t, uint64(1), ref.Value.MinLength)
		require.NotNil(t, ref.Value.MaxLength)
		assert.Equal(t, uint64(49), *ref.Value.MaxLength)
		assert.Equal(t, "email", ref.Value.Format)
	})

	t.Run("int", func(t *testing.T) {
		ref, err := openapi.SchemaRef(
			livestock.IsBetween(1, 10),
			livestock.IsMultipleOf(2),
		)
		require.NoError(t, err)
		assert.True(t, ref.Value.Type.Is(openapi3.TypeInteger))
		require.NotNil(t, ref.Value.Min)
		require.NotNil(t, ref.Value.Max)
		require.NotNil(t, ref.Value.MultipleOf)
		assert.Equal(t, 1.0, *ref.Value.Min)
		assert.Equal(t, 10.0, *ref.Value.Max)
		assert.Equal(t, 2.0, *ref.Value.MultipleOf)
	})

	t.Run("slice", func(t *testing.T) {
		ref, err := openapi.SchemaRef(
			livestock.IsNotEmptySlice[string](),
			livestock.AllUnique[string](),
			livestock.AllPass(livestock.IsAlphaNumeric()),
		)
		require.NoError(t, err)
		assert.True(t, ref.Value.Type.Is(openapi3.TypeArray))
		assert.Equal(t, uint64(1), ref.Value.MinItems)
		assert.True(t, ref.Value.UniqueItems)
		require.NotNil(t, ref.Value.Items)
		assert.Equal(t, "letters and numbers only", ref.Value.Items.Value.Description)
	})

	t.Run("time", func(t *testing.T) {
		ref, err := openapi.SchemaRef(livestock.IsInThePast())
		require.NoError(t, err)
		assert.Equal(t, "date-time", ref.Value.Format)
		assert.Contains(t, ref.Value.Description, "in the past")
	})
}

func TestObject(t *testing.T) {

	email := livestock.NewValidated("", livestock.IsNotEmpty(), livestock.IsEmailAddress())
	nickname := livestock.NewOptionalValidated[string](nil, livestock.NotRequired, livestock.IsLessThanOrEqualTo(20))
	age := livestock.NewOptionalValidated[int](nil, livestock.Required, livestock.IsGreaterThanOrEqualToValue(18))

	ref, err := openapi.Object(
		openapi.Field("email", email),
		openapi.OptionalField("nickname", nickname),
		openapi.OptionalField("age", age),
		openapi.Rules("tags", livestock.IsCountLessThanOrEqualTo[string](5)),
	)
	require.NoError(t, err)

	schema := ref.Value
	assert.True(t, schema.Type.Is(openapi3.TypeObject))
	assert.ElementsMatch(t, []string{"email", "age"}, schema.Required)
	require.Len(t, schema.Properties, 4)

	assert.Equal(t, "email", schema.Properties["email"].Value.Format)

	nick := schema.Properties["nickname"].Value
	assert.True(t, nick.Nullable)
	require.NotNil(t, nick.MaxLength)
	assert.Equal(t, uint64(20), *nick.MaxLength)

	ageSchema := schema.Properties["age"].Value
	assert.False(t, ageSchema.Nullable)
	require.NotNil(t, ageSchema.Min)
	assert.Equal(t, 18.0, *ageSchema.Min)

	tags := schema.Properties["tags"].Value
	require.NotNil(t, tags.MaxItems)
	assert.Equal(t, uint64(5), *tags.MaxItems)
}

func TestObjectDuplicateProperty(t *testing.T) {

	_, err := openapi.Object(
		openapi.Rules[string]("name"),
		openapi.Rules[string]("name", livestock.IsNotEmpty()),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate property "name"`)

	assert.Panics(t, func() {
		openapi.ObjectMust(openapi.Rules[string]("a"), openapi.Rules[string]("a"))
	})
}

func TestObjectDescribeError(t *testing.T) {

	failing := livestock.Erase[time.Time](failingDescriber{})
	_, err := openapi.Object(openapi.Rules("when", failing))
	require.Error(t, err)
	assert.ErrorIs(t, err, errDescribe)
}

func TestEndpoints(t *testing.T) {

	body := openapi.ObjectMust(openapi.Rules("name", livestock.IsNotEmpty()))
	errBody := openapi.ObjectMust(openapi.Rules[string]("error"))

	tests := []struct {
		method   string
		register func(*openapi3.T, string, string, openapi.Endpoint)
	}{
		{http.MethodGet, openapi.Get},
		{http.MethodPost, openapi.Post},
		{http.MethodPut, openapi.Put},
		{http.MethodPatch, openapi.Patch},
		{http.MethodDelete, openapi.Delete},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			doc := openapi.DocBase("Test", "Test API", "1.0.0")
			tt.register(doc, "/things", "op", openapi.Endpoint{
				Summary:  "Do a thing",
				Request:  body,
				Response: body,
			})

			item := doc.Paths.Value("/things")
			require.NotNil(t, item)
			op := item.GetOperation(tt.method)
			require.NotNil(t, op)
			assert.Equal(t, "op", op.OperationID)
			assert.Same(t, body, op.RequestBody.Value.Content["application/json"].Schema)
			require.NotNil(t, op.Responses.Status(http.StatusOK))
		})
	}

	t.Run("responses override", func(t *testing.T) {
		doc := openapi.DocBase("Test", "Test API", "1.0.0")
		openapi.Post(doc, "/things", "create", openapi.Endpoint{
			Requests: []*openapi3.SchemaRef{body, errBody},
			Response: body,
			Responses: map[string]openapi.Response{
				"201": {Desc: "Created", Bodies: []*openapi3.SchemaRef{body}},
				"422": {Desc: "Invalid", Bodies: []*openapi3.SchemaRef{errBody}},
			},
		})
		op := doc.Paths.Value("/things").Post
		assert.Len(t, op.RequestBody.Value.Content["application/json"].Schema.Value.OneOf, 2)
		assert.Nil(t, op.Responses.Status(http.StatusOK))
		assert.NotNil(t, op.Responses.Status(http.StatusCreated))
		assert.NotNil(t, op.Responses.Status(http.StatusUnprocessableEntity))
	})

	t.Run("two methods one path", func(t *testing.T) {
		doc := openapi.DocBase("Test", "Test API", "1.0.0")
		openapi.Get(doc, "/things", "list", openapi.Endpoint{Response: body})
		openapi.Post(doc, "/things", "create", openapi.Endpoint{Request: body})
		item := doc.Paths.Value("/things")
		assert.Equal(t, "list", item.Get.OperationID)
		assert.Equal(t, "create", item.Post.OperationID)
	})
}

func TestNewRequestErrors(t *testing.T) {

	_, err := openapi.NewRequest()
	require.Error(t, err)
	_, err = openapi.NewRequest(nil)
	require.Error(t, err)
	_, err = openapi.NewResponse(nil)
	require.Error(t, err)
	_, err = openapi.NewResponse(map[string]openapi.Response{"200": {Desc: "OK", Bodies: []*openapi3.SchemaRef{nil}}})
	require.Error(t, err)
}
