package openapi_test

import (
	"fmt"

	"github.com/jpenwith/livestock"
	"github.com/jpenwith/livestock/openapi"
)

func ExampleObject() {
	name := livestock.NewValidated("", livestock.IsNotEmpty(), livestock.IsLessThanOrEqualTo(200))
	price := livestock.NewOptionalValidated[float64](nil, livestock.NotRequired, livestock.IsGreaterThanOrEqualToValue(0.01))

	schema := openapi.ObjectMust(
		openapi.Field("name", name),
		openapi.OptionalField("price", price),
	)

	fmt.Println(schema.Value.Required)
	fmt.Println(*schema.Value.Properties["name"].Value.MaxLength)
	fmt.Println(schema.Value.Properties["price"].Value.Nullable)
	// Output:
	// [name]
	// 200
	// true
}

func ExamplePost() {
	item := openapi.ObjectMust(openapi.Rules("name", livestock.IsNotEmpty()))

	doc := openapi.DocBase("Shop API", "Example API", "1.0.0")
	openapi.Post(doc, "/items", "createItem", openapi.Endpoint{
		Summary:  "Create an item",
		Request:  item,
		Response: item,
	})

	fmt.Println(doc.Paths.Value("/items").Post.OperationID)
	// Output: createItem
}

func ExampleDocBase() {
	doc := openapi.DocBase("My Service", "A cool service", "0.1.0")
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.OpenAPI)
	// Output:
	// My Service
	// 3.0.3
}
