package livestock_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	v "github.com/jpenwith/livestock"
	"github.com/jpenwith/livestock/transform"
)

type User struct {
	Name  *v.Validated[string]
	Email *v.Validated[string]
	Age   *v.OptionalValidated[int]
}

func NewUser() *User {
	return &User{
		Name:  v.NewValidated("", v.IsNotEmpty(), v.IsLessThanOrEqualTo(100)),
		Email: v.NewValidated("", v.IsNotEmpty(), v.IsEmailAddress()),
		Age:   v.NewOptionalValidated[int](nil, v.NotRequired, v.IsBetween(0, 150)),
	}
}

func (u *User) Validate() error {
	return v.Collect(map[string]v.Checker{
		"name":  u.Name,
		"email": u.Email,
		"age":   u.Age,
	})
}

func ExampleValidate() {
	errs := v.Validate("Hello", v.IsNotEmpty(), v.IsLessThan(4))
	fmt.Println(errs)
	// Output: Hello is >= 4 characters
}

func ExampleCollect() {
	user := NewUser()
	user.Name.Set("Alice")
	user.Age.Set(-1)
	fmt.Println(user.Validate())
	// Output: age: Value is less than 0; email: Value is empty;  is not an email.
}

func ExampleCollect_valid() {
	user := NewUser()
	user.Name.Set("Alice")
	user.Email.Set("alice@example.com")
	if err := user.Validate(); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("valid")
	// Output: valid
}

func ExampleValidated() {
	name := v.NewValidated("Hello", v.IsNotEmpty())
	fmt.Println(name.IsValid())

	name.Set("")
	fmt.Println(name.IsValid(), name.Errors())
	// Output:
	// true
	// false Value is empty
}

func ExampleValidated_Transform() {
	email := v.NewValidated("", v.IsEmailAddress()).
		Transform(transform.Chain(transform.TrimSpace, transform.ToLower))

	email.Set("  Bob@Example.COM ")
	fmt.Println(email.Value(), email.IsValid())
	// Output: bob@example.com true
}

func ExampleValidated_OnChange() {
	count := v.NewValidated(1, v.IsPositive[int]()).
		OnChange(func(value int, errs v.ValidationErrors) {
			fmt.Println(value, errs.Messages())
		})

	count.Set(0)
	count.Set(2)
	// Output:
	// 0 [Number is not positive]
	// 2 []
}

func ExampleOptionalValidated() {
	nickname := v.NewOptionalValidated[string](nil, v.Required, v.IsAlphaNumeric())
	fmt.Println(nickname.Errors())

	nickname.Set("bob 1")
	fmt.Println(nickname.Errors())

	nickname.Set("bob1")
	fmt.Println(nickname.IsValid())
	// Output:
	// Value is required
	// Value contains non-alphanumeric characters
	// true
}

func ExampleMultiple() {
	positiveEven := v.Multiple(v.IsGreaterThanValue(0), v.IsEven[int]())
	b, _ := json.Marshal(v.Validate(-1, positiveEven))
	fmt.Println(string(b))
	// Output: ["Value is not greater than 0","Value is not even"]
}

func ExampleWhen() {
	card := v.When("value is a card number", func(s string) bool { return strings.HasPrefix(s, "4") },
		v.IsLengthBetween(13, 19),
	)
	fmt.Println(v.Validate("4111", card))
	fmt.Println(v.Validate("PAYPAL", card) == nil)
	// Output:
	// 4111 is < 13 characters
	// true
}

func ExampleCustom() {
	notAdmin := v.Custom(func(s string) error {
		if strings.EqualFold(s, "admin") {
			return fmt.Errorf("%s is reserved", s)
		}
		return nil
	})
	fmt.Println(v.Validate("Admin", notAdmin))
	// Output: Admin is reserved
}

func ExampleIsBetweenDates() {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)
	rule := v.IsBetweenDates(start, end)

	fmt.Println(rule.Validate(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	fmt.Println(rule.Validate(time.Date(2019, 6, 15, 0, 0, 0, 0, time.UTC)))
	// Output:
	// <nil>
	// Date is before 2020-01-01T00:00:00Z
}
