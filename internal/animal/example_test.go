package animal_test

import (
	"errors"
	"fmt"

	"github.com/olehluchkiv/goabstract/internal/animal"
)

func ExampleNewDog() {
	dog, err := animal.NewDog("Dog", 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(dog.MakeSound())
	fmt.Println(dog.Eat("meat"))
	// Output:
	// Woof!
	// Dog eats meat.
}

func ExampleNewDog_invalidAge() {
	_, err := animal.NewDog("Dog", -1)
	fmt.Println(errors.Is(err, animal.ErrInvalidAge))
	// Output: true
}
