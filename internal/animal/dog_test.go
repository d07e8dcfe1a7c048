package animal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDog_RejectsNegativeAge(t *testing.T) {
	for _, age := range []int{-1, -2, -100} {
		t.Run(fmt.Sprint(age), func(t *testing.T) {
			dog, err := NewDog("Dog", age)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAge)
			assert.Nil(t, dog, "no instance should be produced")
		})
	}
}

func TestNewDog_StoresAgeUnchanged(t *testing.T) {
	for _, age := range []int{0, 1, 3, 25} {
		t.Run(fmt.Sprint(age), func(t *testing.T) {
			dog, err := NewDog("Dog", age)
			require.NoError(t, err)
			assert.Equal(t, age, dog.Age())
			assert.Equal(t, "Dog", dog.Species())
		})
	}
}

func TestDog_MakeSoundIgnoresFields(t *testing.T) {
	for _, species := range []string{"Dog", "Husky", ""} {
		dog, err := NewDog(species, 3)
		require.NoError(t, err)
		assert.Equal(t, "Woof!", dog.MakeSound())
	}
}

func TestDog_MakeSoundIsIdempotent(t *testing.T) {
	dog, err := NewDog("Husky", 7)
	require.NoError(t, err)

	first := dog.MakeSound()
	second := dog.MakeSound()
	assert.Equal(t, "Woof!", first)
	assert.Equal(t, first, second, "repeated calls on one dog must match")
	assert.Equal(t, "Husky", dog.Species(), "MakeSound must not alter the dog")
	assert.Equal(t, 7, dog.Age())
}

func TestDog_EatPassesFoodThrough(t *testing.T) {
	dog, err := NewDog("Dog", 3)
	require.NoError(t, err)

	tests := []struct {
		food string
		want string
	}{
		{"meat", "Dog eats meat."},
		{"", "Dog eats ."},
		{"  kibble  ", "Dog eats   kibble  ."},
		{"%s %d", "Dog eats %s %d."},
		{"мясо", "Dog eats мясо."},
	}
	for _, tt := range tests {
		t.Run(tt.food, func(t *testing.T) {
			assert.Equal(t, tt.want, dog.Eat(tt.food))
			assert.Equal(t, tt.want, dog.Eat(tt.food), "second call must match")
		})
	}
}

func TestDog_SatisfiesAnimal(t *testing.T) {
	dog, err := NewDog("Beagle", 2)
	require.NoError(t, err)

	var a Animal = dog
	assert.Equal(t, "Beagle eats bones.", a.Eat("bones"))
	assert.Equal(t, 2, a.Age())
}
