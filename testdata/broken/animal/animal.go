package animal

type Animal interface {
	MakeSound() string
	Eat(food string) string
}

type Dog struct{ species string }

func (d *Dog) MakeSound() string      { return "Woof!" }
func (d *Dog) Eat(food string) string { return d.species + " eats " + food + "." }

type Marker interface{}
