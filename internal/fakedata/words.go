// Package fakedata adapts the gofakeit generator to the word source the store
// consumes during catalog bootstrap.
package fakedata

import "github.com/brianvoe/gofakeit/v6"

type Words struct {
	faker *gofakeit.Faker
}

func NewWords(seed int64) Words {
	return Words{faker: gofakeit.New(seed)}
}

func (w Words) Word() string {
	return w.faker.Word()
}
