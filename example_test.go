package tagarena_test

import (
	"fmt"

	"github.com/memphase/tagarena"
)

func Example() {
	arena := tagarena.NewTaggedArena()
	defer arena.Close()

	flag, err := tagarena.Alloc[uint8](arena, tagarena.TagGame)
	if err != nil {
		panic(err)
	}
	*flag = 10

	type entity struct {
		Health int32
		Armor  int32
	}
	e, err := tagarena.Alloc[entity](arena, tagarena.TagGame)
	if err != nil {
		panic(err)
	}
	e.Health = 10
	e.Health *= 2

	fmt.Println(*flag, e.Health)

	// The whole phase is released at once; flag and e are invalid from here.
	if err := arena.Free(tagarena.TagGame); err != nil {
		panic(err)
	}

	// Output: 10 20
}
