package walk_test

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/kbtool/core"
	"github.com/katalvlaran/kbtool/triple"
	"github.com/katalvlaran/kbtool/walk"
)

// ExampleSamplePath walks a two-node graph, where every step is forced.
func ExampleSamplePath() {
	g := core.FromTriples([]triple.Triple{triple.New("tokyo", "capital_of", "japan")})

	p, err := walk.SamplePath(g, 2, rand.New(rand.NewSource(1)))
	if err != nil {
		panic(err)
	}
	fmt.Println(len(p.Tokens), p.Head() == p.Tail())

	// Output:
	// 5 true
}

// europe is a small geography graph shared by the seeded examples.
func europe() []triple.Triple {
	return []triple.Triple{
		triple.New("paris", "capital_of", "france"),
		triple.New("berlin", "capital_of", "germany"),
		triple.New("lyon", "located_in", "france"),
		triple.New("munich", "located_in", "germany"),
		triple.New("france", "borders", "germany"),
		triple.New("rome", "capital_of", "italy"),
	}
}

// ExampleSamplePath_seeded pins the walks drawn for fixed seeds. The second
// step of each walk leaves through an edge other than the one it came by.
func ExampleSamplePath_seeded() {
	g := core.FromTriples(europe())

	for _, seed := range []int64{1, 3, 7} {
		p, err := walk.SamplePath(g, 2, rand.New(rand.NewSource(seed)))
		if err != nil {
			panic(err)
		}
		fmt.Println(strings.Join(p.Tokens, " "))
	}

	// Output:
	// france borders::--> germany located_in::<-- munich
	// paris capital_of::--> france borders::--> germany
	// rome capital_of::--> italy capital_of::<-- rome
}
