package linq

import (
	"fmt"
	"strconv"
)

func Example() {
	// construct a sequence from a slice
	ints := FromSlice([]int{5, 2, 4, 1, 3})

	// keep the elements greater than one
	// nothing is evaluated yet
	ints = ints.Where(func(elem int) bool {
		return elem > 1
	})

	// sort the elements, and convert them to strings
	strs := Select(OrderBy(ints, identity[int]).Sequence, strconv.Itoa)

	// terminal operations pull the elements through the pipeline
	fmt.Printf("%+v\n", strs.ToSlice())
	// Output: [2 3 4 5]
}

func ExampleGroupByResult() {
	words := Of("apple", "avocado", "banana", "blueberry", "cherry")

	counts := GroupByResult(words, func(word string) byte {
		return word[0]
	}, identity[string], func(letter byte, words Sequence[string]) string {
		return fmt.Sprintf("%c=%d", letter, words.Count())
	})

	fmt.Println(counts.ToSlice())
	// Output: [a=2 b=2 c=1]
}

func ExampleThenBy() {
	type score struct {
		team   string
		points int
	}

	scores := Of(
		score{team: "red", points: 3},
		score{team: "blue", points: 5},
		score{team: "red", points: 1},
		score{team: "blue", points: 2},
	)

	byTeam := OrderBy(scores, func(s score) string {
		return s.team
	})

	byPoints := ThenByDescending(byTeam, func(s score) int {
		return s.points
	})

	for _, s := range byPoints.ToSlice() {
		fmt.Println(s.team, s.points)
	}
	// Output:
	// blue 5
	// blue 2
	// red 3
	// red 1
}
