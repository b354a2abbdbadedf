package fanin

import (
	"fmt"
	"sort"
)

// Example demonstrates merging two sources into one consumer stream.
func Example() {
	evens := make(chan int, 3)
	odds := make(chan int, 3)

	evens <- 0
	evens <- 2
	evens <- 4
	odds <- 1
	odds <- 3
	odds <- 5
	close(evens)
	close(odds)

	values := Collect(Merge(evens, odds))

	// Interleaving across sources varies, so sort before printing
	sort.Ints(values)
	fmt.Println(values)

	// Output:
	// [0 1 2 3 4 5]
}

// Example_forEach demonstrates draining a merged stream with a callback.
func Example_forEach() {
	words := make(chan string, 3)
	words <- "funnel"
	words <- "merge"
	words <- "drain"
	close(words)

	ForEach(Merge(words), func(w string) {
		fmt.Println(w)
	})

	// Output:
	// funnel
	// merge
	// drain
}

// Example_workers demonstrates fanning in results from worker goroutines.
func Example_workers() {
	results := make([]chan int, 3)
	for i := range results {
		results[i] = make(chan int)
	}

	sources := make([]<-chan int, len(results))
	for i, ch := range results {
		sources[i] = ch
	}
	rx := Merge(sources...)

	for i, ch := range results {
		go func(id int, out chan<- int) {
			defer close(out)
			out <- id * id
		}(i, ch)
	}

	values := Collect(rx)
	sort.Ints(values)
	fmt.Println(values)

	// Output:
	// [0 1 4]
}
