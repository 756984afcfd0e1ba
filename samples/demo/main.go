// demo is a tiny container payload: it prints EXAMPLE_VAR and a running sum.
package main

import (
	"fmt"
	"os"
)

func main() {
	example, ok := os.LookupEnv("EXAMPLE_VAR")
	if !ok {
		example = "undefined"
	}
	fmt.Printf("Environment variable EXAMPLE_VAR: %s\n", example)

	counter := 0
	for i := 0; i < 5; i++ {
		counter += i
		fmt.Printf("Counter at step %d: %d\n", i, counter)
	}
	fmt.Printf("Final counter value: %d\n", counter)
}
