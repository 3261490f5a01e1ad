package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/simplevector/vector"
)

// runScenario walks push 10, push 20, insert 15 before position 1 and
// erase position 1, printing the Vector after each step.
func runScenario(w io.Writer) error {
	v := vector.New[int]()
	show := func(step string) {
		fmt.Fprintf(w, "%-14s %-14s size=%d capacity=%d\n", step, v, v.Size(), v.Capacity())
	}

	for _, x := range []int{10, 20} {
		if err := v.PushBack(x); err != nil {
			return err
		}
		show(fmt.Sprintf("push %d", x))
	}
	if _, err := v.InsertIter(v.Begin().Add(1), 15); err != nil {
		return err
	}
	show("insert 1 15")
	if _, err := v.Erase(1); err != nil {
		return err
	}
	show("erase 1")

	return nil
}
