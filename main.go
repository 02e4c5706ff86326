package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/akamensky/argparse"

	"github.com/mstreet3/linked-list/dbllist"
	"github.com/mstreet3/linked-list/utils"
)

func printValues(w io.Writer, l *dbllist.LinkedList[int]) {
	it := l.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fmt.Fprintln(w, *v)
	}
}

// run pushes 1, 2, 3, prints them, removes the middle value and prints
// what is left.
func run(w io.Writer, args []string) error {
	var (
		parser = argparse.NewParser("linked-list", "Push, print and remove values on a doubly linked list")
		debug  = parser.Flag("d", "debug", &argparse.Options{
			Help: "print list tracing to stderr",
		})
	)

	if err := parser.Parse(args); err != nil {
		return fmt.Errorf("%s", parser.Usage(err))
	}
	utils.Debug = *debug

	list := dbllist.New[int]()
	list.PushBack(1)
	list.PushBack(2)
	list.PushBack(3)

	fmt.Fprintln(w, "before remove:")
	printValues(w, list)

	if v, ok := list.RemoveAt(1); ok {
		utils.DPrintf("removed %d, list is now %s\n", *v, list)
	}

	fmt.Fprintln(w, "after remove:")
	printValues(w, list)

	return nil
}

func main() {
	if err := run(os.Stdout, os.Args); err != nil {
		log.Fatal(err)
	}
}
