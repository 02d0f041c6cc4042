// Command gcdump builds a small heap, runs a scripted sequence of
// allocations, root registrations, and collections, and prints the
// resulting textual heap dump. It exists to exercise the collector from
// the command line the way cmd/dump_hdf5 exercises the HDF5 reader.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/scigolib/mcgc"
)

func main() {
	size := flag.Int("size", 1000, "heap size in bytes")
	trace := flag.Bool("trace", false, "log one line per collection phase")
	flag.Parse()

	if *size <= 0 {
		log.Fatalf("invalid -size: %d", *size)
	}

	heap, err := mcgc.New(mcgc.Config{Size: *size, Trace: *trace})
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer func() {
		if err := heap.Done(); err != nil {
			log.Printf("done: %v", err)
		}
	}()

	userClass, err := heap.RegisterClass("User", 48, []int{32})
	if err != nil {
		log.Fatalf("register class: %v", err)
	}

	rp := heap.SaveRoots()
	var u mcgc.Ref
	if err := heap.AddRoot(&u); err != nil {
		log.Fatalf("add root: %v", err)
	}
	defer heap.RestoreRoots(rp)

	u, err = heap.Alloc(userClass)
	if err != nil {
		log.Fatalf("alloc User: %v", err)
	}

	name, err := heap.AllocString(20)
	if err != nil {
		log.Fatalf("alloc_string: %v", err)
	}
	if err := heap.SetString(name, "parrt"); err != nil {
		log.Fatalf("set string: %v", err)
	}
	if err := heap.SetField(u, 32, name); err != nil {
		log.Fatalf("set field: %v", err)
	}

	before, err := heap.GetState()
	if err != nil {
		log.Fatalf("get_state: %v", err)
	}
	fmt.Print("before collection:\n", before)

	if err := heap.Collect(); err != nil {
		log.Fatalf("collect: %v", err)
	}

	after, err := heap.GetState()
	if err != nil {
		log.Fatalf("get_state: %v", err)
	}
	fmt.Print("after collection:\n", after)
}
