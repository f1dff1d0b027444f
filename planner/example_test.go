package planner_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/katalvlaran/hpath/grid"
	"github.com/katalvlaran/hpath/planner"
)

// ExamplePlanner_FindPath plans across a small open room. Both endpoints sit
// in one cluster, so the pipeline collapses to a single refined search; the
// path length is the Manhattan distance plus one.
func ExamplePlanner_FindPath() {
	g, err := grid.Parse([]string{
		"....",
		"....",
		"....",
		"....",
	})
	if err != nil {
		log.Fatal(err)
	}

	p, err := planner.New(planner.WithClusterSize(4))
	if err != nil {
		log.Fatal(err)
	}

	res, err := p.FindPath(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 3, Y: 3})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Found, res.Length, res.Cost)
	fmt.Println(res.Path[0], "→", res.Path[res.Length-1])
	// Output:
	// true 7 6
	// 0,0 → 3,3
}

// ExamplePlanner_FindPath_noRoute shows the connectivity-failure taxonomy:
// a walled grid is a well-formed query with no realizable route.
func ExamplePlanner_FindPath_noRoute() {
	g, err := grid.Parse([]string{
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	})
	if err != nil {
		log.Fatal(err)
	}

	p, err := planner.New(planner.WithClusterSize(2))
	if err != nil {
		log.Fatal(err)
	}

	res, err := p.FindPath(g, grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 3})
	fmt.Println(res.Found, errors.Is(err, planner.ErrNoAbstractPath))
	// Output:
	// false true
}
