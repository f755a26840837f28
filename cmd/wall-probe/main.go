// Command wall-probe lays out a wall without opening a window and reports the
// geometry and hit test results for a list of points.
package main

import (
	"flag"
	"log"
	"os"

	"pixel-wall/internal/wall"
)

func main() {
	rows := flag.Int("rows", wall.DefaultRows, "wall height in cells")
	cols := flag.Int("cols", wall.DefaultColumns, "wall width in cells")
	container := flag.String("container", "640x640", "container as WxH or WxH+L+T")
	shape := flag.String("shape", wall.ShapeCircle.String(), "cell shape: circle or rect")
	drag := flag.Bool("drag", false, "treat the points as one drag gesture and print the painted wall")
	var points pointList
	flag.Var(&points, "point", "pointer position as x,y (repeatable)")
	flag.Parse()

	r, err := parseContainer(*container)
	if err != nil {
		log.Fatal(err)
	}
	s, err := wall.ParseShape(*shape)
	if err != nil {
		log.Fatal(err)
	}

	p := probe{rows: *rows, cols: *cols, container: r, shape: s, points: points, drag: *drag}
	if err := p.run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
