package generation

import (
	"maze3d/components"
)

// ArcadeLayout is the classic 28x31 maze with a ghost house and a wrap-around tunnel on row 14
var ArcadeLayout = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"######.##### ## #####.######",
	"######.##          ##.######",
	"######.## ###--### ##.######",
	"######.## #hhhhhh# ##.######",
	"      .   #hhhhhh#   .      ",
	"######.## #hhhhhh# ##.######",
	"######.## ######## ##.######",
	"######.##          ##.######",
	"######.## ######## ##.######",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#...##................##...#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// Arcade returns a fresh copy of the built-in layout
func Arcade() *components.MapComponent {
	mapComp, err := ParseMaze(ArcadeLayout)
	if err != nil {
		panic(err)
	}
	return mapComp
}
