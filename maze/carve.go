package maze

// CarveEntranceAndExit knocks out the outer West wall of (0,0) and the outer East wall of
// (Rows-1, Cols-1). Both walls are on the boundary, so no neighbour needs updating.
// It is idempotent and returns the entrance and exit cells so the caller can reserve them.
func (m *Maze) CarveEntranceAndExit() (entrance, exit CellPosition) {
	entrance = CellPosition{Row: 0, Col: 0}
	exit = CellPosition{Row: m.Rows - 1, Col: m.Cols - 1}

	m.Grid[entrance.Row][entrance.Col].WestWall = false
	m.Grid[exit.Row][exit.Col].EastWall = false

	return entrance, exit
}
