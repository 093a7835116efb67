package render

import "github.com/32bitkid/dm/blit"

// Frame places a region of a source bitmap into the viewport. A zero
// SrcByteWidth means there is nothing to draw.
type Frame struct {
	Box          blit.Box
	SrcByteWidth int
	SrcHeight    int
	SrcX, SrcY   int
}

func frame(x1, x2, y1, y2, byteWidth, height, srcX, srcY int) Frame {
	return Frame{
		Box:          blit.Box{X1: x1, X2: x2, Y1: y1, Y2: y2},
		SrcByteWidth: byteWidth,
		SrcHeight:    height,
		SrcX:         srcX,
		SrcY:         srcY,
	}
}

// coordSet is {X1, X2, Y1, Y2, ByteWidth, Height}.
type coordSet [6]int

func (c coordSet) box() blit.Box   { return blit.Box{X1: c[0], X2: c[1], Y1: c[2], Y2: c[3]} }
func (c coordSet) byteWidth() int  { return c[4] }
func (c coordSet) height() int     { return c[5] }
func (c coordSet) pixelWidth() int { return c[4] << 1 }
func (c coordSet) boxWidth() int   { return c[1] - c[0] + 1 }

// ViewSquare numbers the squares of the dungeon view, farthest first.
// The D4 squares are only peeked at for things.
type ViewSquare int

const (
	D4C ViewSquare = -3
	D4L ViewSquare = -2
	D4R ViewSquare = -1
	D3C ViewSquare = 0
	D3L ViewSquare = 1
	D3R ViewSquare = 2
	D2C ViewSquare = 3
	D2L ViewSquare = 4
	D2R ViewSquare = 5
	D1C ViewSquare = 6
	D1L ViewSquare = 7
	D1R ViewSquare = 8
	D0C ViewSquare = 9
	D0L ViewSquare = 10
	D0R ViewSquare = 11
)

var viewSquareNames = [...]string{"D4C", "D4L", "D4R", "D3C", "D3L", "D3R", "D2C", "D2L", "D2R", "D1C", "D1L", "D1R", "D0C", "D0L", "D0R"}

func (v ViewSquare) String() string {
	if v < D4C || v > D0R {
		return "ViewSquare(UNKNOWN)"
	}
	return "ViewSquare(" + viewSquareNames[v+3] + ")"
}

// Lane is 0 for the centre column, 1 for the left and 2 for the right.
func (v ViewSquare) Lane() int { return int(v+3) % 3 }

const (
	laneCenter = 0
	laneLeft   = 1
	laneRight  = 2
)

var (
	frameCeiling = frame(0, 223, 0, 28, 112, 29, 0, 0)
	frameFloor   = frame(0, 223, 66, 135, 112, 70, 0, 0)

	frameWallD3L2 = frame(0, 15, 25, 73, 8, 49, 0, 0)
	frameWallD3R2 = frame(208, 223, 25, 73, 8, 49, 0, 0)
)

var frameWalls = [12]Frame{
	D3C: frame(74, 149, 25, 75, 64, 51, 18, 0),
	D3L: frame(0, 83, 25, 75, 64, 51, 32, 0),
	D3R: frame(139, 223, 25, 75, 64, 51, 0, 0),
	D2C: frame(60, 163, 20, 90, 72, 71, 16, 0),
	D2L: frame(0, 74, 20, 90, 72, 71, 61, 0),
	D2R: frame(149, 223, 20, 90, 72, 71, 0, 0),
	D1C: frame(32, 191, 9, 119, 128, 111, 48, 0),
	D1L: frame(0, 63, 9, 119, 128, 111, 192, 0),
	D1R: frame(160, 223, 9, 119, 128, 111, 0, 0),
	D0C: frame(0, 223, 0, 135, 0, 0, 0, 0),
	D0L: frame(0, 31, 0, 135, 16, 136, 0, 0),
	D0R: frame(192, 223, 0, 135, 16, 136, 0, 0),
}

var (
	frameDoorFrameLeftD3L  = frame(0, 31, 28, 70, 16, 43, 0, 0)
	frameDoorFrameRightD3R = frame(192, 223, 28, 70, 16, 43, 0, 0)
	frameDoorFrameLeftD3C  = frame(64, 95, 27, 70, 16, 44, 0, 0)
	frameDoorFrameRightD3C = frame(128, 159, 27, 70, 16, 44, 0, 0)
	frameDoorFrameLeftD2C  = frame(48, 95, 22, 86, 24, 65, 0, 0)
	frameDoorFrameRightD2C = frame(128, 175, 22, 86, 24, 65, 0, 0)
	frameDoorFrameLeftD1C  = frame(43, 74, 14, 107, 16, 94, 0, 0)
	frameDoorFrameRightD1C = frame(149, 180, 14, 107, 16, 94, 0, 0)
	frameDoorFrameD0C      = frame(96, 127, 0, 122, 16, 123, 0, 0)
	frameDoorFrameTopD2L   = frame(0, 59, 22, 24, 48, 3, 16, 0)
	frameDoorFrameTopD2C   = frame(64, 159, 22, 24, 48, 3, 0, 0)
	frameDoorFrameTopD2R   = frame(164, 223, 22, 24, 48, 3, 16, 0)
	frameDoorFrameTopD1L   = frame(0, 31, 14, 17, 64, 4, 16, 0)
	frameDoorFrameTopD1C   = frame(48, 175, 14, 17, 64, 4, 0, 0)
	frameDoorFrameTopD1R   = frame(192, 223, 14, 17, 64, 4, 16, 0)
)

var (
	frameStairsUpFrontD3L   = frame(0, 79, 25, 70, 40, 46, 0, 0)
	frameStairsUpFrontD3C   = frame(64, 159, 25, 70, 48, 46, 0, 0)
	frameStairsUpFrontD3R   = frame(149, 223, 25, 70, 40, 46, 5, 0)
	frameStairsUpFrontD2L   = frame(0, 63, 22, 83, 32, 62, 0, 0)
	frameStairsUpFrontD2C   = frame(64, 159, 22, 83, 48, 62, 0, 0)
	frameStairsUpFrontD2R   = frame(160, 223, 22, 83, 32, 62, 0, 0)
	frameStairsUpFrontD1L   = frame(0, 31, 9, 108, 16, 100, 0, 0)
	frameStairsUpFrontD1C   = frame(32, 191, 9, 108, 80, 100, 0, 0)
	frameStairsUpFrontD1R   = frame(192, 223, 9, 108, 16, 100, 0, 0)
	frameStairsUpFrontD0L   = frame(0, 31, 58, 101, 16, 44, 0, 0)
	frameStairsUpFrontD0R   = frame(192, 223, 58, 101, 16, 44, 0, 0)
	frameStairsDownFrontD3L = frame(0, 79, 28, 68, 40, 41, 0, 0)
	frameStairsDownFrontD3C = frame(64, 159, 28, 70, 48, 43, 0, 0)
	frameStairsDownFrontD3R = frame(149, 223, 28, 68, 40, 41, 5, 0)
	frameStairsDownFrontD2L = frame(0, 63, 24, 85, 32, 62, 0, 0)
	frameStairsDownFrontD2C = frame(64, 159, 24, 85, 48, 62, 0, 0)
	frameStairsDownFrontD2R = frame(160, 223, 24, 85, 32, 62, 0, 0)
	frameStairsDownFrontD1L = frame(0, 31, 18, 108, 16, 91, 0, 0)
	frameStairsDownFrontD1C = frame(32, 191, 18, 108, 80, 91, 0, 0)
	frameStairsDownFrontD1R = frame(192, 223, 18, 108, 16, 91, 0, 0)
	frameStairsDownFrontD0L = frame(0, 31, 76, 135, 16, 60, 0, 0)
	frameStairsDownFrontD0R = frame(192, 223, 76, 135, 16, 60, 0, 0)
	frameStairsSideD2L      = frame(60, 75, 57, 61, 8, 5, 0, 0)
	frameStairsSideD2R      = frame(148, 163, 57, 61, 8, 5, 0, 0)
	frameStairsUpSideD1L    = frame(32, 63, 57, 99, 16, 43, 0, 0)
	frameStairsUpSideD1R    = frame(160, 191, 57, 99, 16, 43, 0, 0)
	frameStairsDownSideD1L  = frame(32, 63, 60, 98, 16, 39, 0, 0)
	frameStairsDownSideD1R  = frame(160, 191, 60, 98, 16, 39, 0, 0)
	frameStairsSideD0L      = frame(0, 15, 73, 85, 8, 13, 0, 0)
	frameStairsSideD0R      = frame(208, 223, 73, 85, 8, 13, 0, 0)
)

var (
	frameFloorPitD3L = frame(0, 79, 66, 73, 40, 8, 0, 0)
	frameFloorPitD3C = frame(64, 159, 66, 73, 48, 8, 0, 0)
	frameFloorPitD3R = frame(144, 223, 66, 73, 40, 8, 0, 0)
	frameFloorPitD2L = frame(0, 79, 77, 88, 40, 12, 0, 0)
	frameFloorPitD2C = frame(64, 159, 77, 88, 48, 12, 0, 0)
	frameFloorPitD2R = frame(144, 223, 77, 88, 40, 12, 0, 0)
	frameFloorPitD1L = frame(0, 63, 93, 116, 32, 24, 0, 0)
	frameFloorPitD1C = frame(32, 191, 93, 116, 80, 24, 0, 0)
	frameFloorPitD1R = frame(160, 223, 93, 116, 32, 24, 0, 0)
	frameFloorPitD0L = frame(0, 31, 124, 135, 16, 12, 0, 0)
	frameFloorPitD0C = frame(16, 207, 124, 135, 96, 12, 0, 0)
	frameFloorPitD0R = frame(192, 223, 124, 135, 16, 12, 0, 0)

	frameCeilingPitD2L = frame(0, 79, 19, 23, 40, 5, 0, 0)
	frameCeilingPitD2C = frame(64, 159, 19, 23, 48, 5, 0, 0)
	frameCeilingPitD2R = frame(144, 223, 19, 23, 40, 5, 0, 0)
	frameCeilingPitD1L = frame(0, 63, 8, 16, 32, 9, 0, 0)
	frameCeilingPitD1C = frame(32, 191, 8, 16, 80, 9, 0, 0)
	frameCeilingPitD1R = frame(160, 223, 8, 16, 32, 9, 0, 0)
	frameCeilingPitD0L = frame(0, 15, 0, 3, 8, 4, 0, 0)
	frameCeilingPitD0C = frame(16, 207, 0, 3, 96, 4, 0, 0)
	frameCeilingPitD0R = frame(208, 223, 0, 3, 8, 4, 0, 0)
)

// doorFrames are the frames of a door seen at one square: fully closed,
// then three steps of a door sliding up, then three steps of the two
// halves of a sideways door.
type doorFrames struct {
	closed          Frame
	vertical        [3]Frame
	leftHorizontal  [3]Frame
	rightHorizontal [3]Frame
}

func d3DoorFrames(x1, x2, left1, left2, left3, right1, right2, right3 int) doorFrames {
	return doorFrames{
		closed: frame(x1, x2, 28, 67, 24, 41, 0, 0),
		vertical: [3]Frame{
			frame(x1, x2, 28, 38, 24, 41, 0, 30),
			frame(x1, x2, 28, 48, 24, 41, 0, 20),
			frame(x1, x2, 28, 58, 24, 41, 0, 10),
		},
		leftHorizontal: [3]Frame{
			frame(x1, left1, 28, 67, 24, 41, 18, 0),
			frame(x1, left2, 28, 67, 24, 41, 12, 0),
			frame(x1, left3, 28, 67, 24, 41, 6, 0),
		},
		rightHorizontal: [3]Frame{
			frame(right1, x2, 28, 67, 24, 41, 24, 0),
			frame(right2, x2, 28, 67, 24, 41, 24, 0),
			frame(right3, x2, 28, 67, 24, 41, 24, 0),
		},
	}
}

func d2DoorFrames(x1, x2, left1, left2, left3, right1, right2, right3 int) doorFrames {
	return doorFrames{
		closed: frame(x1, x2, 24, 82, 32, 61, 0, 0),
		vertical: [3]Frame{
			frame(x1, x2, 24, 39, 32, 61, 0, 45),
			frame(x1, x2, 24, 54, 32, 61, 0, 30),
			frame(x1, x2, 24, 69, 32, 61, 0, 15),
		},
		leftHorizontal: [3]Frame{
			frame(x1, left1, 24, 82, 32, 61, 24, 0),
			frame(x1, left2, 24, 82, 32, 61, 16, 0),
			frame(x1, left3, 24, 82, 32, 61, 8, 0),
		},
		rightHorizontal: [3]Frame{
			frame(right1, x2, 24, 82, 32, 61, 32, 0),
			frame(right2, x2, 24, 82, 32, 61, 32, 0),
			frame(right3, x2, 24, 82, 32, 61, 32, 0),
		},
	}
}

var (
	doorFramesD3L = d3DoorFrames(24, 71, 29, 35, 41, 66, 60, 54)
	doorFramesD3C = d3DoorFrames(88, 135, 93, 99, 105, 130, 124, 118)
	doorFramesD3R = d3DoorFrames(150, 197, 153, 161, 167, 192, 186, 180)
	doorFramesD2L = d2DoorFrames(0, 63, 7, 15, 23, 56, 48, 40)
	doorFramesD2C = d2DoorFrames(80, 143, 87, 95, 103, 136, 128, 120)
	doorFramesD2R = d2DoorFrames(160, 223, 167, 175, 183, 216, 208, 200)

	doorFramesD1L = doorFrames{
		closed: frame(0, 31, 17, 102, 48, 88, 64, 0),
		vertical: [3]Frame{
			frame(0, 31, 17, 38, 48, 88, 64, 66),
			frame(0, 31, 17, 60, 48, 88, 64, 44),
			frame(0, 31, 17, 82, 48, 88, 64, 22),
		},
		rightHorizontal: [3]Frame{
			frame(20, 31, 17, 102, 48, 88, 48, 0),
			frame(8, 31, 17, 102, 48, 88, 48, 0),
			frame(0, 31, 17, 102, 48, 88, 52, 0),
		},
	}
	doorFramesD1C = doorFrames{
		closed: frame(64, 159, 17, 102, 48, 88, 0, 0),
		vertical: [3]Frame{
			frame(64, 159, 17, 38, 48, 88, 0, 66),
			frame(64, 159, 17, 60, 48, 88, 0, 44),
			frame(64, 159, 17, 82, 48, 88, 0, 22),
		},
		leftHorizontal: [3]Frame{
			frame(64, 75, 17, 102, 48, 88, 36, 0),
			frame(64, 87, 17, 102, 48, 88, 24, 0),
			frame(64, 99, 17, 102, 48, 88, 12, 0),
		},
		rightHorizontal: [3]Frame{
			frame(148, 159, 17, 102, 48, 88, 48, 0),
			frame(136, 159, 17, 102, 48, 88, 48, 0),
			frame(124, 159, 17, 102, 48, 88, 48, 0),
		},
	}
	doorFramesD1R = doorFrames{
		closed: frame(192, 223, 17, 102, 48, 88, 0, 0),
		vertical: [3]Frame{
			frame(192, 223, 17, 38, 48, 88, 0, 66),
			frame(192, 223, 17, 60, 48, 88, 0, 44),
			frame(192, 223, 17, 82, 48, 88, 0, 22),
		},
		leftHorizontal: [3]Frame{
			frame(192, 203, 17, 102, 48, 88, 36, 0),
			frame(192, 215, 17, 102, 48, 88, 24, 0),
			frame(192, 223, 17, 102, 48, 88, 12, 0),
		},
	}
)

// Door bitmap sizes per depth.
var doorSizes = [3][2]int{{48, 41}, {64, 61}, {96, 88}}

const (
	viewDoorOrnamentD3 = 0
	viewDoorOrnamentD2 = 1
	viewDoorOrnamentD1 = 2
)

var doorOrnamentCoordSets = [4][3]coordSet{
	{{17, 31, 8, 17, 8, 10}, {22, 42, 11, 23, 16, 13}, {32, 63, 13, 31, 16, 19}},
	{{0, 47, 0, 40, 24, 41}, {0, 63, 0, 60, 32, 61}, {0, 95, 0, 87, 48, 88}},
	{{17, 31, 15, 24, 8, 10}, {22, 42, 22, 34, 16, 13}, {32, 63, 31, 49, 16, 19}},
	{{23, 35, 31, 39, 8, 9}, {30, 48, 41, 52, 16, 12}, {44, 75, 61, 79, 16, 19}},
}

var doorOrnamentCoordSetIndices = [12]int{0, 1, 1, 1, 0, 2, 3, 1, 2, 2, 1, 1}

const (
	viewDoorButtonD3R = 0
	viewDoorButtonD3C = 1
	viewDoorButtonD2C = 2
	viewDoorButtonD1C = 3
)

var doorButtonCoordSets = [4]coordSet{
	{199, 204, 41, 44, 8, 4},
	{136, 141, 41, 44, 8, 4},
	{144, 155, 42, 47, 8, 6},
	{160, 175, 44, 52, 8, 9},
}

// Floor ornament views.
const (
	viewFloorD3L = iota
	viewFloorD3C
	viewFloorD3R
	viewFloorD2L
	viewFloorD2C
	viewFloorD2R
	viewFloorD1L
	viewFloorD1C
	viewFloorD1R
)

var floorOrnamentNativeIncrements = [9]int{0, 1, 0, 2, 3, 2, 4, 5, 4}

var floorOrnamentCoordSets = [3][9]coordSet{
	{
		{32, 79, 66, 71, 24, 6}, {96, 127, 66, 71, 16, 6}, {144, 191, 66, 71, 24, 6},
		{0, 63, 77, 87, 32, 11}, {80, 143, 77, 87, 32, 11}, {160, 223, 77, 87, 32, 11},
		{0, 31, 92, 116, 16, 25}, {80, 143, 92, 116, 32, 25}, {192, 223, 92, 116, 16, 25},
	},
	{
		{0, 95, 66, 74, 48, 9}, {64, 159, 66, 74, 48, 9}, {128, 223, 66, 74, 48, 9},
		{0, 79, 75, 89, 40, 15}, {56, 167, 75, 89, 56, 15}, {144, 223, 75, 89, 40, 15},
		{0, 63, 90, 118, 32, 29}, {32, 191, 90, 118, 80, 29}, {160, 223, 90, 118, 32, 29},
	},
	{
		{42, 57, 68, 72, 8, 5}, {104, 119, 68, 72, 8, 5}, {166, 181, 68, 72, 8, 5},
		{9, 40, 80, 85, 16, 6}, {96, 127, 80, 85, 16, 6}, {183, 214, 80, 85, 16, 6},
		{0, 15, 97, 108, 8, 12}, {96, 127, 97, 108, 16, 12}, {208, 223, 97, 108, 8, 12},
	},
}

var floorOrnamentCoordSetIndices = [9]int{0, 0, 0, 0, 2, 0, 0, 2, 0}

// Wall ornament views.
const (
	viewWallD3LRight = iota
	viewWallD3RLeft
	viewWallD3LFront
	viewWallD3CFront
	viewWallD3RFront
	viewWallD2LRight
	viewWallD2RLeft
	viewWallD2LFront
	viewWallD2CFront
	viewWallD2RFront
	viewWallD1LRight
	viewWallD1RLeft
	viewWallD1CFront
)

var wallOrnamentCoordSets = [8][13]coordSet{
	{
		{80, 83, 41, 45, 8, 5}, {140, 143, 41, 45, 8, 5},
		{16, 29, 39, 50, 8, 12}, {107, 120, 39, 50, 8, 12}, {187, 200, 39, 50, 8, 12},
		{67, 77, 40, 49, 8, 10}, {146, 156, 40, 49, 8, 10},
		{0, 17, 38, 55, 16, 18}, {102, 123, 38, 55, 16, 18}, {206, 223, 38, 55, 16, 18},
		{48, 63, 38, 56, 8, 19}, {160, 175, 38, 56, 8, 19},
		{96, 127, 36, 63, 16, 28},
	},
	{
		{74, 82, 41, 60, 8, 20}, {141, 149, 41, 60, 8, 20},
		{1, 47, 37, 63, 24, 27}, {88, 134, 37, 63, 24, 27}, {171, 217, 37, 63, 24, 27},
		{61, 76, 38, 67, 8, 30}, {147, 162, 38, 67, 8, 30},
		{0, 43, 37, 73, 32, 37}, {80, 143, 37, 73, 32, 37}, {180, 223, 37, 73, 32, 37},
		{32, 63, 36, 83, 16, 48}, {160, 191, 36, 83, 16, 48},
		{64, 159, 36, 91, 48, 56},
	},
	{
		{80, 83, 66, 70, 8, 5}, {140, 143, 66, 70, 8, 5},
		{16, 29, 64, 75, 8, 12}, {106, 119, 64, 75, 8, 12}, {187, 200, 64, 75, 8, 12},
		{67, 77, 74, 83, 8, 10}, {146, 156, 74, 83, 8, 10},
		{0, 17, 73, 90, 16, 18}, {100, 121, 73, 90, 16, 18}, {206, 223, 73, 90, 16, 18},
		{48, 63, 84, 102, 8, 19}, {160, 175, 84, 102, 8, 19},
		{96, 127, 92, 119, 16, 28},
	},
	{
		{80, 83, 49, 53, 8, 5}, {140, 143, 49, 53, 8, 5},
		{16, 29, 50, 61, 8, 12}, {106, 119, 50, 61, 8, 12}, {187, 200, 50, 61, 8, 12},
		{67, 77, 53, 62, 8, 10}, {146, 156, 53, 62, 8, 10},
		{0, 17, 55, 72, 16, 18}, {100, 121, 55, 72, 16, 18}, {206, 223, 55, 72, 16, 18},
		{48, 63, 57, 75, 8, 19}, {160, 175, 57, 75, 8, 19},
		{96, 127, 64, 91, 16, 28},
	},
	{
		{75, 90, 40, 44, 8, 5}, {133, 148, 40, 44, 8, 5},
		{1, 48, 44, 49, 24, 6}, {88, 135, 44, 49, 24, 6}, {171, 218, 44, 49, 24, 6},
		{60, 77, 40, 46, 16, 7}, {146, 163, 40, 46, 16, 7},
		{0, 35, 43, 50, 32, 8}, {80, 143, 43, 50, 32, 8}, {184, 223, 43, 50, 32, 8},
		{32, 63, 41, 52, 16, 12}, {160, 191, 41, 52, 16, 12},
		{64, 159, 41, 52, 48, 12},
	},
	{
		{78, 85, 36, 51, 8, 16}, {138, 145, 36, 51, 8, 16},
		{10, 41, 34, 53, 16, 20}, {98, 129, 34, 53, 16, 20}, {179, 210, 34, 53, 16, 20},
		{66, 75, 34, 56, 8, 23}, {148, 157, 34, 56, 8, 23},
		{0, 26, 33, 61, 24, 29}, {91, 133, 33, 61, 24, 29}, {194, 223, 33, 61, 24, 29},
		{41, 56, 31, 65, 8, 35}, {167, 182, 31, 65, 8, 35},
		{80, 143, 29, 71, 32, 43},
	},
	{
		{75, 82, 25, 75, 8, 51}, {142, 149, 25, 75, 8, 51},
		{12, 60, 25, 75, 32, 51}, {88, 136, 25, 75, 32, 51}, {163, 211, 25, 75, 32, 51},
		{64, 73, 20, 90, 8, 71}, {150, 159, 20, 90, 8, 71},
		{0, 38, 20, 90, 32, 71}, {82, 142, 20, 90, 32, 71}, {184, 223, 20, 90, 32, 71},
		{41, 56, 9, 119, 8, 111}, {169, 184, 9, 119, 8, 111},
		{64, 159, 9, 119, 48, 111},
	},
	{
		{74, 85, 25, 75, 8, 51}, {137, 149, 25, 75, 8, 51},
		{0, 75, 25, 75, 40, 51}, {74, 149, 25, 75, 40, 51}, {148, 223, 25, 75, 40, 51},
		{60, 77, 20, 90, 16, 71}, {146, 163, 20, 90, 16, 71},
		{0, 74, 20, 90, 56, 71}, {60, 163, 20, 90, 56, 71}, {149, 223, 20, 90, 56, 71},
		{32, 63, 9, 119, 16, 111}, {160, 191, 9, 119, 16, 111},
		{32, 191, 9, 119, 80, 111},
	},
}

var wallOrnamentCoordSetIndices = [60]int{
	1, 1, 1, 1, 0, 0, 0, 0, 0, 0,
	0, 2, 3, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 2, 2, 1, 1, 1, 1, 1,
	4, 4, 4, 5, 0, 0, 1, 0, 0, 0,
	2, 0, 0, 0, 0, 2, 6, 6, 6, 7,
}

// wallOrnamentDerivedIncrements picks the cached size of a far wall
// ornament; views 10 and 11 draw natives and never reach the cache.
var wallOrnamentDerivedIncrements = [12]int{0, 0, 1, 1, 1, 2, 2, 3, 3, 3, 4, 4}

var unreadableInscriptionY2 = [15]int{
	45, 48, 53,
	43, 49, 56,
	42, 49, 56,
	46, 53, 63,
	46, 57, 68,
}

var (
	boxWallPatchBehindInscription = blit.Box{X1: 110, X2: 113, Y1: 37, Y2: 63}
	boxChampionPortraitOnWall     = blit.Box{X1: 96, X2: 127, Y1: 35, Y2: 63}
	boxThievesEyeVisibleArea      = blit.Box{X1: 64, X2: 159, Y1: 19, Y2: 113}
	boxThievesEyeHoleInDoorFrame  = blit.Box{X1: 0, X2: 31, Y1: 19, Y2: 113}
	boxExplosionPatternD0C        = blit.Box{X1: 0, X2: 223, Y1: 0, Y2: 135}
)

var inscriptionLineY = [4]int{48, 59, 75, 86}

// Palette changes. Entries are the replacement colour times ten.
var (
	palChangesNoChanges      = blit.Remap{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130, 140, 150}
	palChangesButtonOrnD3    = blit.Remap{0, 0, 120, 30, 40, 30, 0, 60, 30, 90, 100, 110, 0, 10, 0, 20}
	palChangesButtonOrnD2    = blit.Remap{0, 120, 10, 30, 40, 30, 60, 70, 50, 90, 100, 110, 0, 20, 140, 130}
	palChangesDoorOrnD3      = blit.Remap{0, 120, 10, 30, 40, 30, 0, 60, 30, 90, 100, 110, 0, 20, 0, 130}
	palChangesDoorOrnD2      = blit.Remap{0, 10, 20, 30, 40, 30, 60, 70, 50, 90, 100, 110, 120, 130, 140, 150}
	palChangesFloorOrnD3     = blit.Remap{0, 120, 10, 30, 40, 30, 0, 60, 30, 90, 100, 110, 0, 20, 140, 130}
	palChangesFloorOrnD2     = blit.Remap{0, 10, 20, 30, 40, 30, 60, 70, 50, 90, 100, 110, 120, 130, 140, 150}
	palChangesSmoke          = blit.Remap{0, 10, 20, 30, 40, 50, 120, 10, 80, 90, 100, 110, 120, 130, 140, 150}
	palChangesCreatureBaseD3 = blit.Remap{0, 120, 10, 30, 40, 30, 0, 60, 30, 0, 0, 110, 0, 20, 0, 130}
	palChangesCreatureBaseD2 = blit.Remap{0, 10, 20, 30, 40, 30, 60, 70, 50, 0, 0, 110, 120, 130, 140, 150}
)

var palChangesProjectile = [4]*blit.Remap{&palChangesFloorOrnD3, &palChangesFloorOrnD2, &palChangesNoChanges, &palChangesNoChanges}

// fieldAspect describes the teleporter field drawn over a view square.
type fieldAspect struct {
	nativeRel     int
	baseStartUnit int
	transparent   int
	mask          int
	byteWidth     int
	height        int
	x             int
	bitplaneWords int
}

const (
	fieldNoMask         = 0xFF
	fieldMaskFlip       = 0x80
	fieldDoNotUseMask   = 0x80
	fieldTransparentKey = 0x0F
)

var fieldAspects = [12]fieldAspect{
	D3C: {0, 63, 0x8A, 0xFF, 0, 0, 0, 64},
	D3L: {0, 63, 0x0A, 0x80, 48, 51, 11, 64},
	D3R: {0, 63, 0x0A, 0x00, 48, 51, 0, 64},
	D2C: {0, 60, 0x8A, 0xFF, 0, 0, 0, 64},
	D2L: {0, 63, 0x0A, 0x81, 40, 71, 5, 64},
	D2R: {0, 63, 0x0A, 0x01, 40, 71, 0, 64},
	D1C: {0, 61, 0x8A, 0xFF, 0, 0, 0, 64},
	D1L: {0, 63, 0x0A, 0x82, 32, 111, 0, 64},
	D1R: {0, 63, 0x0A, 0x02, 32, 111, 0, 64},
	D0C: {0, 59, 0x8A, 0xFF, 0, 0, 0, 64},
	D0L: {0, 63, 0x0A, 0x83, 16, 136, 0, 64},
	D0R: {0, 63, 0x0A, 0x03, 16, 136, 0, 64},
}
