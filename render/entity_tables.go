package render

// Cell orders. Each nibble is the ordinal of a view cell, lowest nibble
// first. When the lowest nibble has bit 3 set it is not a cell but marks
// one of the two passes around a door seen from the front; bit 0 then
// picks the pass. Front cells are the far ones.
const (
	orderAlcove                       = 0x0000
	orderFrontLeft                    = 0x0001
	orderFrontLeftFrontRight          = 0x0021
	orderFrontRightBackRight          = 0x0032
	orderFrontLeftBackLeft            = 0x0041
	orderFrontLeftFrontRightBackRight = 0x0321
	orderFrontRightBackLeftBackRight  = 0x0342
	orderFrontRightFrontLeftBackLeft  = 0x0412
	orderFrontLeftBackRightBackLeft   = 0x0431
	orderLeftColumnFirst              = 0x3421
	orderRightColumnFirst             = 0x4312

	orderDoorPass1FrontLeft           = 0x0018
	orderDoorPass1FrontRight          = 0x0028
	orderDoorPass1FrontRightFrontLeft = 0x0128
	orderDoorPass1FrontLeftFrontRight = 0x0218
	orderDoorPass2BackRight           = 0x0039
	orderDoorPass2BackLeft            = 0x0049
	orderDoorPass2BackLeftBackRight   = 0x0349
	orderDoorPass2BackRightBackLeft   = 0x0439

	orderDoorFront = 0x0008
)

// View cells, relative to the party's facing. Front cells are the ones
// farther away.
const (
	viewCellFrontLeft  = 0
	viewCellFrontRight = 1
	viewCellBackRight  = 2
	viewCellBackLeft   = 3
	viewCellAlcove     = 4
)

// Cells used to place creatures that are not quarter sized.
const (
	halfCellLeftColumn   = 0
	halfCellRightColumn  = 1
	halfCellFarRow       = 2
	halfCellCenterColumn = 3
	halfCellNearRow      = 4
)

// Shrink factors in 32nds.
const (
	scaleD3 = 16
	scaleD2 = 20
)

const (
	shiftSetD0BackD1Front = 0
	shiftSetD1BackD2Front = 1
	shiftSetD2BackD3Front = 2
)

var shiftSets = [3][8]int{
	{0, 1, 2, 3, 0, -3, -2, -1},
	{0, 1, 1, 2, 0, -2, -1, -1},
	{0, 1, 1, 1, 0, -1, -1, -1},
}

// objectPileShiftSetIndices spreads a pile of objects: {x, y} indices
// into a shift set, one row per object of the pile.
var objectPileShiftSetIndices = [16][2]int{
	{2, 5}, {0, 6}, {5, 7}, {3, 0},
	{7, 1}, {1, 2}, {6, 3}, {3, 3},
	{5, 5}, {2, 6}, {7, 7}, {1, 0},
	{3, 1}, {6, 2}, {1, 3}, {5, 3},
}

const (
	objectFlipOnRight = 0x0001
	objectAlcove      = 0x0010
)

type objectAspect struct {
	firstNative  int
	firstDerived int
	byteWidth    int
	height       int
	graphicInfo  int
	coordSet     int
}

var objectAspects = [86]objectAspect{
	{0, 0, 24, 27, 0x11, 0},
	{2, 6, 24, 8, 0, 1}, {3, 8, 8, 18, 0, 1}, {4, 10, 8, 8, 0, 1}, {5, 12, 8, 4, 0, 1}, {6, 14, 16, 11, 0, 1},
	{7, 16, 24, 13, 0, 0}, {8, 18, 32, 16, 0, 0}, {9, 20, 40, 24, 0, 0}, {10, 22, 16, 20, 0, 1}, {11, 24, 40, 20, 0, 0},
	{12, 26, 32, 4, 0, 1}, {13, 28, 40, 8, 0, 1}, {14, 30, 32, 17, 0, 0}, {15, 32, 40, 17, 0, 2}, {16, 34, 16, 9, 0, 1},
	{17, 36, 24, 5, 0, 1}, {18, 38, 16, 9, 0, 0}, {19, 40, 8, 4, 0, 1}, {20, 42, 32, 21, 0, 2}, {21, 44, 32, 25, 0, 2},
	{22, 46, 32, 14, 0, 1}, {23, 48, 32, 26, 0, 2}, {24, 50, 32, 16, 0, 0}, {25, 52, 32, 16, 0, 0}, {26, 54, 16, 16, 0, 1},
	{27, 56, 16, 15, 0, 1}, {28, 58, 16, 13, 0, 1}, {29, 60, 16, 10, 0, 1}, {30, 62, 40, 24, 0, 0}, {31, 64, 40, 9, 0, 1},
	{32, 66, 16, 3, 0, 1}, {33, 68, 32, 5, 0, 1}, {34, 70, 40, 16, 0, 0}, {35, 72, 8, 7, 0, 1}, {36, 74, 32, 7, 0, 1},
	{37, 76, 24, 14, 0, 0}, {38, 78, 16, 8, 0, 0}, {39, 80, 8, 3, 0, 1}, {40, 82, 40, 9, 0, 1}, {41, 84, 24, 14, 0, 0},
	{42, 86, 40, 20, 0, 0}, {43, 88, 40, 15, 0, 1}, {44, 90, 32, 10, 0, 1}, {45, 92, 32, 19, 0, 0}, {46, 94, 40, 25, 0, 2},
	{47, 96, 24, 7, 0, 1}, {48, 98, 8, 7, 0, 1}, {49, 100, 16, 5, 0, 1}, {50, 102, 8, 9, 0, 1}, {51, 104, 32, 11, 0, 1},
	{52, 106, 32, 14, 0, 0}, {53, 108, 24, 20, 0, 0}, {54, 110, 16, 14, 0, 1}, {55, 112, 32, 23, 0, 0}, {56, 114, 24, 16, 0, 0},
	{57, 116, 32, 25, 0, 0}, {58, 118, 24, 25, 0, 0}, {59, 120, 8, 8, 0, 1}, {60, 122, 8, 7, 0, 1}, {61, 124, 8, 8, 0, 1},
	{62, 126, 8, 8, 0, 1}, {63, 128, 8, 5, 0, 1}, {64, 130, 8, 13, 0x01, 1}, {65, 134, 16, 13, 0, 1}, {66, 136, 16, 14, 0, 0},
	{67, 138, 16, 10, 0, 1}, {68, 140, 8, 18, 0, 1}, {69, 142, 8, 17, 0, 1}, {70, 144, 32, 18, 0, 0}, {71, 146, 16, 23, 0, 0},
	{72, 148, 16, 24, 0, 0}, {73, 150, 16, 15, 0, 0}, {74, 152, 8, 7, 0, 1}, {75, 154, 8, 15, 0, 1}, {76, 156, 8, 9, 0, 1},
	{77, 158, 16, 14, 0, 0}, {78, 160, 8, 8, 0, 1}, {79, 162, 16, 9, 0, 1}, {80, 164, 8, 13, 0x01, 1}, {81, 168, 8, 18, 0, 1},
	{82, 170, 24, 28, 0, 0}, {83, 172, 40, 13, 0, 1}, {84, 174, 8, 4, 0, 1}, {85, 176, 32, 17, 0, 0},
}

// objectCoordinateSets places objects: [set][view square][view cell] is
// {x, y} of the bottom centre of the sprite. A zero y hides the object.
var objectCoordinateSets = [3][10][5][2]int{
	{
		{{0, 0}, {0, 0}, {125, 72}, {95, 72}, {112, 64}},
		{{0, 0}, {0, 0}, {62, 72}, {25, 72}, {24, 64}},
		{{0, 0}, {0, 0}, {200, 72}, {162, 72}, {194, 64}},
		{{92, 78}, {132, 78}, {136, 86}, {88, 86}, {112, 74}},
		{{10, 78}, {53, 78}, {41, 86}, {0, 0}, {3, 74}},
		{{171, 78}, {218, 78}, {0, 0}, {183, 86}, {219, 74}},
		{{83, 96}, {141, 96}, {148, 111}, {76, 111}, {112, 94}},
		{{0, 0}, {26, 96}, {5, 111}, {0, 0}, {0, 0}},
		{{197, 96}, {0, 0}, {0, 0}, {220, 111}, {0, 0}},
		{{66, 131}, {158, 131}, {0, 0}, {0, 0}, {0, 0}},
	},
	{
		{{0, 0}, {0, 0}, {125, 72}, {95, 72}, {112, 63}},
		{{0, 0}, {0, 0}, {62, 72}, {25, 72}, {24, 63}},
		{{0, 0}, {0, 0}, {200, 72}, {162, 72}, {194, 63}},
		{{92, 78}, {132, 78}, {136, 86}, {88, 86}, {112, 73}},
		{{10, 78}, {53, 78}, {41, 86}, {0, 0}, {3, 73}},
		{{171, 78}, {218, 78}, {0, 0}, {183, 86}, {219, 73}},
		{{83, 96}, {141, 96}, {148, 111}, {76, 111}, {112, 89}},
		{{0, 0}, {26, 96}, {5, 111}, {0, 0}, {0, 0}},
		{{197, 96}, {0, 0}, {0, 0}, {220, 111}, {0, 0}},
		{{66, 131}, {158, 131}, {0, 0}, {0, 0}, {0, 0}},
	},
	{
		{{0, 0}, {0, 0}, {125, 75}, {95, 75}, {112, 65}},
		{{0, 0}, {0, 0}, {62, 75}, {25, 75}, {24, 65}},
		{{0, 0}, {0, 0}, {200, 75}, {162, 75}, {194, 65}},
		{{92, 81}, {132, 81}, {136, 88}, {88, 88}, {112, 76}},
		{{10, 81}, {53, 81}, {41, 88}, {0, 0}, {3, 76}},
		{{171, 81}, {218, 81}, {0, 0}, {183, 88}, {219, 76}},
		{{83, 98}, {141, 98}, {148, 115}, {76, 115}, {112, 98}},
		{{0, 0}, {26, 98}, {5, 115}, {0, 0}, {0, 0}},
		{{197, 98}, {0, 0}, {0, 0}, {220, 115}, {0, 0}},
		{{66, 135}, {158, 135}, {0, 0}, {0, 0}, {0, 0}},
	},
}

// creatureAspect describes the sprites of a creature type. Widths are
// half the pixel width. coordTransp packs the coordinate set in the high
// nibble and the transparent colour in the low one; replColors packs the
// palette replacement ordinals for colours 10 (high) and 9 (low).
type creatureAspect struct {
	firstNative              int
	byteWidthFront, hFront   int
	byteWidthSide, hSide     int
	byteWidthAttack, hAttack int
	coordTransp              int
	replColors               int
}

func (a creatureAspect) coordSet() int    { return a.coordTransp >> 4 }
func (a creatureAspect) transparent() int { return a.coordTransp & 0xF }

var creatureAspects = [27]creatureAspect{
	{0, 56, 84, 56, 84, 56, 84, 0x1D, 0x01},
	{4, 32, 66, 0, 0, 32, 69, 0x0B, 0x20},
	{6, 24, 48, 24, 48, 0, 0, 0x0B, 0x00},
	{10, 32, 61, 0, 0, 32, 61, 0x24, 0x31},
	{12, 32, 64, 56, 64, 32, 64, 0x14, 0x34},
	{16, 24, 49, 40, 49, 0, 0, 0x18, 0x34},
	{19, 32, 60, 0, 0, 32, 60, 0x0D, 0x00},
	{21, 32, 43, 0, 0, 32, 64, 0x04, 0x00},
	{23, 32, 83, 0, 0, 32, 93, 0x04, 0x00},
	{25, 32, 101, 32, 101, 32, 101, 0x14, 0x00},
	{29, 32, 82, 32, 82, 32, 83, 0x04, 0x00},
	{33, 32, 80, 0, 0, 32, 99, 0x14, 0x00},
	{35, 32, 80, 32, 80, 32, 76, 0x04, 0x00},
	{39, 32, 96, 56, 93, 32, 90, 0x1D, 0x20},
	{43, 32, 49, 16, 49, 32, 56, 0x04, 0x30},
	{47, 32, 59, 56, 43, 32, 67, 0x14, 0x78},
	{51, 32, 83, 32, 74, 32, 74, 0x04, 0x65},
	{55, 24, 49, 24, 53, 24, 53, 0x24, 0x00},
	{59, 32, 89, 32, 89, 32, 89, 0x04, 0x00},
	{63, 32, 84, 32, 84, 32, 84, 0x0D, 0xA9},
	{67, 56, 27, 0, 0, 56, 80, 0x04, 0x65},
	{69, 56, 77, 56, 81, 56, 77, 0x04, 0xA9},
	{73, 32, 87, 32, 89, 32, 89, 0x04, 0xCB},
	{77, 32, 96, 32, 94, 32, 96, 0x04, 0x00},
	{81, 64, 94, 72, 94, 64, 94, 0x04, 0xCB},
	{85, 32, 93, 0, 0, 0, 0, 0x04, 0xCB},
	{86, 32, 93, 0, 0, 0, 0, 0x04, 0xCB},
}

// creatureCoordinateSets places creatures: [set][view square][half
// cell or view cell] is {x, y} of the bottom centre. The rows run D3C
// to D1R then D0L and D0R.
var creatureCoordinateSets = [3][11][5][2]int{
	{
		{{95, 70}, {127, 70}, {129, 75}, {93, 75}, {111, 72}},
		{{131, 70}, {163, 70}, {158, 75}, {120, 75}, {145, 72}},
		{{59, 70}, {91, 70}, {107, 75}, {66, 75}, {79, 72}},
		{{92, 81}, {131, 81}, {132, 90}, {91, 90}, {111, 85}},
		{{99, 81}, {146, 81}, {135, 90}, {80, 90}, {120, 85}},
		{{77, 81}, {124, 81}, {143, 90}, {89, 90}, {105, 85}},
		{{83, 103}, {141, 103}, {148, 119}, {76, 119}, {109, 111}},
		{{46, 103}, {118, 103}, {101, 119}, {0, 0}, {79, 111}},
		{{107, 103}, {177, 103}, {0, 0}, {123, 119}, {144, 111}},
		{{0, 0}, {67, 135}, {0, 0}, {0, 0}, {0, 0}},
		{{156, 135}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	},
	{
		{{94, 75}, {128, 75}, {111, 70}, {111, 72}, {111, 75}},
		{{120, 75}, {158, 75}, {149, 70}, {145, 72}, {150, 75}},
		{{66, 75}, {104, 75}, {75, 70}, {79, 72}, {73, 75}},
		{{91, 90}, {132, 90}, {111, 83}, {111, 85}, {111, 90}},
		{{80, 90}, {135, 90}, {125, 83}, {120, 85}, {125, 90}},
		{{89, 90}, {143, 90}, {99, 83}, {105, 85}, {98, 90}},
		{{81, 119}, {142, 119}, {111, 105}, {111, 111}, {111, 119}},
		{{0, 0}, {101, 119}, {84, 105}, {70, 111}, {77, 119}},
		{{123, 119}, {0, 0}, {139, 105}, {153, 111}, {146, 119}},
		{{0, 0}, {83, 130}, {57, 121}, {47, 126}, {57, 130}},
		{{140, 130}, {0, 0}, {166, 121}, {176, 126}, {166, 130}},
	},
	{
		{{95, 59}, {127, 59}, {129, 61}, {93, 61}, {111, 60}},
		{{131, 59}, {163, 59}, {158, 61}, {120, 61}, {145, 60}},
		{{59, 59}, {91, 59}, {107, 61}, {66, 61}, {79, 60}},
		{{92, 65}, {131, 65}, {132, 67}, {91, 67}, {111, 66}},
		{{99, 65}, {146, 65}, {135, 67}, {80, 67}, {120, 66}},
		{{77, 65}, {124, 65}, {143, 67}, {89, 67}, {105, 66}},
		{{83, 79}, {141, 79}, {148, 85}, {76, 85}, {111, 81}},
		{{46, 79}, {118, 79}, {101, 85}, {0, 0}, {79, 81}},
		{{107, 79}, {177, 79}, {0, 0}, {123, 85}, {144, 81}},
		{{0, 0}, {67, 96}, {0, 0}, {0, 0}, {0, 0}},
		{{156, 96}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	},
}

// Projectile aspect graphic info.
const (
	projectileTypeMask        = 0x0003
	projectileBackAndRotation = 0
	projectileBack            = 1
	projectileRotation        = 2
	projectileNone            = 3
	projectileSide            = 0x0010
	projectileScaleWithKE     = 0x0100
)

type projectileAspect struct {
	firstNative  int
	firstDerived int
	byteWidth    int
	height       int
	graphicInfo  int
}

var projectileAspects = [14]projectileAspect{
	{0, 0, 32, 11, 0x11},
	{3, 18, 16, 11, 0x11},
	{6, 36, 24, 47, 0x10},
	{9, 54, 32, 15, 0x112},
	{11, 54, 32, 12, 0x11},
	{14, 72, 24, 47, 0x10},
	{17, 90, 24, 47, 0x10},
	{20, 108, 16, 11, 0x11},
	{23, 126, 48, 18, 0x11},
	{26, 144, 8, 15, 0x12},
	{28, 156, 16, 28, 0x103},
	{29, 156, 16, 11, 0x103},
	{30, 156, 16, 28, 0x103},
	{31, 156, 16, 24, 0x103},
}

// projectileLightningBolt is the projectile aspect the first rebirth
// step borrows its sprite from.
const projectileLightningBolt = 3

var projectileScales = [7]int{13, 16, 19, 22, 25, 28, 32}

// projectileY is the row projectiles fly at.
const projectileY = 47

const (
	explosionAspectFire = iota
	explosionAspectSpell
	explosionAspectPoison
	explosionAspectSmoke
)

// explosionAspects are {byte width, height} of the explosion sprites.
var explosionAspects = [4][2]int{{80, 111}, {64, 97}, {80, 91}, {80, 91}}

var explosionBaseScales = [5]int{10, 16, 23, 32, 32}

// Explosion view squares are the view squares shifted by three so the
// D4 squares come first.
const (
	explosionD3C = 3
	explosionD3L = 4
	explosionD1C = 9
	explosionD0C = 12
)

// explosionCoordinates is [explosion view square][column] {x, y}.
var explosionCoordinates = [15][2][2]int{
	{{100, 47}, {122, 47}}, {{52, 47}, {76, 47}}, {{148, 47}, {172, 47}},
	{{95, 50}, {127, 50}}, {{31, 50}, {63, 50}}, {{159, 50}, {191, 50}},
	{{92, 53}, {131, 53}}, {{-3, 53}, {46, 53}}, {{177, 53}, {226, 53}},
	{{83, 57}, {141, 57}}, {{-54, 57}, {18, 57}}, {{207, 57}, {277, 57}},
	{{0, 0}, {0, 0}}, {{-73, 60}, {-33, 60}}, {{256, 60}, {296, 60}},
}

var centeredExplosionCoordinates = [15][2]int{
	{111, 47}, {57, 47}, {167, 47},
	{111, 50}, {45, 50}, {179, 50},
	{111, 53}, {20, 53}, {205, 53},
	{111, 57}, {-30, 57}, {253, 57},
	{111, 60}, {-53, 60}, {276, 60},
}

// Rebirth coordinates are {x, y, scale} for the D3 to D1 squares.
var (
	rebirthStep1Coordinates = [7][3]int{
		{112, 53, 15}, {24, 53, 15}, {194, 53, 15},
		{112, 59, 20}, {15, 59, 20}, {208, 59, 20},
		{112, 70, 32},
	}
	rebirthStep2Coordinates = [7][3]int{
		{113, 57, 12}, {24, 57, 12}, {195, 57, 12},
		{111, 63, 16}, {12, 63, 16}, {213, 63, 16},
		{112, 76, 24},
	}
)
