package render

import "github.com/32bitkid/dm/blit"

// Natives hands out the decoded bitmaps of the graphics file by item
// number. *dm.Graphics satisfies it.
type Natives interface {
	Native(index int) *blit.Bitmap
}

// Item numbers of the native bitmaps the dungeon view draws.
const (
	nativeChampionPortraits  = 26
	nativeHoleInWall         = 41
	nativeFloorPitD3L        = 49
	nativeFloorPitD3C        = 50
	nativeFloorPitD2L        = 51
	nativeFloorPitD2C        = 52
	nativeFloorPitD1L        = 53
	nativeFloorPitD1C        = 54
	nativeFloorPitD0L        = 55
	nativeFloorPitD0C        = 56
	nativeInvisiblePitD2L    = 57
	nativeInvisiblePitD2C    = 58
	nativeInvisiblePitD1L    = 59
	nativeInvisiblePitD1C    = 60
	nativeInvisiblePitD0L    = 61
	nativeInvisiblePitD0C    = 62
	nativeCeilingPitD2L      = 63
	nativeCeilingPitD2C      = 64
	nativeCeilingPitD1L      = 65
	nativeCeilingPitD1C      = 66
	nativeCeilingPitD0L      = 67
	nativeCeilingPitD0C      = 68
	nativeFirstFieldMask     = 69
	nativeFirstField         = 73
	nativeFirstFloorSet      = 75
	nativeFirstWallSet       = 77
	nativeFirstStairs        = 90
	nativeFirstDoorSet       = 108
	nativeInscriptionFont    = 120
	nativeFirstWallOrnament  = 121
	nativeFootprints         = 241
	nativeFirstFloorOrnament = 247
	nativeDoorMaskDestroyed  = 301
	nativeDoorMaskThievesEye = 302
	nativeFirstDoorOrnament  = 303
	nativeFirstDoorButton    = 315
	nativeFirstProjectile    = 316
	nativeFirstExplosion     = 348
	nativeFirstExplosionPat  = 351
	nativeFirstObject        = 360
	nativeFirstCreature      = 446
	nativeLastCreature       = 532
)

// Pieces of a wall set, in the order they are stored.
const (
	wallDoorFrameFront = iota
	wallDoorFrameLeftD1C
	wallDoorFrameLeftD2C
	wallDoorFrameLeftD3C
	wallDoorFrameLeftD3L
	wallDoorFrameTopD1
	wallDoorFrameTopD2
	wallD0R
	wallD0L
	wallD1
	wallD2
	wallD3
	wallD3L2

	wallPieces
)

// Stairs bitmaps of a wall set, relative to its first stairs item.
const (
	stairsUpFrontD3L = iota
	stairsUpFrontD3C
	stairsUpFrontD2L
	stairsUpFrontD2C
	stairsUpFrontD1L
	stairsUpFrontD1C
	stairsUpFrontD0CLeft
	stairsDownFrontD3L
	stairsDownFrontD3C
	stairsDownFrontD2L
	stairsDownFrontD2C
	stairsDownFrontD1L
	stairsDownFrontD1C
	stairsDownFrontD0CLeft
	stairsSideD2L
	stairsUpSideD1L
	stairsDownSideD1L
	stairsSideD0L

	stairsPieces
)

// Door bitmap depths within a door set.
const (
	doorD3 = iota
	doorD2
	doorD1
)

var (
	wallPieceSizes = [wallPieces][2]int{
		{32, 123}, {32, 94}, {48, 65}, {32, 44}, {32, 43}, {128, 4}, {96, 3},
		{32, 136}, {32, 136}, {256, 111}, {144, 71}, {128, 51}, {16, 49},
	}
	stairsSizes = [stairsPieces][2]int{
		{80, 46}, {96, 46}, {64, 62}, {96, 62}, {32, 100}, {160, 100}, {32, 44},
		{80, 41}, {96, 43}, {64, 62}, {96, 62}, {32, 91}, {160, 91}, {32, 60},
		{16, 5}, {32, 43}, {32, 39}, {16, 13},
	}
	pitSizes = [20][2]int{
		{80, 8}, {96, 8}, {80, 12}, {96, 12}, {64, 24}, {160, 24}, {32, 12}, {192, 12},
		{80, 12}, {96, 12}, {64, 24}, {160, 24}, {32, 12}, {192, 12},
		{80, 5}, {96, 5}, {64, 9}, {160, 9}, {16, 4}, {192, 4},
	}
	fieldMaskSizes = [4][2]int{{96, 51}, {80, 71}, {64, 111}, {32, 136}}
)

// NativeSize reports the dimensions the dungeon view expects of item
// index, or ok false for items it never draws or whose size it does not
// constrain.
func NativeSize(index int) (width, height int, ok bool) {
	wh := func(s [2]int) (int, int, bool) { return s[0], s[1], true }
	cs := func(c coordSet) (int, int, bool) { return c.pixelWidth(), c.height(), true }

	switch {
	case index == nativeChampionPortraits:
		return 256, 87, true
	case index == nativeHoleInWall:
		return 96, 95, true
	case index >= nativeFloorPitD3L && index < nativeFirstFieldMask:
		return wh(pitSizes[index-nativeFloorPitD3L])
	case index >= nativeFirstFieldMask && index < nativeFirstField:
		return wh(fieldMaskSizes[index-nativeFirstFieldMask])
	case index >= nativeFirstField && index < nativeFirstFloorSet:
		return 32, 36, true
	case index == nativeFirstFloorSet:
		return 224, 70, true
	case index == nativeFirstFloorSet+1:
		return 224, 29, true
	case index >= nativeFirstWallSet && index < nativeFirstStairs:
		return wh(wallPieceSizes[index-nativeFirstWallSet])
	case index >= nativeFirstStairs && index < nativeFirstDoorSet:
		return wh(stairsSizes[index-nativeFirstStairs])
	case index >= nativeFirstDoorSet && index < nativeInscriptionFont:
		return wh(doorSizes[(index-nativeFirstDoorSet)%3])
	case index == nativeInscriptionFont:
		return 288, 8, true
	case index >= nativeFirstWallOrnament && index < nativeFootprints:
		rel := index - nativeFirstWallOrnament
		set := wallOrnamentCoordSets[wallOrnamentCoordSetIndices[rel>>1]]
		if rel&1 == 0 {
			return cs(set[viewWallD1LRight])
		}
		return cs(set[viewWallD1CFront])
	case index >= nativeFootprints && index < nativeDoorMaskDestroyed:
		rel := index - nativeFootprints
		set := 1
		if rel >= 6 {
			set = floorOrnamentCoordSetIndices[rel/6-1]
		}
		return cs(floorOrnamentCoordSets[set][floorOrnamentViewOfIncrement[rel%6]])
	case index == nativeDoorMaskDestroyed || index == nativeDoorMaskThievesEye:
		return cs(doorOrnamentCoordSets[1][viewDoorOrnamentD1])
	case index >= nativeFirstDoorOrnament && index < nativeFirstDoorButton:
		set := doorOrnamentCoordSetIndices[index-nativeFirstDoorOrnament]
		return cs(doorOrnamentCoordSets[set][viewDoorOrnamentD1])
	case index == nativeFirstDoorButton:
		return cs(doorButtonCoordSets[viewDoorButtonD1C])
	case index >= nativeFirstProjectile && index < nativeFirstExplosion:
		rel := index - nativeFirstProjectile
		for i := len(projectileAspects) - 1; i >= 0; i-- {
			if a := projectileAspects[i]; a.firstNative <= rel {
				return a.byteWidth << 1, a.height, true
			}
		}
	case index >= nativeFirstExplosion && index < nativeFirstExplosionPat:
		a := explosionAspects[index-nativeFirstExplosion]
		return a[0] << 1, a[1], true
	case index >= nativeFirstExplosionPat && index < nativeFirstObject:
		return 48, 32, true
	case index >= nativeFirstObject && index < nativeFirstCreature:
		rel := index - nativeFirstObject
		for i := len(objectAspects) - 1; i >= 0; i-- {
			if a := objectAspects[i]; a.firstNative <= rel {
				return a.byteWidth << 1, a.height, true
			}
		}
	case index >= nativeFirstCreature && index <= nativeLastCreature:
		rel := index - nativeFirstCreature
		for i := len(creatureAspects) - 1; i >= 0; i-- {
			a := creatureAspects[i]
			if a.firstNative > rel {
				continue
			}
			switch {
			case rel == a.firstNative+1 && a.byteWidthSide > 0:
				return a.byteWidthSide << 1, a.hSide, true
			case rel > a.firstNative && a.byteWidthAttack > 0:
				return a.byteWidthAttack << 1, a.hAttack, true
			}
			return a.byteWidthFront << 1, a.hFront, true
		}
	}
	return 0, 0, false
}

// floorOrnamentViewOfIncrement is a floor ornament view drawn with each
// of the six natives of an ornament.
var floorOrnamentViewOfIncrement = [6]int{viewFloorD3L, viewFloorD3C, viewFloorD2L, viewFloorD2C, viewFloorD1L, viewFloorD1C}
