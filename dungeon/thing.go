package dungeon

// Thing is a packed handle to something lying on a square: the cell it
// occupies in bits 14–15, its type in bits 10–13 and its index into the
// per-type table in bits 0–9.
type Thing uint16

const (
	EndOfList Thing = 0xFFFE
	None      Thing = 0xFFFF
)

type ThingType uint8

const (
	TypeDoor       ThingType = 0
	TypeTeleporter ThingType = 1
	TypeText       ThingType = 2
	TypeSensor     ThingType = 3
	TypeGroup      ThingType = 4
	TypeWeapon     ThingType = 5
	TypeArmour     ThingType = 6
	TypeScroll     ThingType = 7
	TypePotion     ThingType = 8
	TypeContainer  ThingType = 9
	TypeJunk       ThingType = 10
	TypeProjectile ThingType = 14
	TypeExplosion  ThingType = 15
)

func (t ThingType) String() string {
	switch t {
	case TypeDoor:
		return "ThingType(Door)"
	case TypeTeleporter:
		return "ThingType(Teleporter)"
	case TypeText:
		return "ThingType(Text)"
	case TypeSensor:
		return "ThingType(Sensor)"
	case TypeGroup:
		return "ThingType(Group)"
	case TypeWeapon:
		return "ThingType(Weapon)"
	case TypeArmour:
		return "ThingType(Armour)"
	case TypeScroll:
		return "ThingType(Scroll)"
	case TypePotion:
		return "ThingType(Potion)"
	case TypeContainer:
		return "ThingType(Container)"
	case TypeJunk:
		return "ThingType(Junk)"
	case TypeProjectile:
		return "ThingType(Projectile)"
	case TypeExplosion:
		return "ThingType(Explosion)"
	}
	return "ThingType(UNKNOWN)"
}

// IsObject reports whether things of this type are items that can be
// picked up.
func (t ThingType) IsObject() bool {
	return t >= TypeWeapon && t <= TypeJunk
}

func NewThing(cell int, typ ThingType, index int) Thing {
	return Thing(cell&3)<<14 | Thing(typ&0xF)<<10 | Thing(index&0x3FF)
}

func (t Thing) Cell() int       { return int(t >> 14) }
func (t Thing) Type() ThingType { return ThingType(t>>10) & 0xF }
func (t Thing) Index() int      { return int(t & 0x3FF) }

// End reports whether t terminates a thing list.
func (t Thing) End() bool { return t == EndOfList || t == None }
