package arcraiders

// Rarity is an item rarity tier. The API accepts any casing; the canonical
// forms are the capitalized constants below.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// ItemType discriminates the [Item] union.
type ItemType string

const (
	TypeWeapon     ItemType = "weapon"
	TypeArmor      ItemType = "armor"
	TypeConsumable ItemType = "consumable"
	TypeMaterial   ItemType = "material"
	TypeQuestItem  ItemType = "quest_item"
	TypeOther      ItemType = "other"
)

// WeaponType is the weapon class of a weapon item.
type WeaponType string

const (
	WeaponAssaultRifle WeaponType = "assault_rifle"
	WeaponSniperRifle  WeaponType = "sniper_rifle"
	WeaponPistol       WeaponType = "pistol"
	WeaponShotgun      WeaponType = "shotgun"
	WeaponSMG          WeaponType = "smg"
	WeaponLMG          WeaponType = "lmg"
	WeaponMelee        WeaponType = "melee"
)

// ArmorSlot is the body slot an armor item occupies.
type ArmorSlot string

const (
	SlotHead     ArmorSlot = "head"
	SlotChest    ArmorSlot = "chest"
	SlotArms     ArmorSlot = "arms"
	SlotLegs     ArmorSlot = "legs"
	SlotBackpack ArmorSlot = "backpack"
)

// Difficulty rates quests and ARC missions.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyExtreme Difficulty = "extreme"
)

// ObjectiveType is the kind of a quest objective.
type ObjectiveType string

const (
	ObjectiveKill     ObjectiveType = "kill"
	ObjectiveCollect  ObjectiveType = "collect"
	ObjectiveDeliver  ObjectiveType = "deliver"
	ObjectiveInteract ObjectiveType = "interact"
	ObjectiveSurvive  ObjectiveType = "survive"
	ObjectiveOther    ObjectiveType = "other"
)

// MissionType is the kind of an ARC mission.
type MissionType string

const (
	MissionRaid  MissionType = "raid"
	MissionEvent MissionType = "event"
	MissionWorld MissionType = "world"
	MissionBoss  MissionType = "boss"
	MissionOther MissionType = "other"
)

// POIType is the kind of a map point of interest.
type POIType string

const (
	POISpawn      POIType = "spawn"
	POIExtraction POIType = "extraction"
	POIObjective  POIType = "objective"
	POIVendor     POIType = "vendor"
	POICache      POIType = "cache"
	POIOther      POIType = "other"
)

// WaypointType is the kind of a map waypoint.
type WaypointType string

const (
	WaypointSpawn      WaypointType = "spawn"
	WaypointExtraction WaypointType = "extraction"
	WaypointObjective  WaypointType = "objective"
	WaypointVendor     WaypointType = "vendor"
	WaypointOther      WaypointType = "other"
)

// Item is any game item. Weapons and armor are items whose Type is
// [TypeWeapon] or [TypeArmor]; they share this layout and only differ in
// which of the embedded stat blocks the API fills in.
//
// Items are returned by reference from the cache and must not be mutated.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Rarity      Rarity   `json:"rarity,omitempty"`
	Type        ItemType `json:"type,omitempty"`
	Icon        string   `json:"icon,omitempty"`

	WeaponStats
	ArmorStats
}

// WeaponStats holds the fields only weapons carry. Nil means the API did
// not report the value.
type WeaponStats struct {
	Damage     *float64   `json:"damage,omitempty"`
	FireRate   *float64   `json:"fireRate,omitempty"`
	Range      *float64   `json:"range,omitempty"`
	WeaponType WeaponType `json:"weaponType,omitempty"`
}

// ArmorStats holds the fields only armor carries.
type ArmorStats struct {
	ArmorValue *float64  `json:"armorValue,omitempty"`
	Slot       ArmorSlot `json:"slot,omitempty"`
}

// IsWeapon reports whether the item is tagged as a weapon.
func (i Item) IsWeapon() bool { return i.Type == TypeWeapon }

// IsArmor reports whether the item is tagged as armor.
func (i Item) IsArmor() bool { return i.Type == TypeArmor }

// Quest is a trader quest.
type Quest struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Objectives  []Objective `json:"objectives,omitempty"`
	Rewards     []Reward    `json:"rewards,omitempty"`
	Location    string      `json:"location,omitempty"`
	Difficulty  Difficulty  `json:"difficulty,omitempty"`
	Icon        string      `json:"icon,omitempty"`
}

// Objective is one step of a quest.
type Objective struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Type        ObjectiveType `json:"type"`
	Target      string        `json:"target,omitempty"`
	Count       *int          `json:"count,omitempty"`
}

// Reward is something granted on quest completion.
type Reward struct {
	ItemID     string `json:"itemId,omitempty"`
	ItemName   string `json:"itemName,omitempty"`
	Quantity   *int   `json:"quantity,omitempty"`
	Experience *int   `json:"experience,omitempty"`
	Currency   *int   `json:"currency,omitempty"`
}

// ArcMission is an ARC enemy or encounter.
type ArcMission struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Type        MissionType `json:"type,omitempty"`
	Loot        []Loot      `json:"loot,omitempty"`
	Location    string      `json:"location,omitempty"`
	Difficulty  Difficulty  `json:"difficulty,omitempty"`
	Icon        string      `json:"icon,omitempty"`
}

// Loot is an item an ARC can drop.
type Loot struct {
	ItemID     string   `json:"itemId,omitempty"`
	ItemName   string   `json:"itemName,omitempty"`
	DropChance *float64 `json:"dropChance,omitempty"`
	Rarity     Rarity   `json:"rarity,omitempty"`
}

// Coordinates is a map position. Z is optional.
type Coordinates struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z,omitempty"`
}

// Waypoint is a named map position.
type Waypoint struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Type        WaypointType `json:"type,omitempty"`
}

// PointOfInterest is a typed map marker.
type PointOfInterest struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        POIType      `json:"type"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// MapData describes one game map.
type MapData struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Coordinates []Coordinates     `json:"coordinates,omitempty"`
	Waypoints   []Waypoint        `json:"waypoints,omitempty"`
	POIs        []PointOfInterest `json:"pois,omitempty"`
}

// Trader is an in-game vendor.
type Trader struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Location  string       `json:"location,omitempty"`
	Inventory []TraderItem `json:"inventory,omitempty"`
	Icon      string       `json:"icon,omitempty"`
}

// TraderItem is an item offered by a trader.
// TraderPrice is nil when the API reports null.
type TraderItem struct {
	ID          string   `json:"id"`
	Icon        string   `json:"icon,omitempty"`
	Name        string   `json:"name"`
	Value       *float64 `json:"value,omitempty"`
	Rarity      Rarity   `json:"rarity,omitempty"`
	ItemType    string   `json:"item_type,omitempty"`
	Description string   `json:"description,omitempty"`
	TraderPrice *float64 `json:"trader_price"`
}

// SearchResult groups matches by resource. Only Items is populated today;
// the other groups are reserved for when the API exposes cross-resource
// search.
type SearchResult struct {
	Items   []Item       `json:"items,omitempty"`
	Quests  []Quest      `json:"quests,omitempty"`
	Arcs    []ArcMission `json:"arcs,omitempty"`
	Traders []Trader     `json:"traders,omitempty"`
}
