// internal/defs/defaults.go
package defs

// Встроенные библиотеки позволяют запускать движок без внешних файлов;
// LoadEnemyDefinitions/LoadTowerDefinitions заменяют их целиком.
func init() {
	EnemyLibrary = builtinEnemies()
	TowerLibrary = builtinTowers()
}

func builtinEnemies() map[string]EnemyDefinition {
	list := []EnemyDefinition{
		{
			ID: "ENEMY_GRUNT", Name: "Grunt", Variant: VariantPlain,
			Health: 40, Speed: 80, Armor: 0, DamageToBase: 10, RewardEnergy: 6,
		},
		{
			ID: "ENEMY_SPRINTER", Name: "Sprinter", Variant: VariantSprinter,
			Health: 30, Speed: 70, Armor: 0, DamageToBase: 8, RewardEnergy: 7,
			Behavior: &BehaviorParams{Sprint: &SprintParams{Multiplier: 2.5, Duration: 1.2, Cooldown: 2.0}},
		},
		{
			ID: "ENEMY_DEVOURER", Name: "Devourer", Variant: VariantDevourer,
			Health: 60, Speed: 60, Armor: 0.1, DamageToBase: 12, RewardEnergy: 9,
			Behavior: &BehaviorParams{Devour: &DevourParams{
				Radius: 1.5, TimeWindow: 3.0, Heal: 15, SlowFactor: 0.92, GrowFactor: 1.12, MaxCount: 5,
			}},
		},
		{
			ID: "ENEMY_SMART", Name: "Pathfinder", Variant: VariantSmart,
			Health: 45, Speed: 75, Armor: 0, DamageToBase: 10, RewardEnergy: 8,
			Behavior: &BehaviorParams{Risk: &RiskParams{Weight: 2.0, SenseRadius: 2}},
		},
		{
			ID: "ENEMY_HEALER", Name: "Mender", Variant: VariantHealer,
			Health: 35, Speed: 65, Armor: 0, DamageToBase: 6, RewardEnergy: 10,
			Behavior: &BehaviorParams{Heal: &HealParams{Radius: 3.0, Interval: 2.5, Amount: 8}},
		},
		{
			ID: "ENEMY_COURIER", Name: "Courier", Variant: VariantCourier,
			Health: 20, Speed: 140, Armor: 0, DamageToBase: 0, RewardEnergy: 12,
			Behavior: &BehaviorParams{Courier: &CourierParams{ShieldGrant: 15, ShieldCap: 40}},
		},
		{
			ID: "ENEMY_SYMBIOTE", Name: "Symbiote", Variant: VariantSymbiote,
			Health: 50, Speed: 70, Armor: 0, DamageToBase: 10, RewardEnergy: 9,
			Behavior: &BehaviorParams{Symbiote: &SymbioteParams{MaxCharges: 3, RechargePeriod: 4.0}},
		},
		{
			ID: "ENEMY_JAMMER", Name: "Jammer", Variant: VariantJammer,
			Health: 55, Speed: 60, Armor: 0.15, DamageToBase: 8, RewardEnergy: 11,
			Behavior: &BehaviorParams{Jam: &JamParams{Radius: 2.5, Multiplier: 1.5}},
		},
		{
			ID: "ENEMY_BOSS", Name: "Warlord", Variant: VariantBoss,
			Health: 600, Speed: 40, Armor: 0.3, DamageToBase: 50, RewardEnergy: 60,
			Behavior: &BehaviorParams{Boss: &BossParams{
				SummonCount: 3, SummonInterval: 8.0, SummonEnemyID: "ENEMY_GRUNT", SummonRadius: 2,
				DestroyInterval: 12.0, DestroyRange: 4.0, DestroyCount: 1,
			}},
		},
	}
	lib := make(map[string]EnemyDefinition, len(list))
	for _, def := range list {
		lib[def.ID] = def
	}
	return lib
}

func builtinTowers() map[string]TowerDefinition {
	list := []TowerDefinition{
		{
			ID: "TOWER_ARROW", Name: "Arrow", Cost: 30,
			Damage: 18, AttackInterval: 0.8, Range: 3.5, Strategy: TargetFirst,
		},
		{
			ID: "TOWER_CANNON", Name: "Cannon", Cost: 55,
			Damage: 25, AttackInterval: 2.0, Range: 3.0, MinRange: 1.0, Strategy: TargetStrongest,
			Splash: &SplashParams{Radius: 1.2},
		},
		{
			ID: "TOWER_SNIPER", Name: "Sniper", Cost: 70,
			Damage: 40, AttackInterval: 2.5, Range: 6.0, MinRange: 2.0, Strategy: TargetStrongest,
		},
		{
			ID: "TOWER_EXECUTIONER", Name: "Executioner", Cost: 65,
			Damage: 15, AttackInterval: 1.0, Range: 3.0, Strategy: TargetLowest,
			Execute: &ExecuteParams{Threshold: 0.35, Multiplier: 3.0},
		},
		{
			ID: "TOWER_BEAM", Name: "Beam", Cost: 80,
			Damage: 0, AttackInterval: 0, Range: 2.5, Strategy: TargetFirst,
			Beam: &BeamParams{PercentRate: 0.12, MinDamage: 4.0},
		},
	}
	lib := make(map[string]TowerDefinition, len(list))
	for _, def := range list {
		lib[def.ID] = def
	}
	return lib
}

// DefaultLevel возвращает встроенный уровень, используемый, когда внешний
// YAML не задан.
func DefaultLevel() LevelDefinition {
	return LevelDefinition{
		Name:   "Proving Grounds",
		Width:  20,
		Height: 15,
		Spawns: []TileRef{{Row: 0, Col: 0}, {Row: 14, Col: 0}},
		Base:   TileRef{Row: 7, Col: 19},
		Obstacles: []RectRef{
			{Row: 4, Col: 6, Width: 2, Height: 3},
			{Row: 9, Col: 11, Width: 3, Height: 2},
		},
		RandomObstacles: &RandomObstacleParams{Count: 6, AvoidRadius: 3, MinSpacing: 2},
		StartEnergy:     120,
		BaseHealth:      100,
		Waves: []WaveDefinition{
			{Groups: []EnemyGroup{
				{EnemyID: "ENEMY_GRUNT", Count: 6, Interval: 0.9},
			}, ClearDelay: 4},
			{Groups: []EnemyGroup{
				{EnemyID: "ENEMY_GRUNT", Count: 6, Interval: 0.8},
				{EnemyID: "ENEMY_SPRINTER", Count: 4, Interval: 0.7},
			}, ClearDelay: 4},
			{Groups: []EnemyGroup{
				{EnemyID: "ENEMY_SMART", Count: 5, Interval: 0.8},
				{EnemyID: "ENEMY_COURIER", Count: 2, Interval: 1.5},
			}, ClearDelay: 4},
			{Groups: []EnemyGroup{
				{EnemyID: "ENEMY_DEVOURER", Count: 4, Interval: 1.2},
				{EnemyID: "ENEMY_HEALER", Count: 2, Interval: 2.0},
				{EnemyID: "ENEMY_GRUNT", Count: 8, Interval: 0.6},
			}, ClearDelay: 5},
			{Groups: []EnemyGroup{
				{EnemyID: "ENEMY_JAMMER", Count: 3, Interval: 1.5},
				{EnemyID: "ENEMY_SYMBIOTE", Count: 4, Interval: 1.0},
				{EnemyID: "ENEMY_GRUNT", Count: 10, Interval: 0.5, HPMultiplier: 1.3},
			}, ClearDelay: 5},
			{Groups: []EnemyGroup{
				{EnemyID: "ENEMY_BOSS", Count: 1, Interval: 1.0},
				{EnemyID: "ENEMY_GRUNT", Count: 8, Interval: 0.8, HPMultiplier: 1.5},
			}, ClearDelay: 5},
		},
	}
}
