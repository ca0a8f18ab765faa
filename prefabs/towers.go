package prefabs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/milk9111/towerdefense/common"
)

const TowersFile = "towers.json"

var (
	ErrDuplicateTower = errors.New("towers: duplicate id")
	ErrInvalidTower   = errors.New("towers: invalid definition")
)

// TowerDef is one catalog entry. Scene paths name the model the tower and its
// projectile are drawn as.
type TowerDef struct {
	ID              string
	Scene           string
	ProjectileScene string
	FireInterval    float64
	Range           float64
	Damage          float64
	ProjectileSpeed float64
	ProjectileScale float64
	Offset          common.Vec3
	ShotSound       string
	ShotVolume      float64
	Color           color.NRGBA
}

// TowerDB is the tower catalog keyed by id.
type TowerDB struct {
	Defs map[string]TowerDef
}

func (db *TowerDB) Get(id string) (TowerDef, bool) {
	if db == nil {
		return TowerDef{}, false
	}
	def, ok := db.Defs[id]
	return def, ok
}

// IDs returns catalog ids sorted alphabetically.
func (db *TowerDB) IDs() []string {
	if db == nil {
		return nil
	}
	ids := make([]string, 0, len(db.Defs))
	for id := range db.Defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type towersFile struct {
	Towers []towerJSON `json:"towers"`
}

type towerJSON struct {
	ID              string     `json:"id"`
	Scene           string     `json:"scene"`
	ProjectileScene string     `json:"projectile_scene"`
	FireInterval    float64    `json:"fire_interval"`
	Range           float64    `json:"range"`
	Damage          float64    `json:"damage"`
	ProjectileSpeed float64    `json:"projectile_speed"`
	ProjectileScale float64    `json:"projectile_scale"`
	Offset          [3]float64 `json:"offset"`
	ShotSound       string     `json:"shot_sound"`
	ShotVolume      *float64   `json:"shot_volume"`
	Color           string     `json:"color"`
}

var defaultTowerColor = color.NRGBA{R: 0x8a, G: 0x94, B: 0xa6, A: 0xff}

// LoadTowerDB decodes a towers.json document.
func LoadTowerDB(data []byte) (*TowerDB, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var file towersFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("towers: decode: %w", err)
	}

	db := &TowerDB{Defs: make(map[string]TowerDef, len(file.Towers))}
	for i, raw := range file.Towers {
		def, err := raw.toDef()
		if err != nil {
			return nil, fmt.Errorf("towers: entry %d: %w", i, err)
		}
		if _, ok := db.Defs[def.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTower, def.ID)
		}
		db.Defs[def.ID] = def
	}
	return db, nil
}

// LoadTowers reads and decodes a tower catalog file through Load.
func LoadTowers(name string) (*TowerDB, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	db, err := LoadTowerDB(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return db, nil
}

func (t towerJSON) toDef() (TowerDef, error) {
	id := strings.TrimSpace(t.ID)
	if id == "" {
		return TowerDef{}, fmt.Errorf("%w: empty id", ErrInvalidTower)
	}
	if t.FireInterval <= 0 {
		return TowerDef{}, fmt.Errorf("%w: %q fire_interval must be positive", ErrInvalidTower, id)
	}
	if t.ProjectileSpeed <= 0 {
		return TowerDef{}, fmt.Errorf("%w: %q projectile_speed must be positive", ErrInvalidTower, id)
	}

	def := TowerDef{
		ID:              id,
		Scene:           t.Scene,
		ProjectileScene: t.ProjectileScene,
		FireInterval:    t.FireInterval,
		Range:           t.Range,
		Damage:          t.Damage,
		ProjectileSpeed: t.ProjectileSpeed,
		ProjectileScale: t.ProjectileScale,
		Offset:          common.V3(t.Offset[0], t.Offset[1], t.Offset[2]),
		ShotSound:       t.ShotSound,
		ShotVolume:      1,
		Color:           defaultTowerColor,
	}
	if def.ProjectileScale <= 0 {
		def.ProjectileScale = 1
	}
	if t.ShotVolume != nil {
		def.ShotVolume = *t.ShotVolume
	}
	if t.Color != "" {
		c, err := parseHexColor(t.Color)
		if err != nil {
			return TowerDef{}, fmt.Errorf("%w: %q: %v", ErrInvalidTower, id, err)
		}
		def.Color = c
	}
	return def, nil
}

func parseHexColor(value string) (color.NRGBA, error) {
	s := strings.TrimPrefix(value, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var out [4]uint8
	out[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color format: %s", value)
		}
		out[i] = v
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}
