package domain

import "context"

type PokemonType string

const (
	TypeNormal   PokemonType = "NORMAL"
	TypeFire     PokemonType = "FIRE"
	TypeWater    PokemonType = "WATER"
	TypeGrass    PokemonType = "GRASS"
	TypeElectric PokemonType = "ELECTRIC"
	TypeIce      PokemonType = "ICE"
	TypeFighting PokemonType = "FIGHTING"
	TypePoison   PokemonType = "POISON"
	TypeGround   PokemonType = "GROUND"
	TypeFlying   PokemonType = "FLYING"
	TypePsychic  PokemonType = "PSYCHIC"
	TypeBug      PokemonType = "BUG"
	TypeRock     PokemonType = "ROCK"
	TypeGhost    PokemonType = "GHOST"
	TypeDragon   PokemonType = "DRAGON"
	TypeDark     PokemonType = "DARK"
	TypeSteel    PokemonType = "STEEL"
	TypeFairy    PokemonType = "FAIRY"
)

var PokemonTypes = map[PokemonType]bool{
	TypeNormal: true, TypeFire: true, TypeWater: true, TypeGrass: true,
	TypeElectric: true, TypeIce: true, TypeFighting: true, TypePoison: true,
	TypeGround: true, TypeFlying: true, TypePsychic: true, TypeBug: true,
	TypeRock: true, TypeGhost: true, TypeDragon: true, TypeDark: true,
	TypeSteel: true, TypeFairy: true,
}

type Card struct {
	ID            uint        `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name          string      `gorm:"type:varchar(100);not null;column:name" json:"name"`
	HP            int         `gorm:"type:int;not null;column:hp" json:"hp"`
	Attack        int         `gorm:"type:int;not null;column:attack" json:"attack"`
	Type          PokemonType `gorm:"type:varchar(20);not null;column:type" json:"type"`
	PokedexNumber int         `gorm:"type:int;unique;not null;column:pokedex_number" json:"pokedexNumber"`
	ImgURL        string      `gorm:"type:varchar(255);column:img_url" json:"imgUrl"`
}

type CardRepository interface {
	ListCards(ctx context.Context) ([]Card, error)
	ResolveMany(ctx context.Context, ids []uint) (map[uint]bool, error)
}
