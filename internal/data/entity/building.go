package entity

type Building struct {
	Base
	Name    string `db:"name"`
	Address string `db:"address"`
	City    string `db:"city"`
}
