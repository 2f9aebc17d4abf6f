package site

import "time"

type Site struct {
	ID        string
	Name      string
	Address   *string
	Location  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
