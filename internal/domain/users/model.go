package users

import "time"

// Application roles; each gets its own dashboard in the front end.
const (
	RoleAdmin              = "admin"
	RoleCapturista         = "capturista"
	RoleDirector           = "director"
	RoleServiciosEscolares = "servicios_escolares"
)

type User struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"not null;uniqueIndex"`
	FullName  string    `gorm:"not null"`
	Role      string    `gorm:"type:varchar(32);not null"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// APIToken is the opaque credential issued to every user at provisioning
// time; the auth middleware resolves requests through it.
type APIToken struct {
	Token     string    `gorm:"primaryKey"`
	UserID    string    `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type ProvisionInput struct {
	Email    string
	FullName string
	Role     string
}
