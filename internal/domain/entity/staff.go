package entity

import "time"

// Roles del personal. El claim de rol viaja en el JWT para el RBAC del middleware.
const (
	RoleAdmin           = "admin"
	RoleManager         = "manager"
	RoleStockController = "stock_controller"
	RoleEngineer        = "engineer"
)

// Staff es un miembro del personal del almacén.
type Staff struct {
	ID            int64
	StaffIDNumber string // número de carné, único; credencial de login
	Name          string
	JobID         int64
	DepartmentID  int64
	Role          string
	HashPassword  string
	CreatedAt     time.Time
}

// Department agrupa personal y recibe asignaciones de ajustes.
type Department struct {
	ID   int64
	Name string
}

// Job es el cargo de un miembro del personal.
type Job struct {
	ID   int64
	Name string
}

// Recipient es un correo suscrito a las alertas de re-orden.
type Recipient struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}
